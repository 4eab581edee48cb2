package order

import (
	"time"

	"legitlah-be/internal/cart"
)

// Summary is the checkout snapshot returned to the buyer. In production
// the escrow contract owns the durable order; this mirrors what the
// storefront shows back.
type Summary struct {
	Account   string      `json:"userAccount"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Address   string      `json:"address"`
	Items     []cart.Item `json:"items"`
	Total     float64     `json:"total"`
	Timestamp time.Time   `json:"timestamp"`
}
