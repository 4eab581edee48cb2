package order

import "errors"

var (
	ErrMissingCheckoutField = errors.New("name, email and address are required")
	ErrMissingOrderID       = errors.New("order id is required")
	ErrMissingTracking      = errors.New("tracking number is required")
)
