package cart

// Item is one cart line. Adds never merge, so quantity is always 1 at
// creation; the field exists because totals are price times quantity.
type Item struct {
	ID          int64   `json:"id"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}
