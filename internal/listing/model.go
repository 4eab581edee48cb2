package listing

import "time"

type Product struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Price     float64   `json:"price"`
	Category  string    `json:"category"`
	ImageURL  string    `json:"imageUrl"`
	PostedBy  string    `json:"postedBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// Categories mirror the classifieds storefront's fixed set; "All" in a
// filter means no category restriction.
var Categories = []string{
	"Electronics",
	"Fashion",
	"Home & Living",
	"Sports",
	"Toys & Games",
	"Miscellaneous",
}

var TopCategories = []string{
	"Electronics",
	"Fashion",
	"Miscellaneous",
}

func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
