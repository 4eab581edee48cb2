package listing

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidCategory = errors.New("please select a valid category")
	ErrInvalidProduct  = errors.New("title, image and poster are required")
	ErrInvalidPrice    = errors.New("price must be a non-negative number")
)
