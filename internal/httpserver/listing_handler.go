package httpserver

import (
	"net/http"
	"strconv"

	"legitlah-be/internal/listing"
	"legitlah-be/internal/middleware"
	"legitlah-be/internal/transport"

	"github.com/go-chi/chi/v5"
)

type ListingHandler struct {
	listings listing.Service
}

func NewListingHandler(listings listing.Service) *ListingHandler {
	return &ListingHandler{listings: listings}
}

func (h *ListingHandler) Browse(w http.ResponseWriter, r *http.Request) {
	products, err := h.listings.Browse(r.Context(), listing.Filter{
		Category: r.URL.Query().Get("category"),
		Query:    r.URL.Query().Get("q"),
	})
	if err != nil {
		failFromError(w, err)
		return
	}
	if products == nil {
		products = []listing.Product{}
	}

	transport.Success(w, map[string]any{
		"products":      products,
		"categories":    listing.Categories,
		"topCategories": listing.TopCategories,
	})
}

func (h *ListingHandler) Details(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		transport.Fail(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	product, err := h.listings.Details(r.Context(), id)
	if err != nil {
		failFromError(w, err)
		return
	}

	transport.Success(w, map[string]any{"product": product})
}

type postProductRequest struct {
	Title    string     `json:"title"`
	Price    priceValue `json:"price"`
	Category string     `json:"category"`
	ImageURL string     `json:"imageUrl"`
}

func (h *ListingHandler) Post(w http.ResponseWriter, r *http.Request) {
	var req postProductRequest
	if err := transport.DecodeJSON(r, &req); err != nil {
		transport.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.listings.Post(r.Context(), listing.CreateProductParams{
		Title:    req.Title,
		Price:    float64(req.Price),
		Category: req.Category,
		ImageURL: req.ImageURL,
		PostedBy: middleware.IdentityFrom(r.Context()).Account,
	})
	if err != nil {
		failFromError(w, err)
		return
	}

	transport.Success(w, map[string]any{
		"message": "Listing posted successfully",
		"product": product,
	})
}
