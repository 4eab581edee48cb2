package httpserver

import (
	"net/http"

	"legitlah-be/internal/cart"
	"legitlah-be/internal/middleware"
	"legitlah-be/internal/order"
	"legitlah-be/internal/transport"
)

type CartHandler struct {
	carts  *cart.Store
	orders *order.Service
}

func NewCartHandler(carts *cart.Store, orders *order.Service) *CartHandler {
	return &CartHandler{carts: carts, orders: orders}
}

// accountFor picks the acting account: an explicit one from the request
// wins, otherwise the session identity answers. Clients that pay from a
// wallet other than the one bound at registration send it explicitly.
func accountFor(r *http.Request, explicit string) string {
	if explicit != "" {
		return explicit
	}
	return middleware.IdentityFrom(r.Context()).Account
}

type addToCartRequest struct {
	ProductName string     `json:"productName"`
	Price       priceValue `json:"price"`
	UserAccount string     `json:"userAccount"`
}

func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req addToCartRequest
	if err := transport.DecodeJSON(r, &req); err != nil {
		transport.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ProductName == "" {
		transport.Fail(w, http.StatusBadRequest, "Product name is required")
		return
	}

	account := accountFor(r, req.UserAccount)
	count := h.carts.Add(account, req.ProductName, float64(req.Price))

	transport.Success(w, map[string]any{
		"message":   "Item added to cart",
		"cartCount": count,
	})
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	account := accountFor(r, r.URL.Query().Get("account"))
	transport.Success(w, map[string]any{
		"items": h.carts.Items(account),
		"total": h.carts.Total(account),
	})
}

type removeFromCartRequest struct {
	UserAccount string `json:"userAccount"`
	ItemID      int64  `json:"itemId"`
}

func (h *CartHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	var req removeFromCartRequest
	if err := transport.DecodeJSON(r, &req); err != nil {
		transport.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	account := accountFor(r, req.UserAccount)
	count, err := h.carts.Remove(account, req.ItemID)
	if err != nil {
		failFromError(w, err)
		return
	}

	transport.Success(w, map[string]any{
		"message":   "Item removed from cart",
		"cartCount": count,
	})
}

func (h *CartHandler) CartPage(w http.ResponseWriter, r *http.Request) {
	account := accountFor(r, r.URL.Query().Get("account"))
	transport.Success(w, map[string]any{
		"page":  "cart",
		"items": h.carts.Items(account),
		"total": h.carts.Total(account),
	})
}

func (h *CartHandler) CheckoutPage(w http.ResponseWriter, r *http.Request) {
	account := accountFor(r, r.URL.Query().Get("account"))
	transport.Success(w, map[string]any{
		"page":  "checkout",
		"items": h.carts.Items(account),
		"total": h.carts.Total(account),
	})
}

type processCheckoutRequest struct {
	UserAccount string `json:"userAccount"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Address     string `json:"address"`
}

func (h *CartHandler) ProcessCheckout(w http.ResponseWriter, r *http.Request) {
	var req processCheckoutRequest
	if err := transport.DecodeJSON(r, &req); err != nil {
		transport.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	summary, err := h.orders.Checkout(r.Context(), order.CheckoutInput{
		Account: accountFor(r, req.UserAccount),
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
	})
	if err != nil {
		failFromError(w, err)
		return
	}

	transport.Success(w, map[string]any{
		"message":      "Checkout completed successfully",
		"checkoutData": summary,
	})
}
