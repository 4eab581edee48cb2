package httpserver

import (
	"net/http"

	"legitlah-be/internal/logger"
	"legitlah-be/internal/middleware"
	"legitlah-be/internal/order"
	"legitlah-be/internal/transport"

	"go.uber.org/zap"
)

type SellerHandler struct {
	orders *order.Service
}

func NewSellerHandler(orders *order.Service) *SellerHandler {
	return &SellerHandler{orders: orders}
}

// Dashboard shows the seller landing view. The order count comes from the
// contract and is best-effort; a gateway hiccup degrades the dashboard
// instead of breaking it.
func (h *SellerHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	id := middleware.IdentityFrom(r.Context())

	payload := map[string]any{
		"page":    "seller",
		"account": id.Account,
	}
	if count, err := h.orders.OrderCount(r.Context()); err != nil {
		logger.FromCtx(r.Context()).Warn("order count unavailable", zap.Error(err))
	} else {
		payload["orderCount"] = count
	}

	transport.Success(w, payload)
}

type createProfileRequest struct {
	SellerName string `json:"sellerName"`
}

// CreateProfile acknowledges a seller profile the client registers
// on-chain. The name is logged for correlation only.
func (h *SellerHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var req createProfileRequest
	if err := transport.DecodeJSON(r, &req); err != nil {
		transport.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.SellerName == "" {
		transport.Fail(w, http.StatusBadRequest, "Seller name is required")
		return
	}

	logger.FromCtx(r.Context()).Info("seller profile created",
		zap.String("seller_name", req.SellerName),
		zap.String("account", middleware.IdentityFrom(r.Context()).Account),
	)

	transport.Success(w, map[string]any{
		"message":    "Seller profile created successfully",
		"sellerName": req.SellerName,
	})
}

type acceptOrderRequest struct {
	OrderID string `json:"orderId"`
}

func (h *SellerHandler) AcceptOrder(w http.ResponseWriter, r *http.Request) {
	var req acceptOrderRequest
	if err := transport.DecodeJSON(r, &req); err != nil {
		transport.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	acting := middleware.IdentityFrom(r.Context()).Account
	if err := h.orders.Accept(r.Context(), acting, req.OrderID); err != nil {
		failFromError(w, err)
		return
	}

	transport.Success(w, map[string]any{
		"message": "Order accepted",
		"orderId": req.OrderID,
	})
}

type shipOrderRequest struct {
	OrderID        string `json:"orderId"`
	TrackingNumber string `json:"trackingNumber"`
}

func (h *SellerHandler) ShipOrder(w http.ResponseWriter, r *http.Request) {
	var req shipOrderRequest
	if err := transport.DecodeJSON(r, &req); err != nil {
		transport.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	acting := middleware.IdentityFrom(r.Context()).Account
	if err := h.orders.Ship(r.Context(), acting, req.OrderID, req.TrackingNumber); err != nil {
		failFromError(w, err)
		return
	}

	transport.Success(w, map[string]any{
		"message":        "Order shipped successfully",
		"orderId":        req.OrderID,
		"trackingNumber": req.TrackingNumber,
	})
}

type releasePaymentRequest struct {
	OrderID string `json:"orderId"`
}

// ReleasePayment acknowledges an escrow release the seller triggers from
// their own wallet; the funds move on-chain, not here.
func (h *SellerHandler) ReleasePayment(w http.ResponseWriter, r *http.Request) {
	var req releasePaymentRequest
	if err := transport.DecodeJSON(r, &req); err != nil {
		transport.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.OrderID == "" {
		failFromError(w, order.ErrMissingOrderID)
		return
	}

	logger.FromCtx(r.Context()).Info("payment released",
		zap.String("order_id", req.OrderID))

	transport.Success(w, map[string]any{
		"message": "Payment released successfully",
		"orderId": req.OrderID,
	})
}
