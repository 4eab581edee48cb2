package httpserver

import (
	"net/http"
	"time"

	"legitlah-be/internal/logger"
	"legitlah-be/internal/middleware"
	"legitlah-be/internal/order"
	"legitlah-be/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderHandler struct {
	orders *order.Service
}

func NewOrderHandler(orders *order.Service) *OrderHandler {
	return &OrderHandler{orders: orders}
}

func (h *OrderHandler) Home(w http.ResponseWriter, r *http.Request) {
	id := middleware.IdentityFrom(r.Context())
	transport.Success(w, map[string]any{
		"page":       "home",
		"isLoggedIn": id.Authenticated(),
		"role":       id.Role.String(),
	})
}

func (h *OrderHandler) Products(w http.ResponseWriter, r *http.Request) {
	transport.Success(w, map[string]any{"page": "products"})
}

func (h *OrderHandler) Buy(w http.ResponseWriter, r *http.Request) {
	transport.Success(w, map[string]any{"page": "buy"})
}

func (h *OrderHandler) OrderTrack(w http.ResponseWriter, r *http.Request) {
	transport.Success(w, map[string]any{"page": "ordertrack"})
}

func (h *OrderHandler) OrderDetails(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")
	if orderID == "" {
		orderID = r.URL.Query().Get("orderId")
	}
	transport.Success(w, map[string]any{
		"page":    "orderdetails",
		"orderId": orderID,
	})
}

func (h *OrderHandler) ConfirmPage(w http.ResponseWriter, r *http.Request) {
	transport.Success(w, map[string]any{
		"page":    "confirm",
		"orderId": r.URL.Query().Get("orderId"),
	})
}

// GetOrderData answers with the on-chain tracking view of one order.
func (h *OrderHandler) GetOrderData(w http.ResponseWriter, r *http.Request) {
	orderID := r.URL.Query().Get("orderId")

	info, err := h.orders.Tracking(r.Context(), orderID)
	if err != nil {
		failFromError(w, err)
		return
	}

	transport.Success(w, map[string]any{
		"orderId":        info.OrderID,
		"trackingNumber": info.TrackingNumber,
		"events":         info.Events,
	})
}

type createOrderRequest struct {
	UserAccount string `json:"userAccount"`
	TxHash      string `json:"txHash"`
}

// CreateOrder acknowledges an order the client already placed on-chain.
// The contract is the system of record; the server only mints a local
// reference id and logs the transaction hash for correlation.
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := transport.DecodeJSON(r, &req); err != nil {
		transport.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	orderID := uuid.New().String()
	logger.FromCtx(r.Context()).Info("order created",
		zap.String("order_id", orderID),
		zap.String("tx_hash", req.TxHash),
		zap.String("account", accountFor(r, req.UserAccount)),
	)

	transport.Success(w, map[string]any{
		"message":   "Order created successfully",
		"orderId":   orderID,
		"txHash":    req.TxHash,
		"createdAt": time.Now().UTC().Format(time.RFC3339),
	})
}

type confirmDeliveryRequest struct {
	OrderID   string `json:"orderId"`
	Confirmed bool   `json:"confirmed"`
}

// ConfirmDelivery records the buyer's verdict. A confirmation releases the
// escrow path on-chain from the client side; a rejection opens a refund.
func (h *OrderHandler) ConfirmDelivery(w http.ResponseWriter, r *http.Request) {
	var req confirmDeliveryRequest
	if err := transport.DecodeJSON(r, &req); err != nil {
		transport.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.OrderID == "" {
		failFromError(w, order.ErrMissingOrderID)
		return
	}

	message := "Refund requested"
	if req.Confirmed {
		message = "Delivery confirmed"
	}

	logger.FromCtx(r.Context()).Info("delivery confirmation",
		zap.String("order_id", req.OrderID),
		zap.Bool("confirmed", req.Confirmed),
	)

	transport.Success(w, map[string]any{
		"message": message,
		"orderId": req.OrderID,
	})
}
