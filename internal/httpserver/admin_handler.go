package httpserver

import (
	"context"
	"net/http"

	"legitlah-be/internal/auth"
	"legitlah-be/internal/chain"
	"legitlah-be/internal/logger"
	"legitlah-be/internal/metrics"
	"legitlah-be/internal/middleware"
	"legitlah-be/internal/order"
	"legitlah-be/internal/transport"

	"go.uber.org/zap"
)

// AdminRegistry is the slice of the contract gateway the admin views
// need. chain.Registry satisfies it.
type AdminRegistry interface {
	UserCount(ctx context.Context) (uint64, error)
	UserByIndex(ctx context.Context, index uint64) (chain.UserRecord, error)
	Stats() metrics.Snapshot
}

type AdminHandler struct {
	authSvc  *auth.Service
	orders   *order.Service
	registry AdminRegistry
}

func NewAdminHandler(authSvc *auth.Service, orders *order.Service, registry AdminRegistry) *AdminHandler {
	return &AdminHandler{authSvc: authSvc, orders: orders, registry: registry}
}

// Dashboard aggregates registry counts and gateway traffic stats. Each
// enrichment is independent; a failed count leaves a hole, not an error.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromCtx(r.Context())

	payload := map[string]any{
		"page":    "admin",
		"gateway": h.registry.Stats(),
	}
	if count, err := h.registry.UserCount(r.Context()); err != nil {
		log.Warn("user count unavailable", zap.Error(err))
	} else {
		payload["userCount"] = count
	}
	if count, err := h.orders.OrderCount(r.Context()); err != nil {
		log.Warn("order count unavailable", zap.Error(err))
	} else {
		payload["orderCount"] = count
	}

	transport.Success(w, payload)
}

// Users walks the registry index by index. The registry has no batch
// read, so a partial walk fails the whole listing rather than returning
// a silently truncated one.
func (h *AdminHandler) Users(w http.ResponseWriter, r *http.Request) {
	count, err := h.registry.UserCount(r.Context())
	if err != nil {
		failFromError(w, err)
		return
	}

	users := make([]chain.UserRecord, 0, count)
	for i := uint64(0); i < count; i++ {
		rec, err := h.registry.UserByIndex(r.Context(), i)
		if err != nil {
			failFromError(w, err)
			return
		}
		users = append(users, rec)
	}

	transport.Success(w, map[string]any{
		"users": users,
		"count": count,
	})
}

type promoteRequest struct {
	Email string `json:"email"`
}

func (h *AdminHandler) Promote(w http.ResponseWriter, r *http.Request) {
	var req promoteRequest
	if err := transport.DecodeJSON(r, &req); err != nil {
		transport.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	acting := middleware.IdentityFrom(r.Context()).Account
	if err := h.authSvc.PromoteAdmin(r.Context(), acting, req.Email); err != nil {
		failFromError(w, err)
		return
	}

	transport.Success(w, map[string]any{
		"message": "User promoted to admin",
	})
}

type sellerConfirmRequest struct {
	OrderID string `json:"orderId"`
	Allowed bool   `json:"allowed"`
}

func (h *AdminHandler) SellerConfirm(w http.ResponseWriter, r *http.Request) {
	var req sellerConfirmRequest
	if err := transport.DecodeJSON(r, &req); err != nil {
		transport.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	acting := middleware.IdentityFrom(r.Context()).Account
	if err := h.orders.SetSellerConfirm(r.Context(), acting, req.OrderID, req.Allowed); err != nil {
		failFromError(w, err)
		return
	}

	transport.Success(w, map[string]any{
		"message": "Seller confirmation updated",
		"orderId": req.OrderID,
		"allowed": req.Allowed,
	})
}
