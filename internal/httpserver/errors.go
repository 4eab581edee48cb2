package httpserver

import (
	"errors"
	"net/http"

	"legitlah-be/internal/auth"
	"legitlah-be/internal/cart"
	"legitlah-be/internal/chain"
	"legitlah-be/internal/listing"
	"legitlah-be/internal/order"
	"legitlah-be/internal/transport"
)

// failFromError translates service failures into the response taxonomy:
// bad input 400, bad credentials 401, missing resource 404, gateway or
// anything unexpected 500. Internal detail never leaks; gateway messages
// are already client-safe.
func failFromError(w http.ResponseWriter, err error) {
	var gwErr *chain.GatewayError

	switch {
	case errors.Is(err, auth.ErrMissingCredentials),
		errors.Is(err, auth.ErrPasswordMismatch),
		errors.Is(err, auth.ErrInvalidAccountType),
		errors.Is(err, order.ErrMissingCheckoutField),
		errors.Is(err, order.ErrMissingOrderID),
		errors.Is(err, order.ErrMissingTracking),
		errors.Is(err, listing.ErrInvalidCategory),
		errors.Is(err, listing.ErrInvalidProduct),
		errors.Is(err, listing.ErrInvalidPrice):
		transport.Fail(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials):
		transport.Fail(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, cart.ErrCartNotFound):
		transport.Fail(w, http.StatusNotFound, "Cart not found")
	case errors.Is(err, listing.ErrProductNotFound):
		transport.Fail(w, http.StatusNotFound, "Product not found")
	case errors.Is(err, chain.ErrGatewayUnavailable):
		transport.Fail(w, http.StatusInternalServerError, "Contract gateway unavailable")
	case errors.As(err, &gwErr):
		transport.Fail(w, http.StatusInternalServerError, gwErr.Message)
	default:
		transport.Fail(w, http.StatusInternalServerError, "Server error")
	}
}
