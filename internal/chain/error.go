package chain

import (
	"errors"
	"fmt"
)

var (
	// ErrGatewayUnavailable marks transport failures and timeouts, as
	// opposed to the remote node rejecting a call.
	ErrGatewayUnavailable = errors.New("contract gateway unavailable")

	ErrNoSellerContract = errors.New("seller contract not deployed")
)

// GatewayError is a remote rejection: the bridge answered but the call
// failed. The message is safe to pass through to clients.
type GatewayError struct {
	Method  string
	Status  int
	Message string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway call %s failed (%d): %s", e.Method, e.Status, e.Message)
}
