package chain

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"legitlah-be/internal/metrics"
)

// CredentialResult is the registry's answer to verifyCredentials. Role
// zero means the credentials did not match any registered user.
type CredentialResult struct {
	IsValid      bool
	Role         int
	IdentityHash []byte
	Account      string
}

// UserRecord is one entry of the on-chain user registry.
type UserRecord struct {
	IdentityHash string `json:"identityHash"`
	Account      string `json:"account"`
	Role         int    `json:"role"`
}

type TrackingEvent struct {
	Status    string `json:"status"`
	Note      string `json:"note,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

type TrackingInfo struct {
	OrderID        string          `json:"orderId"`
	TrackingNumber string          `json:"trackingNumber"`
	Events         []TrackingEvent `json:"events,omitempty"`
}

// Registry wraps the three deployed contracts behind typed methods. The
// seller contract is optional; mirroring without one fails with
// ErrNoSellerContract.
type Registry struct {
	users   Gateway
	orders  Gateway
	sellers Gateway
	stats   *metrics.GatewayStats
}

func NewRegistry(users, orders, sellers Gateway, stats *metrics.GatewayStats) *Registry {
	if stats == nil {
		stats = &metrics.GatewayStats{}
	}
	return &Registry{users: users, orders: orders, sellers: sellers, stats: stats}
}

func (r *Registry) Stats() metrics.Snapshot {
	return r.stats.Snapshot()
}

// ---------------- user registry ----------------

type credentialWire struct {
	IsValid      bool   `json:"isValid"`
	Role         int    `json:"role"`
	IdentityHash string `json:"identityHash"`
	Account      string `json:"account,omitempty"`
}

func (r *Registry) VerifyCredentials(ctx context.Context, emailHash, passwordHash []byte) (CredentialResult, error) {
	raw, err := r.users.Call(ctx, "verifyCredentials", hexArg(emailHash), hexArg(passwordHash))
	if err != nil {
		return CredentialResult{}, err
	}

	var wire credentialWire
	if err := json.Unmarshal(raw, &wire); err != nil {
		return CredentialResult{}, fmt.Errorf("decoding verifyCredentials result: %w", err)
	}

	identity, err := decodeHex(wire.IdentityHash)
	if err != nil {
		return CredentialResult{}, fmt.Errorf("decoding identity hash: %w", err)
	}

	account := wire.Account
	if account == "" && len(identity) > 0 {
		// registries that predate account binding key everything by hash
		account = hexArg(identity)
	}

	return CredentialResult{
		IsValid:      wire.IsValid,
		Role:         wire.Role,
		IdentityHash: identity,
		Account:      account,
	}, nil
}

func (r *Registry) RegisterUser(ctx context.Context, emailHash, passwordHash []byte, role int, opts TxOpts) (*Receipt, error) {
	return r.users.Send(ctx, "registerUserByEmailWithRole",
		[]any{hexArg(emailHash), hexArg(passwordHash), role}, opts)
}

func (r *Registry) SetAdminByEmailHash(ctx context.Context, emailHash []byte, opts TxOpts) (*Receipt, error) {
	return r.users.Send(ctx, "setAdminByEmailHash", []any{hexArg(emailHash)}, opts)
}

func (r *Registry) UserCount(ctx context.Context) (uint64, error) {
	raw, err := r.users.Call(ctx, "getUserCount")
	if err != nil {
		return 0, err
	}
	return decodeUint(raw)
}

func (r *Registry) UserByIndex(ctx context.Context, index uint64) (UserRecord, error) {
	raw, err := r.users.Call(ctx, "getUserByIndex", index)
	if err != nil {
		return UserRecord{}, err
	}
	var rec UserRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return UserRecord{}, fmt.Errorf("decoding getUserByIndex result: %w", err)
	}
	return rec, nil
}

// ---------------- order contract ----------------

func (r *Registry) OrderCount(ctx context.Context) (uint64, error) {
	raw, err := r.orders.Call(ctx, "getOrderCount")
	if err != nil {
		return 0, err
	}
	return decodeUint(raw)
}

func (r *Registry) UpdateTrackingNumber(ctx context.Context, orderID, trackingNumber string, opts TxOpts) (*Receipt, error) {
	return r.orders.Send(ctx, "updateTrackingNumber", []any{orderID, trackingNumber}, opts)
}

func (r *Registry) SetSellerConfirmAllowed(ctx context.Context, orderID string, allowed bool, opts TxOpts) (*Receipt, error) {
	return r.orders.Send(ctx, "setSellerConfirmAllowed", []any{orderID, allowed}, opts)
}

func (r *Registry) TrackingNumber(ctx context.Context, orderID string) (string, error) {
	raw, err := r.orders.Call(ctx, "getTrackingNumber", orderID)
	if err != nil {
		return "", err
	}
	var num string
	if err := json.Unmarshal(raw, &num); err != nil {
		return "", fmt.Errorf("decoding getTrackingNumber result: %w", err)
	}
	return num, nil
}

func (r *Registry) TrackingHistory(ctx context.Context, orderID string) ([]TrackingEvent, error) {
	raw, err := r.orders.Call(ctx, "getTrackingHistory", orderID)
	if err != nil {
		return nil, err
	}
	var events []TrackingEvent
	if err := json.Unmarshal(raw, &events); err != nil {
		return nil, fmt.Errorf("decoding getTrackingHistory result: %w", err)
	}
	return events, nil
}

func (r *Registry) FullTrackingInfo(ctx context.Context, orderID string) (*TrackingInfo, error) {
	raw, err := r.orders.Call(ctx, "getFullTrackingInfo", orderID)
	if err != nil {
		return nil, err
	}
	var info TrackingInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, fmt.Errorf("decoding getFullTrackingInfo result: %w", err)
	}
	if info.OrderID == "" {
		info.OrderID = orderID
	}
	return &info, nil
}

// ---------------- seller contract ----------------

// MirrorTrackingNumber writes the tracking number to the secondary seller
// contract. Callers treat this as best-effort.
func (r *Registry) MirrorTrackingNumber(ctx context.Context, orderID, trackingNumber string, opts TxOpts) (*Receipt, error) {
	if r.sellers == nil {
		return nil, ErrNoSellerContract
	}
	return r.sellers.Send(ctx, "updateTrackingNumber", []any{orderID, trackingNumber}, opts)
}

// ---------------- helpers ----------------

func hexArg(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

func decodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	if s == "" {
		return nil, nil
	}
	return hex.DecodeString(s)
}

// decodeUint accepts both JSON numbers and the string encoding bridges
// use for uint256 values.
func decodeUint(raw json.RawMessage) (uint64, error) {
	var n uint64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strconv.ParseUint(s, 10, 64)
	}
	return 0, fmt.Errorf("unexpected numeric encoding: %s", string(raw))
}
