package order

import (
	"context"
	"time"

	"legitlah-be/internal/cart"
	"legitlah-be/internal/chain"
	"legitlah-be/internal/logger"

	"go.uber.org/zap"
)

// ContractRegistry is the slice of the contract gateway the order flow
// needs. chain.Registry satisfies it.
type ContractRegistry interface {
	OrderCount(ctx context.Context) (uint64, error)
	UpdateTrackingNumber(ctx context.Context, orderID, trackingNumber string, opts chain.TxOpts) (*chain.Receipt, error)
	MirrorTrackingNumber(ctx context.Context, orderID, trackingNumber string, opts chain.TxOpts) (*chain.Receipt, error)
	TrackingNumber(ctx context.Context, orderID string) (string, error)
	TrackingHistory(ctx context.Context, orderID string) ([]chain.TrackingEvent, error)
	FullTrackingInfo(ctx context.Context, orderID string) (*chain.TrackingInfo, error)
	SetSellerConfirmAllowed(ctx context.Context, orderID string, allowed bool, opts chain.TxOpts) (*chain.Receipt, error)
}

type Service struct {
	carts         *cart.Store
	registry      ContractRegistry
	mirrorTimeout time.Duration
}

func NewService(carts *cart.Store, registry ContractRegistry, mirrorTimeout time.Duration) *Service {
	if mirrorTimeout <= 0 {
		mirrorTimeout = 15 * time.Second
	}
	return &Service{carts: carts, registry: registry, mirrorTimeout: mirrorTimeout}
}

type CheckoutInput struct {
	Account string
	Name    string
	Email   string
	Address string
}

// Checkout snapshots the account's cart into a summary and clears the
// cart. Payment itself happens on-chain from the client; the server only
// settles the cart state.
func (s *Service) Checkout(ctx context.Context, in CheckoutInput) (*Summary, error) {
	if in.Name == "" || in.Email == "" || in.Address == "" {
		return nil, ErrMissingCheckoutField
	}

	items := s.carts.Items(in.Account)
	total := s.carts.Total(in.Account)
	s.carts.Clear(in.Account)

	logger.FromCtx(ctx).Info("checkout completed",
		zap.String("account", in.Account),
		zap.Int("items", len(items)),
		zap.Float64("total", total),
	)

	return &Summary{
		Account:   in.Account,
		Name:      in.Name,
		Email:     in.Email,
		Address:   in.Address,
		Items:     items,
		Total:     total,
		Timestamp: time.Now(),
	}, nil
}

// Ship records the tracking number on the order contract, then mirrors it
// to the seller contract without blocking the response. Mirror failures
// are logged and swallowed.
func (s *Service) Ship(ctx context.Context, actingAs, orderID, trackingNumber string) error {
	if orderID == "" {
		return ErrMissingOrderID
	}
	if trackingNumber == "" {
		return ErrMissingTracking
	}

	opts := chain.TxOpts{From: actingAs}
	if _, err := s.registry.UpdateTrackingNumber(ctx, orderID, trackingNumber, opts); err != nil {
		return err
	}

	log := logger.FromCtx(ctx).With(
		zap.String("order_id", orderID),
		zap.String("tracking", trackingNumber),
	)
	log.Info("order shipped")

	go func() {
		mirrorCtx, cancel := context.WithTimeout(context.Background(), s.mirrorTimeout)
		defer cancel()
		if _, err := s.registry.MirrorTrackingNumber(mirrorCtx, orderID, trackingNumber, opts); err != nil {
			log.Warn("tracking mirror failed", zap.Error(err))
		}
	}()

	return nil
}

// Accept opens the order for seller confirmation.
func (s *Service) Accept(ctx context.Context, actingAs, orderID string) error {
	return s.SetSellerConfirm(ctx, actingAs, orderID, true)
}

// SetSellerConfirm toggles whether the seller may confirm the order.
func (s *Service) SetSellerConfirm(ctx context.Context, actingAs, orderID string, allowed bool) error {
	if orderID == "" {
		return ErrMissingOrderID
	}
	_, err := s.registry.SetSellerConfirmAllowed(ctx, orderID, allowed, chain.TxOpts{From: actingAs})
	if err != nil {
		return err
	}
	logger.FromCtx(ctx).Info("seller confirm updated",
		zap.String("order_id", orderID), zap.Bool("allowed", allowed))
	return nil
}

// Tracking fetches the combined tracking view, falling back to the
// individual number and history calls when the combined one fails. A
// missing history is tolerated; the number alone still answers.
func (s *Service) Tracking(ctx context.Context, orderID string) (*chain.TrackingInfo, error) {
	if orderID == "" {
		return nil, ErrMissingOrderID
	}

	log := logger.FromCtx(ctx).With(zap.String("order_id", orderID))

	info, err := s.registry.FullTrackingInfo(ctx, orderID)
	if err == nil {
		return info, nil
	}
	log.Warn("full tracking info unavailable, falling back", zap.Error(err))

	number, err := s.registry.TrackingNumber(ctx, orderID)
	if err != nil {
		return nil, err
	}

	events, err := s.registry.TrackingHistory(ctx, orderID)
	if err != nil {
		log.Warn("tracking history unavailable", zap.Error(err))
		events = nil
	}

	return &chain.TrackingInfo{
		OrderID:        orderID,
		TrackingNumber: number,
		Events:         events,
	}, nil
}

func (s *Service) OrderCount(ctx context.Context) (uint64, error) {
	return s.registry.OrderCount(ctx)
}
