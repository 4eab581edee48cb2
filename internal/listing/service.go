package listing

import (
	"context"

	"legitlah-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Browse(ctx context.Context, filter Filter) ([]Product, error)
	Details(ctx context.Context, id int64) (*Product, error)
	Post(ctx context.Context, params CreateProductParams) (*Product, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Browse(ctx context.Context, filter Filter) ([]Product, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Details(ctx context.Context, id int64) (*Product, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) Post(ctx context.Context, params CreateProductParams) (*Product, error) {
	if params.Title == "" || params.ImageURL == "" || params.PostedBy == "" {
		return nil, ErrInvalidProduct
	}
	if !ValidCategory(params.Category) {
		return nil, ErrInvalidCategory
	}
	if params.Price < 0 {
		return nil, ErrInvalidPrice
	}

	p, err := s.repo.Create(ctx, params)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to create listing",
			zap.String("title", params.Title), zap.Error(err))
		return nil, err
	}

	logger.FromCtx(ctx).Info("listing posted",
		zap.Int64("id", p.ID),
		zap.String("category", p.Category),
	)
	return p, nil
}
