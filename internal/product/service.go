package product

import (
	"context"
	"strings"

	"threadline-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id uint) (*Product, error)
	Create(ctx context.Context, params CreateProductParams) (*Product, error)
	CreateBatch(ctx context.Context, batch []CreateProductParams) ([]Product, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]Product, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) Get(ctx context.Context, id uint) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func normalize(params *CreateProductParams) error {
	params.Name = strings.TrimSpace(params.Name)
	if params.Name == "" || params.Price <= 0 {
		return ErrInvalidInput
	}
	if params.Size == "" {
		params.Size = "F"
	}
	return nil
}

func (s *service) Create(ctx context.Context, params CreateProductParams) (*Product, error) {
	if err := normalize(&params); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, params)
}

func (s *service) CreateBatch(ctx context.Context, batch []CreateProductParams) ([]Product, error) {
	log := logger.FromCtx(ctx)

	if len(batch) == 0 {
		return nil, ErrInvalidInput
	}
	for i := range batch {
		if err := normalize(&batch[i]); err != nil {
			return nil, err
		}
	}

	created, err := s.repo.CreateBatch(ctx, batch)
	if err != nil {
		log.Error("failed to batch insert products", zap.Int("count", len(batch)), zap.Error(err))
		return nil, err
	}

	log.Info("batch insert completed", zap.Int("count", len(created)))
	return created, nil
}
