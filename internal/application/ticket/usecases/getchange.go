package usecases

import (
	"context"

	"trackd/internal/domain/product"
	"trackd/internal/domain/ticket"
	"trackd/internal/shared/logger"
)

type GetChangeQuery struct {
	Product string
	Time    int64
}

// GetChangeUseCase looks up a single change entry by its timestamp, the
// natural key change history is addressed by.
type GetChangeUseCase struct {
	changeRepo  ticket.ChangeRepository
	productRepo product.Repository
	logger      logger.Interface
}

func NewGetChangeUseCase(
	changeRepo ticket.ChangeRepository,
	productRepo product.Repository,
	logger logger.Interface,
) *GetChangeUseCase {
	return &GetChangeUseCase{
		changeRepo:  changeRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *GetChangeUseCase) Execute(ctx context.Context, query GetChangeQuery) (*ChangeResult, error) {
	if _, err := uc.productRepo.FindByPrefix(ctx, query.Product); err != nil {
		return nil, err
	}

	change, err := uc.changeRepo.FindByTime(ctx, query.Product, query.Time)
	if err != nil {
		return nil, err
	}

	return changeToResult(change), nil
}
