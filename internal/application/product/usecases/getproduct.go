package usecases

import (
	"context"
	"time"

	"trackd/internal/domain/product"
	"trackd/internal/shared/logger"
)

type GetProductQuery struct {
	Prefix string
}

type ProductResult struct {
	Prefix      string
	Name        string
	Description string
	Owner       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type GetProductUseCase struct {
	productRepo product.Repository
	logger      logger.Interface
}

func NewGetProductUseCase(
	productRepo product.Repository,
	logger logger.Interface,
) *GetProductUseCase {
	return &GetProductUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *GetProductUseCase) Execute(ctx context.Context, query GetProductQuery) (*ProductResult, error) {
	p, err := uc.productRepo.FindByPrefix(ctx, query.Prefix)
	if err != nil {
		return nil, err
	}

	return productToResult(p), nil
}

func productToResult(p *product.Product) *ProductResult {
	return &ProductResult{
		Prefix:      p.Prefix(),
		Name:        p.Name(),
		Description: p.Description(),
		Owner:       p.Owner(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}
