package usecases

import (
	"context"

	"trackd/internal/domain/product"
	"trackd/internal/shared/logger"
)

type ListProductsQuery struct {
	Page     int
	PageSize int
}

type ListProductsResult struct {
	Products []*ProductResult
	Total    int64
}

type ListProductsUseCase struct {
	productRepo product.Repository
	logger      logger.Interface
}

func NewListProductsUseCase(
	productRepo product.Repository,
	logger logger.Interface,
) *ListProductsUseCase {
	return &ListProductsUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *ListProductsUseCase) Execute(ctx context.Context, query ListProductsQuery) (*ListProductsResult, error) {
	products, total, err := uc.productRepo.List(ctx, query.Page, query.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list products", "error", err)
		return nil, err
	}

	results := make([]*ProductResult, 0, len(products))
	for _, p := range products {
		results = append(results, productToResult(p))
	}

	return &ListProductsResult{
		Products: results,
		Total:    total,
	}, nil
}
