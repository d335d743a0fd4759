package usecases

import "context"

type CreateProductExecutor interface {
	Execute(ctx context.Context, cmd CreateProductCommand) (*CreateProductResult, error)
}

type UpdateProductExecutor interface {
	Execute(ctx context.Context, cmd UpdateProductCommand) (*UpdateProductResult, error)
}

type DeleteProductExecutor interface {
	Execute(ctx context.Context, cmd DeleteProductCommand) (*DeleteProductResult, error)
}

type GetProductExecutor interface {
	Execute(ctx context.Context, query GetProductQuery) (*ProductResult, error)
}

type ListProductsExecutor interface {
	Execute(ctx context.Context, query ListProductsQuery) (*ListProductsResult, error)
}
