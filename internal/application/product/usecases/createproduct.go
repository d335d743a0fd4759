package usecases

import (
	"context"
	"time"

	"trackd/internal/domain/product"
	"trackd/internal/shared/errors"
	"trackd/internal/shared/logger"
)

type CreateProductCommand struct {
	Prefix      string
	Name        string
	Description string
	Owner       string
}

type CreateProductResult struct {
	Prefix    string
	Name      string
	CreatedAt time.Time
}

type CreateProductUseCase struct {
	productRepo product.Repository
	logger      logger.Interface
}

func NewCreateProductUseCase(
	productRepo product.Repository,
	logger logger.Interface,
) *CreateProductUseCase {
	return &CreateProductUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *CreateProductUseCase) Execute(ctx context.Context, cmd CreateProductCommand) (*CreateProductResult, error) {
	uc.logger.Infow("executing create product use case", "prefix", cmd.Prefix)

	newProduct, err := product.NewProduct(cmd.Prefix, cmd.Name, cmd.Description, cmd.Owner)
	if err != nil {
		uc.logger.Errorw("failed to create product entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.productRepo.Save(ctx, newProduct); err != nil {
		uc.logger.Errorw("failed to save product", "error", err)
		return nil, err
	}

	uc.logger.Infow("product created successfully", "prefix", newProduct.Prefix())

	return &CreateProductResult{
		Prefix:    newProduct.Prefix(),
		Name:      newProduct.Name(),
		CreatedAt: newProduct.CreatedAt(),
	}, nil
}
