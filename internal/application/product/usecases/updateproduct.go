package usecases

import (
	"context"
	"time"

	"trackd/internal/domain/product"
	"trackd/internal/shared/errors"
	"trackd/internal/shared/logger"
)

type UpdateProductCommand struct {
	Prefix      string
	Name        string
	Description string
	Owner       string
}

type UpdateProductResult struct {
	Prefix    string
	Name      string
	UpdatedAt time.Time
}

type UpdateProductUseCase struct {
	productRepo product.Repository
	logger      logger.Interface
}

func NewUpdateProductUseCase(
	productRepo product.Repository,
	logger logger.Interface,
) *UpdateProductUseCase {
	return &UpdateProductUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *UpdateProductUseCase) Execute(ctx context.Context, cmd UpdateProductCommand) (*UpdateProductResult, error) {
	uc.logger.Infow("executing update product use case", "prefix", cmd.Prefix)

	existing, err := uc.productRepo.FindByPrefix(ctx, cmd.Prefix)
	if err != nil {
		return nil, err
	}

	if err := existing.Update(cmd.Name, cmd.Description, cmd.Owner); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.productRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update product", "error", err)
		return nil, err
	}

	uc.logger.Infow("product updated successfully", "prefix", existing.Prefix())

	return &UpdateProductResult{
		Prefix:    existing.Prefix(),
		Name:      existing.Name(),
		UpdatedAt: existing.UpdatedAt(),
	}, nil
}
