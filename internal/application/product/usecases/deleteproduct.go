package usecases

import (
	"context"

	"trackd/internal/domain/product"
	"trackd/internal/shared/db"
	"trackd/internal/shared/errors"
	"trackd/internal/shared/logger"
)

type DeleteProductCommand struct {
	Prefix string
}

type DeleteProductResult struct {
	Prefix string
}

type DeleteProductUseCase struct {
	productRepo product.Repository
	txManager   *db.TransactionManager
	logger      logger.Interface
}

func NewDeleteProductUseCase(
	productRepo product.Repository,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *DeleteProductUseCase {
	return &DeleteProductUseCase{
		productRepo: productRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute deletes a product. The child check and the delete run in one
// transaction so a ticket created concurrently cannot be orphaned.
func (uc *DeleteProductUseCase) Execute(ctx context.Context, cmd DeleteProductCommand) (*DeleteProductResult, error) {
	uc.logger.Infow("executing delete product use case", "prefix", cmd.Prefix)

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := uc.productRepo.FindByPrefix(txCtx, cmd.Prefix); err != nil {
			return err
		}

		hasChildren, err := uc.productRepo.HasChildren(txCtx, cmd.Prefix)
		if err != nil {
			return err
		}
		if hasChildren {
			return errors.NewProtectedReferenceError("product still has tickets or other scoped resources")
		}

		return uc.productRepo.Delete(txCtx, cmd.Prefix)
	})
	if err != nil {
		uc.logger.Errorw("failed to delete product", "prefix", cmd.Prefix, "error", err)
		return nil, err
	}

	uc.logger.Infow("product deleted successfully", "prefix", cmd.Prefix)

	return &DeleteProductResult{Prefix: cmd.Prefix}, nil
}
