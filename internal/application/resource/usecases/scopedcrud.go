package usecases

import (
	"context"
	"fmt"

	"trackd/internal/domain/product"
	"trackd/internal/domain/resource"
	"trackd/internal/shared/db"
	"trackd/internal/shared/errors"
	"trackd/internal/shared/logger"
)

// ScopedCRUDExecutor is the operation set shared by the product-scoped
// child entities.
type ScopedCRUDExecutor[T resource.Entity] interface {
	Create(ctx context.Context, entity T) error
	Update(ctx context.Context, entity T) error
	Delete(ctx context.Context, productPrefix, name string) error
	Get(ctx context.Context, productPrefix, name string) (T, error)
	List(ctx context.Context, productPrefix string) ([]T, error)
}

// ScopedCRUD implements create, read, update and protected delete for one
// product-scoped entity type. Deletion is refused while any ticket in the
// product still references the entity through refField.
type ScopedCRUD[T resource.Entity] struct {
	repo        resource.Repository[T]
	productRepo product.Repository
	refCounter  resource.ReferenceCounter
	refField    string
	kind        string
	txManager   *db.TransactionManager
	logger      logger.Interface
}

func NewScopedCRUD[T resource.Entity](
	repo resource.Repository[T],
	productRepo product.Repository,
	refCounter resource.ReferenceCounter,
	refField string,
	kind string,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *ScopedCRUD[T] {
	return &ScopedCRUD[T]{
		repo:        repo,
		productRepo: productRepo,
		refCounter:  refCounter,
		refField:    refField,
		kind:        kind,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *ScopedCRUD[T]) Create(ctx context.Context, entity T) error {
	uc.logger.Infow("creating scoped resource",
		"kind", uc.kind,
		"product", entity.ProductPrefix(),
		"name", entity.NaturalKey())

	if _, err := uc.productRepo.FindByPrefix(ctx, entity.ProductPrefix()); err != nil {
		return err
	}

	if err := entity.Validate(); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.repo.Save(ctx, entity); err != nil {
		uc.logger.Errorw("failed to create scoped resource", "kind", uc.kind, "error", err)
		return err
	}

	return nil
}

func (uc *ScopedCRUD[T]) Update(ctx context.Context, entity T) error {
	uc.logger.Infow("updating scoped resource",
		"kind", uc.kind,
		"product", entity.ProductPrefix(),
		"name", entity.NaturalKey())

	if _, err := uc.productRepo.FindByPrefix(ctx, entity.ProductPrefix()); err != nil {
		return err
	}

	if err := entity.Validate(); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.repo.Update(ctx, entity); err != nil {
		uc.logger.Errorw("failed to update scoped resource", "kind", uc.kind, "error", err)
		return err
	}

	return nil
}

// Delete removes the entity unless a ticket still references it. The check
// and the delete share a transaction so a reference created concurrently is
// not left dangling.
func (uc *ScopedCRUD[T]) Delete(ctx context.Context, productPrefix, name string) error {
	uc.logger.Infow("deleting scoped resource",
		"kind", uc.kind,
		"product", productPrefix,
		"name", name)

	if _, err := uc.productRepo.FindByPrefix(ctx, productPrefix); err != nil {
		return err
	}

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		count, err := uc.refCounter.CountByReference(txCtx, productPrefix, uc.refField, name)
		if err != nil {
			return err
		}
		if count > 0 {
			return errors.NewProtectedReferenceError(
				fmt.Sprintf("%s is still referenced by %d ticket(s)", uc.kind, count))
		}

		return uc.repo.Delete(txCtx, productPrefix, name)
	})
	if err != nil {
		uc.logger.Errorw("failed to delete scoped resource", "kind", uc.kind, "error", err)
		return err
	}

	return nil
}

func (uc *ScopedCRUD[T]) Get(ctx context.Context, productPrefix, name string) (T, error) {
	var zero T
	if _, err := uc.productRepo.FindByPrefix(ctx, productPrefix); err != nil {
		return zero, err
	}

	return uc.repo.FindByName(ctx, productPrefix, name)
}

func (uc *ScopedCRUD[T]) List(ctx context.Context, productPrefix string) ([]T, error) {
	if _, err := uc.productRepo.FindByPrefix(ctx, productPrefix); err != nil {
		return nil, err
	}

	return uc.repo.ListByProduct(ctx, productPrefix)
}
