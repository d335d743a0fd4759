package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"trackd/internal/domain/resource"
	"trackd/internal/infrastructure/persistence/mappers"
	db "trackd/internal/shared/db"
	errs "trackd/internal/shared/errors"
)

// ScopedRepository is the shared persistence implementation for the
// product-scoped child entities. The entity type is bound through a pair of
// mapper functions; every query filters by product so that names are only
// unique within their owning product.
type ScopedRepository[T resource.Entity, M any] struct {
	db       *gorm.DB
	kind     string
	toModel  func(T) *M
	toDomain func(*M) T
}

func NewScopedRepository[T resource.Entity, M any](
	gdb *gorm.DB,
	kind string,
	toModel func(T) *M,
	toDomain func(*M) T,
) *ScopedRepository[T, M] {
	return &ScopedRepository[T, M]{
		db:       gdb,
		kind:     kind,
		toModel:  toModel,
		toDomain: toDomain,
	}
}

func (r *ScopedRepository[T, M]) Save(ctx context.Context, entity T) error {
	model := r.toModel(entity)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errs.IsDuplicateError(err) {
			return errs.NewValidationError(
				fmt.Sprintf("%s with this name already exists in the product", r.kind))
		}
		return fmt.Errorf("failed to save %s: %w", r.kind, err)
	}

	return nil
}

func (r *ScopedRepository[T, M]) Update(ctx context.Context, entity T) error {
	model := r.toModel(entity)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(new(M)).
		Where("product = ? AND name = ?", entity.ProductPrefix(), entity.NaturalKey()).
		Select("*").
		Omit("id", "created_at", "product", "name").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update %s: %w", r.kind, result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFoundError(fmt.Sprintf("%s not found", r.kind))
	}

	return nil
}

func (r *ScopedRepository[T, M]) Delete(ctx context.Context, product, name string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Where("product = ? AND name = ?", product, name).
		Delete(new(M))
	if result.Error != nil {
		return fmt.Errorf("failed to delete %s: %w", r.kind, result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFoundError(fmt.Sprintf("%s not found", r.kind))
	}

	return nil
}

func (r *ScopedRepository[T, M]) FindByName(ctx context.Context, product, name string) (T, error) {
	var zero T
	var model M
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("product = ? AND name = ?", product, name).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, errs.NewNotFoundError(fmt.Sprintf("%s not found", r.kind))
		}
		return zero, fmt.Errorf("failed to find %s: %w", r.kind, err)
	}

	return r.toDomain(&model), nil
}

func (r *ScopedRepository[T, M]) ListByProduct(ctx context.Context, product string) ([]T, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var modelList []M
	if err := tx.
		Where("product = ?", product).
		Order("id ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list %ss: %w", r.kind, err)
	}

	entities := make([]T, 0, len(modelList))
	for i := range modelList {
		entities = append(entities, r.toDomain(&modelList[i]))
	}

	return entities, nil
}

// Concrete constructors bind the generic store to each entity type.

func NewComponentRepository(gdb *gorm.DB) resource.Repository[*resource.Component] {
	m := mappers.NewResourceMapper()
	return NewScopedRepository(gdb, "component", m.ComponentToModel, m.ComponentToDomain)
}

func NewMilestoneRepository(gdb *gorm.DB) resource.Repository[*resource.Milestone] {
	m := mappers.NewResourceMapper()
	return NewScopedRepository(gdb, "milestone", m.MilestoneToModel, m.MilestoneToDomain)
}

func NewVersionRepository(gdb *gorm.DB) resource.Repository[*resource.Version] {
	m := mappers.NewResourceMapper()
	return NewScopedRepository(gdb, "version", m.VersionToModel, m.VersionToDomain)
}
