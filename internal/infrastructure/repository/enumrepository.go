package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"trackd/internal/domain/resource"
	"trackd/internal/infrastructure/persistence/mappers"
	"trackd/internal/infrastructure/persistence/models"
	db "trackd/internal/shared/db"
	errs "trackd/internal/shared/errors"
)

// EnumRepository persists per-product enumeration rows, keyed by
// (type, name) within the product.
type EnumRepository struct {
	db     *gorm.DB
	mapper mappers.ResourceMapper
}

func NewEnumRepository(db *gorm.DB) *EnumRepository {
	return &EnumRepository{
		db:     db,
		mapper: mappers.NewResourceMapper(),
	}
}

func (r *EnumRepository) Save(ctx context.Context, enum *resource.Enum) error {
	model := r.mapper.EnumToModel(enum)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errs.IsDuplicateError(err) {
			return errs.NewValidationError("enum with this type and name already exists in the product")
		}
		return fmt.Errorf("failed to save enum: %w", err)
	}

	enum.ID = model.ID
	return nil
}

func (r *EnumRepository) Update(ctx context.Context, enum *resource.Enum) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.EnumModel{}).
		Where("product = ? AND type = ? AND name = ?", enum.Product, enum.Type, enum.Name).
		Update("value", enum.Value)

	if result.Error != nil {
		return fmt.Errorf("failed to update enum: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFoundError("enum not found")
	}

	return nil
}

func (r *EnumRepository) Delete(ctx context.Context, product, enumType, name string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Where("product = ? AND type = ? AND name = ?", product, enumType, name).
		Delete(&models.EnumModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete enum: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFoundError("enum not found")
	}

	return nil
}

func (r *EnumRepository) FindByTypeAndName(ctx context.Context, product, enumType, name string) (*resource.Enum, error) {
	var model models.EnumModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("product = ? AND type = ? AND name = ?", product, enumType, name).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("enum not found")
		}
		return nil, fmt.Errorf("failed to find enum: %w", err)
	}

	return r.mapper.EnumToDomain(&model), nil
}

func (r *EnumRepository) ListByProduct(ctx context.Context, product string) ([]*resource.Enum, error) {
	return r.list(ctx, "product = ?", product)
}

func (r *EnumRepository) ListByType(ctx context.Context, product, enumType string) ([]*resource.Enum, error) {
	return r.list(ctx, "product = ? AND type = ?", product, enumType)
}

func (r *EnumRepository) list(ctx context.Context, query string, args ...interface{}) ([]*resource.Enum, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var modelList []models.EnumModel
	if err := tx.
		Where(query, args...).
		Order("id ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list enums: %w", err)
	}

	enums := make([]*resource.Enum, 0, len(modelList))
	for i := range modelList {
		enums = append(enums, r.mapper.EnumToDomain(&modelList[i]))
	}

	return enums, nil
}
