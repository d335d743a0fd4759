package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"trackd/internal/domain/product"
	"trackd/internal/infrastructure/persistence/mappers"
	"trackd/internal/infrastructure/persistence/models"
	db "trackd/internal/shared/db"
	errs "trackd/internal/shared/errors"
)

type ProductRepository struct {
	db     *gorm.DB
	mapper mappers.ProductMapper
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{
		db:     db,
		mapper: mappers.NewProductMapper(),
	}
}

func (r *ProductRepository) Save(ctx context.Context, p *product.Product) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errs.IsDuplicateError(err) {
			return errs.NewValidationError("product with this prefix already exists")
		}
		return fmt.Errorf("failed to save product: %w", err)
	}

	return nil
}

func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ProductModel{}).
		Where("prefix = ?", model.Prefix).
		Updates(map[string]interface{}{
			"name":        model.Name,
			"description": model.Description,
			"owner":       model.Owner,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFoundError("product not found")
	}

	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, prefix string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Where("prefix = ?", prefix).Delete(&models.ProductModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFoundError("product not found")
	}

	return nil
}

func (r *ProductRepository) FindByPrefix(ctx context.Context, prefix string) (*product.Product, error) {
	var model models.ProductModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("prefix = ?", prefix).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("product not found")
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ProductRepository) List(ctx context.Context, page, pageSize int) ([]*product.Product, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := tx.Model(&models.ProductModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	var modelList []models.ProductModel
	if err := tx.
		Order("id ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}

	products := make([]*product.Product, 0, len(modelList))
	for i := range modelList {
		p, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}

	return products, total, nil
}

// HasChildren reports whether any product-scoped row still references the
// prefix. Checked before deletion; a product with children cannot be removed.
func (r *ProductRepository) HasChildren(ctx context.Context, prefix string) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	childModels := []interface{}{
		&models.TicketModel{},
		&models.ComponentModel{},
		&models.MilestoneModel{},
		&models.VersionModel{},
		&models.EnumModel{},
		&models.TicketChangeModel{},
	}

	for _, m := range childModels {
		var count int64
		if err := tx.Model(m).Where("product = ?", prefix).Count(&count).Error; err != nil {
			return false, fmt.Errorf("failed to count product children: %w", err)
		}
		if count > 0 {
			return true, nil
		}
	}

	return false, nil
}
