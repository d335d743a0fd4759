package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"trackd/internal/domain/ticket"
	"trackd/internal/infrastructure/persistence/mappers"
	"trackd/internal/infrastructure/persistence/models"
	db "trackd/internal/shared/db"
	errs "trackd/internal/shared/errors"
)

type TicketChangeRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketChangeRepository(db *gorm.DB) *TicketChangeRepository {
	return &TicketChangeRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketChangeRepository) Append(ctx context.Context, c *ticket.Change) error {
	model := r.mapper.ChangeToModel(c)
	model.ID = 0
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errs.IsDuplicateError(err) {
			return errs.NewConflictError("change record already exists for this ticket, time and field")
		}
		return fmt.Errorf("failed to append ticket change: %w", err)
	}

	c.ID = model.ID
	return nil
}

func (r *TicketChangeRepository) ListByProduct(ctx context.Context, product string, page, pageSize int) ([]*ticket.Change, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := tx.
		Model(&models.TicketChangeModel{}).
		Where("product = ?", product).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count ticket changes: %w", err)
	}

	var modelList []models.TicketChangeModel
	if err := tx.
		Where("product = ?", product).
		Order("id ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list ticket changes: %w", err)
	}

	changes := make([]*ticket.Change, 0, len(modelList))
	for i := range modelList {
		changes = append(changes, r.mapper.ChangeToDomain(&modelList[i]))
	}

	return changes, total, nil
}

func (r *TicketChangeRepository) ListByTicket(ctx context.Context, product string, ticketUID uint) ([]*ticket.Change, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var modelList []models.TicketChangeModel
	if err := tx.
		Where("product = ? AND ticket_id = ?", product, ticketUID).
		Order("id ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list ticket changes: %w", err)
	}

	changes := make([]*ticket.Change, 0, len(modelList))
	for i := range modelList {
		changes = append(changes, r.mapper.ChangeToDomain(&modelList[i]))
	}

	return changes, nil
}

func (r *TicketChangeRepository) FindByTime(ctx context.Context, product string, timeMillis int64) (*ticket.Change, error) {
	var model models.TicketChangeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("product = ? AND time = ?", product, timeMillis).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("ticket change not found")
		}
		return nil, fmt.Errorf("failed to find ticket change: %w", err)
	}

	return r.mapper.ChangeToDomain(&model), nil
}

func (r *TicketChangeRepository) CountByTicket(ctx context.Context, ticketUID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.
		Model(&models.TicketChangeModel{}).
		Where("ticket_id = ?", ticketUID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count ticket changes: %w", err)
	}

	return count, nil
}
