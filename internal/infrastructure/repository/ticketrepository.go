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

// allowedReferenceFields whitelists the ticket columns usable in
// CountByReference to prevent SQL injection through the field name.
var allowedReferenceFields = map[string]bool{
	"component":  true,
	"milestone":  true,
	"version":    true,
	"type":       true,
	"resolution": true,
}

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	model.ID = 0
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errs.IsDuplicateError(err) {
			// Lost the race for this sequence number; the caller retries
			// with a fresh allocation.
			return errs.NewConflictError("ticket number already taken")
		}
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	if err := t.SetUID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	// Update via a column map so cleared references and emptied strings are
	// written; Updates with a struct skips zero values.
	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"type":        model.Type,
			"component":   model.Component,
			"milestone":   model.Milestone,
			"version":     model.Version,
			"severity":    model.Severity,
			"priority":    model.Priority,
			"owner":       model.Owner,
			"reporter":    model.Reporter,
			"cc":          model.CC,
			"status":      model.Status,
			"resolution":  model.Resolution,
			"summary":     model.Summary,
			"description": model.Description,
			"keywords":    model.Keywords,
			"changetime":  t.UpdatedAt().UnixMilli(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFoundError("ticket not found")
	}

	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, uid uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.TicketModel{}, uid)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFoundError("ticket not found")
	}

	return nil
}

func (r *TicketRepository) FindByNumber(ctx context.Context, product string, number int) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("product = ? AND product_ticket_id = ?", product, number).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) ListByProduct(ctx context.Context, product string, page, pageSize int) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := tx.
		Model(&models.TicketModel{}).
		Where("product = ?", product).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	var modelList []models.TicketModel
	if err := tx.
		Where("product = ?", product).
		Order("id ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, 0, len(modelList))
	for i := range modelList {
		t, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, 0, err
		}
		tickets = append(tickets, t)
	}

	return tickets, total, nil
}

func (r *TicketRepository) CountByReference(ctx context.Context, product, field, name string) (int64, error) {
	if !allowedReferenceFields[field] {
		return 0, fmt.Errorf("unsupported reference field: %s", field)
	}

	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.
		Model(&models.TicketModel{}).
		Where("product = ?", product).
		Where(fmt.Sprintf("%s = ?", field), name).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count ticket references: %w", err)
	}

	return count, nil
}
