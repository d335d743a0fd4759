package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"trackd/internal/infrastructure/persistence/models"
	db "trackd/internal/shared/db"
	errs "trackd/internal/shared/errors"
)

// TicketSequenceRepository allocates per-product ticket numbers from a
// durable counter row. The row stores the last issued number and is only
// ever incremented, so numbers are never reissued even after the ticket
// holding the current maximum is deleted.
type TicketSequenceRepository struct {
	db *gorm.DB
}

func NewTicketSequenceRepository(db *gorm.DB) *TicketSequenceRepository {
	return &TicketSequenceRepository{db: db}
}

// Next issues the next number for the product. It must run inside the same
// transaction as the ticket insert: the counter row is locked for the rest
// of the transaction, serializing concurrent allocations per product, and a
// rollback discards the increment together with the ticket.
func (r *TicketSequenceRepository) Next(ctx context.Context, product string) (int, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx
	// sqlite has no row locks; its single writer plus the guarded update
	// below give the same serialization.
	if tx.Dialector.Name() == "mysql" {
		query = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var seq models.TicketSequenceModel
	err := query.
		Where("product = ?", product).
		First(&seq).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.seed(ctx, tx, product)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to lock ticket sequence: %w", err)
	}

	next := seq.Value + 1
	result := tx.
		Model(&models.TicketSequenceModel{}).
		Where("product = ? AND value = ?", product, seq.Value).
		Update("value", next)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to advance ticket sequence: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		// Another transaction advanced the counter between our read and
		// write. The unique ticket index would catch this too; surface it
		// as a retryable conflict.
		return 0, errs.NewConflictError("ticket sequence advanced concurrently")
	}

	return next, nil
}

// seed creates the counter row for a product that has never allocated
// through it, starting from the highest existing ticket number so that
// pre-existing rows keep their numbers.
func (r *TicketSequenceRepository) seed(ctx context.Context, tx *gorm.DB, product string) (int, error) {
	var maxNumber int
	if err := tx.
		Model(&models.TicketModel{}).
		Where("product = ?", product).
		Select("COALESCE(MAX(product_ticket_id), 0)").
		Scan(&maxNumber).Error; err != nil {
		return 0, fmt.Errorf("failed to read max ticket number: %w", err)
	}

	next := maxNumber + 1
	seq := models.TicketSequenceModel{Product: product, Value: next}
	if err := tx.Create(&seq).Error; err != nil {
		if errs.IsDuplicateError(err) {
			return 0, errs.NewConflictError("ticket sequence seeded concurrently")
		}
		return 0, fmt.Errorf("failed to seed ticket sequence: %w", err)
	}

	return next, nil
}
