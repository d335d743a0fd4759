package usecases

import (
	"context"

	"trackd/internal/domain/product"
	"trackd/internal/domain/ticket"
	"trackd/internal/shared/logger"
)

type ListChangesQuery struct {
	Product  string
	Page     int
	PageSize int
}

type ChangeResult struct {
	ID           uint
	TicketNumber int
	Time         int64
	Author       string
	Field        string
	OldValue     string
	NewValue     string
	Product      string
}

type ListChangesResult struct {
	Changes []*ChangeResult
	Total   int64
}

// ListChangesUseCase lists the change history across a product, in append
// order.
type ListChangesUseCase struct {
	changeRepo  ticket.ChangeRepository
	productRepo product.Repository
	logger      logger.Interface
}

func NewListChangesUseCase(
	changeRepo ticket.ChangeRepository,
	productRepo product.Repository,
	logger logger.Interface,
) *ListChangesUseCase {
	return &ListChangesUseCase{
		changeRepo:  changeRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *ListChangesUseCase) Execute(ctx context.Context, query ListChangesQuery) (*ListChangesResult, error) {
	if _, err := uc.productRepo.FindByPrefix(ctx, query.Product); err != nil {
		return nil, err
	}

	changes, total, err := uc.changeRepo.ListByProduct(ctx, query.Product, query.Page, query.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list ticket changes", "product", query.Product, "error", err)
		return nil, err
	}

	results := make([]*ChangeResult, 0, len(changes))
	for _, c := range changes {
		results = append(results, changeToResult(c))
	}

	return &ListChangesResult{
		Changes: results,
		Total:   total,
	}, nil
}

func changeToResult(c *ticket.Change) *ChangeResult {
	return &ChangeResult{
		ID:           c.ID,
		TicketNumber: c.TicketNumber,
		Time:         c.Time,
		Author:       c.Author,
		Field:        c.Field,
		OldValue:     c.OldValue,
		NewValue:     c.NewValue,
		Product:      c.Product,
	}
}

type ListTicketChangesQuery struct {
	Product string
	Number  int
}

// ListTicketChangesUseCase lists the change history of a single ticket.
type ListTicketChangesUseCase struct {
	ticketRepo  ticket.Repository
	changeRepo  ticket.ChangeRepository
	productRepo product.Repository
	logger      logger.Interface
}

func NewListTicketChangesUseCase(
	ticketRepo ticket.Repository,
	changeRepo ticket.ChangeRepository,
	productRepo product.Repository,
	logger logger.Interface,
) *ListTicketChangesUseCase {
	return &ListTicketChangesUseCase{
		ticketRepo:  ticketRepo,
		changeRepo:  changeRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *ListTicketChangesUseCase) Execute(ctx context.Context, query ListTicketChangesQuery) (*ListChangesResult, error) {
	if _, err := uc.productRepo.FindByPrefix(ctx, query.Product); err != nil {
		return nil, err
	}

	t, err := uc.ticketRepo.FindByNumber(ctx, query.Product, query.Number)
	if err != nil {
		return nil, err
	}

	changes, err := uc.changeRepo.ListByTicket(ctx, query.Product, t.UID())
	if err != nil {
		uc.logger.Errorw("failed to list changes for ticket",
			"product", query.Product,
			"number", query.Number,
			"error", err)
		return nil, err
	}

	results := make([]*ChangeResult, 0, len(changes))
	for _, c := range changes {
		results = append(results, changeToResult(c))
	}

	return &ListChangesResult{
		Changes: results,
		Total:   int64(len(results)),
	}, nil
}
