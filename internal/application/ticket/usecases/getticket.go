package usecases

import (
	"context"
	"time"

	"trackd/internal/domain/product"
	"trackd/internal/domain/ticket"
	"trackd/internal/shared/logger"
)

type GetTicketQuery struct {
	Product string
	Number  int
}

type TicketResult struct {
	UID         uint
	Number      int
	Product     string
	Summary     string
	Description string
	Status      string
	Severity    string
	Priority    string
	Owner       string
	Reporter    string
	CC          string
	Keywords    []string
	Type        *string
	Resolution  *string
	Component   *string
	Milestone   *string
	Version     *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type GetTicketUseCase struct {
	ticketRepo  ticket.Repository
	productRepo product.Repository
	logger      logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.Repository,
	productRepo product.Repository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:  ticketRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*TicketResult, error) {
	if _, err := uc.productRepo.FindByPrefix(ctx, query.Product); err != nil {
		return nil, err
	}

	t, err := uc.ticketRepo.FindByNumber(ctx, query.Product, query.Number)
	if err != nil {
		return nil, err
	}

	return ticketToResult(t), nil
}

func ticketToResult(t *ticket.Ticket) *TicketResult {
	attrs := t.Attributes()
	return &TicketResult{
		UID:         t.UID(),
		Number:      t.Number(),
		Product:     t.Product(),
		Summary:     attrs.Summary,
		Description: attrs.Description,
		Status:      attrs.Status,
		Severity:    attrs.Severity,
		Priority:    attrs.Priority,
		Owner:       attrs.Owner,
		Reporter:    attrs.Reporter,
		CC:          attrs.CC,
		Keywords:    attrs.Keywords,
		Type:        attrs.Type,
		Resolution:  attrs.Resolution,
		Component:   attrs.Component,
		Milestone:   attrs.Milestone,
		Version:     attrs.Version,
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}
