package usecases

import (
	"context"

	"trackd/internal/domain/product"
	"trackd/internal/domain/ticket"
	"trackd/internal/shared/logger"
)

type ListTicketsQuery struct {
	Product  string
	Page     int
	PageSize int
}

type ListTicketsResult struct {
	Tickets []*TicketResult
	Total   int64
}

type ListTicketsUseCase struct {
	ticketRepo  ticket.Repository
	productRepo product.Repository
	logger      logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.Repository,
	productRepo product.Repository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo:  ticketRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	if _, err := uc.productRepo.FindByPrefix(ctx, query.Product); err != nil {
		return nil, err
	}

	tickets, total, err := uc.ticketRepo.ListByProduct(ctx, query.Product, query.Page, query.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "product", query.Product, "error", err)
		return nil, err
	}

	results := make([]*TicketResult, 0, len(tickets))
	for _, t := range tickets {
		results = append(results, ticketToResult(t))
	}

	return &ListTicketsResult{
		Tickets: results,
		Total:   total,
	}, nil
}
