package usecases

import (
	"context"

	"trackd/internal/domain/product"
	"trackd/internal/domain/ticket"
	"trackd/internal/shared/logger"
	"trackd/internal/shared/services/markdown"
)

type RenderTicketQuery struct {
	Product string
	Number  int
}

type RenderTicketResult struct {
	Number int
	HTML   string
}

// RenderTicketUseCase renders a ticket description from markdown to
// sanitized HTML.
type RenderTicketUseCase struct {
	ticketRepo  ticket.Repository
	productRepo product.Repository
	markdownSvc markdown.Service
	logger      logger.Interface
}

func NewRenderTicketUseCase(
	ticketRepo ticket.Repository,
	productRepo product.Repository,
	markdownSvc markdown.Service,
	logger logger.Interface,
) *RenderTicketUseCase {
	return &RenderTicketUseCase{
		ticketRepo:  ticketRepo,
		productRepo: productRepo,
		markdownSvc: markdownSvc,
		logger:      logger,
	}
}

func (uc *RenderTicketUseCase) Execute(ctx context.Context, query RenderTicketQuery) (*RenderTicketResult, error) {
	if _, err := uc.productRepo.FindByPrefix(ctx, query.Product); err != nil {
		return nil, err
	}

	t, err := uc.ticketRepo.FindByNumber(ctx, query.Product, query.Number)
	if err != nil {
		return nil, err
	}

	html, err := uc.markdownSvc.ToHTMLSanitized(t.Attributes().Description)
	if err != nil {
		uc.logger.Errorw("failed to render ticket description",
			"product", query.Product,
			"number", query.Number,
			"error", err)
		return nil, err
	}

	return &RenderTicketResult{
		Number: t.Number(),
		HTML:   html,
	}, nil
}
