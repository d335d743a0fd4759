package usecases

import (
	"context"
	"time"

	"trackd/internal/domain/product"
	"trackd/internal/domain/resource"
	"trackd/internal/domain/ticket"
	"trackd/internal/shared/db"
	"trackd/internal/shared/errors"
	"trackd/internal/shared/logger"
)

// maxAllocationAttempts bounds the retry loop around sequence allocation.
// The unique (product, product_ticket_id) index rejects a lost race; each
// retry re-allocates inside a fresh transaction.
const maxAllocationAttempts = 3

type CreateTicketCommand struct {
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
}

type CreateTicketResult struct {
	UID       uint
	Number    int
	Product   string
	Summary   string
	CreatedAt time.Time
}

type CreateTicketUseCase struct {
	ticketRepo  ticket.Repository
	productRepo product.Repository
	allocator   ticket.SequenceAllocator
	refs        *referenceValidator
	txManager   *db.TransactionManager
	logger      logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	productRepo product.Repository,
	allocator ticket.SequenceAllocator,
	componentRepo resource.Repository[*resource.Component],
	milestoneRepo resource.Repository[*resource.Milestone],
	versionRepo resource.Repository[*resource.Version],
	enumRepo resource.EnumRepository,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:  ticketRepo,
		productRepo: productRepo,
		allocator:   allocator,
		refs:        newReferenceValidator(componentRepo, milestoneRepo, versionRepo, enumRepo),
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "product", cmd.Product, "summary", cmd.Summary)

	if _, err := uc.productRepo.FindByPrefix(ctx, cmd.Product); err != nil {
		return nil, err
	}

	attrs := commandAttributes(cmd)
	if err := uc.refs.Validate(ctx, cmd.Product, attrs); err != nil {
		return nil, err
	}

	newTicket, err := ticket.NewTicket(cmd.Product, attrs)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	var lastErr error
	for attempt := 1; attempt <= maxAllocationAttempts; attempt++ {
		lastErr = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
			number, err := uc.allocator.Next(txCtx, cmd.Product)
			if err != nil {
				return err
			}
			if err := newTicket.SetNumber(number); err != nil {
				return err
			}
			return uc.ticketRepo.Save(txCtx, newTicket)
		})
		if lastErr == nil {
			break
		}

		newTicket.ClearNumber()
		if !errors.IsConflictError(lastErr) {
			return nil, lastErr
		}
		uc.logger.Warnw("ticket number allocation conflict, retrying",
			"product", cmd.Product,
			"attempt", attempt)
	}
	if lastErr != nil {
		uc.logger.Errorw("failed to save ticket after retries", "product", cmd.Product, "error", lastErr)
		// Persistent allocation conflicts indicate a store problem,
		// not bad input, so the caller sees a server error.
		return nil, errors.NewInternalError("failed to allocate ticket number", lastErr.Error())
	}

	uc.logger.Infow("ticket created successfully",
		"product", newTicket.Product(),
		"number", newTicket.Number())

	return &CreateTicketResult{
		UID:       newTicket.UID(),
		Number:    newTicket.Number(),
		Product:   newTicket.Product(),
		Summary:   newTicket.Summary(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}

func commandAttributes(cmd CreateTicketCommand) ticket.Attributes {
	return ticket.Attributes{
		Summary:     cmd.Summary,
		Description: cmd.Description,
		Status:      cmd.Status,
		Severity:    cmd.Severity,
		Priority:    cmd.Priority,
		Owner:       cmd.Owner,
		Reporter:    cmd.Reporter,
		CC:          cmd.CC,
		Keywords:    cmd.Keywords,
		Type:        cmd.Type,
		Resolution:  cmd.Resolution,
		Component:   cmd.Component,
		Milestone:   cmd.Milestone,
		Version:     cmd.Version,
	}
}
