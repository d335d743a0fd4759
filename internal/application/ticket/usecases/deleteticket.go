package usecases

import (
	"context"

	"trackd/internal/domain/product"
	"trackd/internal/domain/ticket"
	"trackd/internal/shared/db"
	"trackd/internal/shared/errors"
	"trackd/internal/shared/logger"
)

type DeleteTicketCommand struct {
	Product string
	Number  int
}

type DeleteTicketResult struct {
	Product string
	Number  int
}

type DeleteTicketUseCase struct {
	ticketRepo  ticket.Repository
	changeRepo  ticket.ChangeRepository
	productRepo product.Repository
	txManager   *db.TransactionManager
	logger      logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.Repository,
	changeRepo ticket.ChangeRepository,
	productRepo product.Repository,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo:  ticketRepo,
		changeRepo:  changeRepo,
		productRepo: productRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute deletes a ticket. A ticket with change history cannot be removed;
// the audit trail would be orphaned. The freed number is never reissued.
func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) (*DeleteTicketResult, error) {
	uc.logger.Infow("executing delete ticket use case", "product", cmd.Product, "number", cmd.Number)

	if _, err := uc.productRepo.FindByPrefix(ctx, cmd.Product); err != nil {
		return nil, err
	}

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		existing, err := uc.ticketRepo.FindByNumber(txCtx, cmd.Product, cmd.Number)
		if err != nil {
			return err
		}

		changeCount, err := uc.changeRepo.CountByTicket(txCtx, existing.UID())
		if err != nil {
			return err
		}
		if changeCount > 0 {
			return errors.NewProtectedReferenceError("ticket has change history and cannot be deleted")
		}

		return uc.ticketRepo.Delete(txCtx, existing.UID())
	})
	if err != nil {
		uc.logger.Errorw("failed to delete ticket", "product", cmd.Product, "number", cmd.Number, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket deleted successfully", "product", cmd.Product, "number", cmd.Number)

	return &DeleteTicketResult{Product: cmd.Product, Number: cmd.Number}, nil
}
