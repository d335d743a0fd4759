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

type UpdateTicketCommand struct {
	Product     string
	Number      int
	Author      string
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

type UpdateTicketResult struct {
	UID       uint
	Number    int
	Product   string
	Changed   []string
	UpdatedAt time.Time
}

type UpdateTicketUseCase struct {
	ticketRepo  ticket.Repository
	changeRepo  ticket.ChangeRepository
	productRepo product.Repository
	refs        *referenceValidator
	txManager   *db.TransactionManager
	logger      logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.Repository,
	changeRepo ticket.ChangeRepository,
	productRepo product.Repository,
	componentRepo resource.Repository[*resource.Component],
	milestoneRepo resource.Repository[*resource.Milestone],
	versionRepo resource.Repository[*resource.Version],
	enumRepo resource.EnumRepository,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo:  ticketRepo,
		changeRepo:  changeRepo,
		productRepo: productRepo,
		refs:        newReferenceValidator(componentRepo, milestoneRepo, versionRepo, enumRepo),
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute replaces the ticket's attributes and appends one change record per
// field that actually changed. All change rows of one update share the
// ticket's new modification time.
func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	uc.logger.Infow("executing update ticket use case", "product", cmd.Product, "number", cmd.Number)

	if _, err := uc.productRepo.FindByPrefix(ctx, cmd.Product); err != nil {
		return nil, err
	}

	existing, err := uc.ticketRepo.FindByNumber(ctx, cmd.Product, cmd.Number)
	if err != nil {
		return nil, err
	}

	attrs := updateAttributes(cmd)
	if err := uc.refs.Validate(ctx, cmd.Product, attrs); err != nil {
		return nil, err
	}

	fieldChanges, err := existing.Update(attrs)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	changedFields := make([]string, 0, len(fieldChanges))
	for _, fc := range fieldChanges {
		changedFields = append(changedFields, fc.Field)
	}

	if len(fieldChanges) == 0 {
		uc.logger.Infow("update ticket was a no-op", "product", cmd.Product, "number", cmd.Number)
		return &UpdateTicketResult{
			UID:       existing.UID(),
			Number:    existing.Number(),
			Product:   existing.Product(),
			Changed:   changedFields,
			UpdatedAt: existing.UpdatedAt(),
		}, nil
	}

	changeTime := existing.UpdatedAt().UnixMilli()

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Update(txCtx, existing); err != nil {
			return err
		}

		for _, fc := range fieldChanges {
			change, err := ticket.NewChange(
				existing.UID(),
				existing.Number(),
				existing.Product(),
				changeTime,
				cmd.Author,
				fc.Field,
				fc.OldValue,
				fc.NewValue,
			)
			if err != nil {
				return errors.NewInternalError(err.Error())
			}
			if err := uc.changeRepo.Append(txCtx, change); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to update ticket", "product", cmd.Product, "number", cmd.Number, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket updated successfully",
		"product", existing.Product(),
		"number", existing.Number(),
		"changed_fields", changedFields)

	return &UpdateTicketResult{
		UID:       existing.UID(),
		Number:    existing.Number(),
		Product:   existing.Product(),
		Changed:   changedFields,
		UpdatedAt: existing.UpdatedAt(),
	}, nil
}

func updateAttributes(cmd UpdateTicketCommand) ticket.Attributes {
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
