package usecases

import (
	"context"
	"fmt"

	"trackd/internal/domain/product"
	"trackd/internal/domain/resource"
	"trackd/internal/shared/constants"
	"trackd/internal/shared/db"
	"trackd/internal/shared/errors"
	"trackd/internal/shared/logger"
)

type EnumCRUDExecutor interface {
	Create(ctx context.Context, enum *resource.Enum) error
	Update(ctx context.Context, enum *resource.Enum) error
	Delete(ctx context.Context, productPrefix, enumType, name string) error
	Get(ctx context.Context, productPrefix, enumType, name string) (*resource.Enum, error)
	List(ctx context.Context, productPrefix, enumType string) ([]*resource.Enum, error)
}

// EnumCRUD manages per-product enumeration rows. Rows of the kinds that
// ticket fields resolve against (ticket_type, resolution) are protected
// from deletion while referenced.
type EnumCRUD struct {
	enumRepo    resource.EnumRepository
	productRepo product.Repository
	refCounter  resource.ReferenceCounter
	txManager   *db.TransactionManager
	logger      logger.Interface
}

func NewEnumCRUD(
	enumRepo resource.EnumRepository,
	productRepo product.Repository,
	refCounter resource.ReferenceCounter,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *EnumCRUD {
	return &EnumCRUD{
		enumRepo:    enumRepo,
		productRepo: productRepo,
		refCounter:  refCounter,
		txManager:   txManager,
		logger:      logger,
	}
}

// refFieldForEnumType maps an enum kind to the ticket column that resolves
// against it; empty means deletion is unguarded.
func refFieldForEnumType(enumType string) string {
	switch enumType {
	case constants.EnumTypeTicketType:
		return "type"
	case constants.EnumTypeResolution:
		return "resolution"
	default:
		return ""
	}
}

func (uc *EnumCRUD) Create(ctx context.Context, enum *resource.Enum) error {
	uc.logger.Infow("creating enum",
		"product", enum.Product,
		"type", enum.Type,
		"name", enum.Name)

	if _, err := uc.productRepo.FindByPrefix(ctx, enum.Product); err != nil {
		return err
	}

	if err := enum.Validate(); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.enumRepo.Save(ctx, enum); err != nil {
		uc.logger.Errorw("failed to create enum", "error", err)
		return err
	}

	return nil
}

func (uc *EnumCRUD) Update(ctx context.Context, enum *resource.Enum) error {
	uc.logger.Infow("updating enum",
		"product", enum.Product,
		"type", enum.Type,
		"name", enum.Name)

	if _, err := uc.productRepo.FindByPrefix(ctx, enum.Product); err != nil {
		return err
	}

	if err := enum.Validate(); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.enumRepo.Update(ctx, enum); err != nil {
		uc.logger.Errorw("failed to update enum", "error", err)
		return err
	}

	return nil
}

func (uc *EnumCRUD) Delete(ctx context.Context, productPrefix, enumType, name string) error {
	uc.logger.Infow("deleting enum",
		"product", productPrefix,
		"type", enumType,
		"name", name)

	if _, err := uc.productRepo.FindByPrefix(ctx, productPrefix); err != nil {
		return err
	}

	refField := refFieldForEnumType(enumType)

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if refField != "" {
			count, err := uc.refCounter.CountByReference(txCtx, productPrefix, refField, name)
			if err != nil {
				return err
			}
			if count > 0 {
				return errors.NewProtectedReferenceError(
					fmt.Sprintf("enum is still referenced by %d ticket(s)", count))
			}
		}

		return uc.enumRepo.Delete(txCtx, productPrefix, enumType, name)
	})
	if err != nil {
		uc.logger.Errorw("failed to delete enum", "error", err)
		return err
	}

	return nil
}

func (uc *EnumCRUD) Get(ctx context.Context, productPrefix, enumType, name string) (*resource.Enum, error) {
	if _, err := uc.productRepo.FindByPrefix(ctx, productPrefix); err != nil {
		return nil, err
	}

	return uc.enumRepo.FindByTypeAndName(ctx, productPrefix, enumType, name)
}

func (uc *EnumCRUD) List(ctx context.Context, productPrefix, enumType string) ([]*resource.Enum, error) {
	if _, err := uc.productRepo.FindByPrefix(ctx, productPrefix); err != nil {
		return nil, err
	}

	if enumType == "" {
		return uc.enumRepo.ListByProduct(ctx, productPrefix)
	}
	return uc.enumRepo.ListByType(ctx, productPrefix, enumType)
}
