package usecases

import (
	"context"
	"fmt"

	"trackd/internal/domain/resource"
	"trackd/internal/domain/ticket"
	"trackd/internal/shared/constants"
	"trackd/internal/shared/errors"
)

// referenceValidator checks that the natural-key references carried by a
// ticket resolve to existing rows in the same product. A dangling reference
// is a validation failure, not a not-found: the ticket request itself is
// malformed.
type referenceValidator struct {
	componentRepo resource.Repository[*resource.Component]
	milestoneRepo resource.Repository[*resource.Milestone]
	versionRepo   resource.Repository[*resource.Version]
	enumRepo      resource.EnumRepository
}

func newReferenceValidator(
	componentRepo resource.Repository[*resource.Component],
	milestoneRepo resource.Repository[*resource.Milestone],
	versionRepo resource.Repository[*resource.Version],
	enumRepo resource.EnumRepository,
) *referenceValidator {
	return &referenceValidator{
		componentRepo: componentRepo,
		milestoneRepo: milestoneRepo,
		versionRepo:   versionRepo,
		enumRepo:      enumRepo,
	}
}

func (v *referenceValidator) Validate(ctx context.Context, product string, attrs ticket.Attributes) error {
	if attrs.Component != nil {
		if _, err := v.componentRepo.FindByName(ctx, product, *attrs.Component); err != nil {
			return referenceError("component", *attrs.Component, err)
		}
	}
	if attrs.Milestone != nil {
		if _, err := v.milestoneRepo.FindByName(ctx, product, *attrs.Milestone); err != nil {
			return referenceError("milestone", *attrs.Milestone, err)
		}
	}
	if attrs.Version != nil {
		if _, err := v.versionRepo.FindByName(ctx, product, *attrs.Version); err != nil {
			return referenceError("version", *attrs.Version, err)
		}
	}
	if attrs.Type != nil {
		if _, err := v.enumRepo.FindByTypeAndName(ctx, product, constants.EnumTypeTicketType, *attrs.Type); err != nil {
			return referenceError("type", *attrs.Type, err)
		}
	}
	if attrs.Resolution != nil {
		if _, err := v.enumRepo.FindByTypeAndName(ctx, product, constants.EnumTypeResolution, *attrs.Resolution); err != nil {
			return referenceError("resolution", *attrs.Resolution, err)
		}
	}

	return nil
}

func referenceError(field, name string, err error) error {
	if errors.IsNotFoundError(err) {
		return errors.NewValidationError(fmt.Sprintf("%s %q does not exist in this product", field, name))
	}
	return err
}
