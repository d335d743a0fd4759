package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"trackd/internal/domain/ticket"
	"trackd/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a ticket persistence model to a domain entity.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)

	// ChangeToModel converts a change record to a persistence model.
	ChangeToModel(c *ticket.Change) *models.TicketChangeModel

	// ChangeToDomain converts a change persistence model to a domain record.
	ChangeToDomain(model *models.TicketChangeModel) *ticket.Change
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

// ToModel converts a ticket domain entity to a persistence model.
func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	attrs := t.Attributes()

	model := &models.TicketModel{
		ID:              t.UID(),
		ProductTicketID: t.Number(),
		Product:         t.Product(),
		Type:            attrs.Type,
		Component:       attrs.Component,
		Milestone:       attrs.Milestone,
		Version:         attrs.Version,
		Severity:        attrs.Severity,
		Priority:        attrs.Priority,
		Owner:           attrs.Owner,
		Reporter:        attrs.Reporter,
		CC:              attrs.CC,
		Status:          attrs.Status,
		Resolution:      attrs.Resolution,
		Summary:         attrs.Summary,
		Description:     attrs.Description,
		Time:            t.CreatedAt().UnixMilli(),
		ChangeTime:      t.UpdatedAt().UnixMilli(),
	}

	if len(attrs.Keywords) > 0 {
		keywordsJSON, _ := json.Marshal(attrs.Keywords)
		model.Keywords = datatypes.JSON(keywordsJSON)
	}

	return model
}

// ToDomain converts a ticket persistence model to a domain entity.
func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	var keywords []string
	if len(model.Keywords) > 0 {
		if err := json.Unmarshal(model.Keywords, &keywords); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ticket keywords (id=%d): %w", model.ID, err)
		}
	}

	attrs := ticket.Attributes{
		Summary:     model.Summary,
		Description: model.Description,
		Status:      model.Status,
		Severity:    model.Severity,
		Priority:    model.Priority,
		Owner:       model.Owner,
		Reporter:    model.Reporter,
		CC:          model.CC,
		Keywords:    keywords,
		Type:        model.Type,
		Resolution:  model.Resolution,
		Component:   model.Component,
		Milestone:   model.Milestone,
		Version:     model.Version,
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.ProductTicketID,
		model.Product,
		attrs,
		convertMillisToTime(model.Time),
		convertMillisToTime(model.ChangeTime),
	)
}

// ChangeToModel converts a change record to a persistence model.
func (m *TicketMapperImpl) ChangeToModel(c *ticket.Change) *models.TicketChangeModel {
	return &models.TicketChangeModel{
		ID:       c.ID,
		TicketID: c.TicketUID,
		Number:   c.TicketNumber,
		Time:     c.Time,
		Field:    c.Field,
		Product:  c.Product,
		Author:   c.Author,
		OldValue: c.OldValue,
		NewValue: c.NewValue,
	}
}

// ChangeToDomain converts a change persistence model to a domain record.
func (m *TicketMapperImpl) ChangeToDomain(model *models.TicketChangeModel) *ticket.Change {
	return &ticket.Change{
		ID:           model.ID,
		TicketUID:    model.TicketID,
		TicketNumber: model.Number,
		Time:         model.Time,
		Author:       model.Author,
		Field:        model.Field,
		OldValue:     model.OldValue,
		NewValue:     model.NewValue,
		Product:      model.Product,
	}
}
