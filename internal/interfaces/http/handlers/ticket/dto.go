package ticket

import (
	"trackd/internal/application/ticket/usecases"
)

// CreateTicketRequest represents the request body for creating a ticket.
// Component, milestone, version, type and resolution must name existing
// resources of the owning product when set.
type CreateTicketRequest struct {
	Summary     string   `json:"summary" binding:"required,min=1,max=255"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	Severity    string   `json:"severity"`
	Priority    string   `json:"priority"`
	Owner       string   `json:"owner"`
	Reporter    string   `json:"reporter"`
	CC          string   `json:"cc"`
	Keywords    []string `json:"keywords"`
	Type        *string  `json:"type"`
	Resolution  *string  `json:"resolution"`
	Component   *string  `json:"component"`
	Milestone   *string  `json:"milestone"`
	Version     *string  `json:"version"`
}

// ToCommand converts the request to a create ticket command.
func (r *CreateTicketRequest) ToCommand(product string) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Product:     product,
		Summary:     r.Summary,
		Description: r.Description,
		Status:      r.Status,
		Severity:    r.Severity,
		Priority:    r.Priority,
		Owner:       r.Owner,
		Reporter:    r.Reporter,
		CC:          r.CC,
		Keywords:    r.Keywords,
		Type:        r.Type,
		Resolution:  r.Resolution,
		Component:   r.Component,
		Milestone:   r.Milestone,
		Version:     r.Version,
	}
}

// UpdateTicketRequest represents the request body for updating a ticket.
// The full desired attribute set is submitted; the backend records a
// change entry per field that differs from the stored values.
type UpdateTicketRequest struct {
	Author      string   `json:"author"`
	Summary     string   `json:"summary" binding:"required,min=1,max=255"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	Severity    string   `json:"severity"`
	Priority    string   `json:"priority"`
	Owner       string   `json:"owner"`
	Reporter    string   `json:"reporter"`
	CC          string   `json:"cc"`
	Keywords    []string `json:"keywords"`
	Type        *string  `json:"type"`
	Resolution  *string  `json:"resolution"`
	Component   *string  `json:"component"`
	Milestone   *string  `json:"milestone"`
	Version     *string  `json:"version"`
}

// ToCommand converts the request to an update ticket command.
func (r *UpdateTicketRequest) ToCommand(product string, number int) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		Product:     product,
		Number:      number,
		Author:      r.Author,
		Summary:     r.Summary,
		Description: r.Description,
		Status:      r.Status,
		Severity:    r.Severity,
		Priority:    r.Priority,
		Owner:       r.Owner,
		Reporter:    r.Reporter,
		CC:          r.CC,
		Keywords:    r.Keywords,
		Type:        r.Type,
		Resolution:  r.Resolution,
		Component:   r.Component,
		Milestone:   r.Milestone,
		Version:     r.Version,
	}
}
