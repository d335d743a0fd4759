package ticket

import "fmt"

// Change is an append-only audit record of a single field mutation,
// uniquely keyed by (ticket, time, field, product). Changes are written
// when a tracked ticket field changes and are never updated or deleted.
type Change struct {
	ID           uint
	TicketUID    uint
	TicketNumber int
	Time         int64
	Author       string
	Field        string
	OldValue     string
	NewValue     string
	Product      string
}

func NewChange(ticketUID uint, ticketNumber int, product string, timeMillis int64, author, field, oldValue, newValue string) (*Change, error) {
	if ticketUID == 0 {
		return nil, fmt.Errorf("ticket UID is required")
	}
	if len(product) == 0 {
		return nil, fmt.Errorf("product is required")
	}
	if len(field) == 0 {
		return nil, fmt.Errorf("field is required")
	}
	if timeMillis <= 0 {
		return nil, fmt.Errorf("time must be positive")
	}

	return &Change{
		TicketUID:    ticketUID,
		TicketNumber: ticketNumber,
		Time:         timeMillis,
		Author:       author,
		Field:        field,
		OldValue:     oldValue,
		NewValue:     newValue,
		Product:      product,
	}, nil
}
