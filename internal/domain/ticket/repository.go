package ticket

import "context"

type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	Delete(ctx context.Context, uid uint) error
	FindByNumber(ctx context.Context, product string, number int) (*Ticket, error)
	// ListByProduct returns tickets in creation order (UID ascending).
	ListByProduct(ctx context.Context, product string, page, pageSize int) ([]*Ticket, int64, error)
	// CountByReference counts tickets in the product whose reference field
	// (component, milestone, version, type, resolution) equals name. Used
	// to enforce protected deletion of the referenced entities.
	CountByReference(ctx context.Context, product, field, name string) (int64, error)
}

type ChangeRepository interface {
	Append(ctx context.Context, c *Change) error
	// ListByProduct returns change records in append order.
	ListByProduct(ctx context.Context, product string, page, pageSize int) ([]*Change, int64, error)
	ListByTicket(ctx context.Context, product string, ticketUID uint) ([]*Change, error)
	FindByTime(ctx context.Context, product string, timeMillis int64) (*Change, error)
	CountByTicket(ctx context.Context, ticketUID uint) (int64, error)
}

// SequenceAllocator issues the next per-product ticket number. Next must be
// called inside the same transaction as the ticket insert so that a rollback
// releases nothing to another product's allocations and a commit makes the
// issued number permanent. Implementations keep a durable high-water mark:
// numbers are never reissued, including after ticket deletion.
type SequenceAllocator interface {
	Next(ctx context.Context, product string) (int, error)
}
