package product

import "context"

type Repository interface {
	Save(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error
	// Delete removes the product. Implementations must refuse the delete
	// while any child row (ticket, component, milestone, version, enum,
	// ticket change) still references the prefix.
	Delete(ctx context.Context, prefix string) error
	FindByPrefix(ctx context.Context, prefix string) (*Product, error)
	// List returns products in creation order (primary key ascending).
	List(ctx context.Context, page, pageSize int) ([]*Product, int64, error)
	// HasChildren reports whether any child entity references the product.
	HasChildren(ctx context.Context, prefix string) (bool, error)
}
