package resource

import "context"

// Repository is the persistence contract for a product-scoped entity type.
// All lookups are bound to a product prefix; creation-order listing is the
// storage layer's responsibility.
type Repository[T Entity] interface {
	Save(ctx context.Context, entity T) error
	Update(ctx context.Context, entity T) error
	Delete(ctx context.Context, product, name string) error
	FindByName(ctx context.Context, product, name string) (T, error)
	ListByProduct(ctx context.Context, product string) ([]T, error)
}

// EnumRepository extends lookups with the enum kind, since enum rows are
// keyed by (type, name) within a product.
type EnumRepository interface {
	Save(ctx context.Context, enum *Enum) error
	Update(ctx context.Context, enum *Enum) error
	Delete(ctx context.Context, product, enumType, name string) error
	FindByTypeAndName(ctx context.Context, product, enumType, name string) (*Enum, error)
	ListByProduct(ctx context.Context, product string) ([]*Enum, error)
	ListByType(ctx context.Context, product, enumType string) ([]*Enum, error)
}

// ReferenceCounter reports how many tickets still point at a named value of
// a ticket field within a product. Deletion is refused while the count is
// non-zero.
type ReferenceCounter interface {
	CountByReference(ctx context.Context, product, field, name string) (int64, error)
}
