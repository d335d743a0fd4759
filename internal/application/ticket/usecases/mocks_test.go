package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"trackd/internal/domain/product"
	"trackd/internal/domain/resource"
	"trackd/internal/domain/ticket"
	"trackd/internal/shared/db"
	"trackd/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc             func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc           func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc           func(ctx context.Context, uid uint) error
	FindByNumberFunc     func(ctx context.Context, product string, number int) (*ticket.Ticket, error)
	ListByProductFunc    func(ctx context.Context, product string, page, pageSize int) ([]*ticket.Ticket, int64, error)
	CountByReferenceFunc func(ctx context.Context, product, field, name string) (int64, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, uid uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, uid)
	}
	return nil
}

func (m *mockTicketRepository) FindByNumber(ctx context.Context, product string, number int) (*ticket.Ticket, error) {
	if m.FindByNumberFunc != nil {
		return m.FindByNumberFunc(ctx, product, number)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListByProduct(ctx context.Context, product string, page, pageSize int) ([]*ticket.Ticket, int64, error) {
	if m.ListByProductFunc != nil {
		return m.ListByProductFunc(ctx, product, page, pageSize)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) CountByReference(ctx context.Context, product, field, name string) (int64, error) {
	if m.CountByReferenceFunc != nil {
		return m.CountByReferenceFunc(ctx, product, field, name)
	}
	return 0, nil
}

type mockChangeRepository struct {
	AppendFunc        func(ctx context.Context, c *ticket.Change) error
	ListByProductFunc func(ctx context.Context, product string, page, pageSize int) ([]*ticket.Change, int64, error)
	ListByTicketFunc  func(ctx context.Context, product string, ticketUID uint) ([]*ticket.Change, error)
	FindByTimeFunc    func(ctx context.Context, product string, timeMillis int64) (*ticket.Change, error)
	CountByTicketFunc func(ctx context.Context, ticketUID uint) (int64, error)
}

func (m *mockChangeRepository) Append(ctx context.Context, c *ticket.Change) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, c)
	}
	return nil
}

func (m *mockChangeRepository) ListByProduct(ctx context.Context, product string, page, pageSize int) ([]*ticket.Change, int64, error) {
	if m.ListByProductFunc != nil {
		return m.ListByProductFunc(ctx, product, page, pageSize)
	}
	return nil, 0, nil
}

func (m *mockChangeRepository) ListByTicket(ctx context.Context, product string, ticketUID uint) ([]*ticket.Change, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, product, ticketUID)
	}
	return nil, nil
}

func (m *mockChangeRepository) FindByTime(ctx context.Context, product string, timeMillis int64) (*ticket.Change, error) {
	if m.FindByTimeFunc != nil {
		return m.FindByTimeFunc(ctx, product, timeMillis)
	}
	return nil, nil
}

func (m *mockChangeRepository) CountByTicket(ctx context.Context, ticketUID uint) (int64, error) {
	if m.CountByTicketFunc != nil {
		return m.CountByTicketFunc(ctx, ticketUID)
	}
	return 0, nil
}

type mockProductRepository struct {
	SaveFunc         func(ctx context.Context, p *product.Product) error
	UpdateFunc       func(ctx context.Context, p *product.Product) error
	DeleteFunc       func(ctx context.Context, prefix string) error
	FindByPrefixFunc func(ctx context.Context, prefix string) (*product.Product, error)
	ListFunc         func(ctx context.Context, page, pageSize int) ([]*product.Product, int64, error)
	HasChildrenFunc  func(ctx context.Context, prefix string) (bool, error)
}

func (m *mockProductRepository) Save(ctx context.Context, p *product.Product) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockProductRepository) Update(ctx context.Context, p *product.Product) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockProductRepository) Delete(ctx context.Context, prefix string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, prefix)
	}
	return nil
}

func (m *mockProductRepository) FindByPrefix(ctx context.Context, prefix string) (*product.Product, error) {
	if m.FindByPrefixFunc != nil {
		return m.FindByPrefixFunc(ctx, prefix)
	}
	p, _ := product.NewProduct(prefix, prefix+" product", "", "")
	return p, nil
}

func (m *mockProductRepository) List(ctx context.Context, page, pageSize int) ([]*product.Product, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page, pageSize)
	}
	return nil, 0, nil
}

func (m *mockProductRepository) HasChildren(ctx context.Context, prefix string) (bool, error) {
	if m.HasChildrenFunc != nil {
		return m.HasChildrenFunc(ctx, prefix)
	}
	return false, nil
}

type mockSequenceAllocator struct {
	NextFunc func(ctx context.Context, product string) (int, error)
}

func (m *mockSequenceAllocator) Next(ctx context.Context, product string) (int, error) {
	if m.NextFunc != nil {
		return m.NextFunc(ctx, product)
	}
	return 1, nil
}

type mockResourceRepository[T resource.Entity] struct {
	SaveFunc          func(ctx context.Context, entity T) error
	UpdateFunc        func(ctx context.Context, entity T) error
	DeleteFunc        func(ctx context.Context, product, name string) error
	FindByNameFunc    func(ctx context.Context, product, name string) (T, error)
	ListByProductFunc func(ctx context.Context, product string) ([]T, error)
}

func (m *mockResourceRepository[T]) Save(ctx context.Context, entity T) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, entity)
	}
	return nil
}

func (m *mockResourceRepository[T]) Update(ctx context.Context, entity T) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, entity)
	}
	return nil
}

func (m *mockResourceRepository[T]) Delete(ctx context.Context, product, name string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, product, name)
	}
	return nil
}

func (m *mockResourceRepository[T]) FindByName(ctx context.Context, product, name string) (T, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, product, name)
	}
	var zero T
	return zero, nil
}

func (m *mockResourceRepository[T]) ListByProduct(ctx context.Context, product string) ([]T, error) {
	if m.ListByProductFunc != nil {
		return m.ListByProductFunc(ctx, product)
	}
	return nil, nil
}

type mockEnumRepository struct {
	SaveFunc              func(ctx context.Context, enum *resource.Enum) error
	UpdateFunc            func(ctx context.Context, enum *resource.Enum) error
	DeleteFunc            func(ctx context.Context, product, enumType, name string) error
	FindByTypeAndNameFunc func(ctx context.Context, product, enumType, name string) (*resource.Enum, error)
	ListByProductFunc     func(ctx context.Context, product string) ([]*resource.Enum, error)
	ListByTypeFunc        func(ctx context.Context, product, enumType string) ([]*resource.Enum, error)
}

func (m *mockEnumRepository) Save(ctx context.Context, enum *resource.Enum) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, enum)
	}
	return nil
}

func (m *mockEnumRepository) Update(ctx context.Context, enum *resource.Enum) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, enum)
	}
	return nil
}

func (m *mockEnumRepository) Delete(ctx context.Context, product, enumType, name string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, product, enumType, name)
	}
	return nil
}

func (m *mockEnumRepository) FindByTypeAndName(ctx context.Context, product, enumType, name string) (*resource.Enum, error) {
	if m.FindByTypeAndNameFunc != nil {
		return m.FindByTypeAndNameFunc(ctx, product, enumType, name)
	}
	return &resource.Enum{Type: enumType, Name: name, Product: product}, nil
}

func (m *mockEnumRepository) ListByProduct(ctx context.Context, product string) ([]*resource.Enum, error) {
	if m.ListByProductFunc != nil {
		return m.ListByProductFunc(ctx, product)
	}
	return nil, nil
}

func (m *mockEnumRepository) ListByType(ctx context.Context, product, enumType string) ([]*resource.Enum, error) {
	if m.ListByTypeFunc != nil {
		return m.ListByTypeFunc(ctx, product, enumType)
	}
	return nil, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}

// newTestTxManager backs the transaction manager with an in-memory sqlite
// database so RunInTransaction behaves like production code paths.
func newTestTxManager(t *testing.T) *db.TransactionManager {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return db.NewTransactionManager(gdb)
}
