package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"trackd/internal/domain/product"
	"trackd/internal/shared/db"
	"trackd/internal/shared/logger"
)

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

func newTestTxManager(t *testing.T) *db.TransactionManager {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return db.NewTransactionManager(gdb)
}
