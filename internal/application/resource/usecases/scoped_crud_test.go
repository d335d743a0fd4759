package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trackd/internal/domain/product"
	"trackd/internal/domain/resource"
	"trackd/internal/shared/errors"
)

func newComponentCRUD(
	t *testing.T,
	repo *mockResourceRepository[*resource.Component],
	productRepo *mockProductRepository,
	refCounter *mockReferenceCounter,
) *ScopedCRUD[*resource.Component] {
	t.Helper()
	return NewScopedCRUD(
		repo,
		productRepo,
		refCounter,
		"component",
		"component",
		newTestTxManager(t),
		&mockLogger{},
	)
}

func TestScopedCRUD_Create(t *testing.T) {
	var saved *resource.Component
	repo := &mockResourceRepository[*resource.Component]{
		SaveFunc: func(ctx context.Context, c *resource.Component) error {
			saved = c
			return nil
		},
	}

	crud := newComponentCRUD(t, repo, &mockProductRepository{}, &mockReferenceCounter{})

	c, err := resource.NewComponent("CORE", "database", "alice", "storage layer")
	require.NoError(t, err)

	err = crud.Create(context.Background(), c)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "database", saved.Name)
}

func TestScopedCRUD_Create_ProductNotFound(t *testing.T) {
	productRepo := &mockProductRepository{
		FindByPrefixFunc: func(ctx context.Context, prefix string) (*product.Product, error) {
			return nil, errors.NewNotFoundError("product not found")
		},
	}

	crud := newComponentCRUD(t, &mockResourceRepository[*resource.Component]{}, productRepo, &mockReferenceCounter{})

	err := crud.Create(context.Background(), &resource.Component{Name: "web", Product: "NOPE"})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestScopedCRUD_Create_InvalidEntity(t *testing.T) {
	crud := newComponentCRUD(t, &mockResourceRepository[*resource.Component]{}, &mockProductRepository{}, &mockReferenceCounter{})

	err := crud.Create(context.Background(), &resource.Component{Name: "", Product: "CORE"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestScopedCRUD_Delete_Unreferenced(t *testing.T) {
	var deletedProduct, deletedName string
	repo := &mockResourceRepository[*resource.Component]{
		DeleteFunc: func(ctx context.Context, product, name string) error {
			deletedProduct, deletedName = product, name
			return nil
		},
	}

	crud := newComponentCRUD(t, repo, &mockProductRepository{}, &mockReferenceCounter{})

	err := crud.Delete(context.Background(), "CORE", "database")
	require.NoError(t, err)
	assert.Equal(t, "CORE", deletedProduct)
	assert.Equal(t, "database", deletedName)
}

func TestScopedCRUD_Delete_Protected(t *testing.T) {
	refCounter := &mockReferenceCounter{
		CountByReferenceFunc: func(ctx context.Context, product, field, name string) (int64, error) {
			assert.Equal(t, "component", field)
			return 3, nil
		},
	}
	repo := &mockResourceRepository[*resource.Component]{
		DeleteFunc: func(ctx context.Context, product, name string) error {
			t.Fatal("referenced component must not be deleted")
			return nil
		},
	}

	crud := newComponentCRUD(t, repo, &mockProductRepository{}, refCounter)

	err := crud.Delete(context.Background(), "CORE", "database")
	require.Error(t, err)
	assert.True(t, errors.IsProtectedReferenceError(err))
}

func TestScopedCRUD_Get_NotFound(t *testing.T) {
	repo := &mockResourceRepository[*resource.Component]{
		FindByNameFunc: func(ctx context.Context, product, name string) (*resource.Component, error) {
			return nil, errors.NewNotFoundError("component not found")
		},
	}

	crud := newComponentCRUD(t, repo, &mockProductRepository{}, &mockReferenceCounter{})

	_, err := crud.Get(context.Background(), "CORE", "missing")
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestScopedCRUD_List(t *testing.T) {
	repo := &mockResourceRepository[*resource.Component]{
		ListByProductFunc: func(ctx context.Context, product string) ([]*resource.Component, error) {
			return []*resource.Component{
				{Name: "database", Product: product},
				{Name: "web", Product: product},
			}, nil
		},
	}

	crud := newComponentCRUD(t, repo, &mockProductRepository{}, &mockReferenceCounter{})

	components, err := crud.List(context.Background(), "CORE")
	require.NoError(t, err)
	require.Len(t, components, 2)
	assert.Equal(t, "database", components[0].Name)
}

func TestEnumCRUD_Delete_GuardedKinds(t *testing.T) {
	tests := []struct {
		name      string
		enumType  string
		refCount  int64
		wantError bool
		wantField string
	}{
		{name: "referenced ticket_type", enumType: "ticket_type", refCount: 2, wantError: true, wantField: "type"},
		{name: "referenced resolution", enumType: "resolution", refCount: 1, wantError: true, wantField: "resolution"},
		{name: "unreferenced ticket_type", enumType: "ticket_type", refCount: 0},
		{name: "unguarded kind skips the check", enumType: "severity", refCount: 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var countedField string
			refCounter := &mockReferenceCounter{
				CountByReferenceFunc: func(ctx context.Context, product, field, name string) (int64, error) {
					countedField = field
					return tt.refCount, nil
				},
			}

			crud := NewEnumCRUD(&mockEnumRepository{}, &mockProductRepository{}, refCounter, newTestTxManager(t), &mockLogger{})

			err := crud.Delete(context.Background(), "CORE", tt.enumType, "defect")
			if tt.wantError {
				require.Error(t, err)
				assert.True(t, errors.IsProtectedReferenceError(err))
				assert.Equal(t, tt.wantField, countedField)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestEnumCRUD_Create(t *testing.T) {
	var saved *resource.Enum
	enumRepo := &mockEnumRepository{
		SaveFunc: func(ctx context.Context, e *resource.Enum) error {
			saved = e
			return nil
		},
	}

	crud := NewEnumCRUD(enumRepo, &mockProductRepository{}, &mockReferenceCounter{}, newTestTxManager(t), &mockLogger{})

	e, err := resource.NewEnum("CORE", "ticket_type", "defect", "1")
	require.NoError(t, err)

	err = crud.Create(context.Background(), e)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "defect", saved.Name)
}
