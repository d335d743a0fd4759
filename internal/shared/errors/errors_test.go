package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	err := NewValidationError("summary is required")
	assert.Equal(t, "validation_error: summary is required", err.Error())

	withDetails := NewNotFoundError("product not found", "prefix=XX")
	assert.Equal(t, "not_found: product not found (prefix=XX)", withDetails.Error())
}

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
		wantCode int
	}{
		{"validation", NewValidationError("bad"), ErrorTypeValidation, http.StatusBadRequest},
		{"not found", NewNotFoundError("missing"), ErrorTypeNotFound, http.StatusNotFound},
		{"conflict", NewConflictError("conflict"), ErrorTypeConflict, http.StatusConflict},
		{"protected", NewProtectedReferenceError("referenced"), ErrorTypeProtected, http.StatusConflict},
		{"internal", NewInternalError("boom"), ErrorTypeInternal, http.StatusInternalServerError},
		{"bad request", NewBadRequestError("bad"), ErrorTypeBadRequest, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantCode, tt.err.Code)
		})
	}
}

func TestGetAppError_Wrapped(t *testing.T) {
	base := NewProtectedReferenceError("component is referenced by tickets")
	wrapped := fmt.Errorf("delete failed: %w", base)

	got := GetAppError(wrapped)
	assert.NotNil(t, got)
	assert.Equal(t, ErrorTypeProtected, got.Type)
	assert.True(t, IsProtectedReferenceError(wrapped))
	assert.False(t, IsNotFoundError(wrapped))
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(errors.New("Error 1062: Duplicate entry 'BH-1' for key 'idx_product_ticket'")))
	assert.True(t, IsDuplicateError(errors.New(`pq: duplicate key value violates unique constraint "idx_product_ticket"`)))
	assert.True(t, IsDuplicateError(errors.New("UNIQUE constraint failed: tickets.product, tickets.product_ticket_id")))
	assert.False(t, IsDuplicateError(errors.New("connection refused")))
	assert.False(t, IsDuplicateError(nil))
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, IsForeignKeyViolation(errors.New("Error 1451: Cannot delete or update a parent row: a foreign key constraint fails")))
	assert.True(t, IsForeignKeyViolation(errors.New("FOREIGN KEY constraint failed")))
	assert.False(t, IsForeignKeyViolation(errors.New("Duplicate entry")))
	assert.False(t, IsForeignKeyViolation(nil))
}
