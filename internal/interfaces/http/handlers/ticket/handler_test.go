package ticket

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trackd/internal/application/ticket/usecases"
	"trackd/internal/interfaces/http/handlers/testutil"
	"trackd/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockCreateTicketUC struct {
	result *usecases.CreateTicketResult
	err    error
}

func (m *mockCreateTicketUC) Execute(_ context.Context, _ usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error) {
	return m.result, m.err
}

type mockUpdateTicketUC struct {
	result *usecases.UpdateTicketResult
	err    error
}

func (m *mockUpdateTicketUC) Execute(_ context.Context, _ usecases.UpdateTicketCommand) (*usecases.UpdateTicketResult, error) {
	return m.result, m.err
}

type mockDeleteTicketUC struct {
	result *usecases.DeleteTicketResult
	err    error
}

func (m *mockDeleteTicketUC) Execute(_ context.Context, _ usecases.DeleteTicketCommand) (*usecases.DeleteTicketResult, error) {
	return m.result, m.err
}

type mockGetTicketUC struct {
	result *usecases.TicketResult
	err    error
}

func (m *mockGetTicketUC) Execute(_ context.Context, _ usecases.GetTicketQuery) (*usecases.TicketResult, error) {
	return m.result, m.err
}

type mockListTicketsUC struct {
	result *usecases.ListTicketsResult
	err    error
}

func (m *mockListTicketsUC) Execute(_ context.Context, _ usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error) {
	return m.result, m.err
}

type mockListTicketChangesUC struct {
	result *usecases.ListChangesResult
	err    error
}

func (m *mockListTicketChangesUC) Execute(_ context.Context, _ usecases.ListTicketChangesQuery) (*usecases.ListChangesResult, error) {
	return m.result, m.err
}

type mockListChangesUC struct {
	result *usecases.ListChangesResult
	err    error
}

func (m *mockListChangesUC) Execute(_ context.Context, _ usecases.ListChangesQuery) (*usecases.ListChangesResult, error) {
	return m.result, m.err
}

type mockGetChangeUC struct {
	result *usecases.ChangeResult
	err    error
}

func (m *mockGetChangeUC) Execute(_ context.Context, _ usecases.GetChangeQuery) (*usecases.ChangeResult, error) {
	return m.result, m.err
}

type mockRenderTicketUC struct {
	result *usecases.RenderTicketResult
	err    error
}

func (m *mockRenderTicketUC) Execute(_ context.Context, _ usecases.RenderTicketQuery) (*usecases.RenderTicketResult, error) {
	return m.result, m.err
}

// =====================================================================
// Test helper
// =====================================================================

type testDeps struct {
	createTicketUC      usecases.CreateTicketExecutor
	updateTicketUC      usecases.UpdateTicketExecutor
	deleteTicketUC      usecases.DeleteTicketExecutor
	getTicketUC         usecases.GetTicketExecutor
	listTicketsUC       usecases.ListTicketsExecutor
	listTicketChangesUC usecases.ListTicketChangesExecutor
	listChangesUC       usecases.ListChangesExecutor
	getChangeUC         usecases.GetChangeExecutor
	renderTicketUC      usecases.RenderTicketExecutor
}

func newTestHandler(deps testDeps) *Handler {
	return NewHandler(
		deps.createTicketUC,
		deps.updateTicketUC,
		deps.deleteTicketUC,
		deps.getTicketUC,
		deps.listTicketsUC,
		deps.listTicketChangesUC,
		deps.listChangesUC,
		deps.getChangeUC,
		deps.renderTicketUC,
	)
}

// =====================================================================
// TestHandler_CreateTicket
// =====================================================================

func TestHandler_CreateTicket_Success(t *testing.T) {
	now := time.Now().UTC()
	mockUC := &mockCreateTicketUC{
		result: &usecases.CreateTicketResult{
			UID:       1,
			Number:    1,
			Product:   "CORE",
			Summary:   "crash on startup",
			CreatedAt: now,
		},
	}
	handler := newTestHandler(testDeps{createTicketUC: mockUC})

	reqBody := CreateTicketRequest{
		Summary:     "crash on startup",
		Description: "segfault when the config file is missing",
		Status:      "new",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/products/CORE/tickets", reqBody)
	testutil.SetURLParam(c, "prefix", "CORE")

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestHandler_CreateTicket_BindError(t *testing.T) {
	handler := newTestHandler(testDeps{})

	// Missing the required summary
	reqBody := map[string]string{"description": "no summary"}
	c, w := testutil.NewTestContext(http.MethodPost, "/products/CORE/tickets", reqBody)
	testutil.SetURLParam(c, "prefix", "CORE")

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
}

func TestHandler_CreateTicket_ProductNotFound(t *testing.T) {
	mockUC := &mockCreateTicketUC{
		err: errors.NewNotFoundError("product not found"),
	}
	handler := newTestHandler(testDeps{createTicketUC: mockUC})

	reqBody := CreateTicketRequest{Summary: "crash on startup"}
	c, w := testutil.NewTestContext(http.MethodPost, "/products/NOPE/tickets", reqBody)
	testutil.SetURLParam(c, "prefix", "NOPE")

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
}

func TestHandler_CreateTicket_DanglingReference(t *testing.T) {
	mockUC := &mockCreateTicketUC{
		err: errors.NewValidationError(`component "web" does not exist in this product`),
	}
	handler := newTestHandler(testDeps{createTicketUC: mockUC})

	component := "web"
	reqBody := CreateTicketRequest{Summary: "crash on startup", Component: &component}
	c, w := testutil.NewTestContext(http.MethodPost, "/products/CORE/tickets", reqBody)
	testutil.SetURLParam(c, "prefix", "CORE")

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// TestHandler_GetTicket
// =====================================================================

func TestHandler_GetTicket_Success(t *testing.T) {
	mockUC := &mockGetTicketUC{
		result: &usecases.TicketResult{
			UID:     10,
			Number:  3,
			Product: "CORE",
			Summary: "crash on startup",
		},
	}
	handler := newTestHandler(testDeps{getTicketUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/products/CORE/tickets/3", nil)
	testutil.SetURLParam(c, "prefix", "CORE")
	testutil.SetURLParam(c, "tid", "3")

	handler.GetTicket(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestHandler_GetTicket_InvalidNumber(t *testing.T) {
	handler := newTestHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodGet, "/products/CORE/tickets/abc", nil)
	testutil.SetURLParam(c, "prefix", "CORE")
	testutil.SetURLParam(c, "tid", "abc")

	handler.GetTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetTicket_NotFound(t *testing.T) {
	mockUC := &mockGetTicketUC{
		err: errors.NewNotFoundError("ticket not found"),
	}
	handler := newTestHandler(testDeps{getTicketUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/products/CORE/tickets/999", nil)
	testutil.SetURLParam(c, "prefix", "CORE")
	testutil.SetURLParam(c, "tid", "999")

	handler.GetTicket(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// =====================================================================
// TestHandler_UpdateTicket
// =====================================================================

func TestHandler_UpdateTicket_Success(t *testing.T) {
	mockUC := &mockUpdateTicketUC{
		result: &usecases.UpdateTicketResult{
			UID:     10,
			Number:  3,
			Product: "CORE",
			Changed: []string{"status"},
		},
	}
	handler := newTestHandler(testDeps{updateTicketUC: mockUC})

	reqBody := UpdateTicketRequest{Summary: "crash on startup", Status: "closed"}
	c, w := testutil.NewTestContext(http.MethodPut, "/products/CORE/tickets/3", reqBody)
	testutil.SetURLParam(c, "prefix", "CORE")
	testutil.SetURLParam(c, "tid", "3")

	handler.UpdateTicket(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_UpdateTicket_InvalidNumber(t *testing.T) {
	handler := newTestHandler(testDeps{})

	reqBody := UpdateTicketRequest{Summary: "crash on startup"}
	c, w := testutil.NewTestContext(http.MethodPut, "/products/CORE/tickets/0", reqBody)
	testutil.SetURLParam(c, "prefix", "CORE")
	testutil.SetURLParam(c, "tid", "0")

	handler.UpdateTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// TestHandler_DeleteTicket
// =====================================================================

func TestHandler_DeleteTicket_Success(t *testing.T) {
	mockUC := &mockDeleteTicketUC{
		result: &usecases.DeleteTicketResult{Product: "CORE", Number: 3},
	}
	handler := newTestHandler(testDeps{deleteTicketUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodDelete, "/products/CORE/tickets/3", nil)
	testutil.SetURLParam(c, "prefix", "CORE")
	testutil.SetURLParam(c, "tid", "3")

	handler.DeleteTicket(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_DeleteTicket_Protected(t *testing.T) {
	mockUC := &mockDeleteTicketUC{
		err: errors.NewProtectedReferenceError("ticket has change history and cannot be deleted"),
	}
	handler := newTestHandler(testDeps{deleteTicketUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodDelete, "/products/CORE/tickets/3", nil)
	testutil.SetURLParam(c, "prefix", "CORE")
	testutil.SetURLParam(c, "tid", "3")

	handler.DeleteTicket(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// =====================================================================
// TestHandler_ListTickets
// =====================================================================

func TestHandler_ListTickets_Success(t *testing.T) {
	mockUC := &mockListTicketsUC{
		result: &usecases.ListTicketsResult{
			Tickets: []*usecases.TicketResult{
				{UID: 1, Number: 1, Product: "CORE", Summary: "first"},
				{UID: 2, Number: 2, Product: "CORE", Summary: "second"},
			},
			Total: 2,
		},
	}
	handler := newTestHandler(testDeps{listTicketsUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/products/CORE/tickets", nil)
	testutil.SetURLParam(c, "prefix", "CORE")

	handler.ListTickets(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

// =====================================================================
// TestHandler_ListChanges
// =====================================================================

func TestHandler_ListChanges_Success(t *testing.T) {
	mockUC := &mockListTicketChangesUC{
		result: &usecases.ListChangesResult{
			Changes: []*usecases.ChangeResult{
				{ID: 1, TicketNumber: 3, Field: "status", OldValue: "new", NewValue: "closed"},
			},
			Total: 1,
		},
	}
	handler := newTestHandler(testDeps{listTicketChangesUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/products/CORE/tickets/3/changes", nil)
	testutil.SetURLParam(c, "prefix", "CORE")
	testutil.SetURLParam(c, "tid", "3")

	handler.ListChanges(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ListProductChanges_Success(t *testing.T) {
	mockUC := &mockListChangesUC{
		result: &usecases.ListChangesResult{
			Changes: []*usecases.ChangeResult{
				{ID: 1, TicketNumber: 1, Field: "owner"},
				{ID: 2, TicketNumber: 2, Field: "status"},
			},
			Total: 2,
		},
	}
	handler := newTestHandler(testDeps{listChangesUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/products/CORE/changes", nil)
	testutil.SetURLParam(c, "prefix", "CORE")

	handler.ListProductChanges(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetChange_Success(t *testing.T) {
	mockUC := &mockGetChangeUC{
		result: &usecases.ChangeResult{
			ID:           1,
			TicketNumber: 3,
			Time:         1700000000000,
			Field:        "status",
			OldValue:     "new",
			NewValue:     "closed",
			Product:      "CORE",
		},
	}
	handler := newTestHandler(testDeps{getChangeUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/products/CORE/changes/1700000000000", nil)
	testutil.SetURLParam(c, "prefix", "CORE")
	testutil.SetURLParam(c, "time", "1700000000000")

	handler.GetChange(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetChange_InvalidTime(t *testing.T) {
	handler := newTestHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodGet, "/products/CORE/changes/yesterday", nil)
	testutil.SetURLParam(c, "prefix", "CORE")
	testutil.SetURLParam(c, "time", "yesterday")

	handler.GetChange(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// TestHandler_RenderDescription
// =====================================================================

func TestHandler_RenderDescription_Success(t *testing.T) {
	mockUC := &mockRenderTicketUC{
		result: &usecases.RenderTicketResult{
			Number: 3,
			HTML:   "<h1>crash</h1>",
		},
	}
	handler := newTestHandler(testDeps{renderTicketUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/products/CORE/tickets/3/render", nil)
	testutil.SetURLParam(c, "prefix", "CORE")
	testutil.SetURLParam(c, "tid", "3")

	handler.RenderDescription(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_RenderDescription_InvalidNumber(t *testing.T) {
	handler := newTestHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodGet, "/products/CORE/tickets/-1/render", nil)
	testutil.SetURLParam(c, "prefix", "CORE")
	testutil.SetURLParam(c, "tid", "-1")

	handler.RenderDescription(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
