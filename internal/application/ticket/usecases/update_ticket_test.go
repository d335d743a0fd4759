package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trackd/internal/domain/resource"
	"trackd/internal/domain/ticket"
	"trackd/internal/shared/errors"
)

func existingTicket(t *testing.T) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.ReconstructTicket(42, 3, "CORE", ticket.Attributes{
		Summary:     "original summary",
		Description: "original description",
		Status:      "new",
		Owner:       "alice",
	}, time.Now().Add(-time.Hour), time.Now().Add(-time.Hour))
	require.NoError(t, err)
	return tk
}

func newUpdateTicketUseCase(
	t *testing.T,
	ticketRepo *mockTicketRepository,
	changeRepo *mockChangeRepository,
	milestoneRepo *mockResourceRepository[*resource.Milestone],
) *UpdateTicketUseCase {
	t.Helper()
	return NewUpdateTicketUseCase(
		ticketRepo,
		changeRepo,
		&mockProductRepository{},
		&mockResourceRepository[*resource.Component]{},
		milestoneRepo,
		&mockResourceRepository[*resource.Version]{},
		&mockEnumRepository{},
		newTestTxManager(t),
		&mockLogger{},
	)
}

func TestUpdateTicketUseCase_Execute_RecordsChanges(t *testing.T) {
	existing := existingTicket(t)
	ticketRepo := &mockTicketRepository{
		FindByNumberFunc: func(ctx context.Context, product string, number int) (*ticket.Ticket, error) {
			return existing, nil
		},
	}

	var appended []*ticket.Change
	changeRepo := &mockChangeRepository{
		AppendFunc: func(ctx context.Context, c *ticket.Change) error {
			appended = append(appended, c)
			return nil
		},
	}

	useCase := newUpdateTicketUseCase(t, ticketRepo, changeRepo, &mockResourceRepository[*resource.Milestone]{})

	result, err := useCase.Execute(context.Background(), UpdateTicketCommand{
		Product:     "CORE",
		Number:      3,
		Author:      "bob",
		Summary:     "updated summary",
		Description: "original description",
		Status:      "accepted",
		Owner:       "alice",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.ElementsMatch(t, []string{"summary", "status"}, result.Changed)

	require.Len(t, appended, 2)
	byField := map[string]*ticket.Change{}
	for _, c := range appended {
		byField[c.Field] = c
		assert.Equal(t, uint(42), c.TicketUID)
		assert.Equal(t, 3, c.TicketNumber)
		assert.Equal(t, "CORE", c.Product)
		assert.Equal(t, "bob", c.Author)
		assert.Equal(t, appended[0].Time, c.Time, "all changes of one update share a timestamp")
	}
	assert.Equal(t, "original summary", byField["summary"].OldValue)
	assert.Equal(t, "updated summary", byField["summary"].NewValue)
	assert.Equal(t, "new", byField["status"].OldValue)
	assert.Equal(t, "accepted", byField["status"].NewValue)
}

func TestUpdateTicketUseCase_Execute_NoOp(t *testing.T) {
	existing := existingTicket(t)
	ticketRepo := &mockTicketRepository{
		FindByNumberFunc: func(ctx context.Context, product string, number int) (*ticket.Ticket, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			t.Fatal("update should not be persisted for a no-op")
			return nil
		},
	}
	changeRepo := &mockChangeRepository{
		AppendFunc: func(ctx context.Context, c *ticket.Change) error {
			t.Fatal("no change records expected for a no-op")
			return nil
		},
	}

	useCase := newUpdateTicketUseCase(t, ticketRepo, changeRepo, &mockResourceRepository[*resource.Milestone]{})

	result, err := useCase.Execute(context.Background(), UpdateTicketCommand{
		Product:     "CORE",
		Number:      3,
		Summary:     "original summary",
		Description: "original description",
		Status:      "new",
		Owner:       "alice",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Empty(t, result.Changed)
}

func TestUpdateTicketUseCase_Execute_TicketNotFound(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		FindByNumberFunc: func(ctx context.Context, product string, number int) (*ticket.Ticket, error) {
			return nil, errors.NewNotFoundError("ticket not found")
		},
	}

	useCase := newUpdateTicketUseCase(t, ticketRepo, &mockChangeRepository{}, &mockResourceRepository[*resource.Milestone]{})

	result, err := useCase.Execute(context.Background(), UpdateTicketCommand{
		Product: "CORE",
		Number:  999,
		Summary: "whatever",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestUpdateTicketUseCase_Execute_DanglingMilestone(t *testing.T) {
	existing := existingTicket(t)
	ticketRepo := &mockTicketRepository{
		FindByNumberFunc: func(ctx context.Context, product string, number int) (*ticket.Ticket, error) {
			return existing, nil
		},
	}
	milestoneRepo := &mockResourceRepository[*resource.Milestone]{
		FindByNameFunc: func(ctx context.Context, product, name string) (*resource.Milestone, error) {
			return nil, errors.NewNotFoundError("milestone not found")
		},
	}

	useCase := newUpdateTicketUseCase(t, ticketRepo, &mockChangeRepository{}, milestoneRepo)

	milestone := "nonexistent"
	result, err := useCase.Execute(context.Background(), UpdateTicketCommand{
		Product:   "CORE",
		Number:    3,
		Summary:   "original summary",
		Milestone: &milestone,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
}
