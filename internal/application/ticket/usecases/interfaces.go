package usecases

import "context"

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) (*DeleteTicketResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*TicketResult, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type ListChangesExecutor interface {
	Execute(ctx context.Context, query ListChangesQuery) (*ListChangesResult, error)
}

type ListTicketChangesExecutor interface {
	Execute(ctx context.Context, query ListTicketChangesQuery) (*ListChangesResult, error)
}

type GetChangeExecutor interface {
	Execute(ctx context.Context, query GetChangeQuery) (*ChangeResult, error)
}

type RenderTicketExecutor interface {
	Execute(ctx context.Context, query RenderTicketQuery) (*RenderTicketResult, error)
}
