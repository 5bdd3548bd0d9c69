// Package player handles seat tickets: the signed proof of who sits where.
package player

import (
	"context"
	"fmt"

	"github.com/lumyn/showdown/internal/platform/jwt"
)

type ctxKey int

const ticketCtxKey ctxKey = iota + 1

// ContextWithTicket returns a new context carrying the verified seat ticket.
//
//nolint:ireturn // returning context.Context is intentional: it's the standard context type
func ContextWithTicket(baseCtx context.Context, ticket *jwt.Claims) context.Context {
	return context.WithValue(baseCtx, ticketCtxKey, ticket)
}

// TicketFromContext extracts the seat ticket from the context.
func TicketFromContext(ctx context.Context) (*jwt.Claims, error) {
	val := ctx.Value(ticketCtxKey)

	if val == nil {
		return nil, fmt.Errorf("no ticket in context")
	}

	ticket, ok := val.(*jwt.Claims)
	if !ok {
		return nil, fmt.Errorf("ticket is not a claims value: %T", val)
	}

	return ticket, nil
}
