package response

import (
	"context"

	"github.com/google/uuid"
)

type commandIDKey struct{}

// NewCommandID generates a unique identifier for one shell command.
func NewCommandID() string {
	return uuid.New().String()
}

// WithCommandID stores id on ctx.
func WithCommandID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, commandIDKey{}, id)
}

// CommandIDFromContext returns the command ID stored on ctx, or "".
func CommandIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(commandIDKey{}).(string)
	return id
}
