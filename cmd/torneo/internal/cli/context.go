package cli

import (
	"context"

	"github.com/jrsteele09/torneo-pingpong/app"
)

type contextKey string

const appKey contextKey = "torneo-app"

// Inject adds the running client to the cobra command context. The root
// command calls it from PersistentPreRunE.
func Inject(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// FromContext retrieves the client from the command context.
func FromContext(ctx context.Context) (*app.App, bool) {
	a, ok := ctx.Value(appKey).(*app.App)
	return a, ok
}

// MustFromContext retrieves the client or panics. Only use it in RunE
// functions, after the root command has booted the client.
func MustFromContext(ctx context.Context) *app.App {
	a, ok := FromContext(ctx)
	if !ok {
		panic("torneo: client not found in context - this is a bug in torneo")
	}
	return a
}
