package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/dotoo/internal/app"
	"github.com/thenoetrevino/dotoo/internal/config"
)

// CLI represents the CLI application context
type CLI struct {
	App   *app.App // Application container with services
	ctx   context.Context
	owned bool
}

type contextKey string

const appKey contextKey = "app"

// WithApp attaches an already-built App to ctx. Commands run under that
// context use it instead of opening the data directory.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// GetCLIFromContext returns a CLI over the App carried by ctx, or opens a
// new one from the user's config
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		return &CLI{App: a, ctx: ctx}, nil
	}
	return NewCLI(ctx)
}

// NewCLI loads the config and opens the SQLite-backed App
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	application, err := app.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &CLI{App: application, ctx: ctx, owned: true}, nil
}

// Context returns the context the CLI was created with
func (c *CLI) Context() context.Context {
	return c.ctx
}

// Close cleans up CLI resources. An App injected through the context is
// left open for its owner.
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
