package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/dotoo/internal/app"
	"github.com/thenoetrevino/dotoo/internal/database"
	"github.com/thenoetrevino/dotoo/internal/logging"
	"github.com/thenoetrevino/dotoo/internal/models"
	taskservice "github.com/thenoetrevino/dotoo/internal/services/task"
	"github.com/thenoetrevino/dotoo/internal/testutil"
	"github.com/thenoetrevino/dotoo/internal/types"
)

// SetupCLITest builds an App over an in-memory store with the clock pinned
// at testutil.Now. This lives in its own package so service tests can import
// testutil without pulling in the app.
func SetupCLITest(t *testing.T) *app.App {
	t.Helper()

	a, err := app.New(context.Background(), database.NewMemoryStore(), testutil.TestConfig(t),
		app.WithLogger(logging.Discard()),
		app.WithClock(types.NewFixedClock(testutil.Now)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

// CreateTestTask adds a task to the active project and returns it
func CreateTestTask(t *testing.T, a *app.App, title string) *models.Task {
	t.Helper()
	task, err := a.TaskService.AddTask(context.Background(), taskservice.CreateTaskRequest{Title: title})
	require.NoError(t, err)
	return task
}
