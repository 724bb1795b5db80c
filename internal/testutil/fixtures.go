package testutil

import (
	"testing"
	"time"

	"github.com/thenoetrevino/dotoo/internal/config"
	"github.com/thenoetrevino/dotoo/internal/models"
)

// Now is the pinned instant every test clock starts from
var Now = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

// TestConfig returns defaults rooted in a temp dir, with UTC as the timezone
func TestConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.DataDir = t.TempDir()
	cfg.Timezone = "UTC"
	return cfg
}

// NewTask builds a valid todo task for fixtures
func NewTask(id, title string) *models.Task {
	return &models.Task{
		ID:        id,
		Title:     title,
		Category:  models.CategoryFeature,
		Priority:  models.PriorityMedium,
		Status:    models.StatusTodo,
		CreatedAt: Now,
	}
}

// Due returns a pointer to local noon of the day offset from Now
func Due(days int) *time.Time {
	d := time.Date(Now.Year(), Now.Month(), Now.Day()+days, 12, 0, 0, 0, time.UTC)
	return &d
}
