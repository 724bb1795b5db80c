package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clipkg "github.com/thenoetrevino/dotoo/internal/cli"
	"github.com/thenoetrevino/dotoo/internal/models"
	"github.com/thenoetrevino/dotoo/internal/testutil"
	"github.com/thenoetrevino/dotoo/internal/testutil/cli"
)

func TestSetFilters_Merges(t *testing.T) {
	app := cli.SetupCLITest(t)
	cli.CreateTestTask(t, app, "Login page")
	cli.CreateTestTask(t, app, "Signup page")

	_, err := cli.ExecuteCLICommand(t, app, SetCmd(), []string{"--query", "login", "--json"})
	require.NoError(t, err)

	output, err := cli.ExecuteCLICommand(t, app, SetCmd(), []string{"--priority", "medium", "--has-code=false", "--json"})
	require.NoError(t, err)

	data := testutil.ParseJSON(t, output)["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["matches"])

	f := app.TaskService.SearchFilters()
	assert.Equal(t, "login", f.Query)
	require.NotNil(t, f.Priority)
	assert.Equal(t, models.PriorityMedium, *f.Priority)
	require.NotNil(t, f.HasCode)
	assert.False(t, *f.HasCode)
}

func TestSetFilters_EmptyValueUnsets(t *testing.T) {
	app := cli.SetupCLITest(t)

	_, err := cli.ExecuteCLICommand(t, app, SetCmd(), []string{"--query", "login", "--category", "bug", "--json"})
	require.NoError(t, err)

	_, err = cli.ExecuteCLICommand(t, app, SetCmd(), []string{"--query=", "--json"})
	require.NoError(t, err)

	f := app.TaskService.SearchFilters()
	assert.Empty(t, f.Query)
	require.NotNil(t, f.Category)
	assert.Equal(t, models.CategoryBug, *f.Category)
}

func TestUnsetFilters(t *testing.T) {
	app := cli.SetupCLITest(t)
	cli.CreateTestTask(t, app, "Login page")
	cli.CreateTestTask(t, app, "Signup page")

	_, err := cli.ExecuteCLICommand(t, app, SetCmd(), []string{"--query", "login", "--overdue=false", "--json"})
	require.NoError(t, err)

	output, err := cli.ExecuteCLICommand(t, app, UnsetCmd(), []string{"query", "--json"})
	require.NoError(t, err)

	data := testutil.ParseJSON(t, output)["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["matches"])

	f := app.TaskService.SearchFilters()
	assert.Empty(t, f.Query)
	require.NotNil(t, f.IsOverdue)
	assert.False(t, *f.IsOverdue)

	t.Run("unknown field", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, UnsetCmd(), []string{"colour", "--json"})
		require.Error(t, err)
		assert.Equal(t, clipkg.ExitValidation, clipkg.ExitCode(err))
		assert.NotNil(t, app.TaskService.SearchFilters().IsOverdue)
	})
}

func TestSetFilters_Invalid(t *testing.T) {
	app := cli.SetupCLITest(t)

	tests := [][]string{
		{"--status", "blocked"},
		{"--overdue", "maybe"},
	}
	for _, args := range tests {
		_, err := cli.ExecuteCLICommand(t, app, SetCmd(), append(args, "--json"))
		require.Error(t, err)
		assert.Equal(t, clipkg.ExitValidation, clipkg.ExitCode(err))
	}
	assert.Equal(t, models.SearchFilters{}, app.TaskService.SearchFilters())
}

func TestShowAndClear(t *testing.T) {
	app := cli.SetupCLITest(t)
	_, err := cli.ExecuteCLICommand(t, app, SetCmd(), []string{"--tags", "api", "--quiet"})
	require.NoError(t, err)

	output, err := cli.ExecuteCLICommand(t, app, ShowCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "Tags:")
	assert.Contains(t, output, "api")

	output, err = cli.ExecuteCLICommand(t, app, ClearCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "No filters set")
	assert.Equal(t, models.SearchFilters{}, app.TaskService.SearchFilters())
}
