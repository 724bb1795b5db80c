package task

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clipkg "github.com/thenoetrevino/dotoo/internal/cli"
	"github.com/thenoetrevino/dotoo/internal/models"
	"github.com/thenoetrevino/dotoo/internal/testutil"
	"github.com/thenoetrevino/dotoo/internal/testutil/cli"
)

func TestCreateTask_Positive(t *testing.T) {
	app := cli.SetupCLITest(t)

	t.Run("Create task with title only", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--title", "Fix login bug",
			"--quiet",
		})
		require.NoError(t, err)

		task, err := app.TaskService.GetTask(strings.TrimSpace(output))
		require.NoError(t, err)
		assert.Equal(t, "Fix login bug", task.Title)
		assert.Equal(t, app.ProjectService.ActiveProjectID(), task.ProjectID)
		assert.Equal(t, models.StatusTodo, task.Status)
	})

	t.Run("Create task with all fields", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--title", "Write docs",
			"--category", "docs",
			"--priority", "high",
			"--status", "doing",
			"--due", "2025-03-20",
			"--tags", "api,docs",
			"--assign", "robin",
			"--estimate", "2.5",
			"--json",
		})
		require.NoError(t, err)

		result := testutil.ParseJSON(t, output)
		data := result["data"].(map[string]interface{})
		task, err := app.TaskService.GetTask(data["id"].(string))
		require.NoError(t, err)

		assert.Equal(t, models.CategoryDocs, task.Category)
		assert.Equal(t, models.PriorityHigh, task.Priority)
		assert.Equal(t, models.StatusDoing, task.Status)
		assert.Equal(t, []string{"api", "docs"}, task.Tags)
		require.NotNil(t, task.EstimatedHours)
		assert.Equal(t, 2.5, *task.EstimatedHours)
		require.NotNil(t, task.DueDate)
		assert.Equal(t, time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC), task.DueDate.UTC())
	})
}

func TestCreateTask_AssignMe(t *testing.T) {
	t.Setenv("DOTOO_USER", "robin")
	app := cli.SetupCLITest(t)

	output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{"--title", "Mine", "--assign", "me", "--quiet"})
	require.NoError(t, err)

	task, err := app.TaskService.GetTask(strings.TrimSpace(output))
	require.NoError(t, err)
	assert.Equal(t, "robin", task.AssignedTo)
}

func TestCreateTask_Negative(t *testing.T) {
	app := cli.SetupCLITest(t)

	tests := []struct {
		name string
		args []string
		code int
	}{
		{"blank title", []string{"--title", "   "}, clipkg.ExitValidation},
		{"bad priority", []string{"--title", "x", "--priority", "urgent"}, clipkg.ExitValidation},
		{"bad status", []string{"--title", "x", "--status", "blocked"}, clipkg.ExitValidation},
		{"bad due date", []string{"--title", "x", "--due", "tomorrow"}, clipkg.ExitValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cli.ExecuteCLICommand(t, app, CreateCmd(), append(tt.args, "--json"))
			require.Error(t, err)
			assert.Equal(t, tt.code, clipkg.ExitCode(err))
		})
	}
	assert.Empty(t, app.TaskService.GetAllTasks())
}

func TestCreateTask_NoActiveProject(t *testing.T) {
	app := cli.SetupCLITest(t)
	require.NoError(t, app.ProjectService.SetActiveProject(context.Background(), ""))

	output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{"--title", "Orphan", "--json"})

	require.Error(t, err)
	assert.Equal(t, clipkg.ExitUsage, clipkg.ExitCode(err))
	assert.Contains(t, output, "NO_ACTIVE_PROJECT")
	assert.Empty(t, app.TaskService.GetAllTasks())
}

func TestListTasks(t *testing.T) {
	app := cli.SetupCLITest(t)
	a := cli.CreateTestTask(t, app, "Alpha")
	cli.CreateTestTask(t, app, "Beta")
	require.NoError(t, app.TaskService.UpdateTaskStatus(context.Background(), a.ID, models.StatusDone))

	output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--quiet"})
	require.NoError(t, err)
	assert.Len(t, strings.Fields(output), 2)

	output, err = cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--status", "done", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, a.ID, strings.TrimSpace(output))

	query := "beta"
	require.NoError(t, app.TaskService.SetSearchFilters(context.Background(), models.SearchFilters{Query: query}))
	output, err = cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--json"})
	require.NoError(t, err)
	assert.Len(t, testutil.ParseJSON(t, output)["tasks"], 1)

	output, err = cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--all", "--json"})
	require.NoError(t, err)
	assert.Len(t, testutil.ParseJSON(t, output)["tasks"], 2)
}

func TestShowTask(t *testing.T) {
	app := cli.SetupCLITest(t)
	task := cli.CreateTestTask(t, app, "Render markdown")

	t.Run("by prefix", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ShowCmd(), []string{task.ID[:8], "--json", "--select"})
		require.NoError(t, err)
		result := testutil.ParseJSON(t, output)
		assert.Equal(t, "normal", result["classification"])
		require.NotNil(t, app.TaskService.SelectedTask())
		assert.Equal(t, task.ID, app.TaskService.SelectedTask().ID)
	})

	t.Run("selected task without id", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ShowCmd(), []string{"--quiet"})
		require.NoError(t, err)
		assert.Equal(t, task.ID, strings.TrimSpace(output))
	})

	t.Run("missing", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, ShowCmd(), []string{"zzz-missing", "--json"})
		require.Error(t, err)
		assert.Equal(t, clipkg.ExitNotFound, clipkg.ExitCode(err))
	})
}

func TestUpdateTask(t *testing.T) {
	app := cli.SetupCLITest(t)
	task := cli.CreateTestTask(t, app, "Draft")

	_, err := cli.ExecuteCLICommand(t, app, UpdateCmd(), []string{
		task.ID, "--title", "Final", "--priority", "critical", "--due", "2025-04-01", "--tags", "release", "--quiet",
	})
	require.NoError(t, err)

	got, err := app.TaskService.GetTask(task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Final", got.Title)
	assert.Equal(t, models.PriorityCritical, got.Priority)
	assert.Equal(t, []string{"release"}, got.Tags)
	require.NotNil(t, got.DueDate)

	_, err = cli.ExecuteCLICommand(t, app, UpdateCmd(), []string{task.ID, "--clear-due", "--quiet"})
	require.NoError(t, err)
	got, _ = app.TaskService.GetTask(task.ID)
	assert.Nil(t, got.DueDate)

	_, err = cli.ExecuteCLICommand(t, app, UpdateCmd(), []string{task.ID, "--json"})
	require.Error(t, err)
	assert.Equal(t, clipkg.ExitUsage, clipkg.ExitCode(err))
}

func TestMoveTask(t *testing.T) {
	app := cli.SetupCLITest(t)
	a := cli.CreateTestTask(t, app, "Dragged")
	b := cli.CreateTestTask(t, app, "Target")
	require.NoError(t, app.TaskService.UpdateTaskStatus(context.Background(), b.ID, models.StatusDone))

	t.Run("onto a column", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, MoveCmd(), []string{a.ID, "doing", "--json"})
		require.NoError(t, err)
		data := testutil.ParseJSON(t, output)["data"].(map[string]interface{})
		assert.Equal(t, true, data["applied"])
		assert.Equal(t, "doing", data["status"])
	})

	t.Run("onto another task", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, MoveCmd(), []string{a.ID, b.ID, "--quiet"})
		require.NoError(t, err)
		got, _ := app.TaskService.GetTask(a.ID)
		assert.Equal(t, models.StatusDone, got.Status)
	})

	t.Run("onto itself", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, MoveCmd(), []string{a.ID, a.ID, "--json"})
		require.NoError(t, err)
		data := testutil.ParseJSON(t, output)["data"].(map[string]interface{})
		assert.Equal(t, false, data["applied"])
	})
}

func TestDeleteTask(t *testing.T) {
	app := cli.SetupCLITest(t)
	task := cli.CreateTestTask(t, app, "Temporary")

	_, err := cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{task.ID, "--force", "--quiet"})
	require.NoError(t, err)
	assert.Empty(t, app.TaskService.GetAllTasks())

	_, err = cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{task.ID, "--force", "--json"})
	require.Error(t, err)
	assert.Equal(t, clipkg.ExitNotFound, clipkg.ExitCode(err))
}

func TestStats(t *testing.T) {
	app := cli.SetupCLITest(t)
	cli.CreateTestTask(t, app, "One")

	output, err := cli.ExecuteCLICommand(t, app, StatsCmd(), []string{"--json"})
	require.NoError(t, err)
	data := testutil.ParseJSON(t, output)["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["total"])
	assert.Equal(t, float64(1), data["todo"])
}
