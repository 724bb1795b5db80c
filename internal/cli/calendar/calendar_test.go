package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clipkg "github.com/thenoetrevino/dotoo/internal/cli"
	"github.com/thenoetrevino/dotoo/internal/models"
	taskservice "github.com/thenoetrevino/dotoo/internal/services/task"
	"github.com/thenoetrevino/dotoo/internal/testutil"
	"github.com/thenoetrevino/dotoo/internal/testutil/cli"
)

func TestCalendar_MonthJSON(t *testing.T) {
	app := cli.SetupCLITest(t)
	ctx := context.Background()
	due, err := app.TaskService.AddTask(ctx, taskservice.CreateTaskRequest{Title: "Demo day", DueDate: testutil.Due(1)})
	require.NoError(t, err)
	late, err := app.TaskService.AddTask(ctx, taskservice.CreateTaskRequest{Title: "Late", DueDate: testutil.Due(-2)})
	require.NoError(t, err)
	undated := cli.CreateTestTask(t, app, "Someday")

	output, err := cli.ExecuteCLICommand(t, app, CalendarCmd(), []string{"--json"})
	require.NoError(t, err)

	data := testutil.ParseJSON(t, output)["data"].(map[string]interface{})
	assert.Equal(t, "March 2025", data["header"])
	assert.Equal(t, float64(2), data["taskCount"])
	assert.Equal(t, []interface{}{late.ID}, data["overdue"])
	assert.Equal(t, []interface{}{due.ID}, data["dueSoon"])
	assert.Equal(t, []interface{}{undated.ID}, data["noDueDate"])

	days := data["days"].([]interface{})
	assert.Zero(t, len(days)%7)
	for _, d := range days {
		day := d.(map[string]interface{})
		if day["date"] == "2025-03-15" {
			assert.Equal(t, []interface{}{due.ID}, day["tasks"])
			assert.Equal(t, "day-2025-03-15", day["key"])
		}
	}
}

func TestCalendar_Navigation(t *testing.T) {
	app := cli.SetupCLITest(t)

	tests := []struct {
		args   []string
		header string
	}{
		{[]string{"--offset", "1"}, "April 2025"},
		{[]string{"--date", "2025-01-31", "--offset", "1"}, "February 2025"},
		{[]string{"--zoom", "week"}, "Mar 9 - Mar 15, 2025"},
		{[]string{"--zoom", "year", "--offset", "-1"}, "2024"},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			output, err := cli.ExecuteCLICommand(t, app, CalendarCmd(), append(tt.args, "--json"))
			require.NoError(t, err)
			data := testutil.ParseJSON(t, output)["data"].(map[string]interface{})
			assert.Equal(t, tt.header, data["header"])
		})
	}
}

func TestCalendar_InvalidZoom(t *testing.T) {
	app := cli.SetupCLITest(t)

	_, err := cli.ExecuteCLICommand(t, app, CalendarCmd(), []string{"--zoom", "decade", "--json"})

	require.Error(t, err)
	assert.Equal(t, clipkg.ExitValidation, clipkg.ExitCode(err))
}

func TestCalendar_HideCompleted(t *testing.T) {
	app := cli.SetupCLITest(t)
	ctx := context.Background()
	done, err := app.TaskService.AddTask(ctx, taskservice.CreateTaskRequest{Title: "Finished", Status: models.StatusDone, DueDate: testutil.Due(0)})
	require.NoError(t, err)

	output, err := cli.ExecuteCLICommand(t, app, CalendarCmd(), []string{"--quiet"})
	require.NoError(t, err)
	assert.Contains(t, output, done.ID)

	output, err = cli.ExecuteCLICommand(t, app, CalendarCmd(), []string{"--hide-completed", "--quiet"})
	require.NoError(t, err)
	assert.NotContains(t, output, done.ID)
}

func TestCalendar_HumanOutput(t *testing.T) {
	app := cli.SetupCLITest(t)
	_, err := app.TaskService.AddTask(context.Background(), taskservice.CreateTaskRequest{Title: "Standup", DueDate: testutil.Due(0)})
	require.NoError(t, err)

	output, err := cli.ExecuteCLICommand(t, app, CalendarCmd(), nil)
	require.NoError(t, err)

	assert.Contains(t, output, "March 2025")
	assert.Contains(t, output, "Standup")
}

func TestReschedule(t *testing.T) {
	app := cli.SetupCLITest(t)
	task := cli.CreateTestTask(t, app, "Move me")

	_, err := cli.ExecuteCLICommand(t, app, RescheduleCmd(), []string{task.ID, "2025-03-20", "--quiet"})
	require.NoError(t, err)

	got, err := app.TaskService.GetTask(task.ID)
	require.NoError(t, err)
	require.NotNil(t, got.DueDate)
	assert.Equal(t, time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC), got.DueDate.UTC())

	_, err = cli.ExecuteCLICommand(t, app, RescheduleCmd(), []string{task.ID, "day-2025-04-02", "--quiet"})
	require.NoError(t, err)
	got, _ = app.TaskService.GetTask(task.ID)
	assert.Equal(t, 2, got.DueDate.Day())

	_, err = cli.ExecuteCLICommand(t, app, RescheduleCmd(), []string{"missing", "2025-03-20", "--json"})
	require.Error(t, err)
	assert.Equal(t, clipkg.ExitNotFound, clipkg.ExitCode(err))
}
