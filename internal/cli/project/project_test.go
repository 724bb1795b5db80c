package project

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clipkg "github.com/thenoetrevino/dotoo/internal/cli"
	"github.com/thenoetrevino/dotoo/internal/models"
	"github.com/thenoetrevino/dotoo/internal/testutil"
	"github.com/thenoetrevino/dotoo/internal/testutil/cli"
)

func TestCreateProject_Positive(t *testing.T) {
	app := cli.SetupCLITest(t)

	t.Run("Create project with name only", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--name", "New Project",
			"--quiet",
		})
		require.NoError(t, err)

		id := strings.TrimSpace(output)
		project, err := app.ProjectService.GetProject(id)
		require.NoError(t, err)
		assert.Equal(t, "New Project", project.Name)
		assert.Equal(t, models.ProjectDevelopment, project.Type)
		assert.Equal(t, models.PresetFor(models.ProjectDevelopment).Color, project.Color)
	})

	t.Run("Create project with type and view", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--name", "Reading",
			"--type", "research",
			"--view", "gantt",
			"--color", "#112233",
			"--json",
		})
		require.NoError(t, err)

		result := testutil.ParseJSON(t, output)
		assert.Equal(t, true, result["success"])
		data := result["data"].(map[string]interface{})
		assert.Equal(t, "research", data["type"])
		assert.Equal(t, "gantt", data["viewType"])
		assert.Equal(t, "#112233", data["color"])
	})
}

func TestCreateProject_Negative(t *testing.T) {
	app := cli.SetupCLITest(t)
	before := len(app.ProjectService.GetAllProjects())

	tests := []struct {
		name string
		args []string
		code int
	}{
		{"empty name", []string{"--name", "  "}, clipkg.ExitValidation},
		{"bad type", []string{"--name", "x", "--type", "hobby"}, clipkg.ExitValidation},
		{"bad color", []string{"--name", "x", "--color", "red"}, clipkg.ExitValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cli.ExecuteCLICommand(t, app, CreateCmd(), append(tt.args, "--json"))
			require.Error(t, err)
			assert.Equal(t, tt.code, clipkg.ExitCode(err))
		})
	}

	assert.Len(t, app.ProjectService.GetAllProjects(), before)
}

func TestListProjects(t *testing.T) {
	app := cli.SetupCLITest(t)
	_, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{"--name", "Garden", "--type", "personal", "--quiet"})
	require.NoError(t, err)

	output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--quiet"})
	require.NoError(t, err)
	assert.Len(t, strings.Fields(output), 2)

	output, err = cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--type", "personal", "--json"})
	require.NoError(t, err)
	result := testutil.ParseJSON(t, output)
	projects := result["projects"].([]interface{})
	require.Len(t, projects, 1)
	assert.Equal(t, "Garden", projects[0].(map[string]interface{})["name"])

	output, err = cli.ExecuteCLICommand(t, app, ListCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "Found 2 projects")
	assert.Contains(t, output, "Garden")
}

func TestShowProject_DefaultsToActive(t *testing.T) {
	app := cli.SetupCLITest(t)
	cli.CreateTestTask(t, app, "Say hello")

	output, err := cli.ExecuteCLICommand(t, app, ShowCmd(), []string{"--json"})
	require.NoError(t, err)

	result := testutil.ParseJSON(t, output)
	assert.Equal(t, true, result["active"])
	stats := result["stats"].(map[string]interface{})
	assert.Equal(t, float64(1), stats["total"])
}

func TestShowProject_NotFound(t *testing.T) {
	app := cli.SetupCLITest(t)

	output, err := cli.ExecuteCLICommand(t, app, ShowCmd(), []string{"missing", "--json"})

	require.Error(t, err)
	assert.Equal(t, clipkg.ExitNotFound, clipkg.ExitCode(err))
	assert.Contains(t, output, "PROJECT_NOT_FOUND")
}

func TestUpdateProject(t *testing.T) {
	app := cli.SetupCLITest(t)
	id := app.ProjectService.ActiveProjectID()

	_, err := cli.ExecuteCLICommand(t, app, UpdateCmd(), []string{
		id, "--name", "Renamed", "--view", "calendar", "--git=false", "--default-priority", "high", "--quiet",
	})
	require.NoError(t, err)

	p, err := app.ProjectService.GetProject(id)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", p.Name)
	assert.Equal(t, models.ViewCalendar, p.ViewType)
	assert.False(t, p.Settings.EnableGitIntegration)
	assert.Equal(t, models.PriorityHigh, p.Settings.DefaultPriority)

	_, err = cli.ExecuteCLICommand(t, app, UpdateCmd(), []string{id, "--json"})
	require.Error(t, err)
	assert.Equal(t, clipkg.ExitUsage, clipkg.ExitCode(err))
}

func TestUseAndDuplicate(t *testing.T) {
	app := cli.SetupCLITest(t)
	original := app.ProjectService.ActiveProjectID()

	output, err := cli.ExecuteCLICommand(t, app, DuplicateCmd(), []string{original, "--quiet"})
	require.NoError(t, err)
	copyID := strings.TrimSpace(output)
	assert.Equal(t, copyID, app.ProjectService.ActiveProjectID())

	dup, err := app.ProjectService.GetProject(copyID)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(dup.Name, "(Copy)"))

	_, err = cli.ExecuteCLICommand(t, app, UseCmd(), []string{original, "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, original, app.ProjectService.ActiveProjectID())

	_, err = cli.ExecuteCLICommand(t, app, UseCmd(), []string{"nope", "--json"})
	require.Error(t, err)
	assert.Equal(t, original, app.ProjectService.ActiveProjectID())
}

func TestDeleteProject_CascadesTasks(t *testing.T) {
	app := cli.SetupCLITest(t)
	id := app.ProjectService.ActiveProjectID()
	cli.CreateTestTask(t, app, "Goes away")

	_, err := cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{id, "--force", "--quiet"})
	require.NoError(t, err)

	_, err = app.ProjectService.GetProject(id)
	assert.Error(t, err)
	assert.Empty(t, app.TaskService.GetAllTasks())
}

func TestTypes(t *testing.T) {
	cmd := TypesCmd()
	testutil.SetupCobraCommand(cmd, []string{"--quiet"})

	output, err := testutil.ExecuteCommand(t, cmd)
	require.NoError(t, err)
	assert.Equal(t, len(models.ProjectTypes), len(strings.Fields(output)))
}
