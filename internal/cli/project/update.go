package project

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/dotoo/internal/cli"
	"github.com/thenoetrevino/dotoo/internal/models"
	projectservice "github.com/thenoetrevino/dotoo/internal/services/project"
)

// UpdateCmd returns the project update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update a project",
		Long: `Update project fields. Only the flags you pass are changed.

Examples:
  dotoo project update <id> --name="Renamed"
  dotoo project update <id> --view=calendar --git=false
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("id", "", "Project ID (can also be provided as positional argument)")
	cmd.Flags().String("name", "", "New name")
	cmd.Flags().String("description", "", "New description")
	cmd.Flags().String("type", "", "New project type")
	cmd.Flags().String("view", "", "New default view")
	cmd.Flags().String("color", "", "New color (#RRGGBB)")
	cmd.Flags().String("icon", "", "New icon")
	cmd.Flags().String("default-category", "", "Default category for new tasks")
	cmd.Flags().String("default-priority", "", "Default priority for new tasks")
	cmd.Flags().Bool("git", false, "Enable git integration")
	cmd.Flags().Bool("code", false, "Enable code snippets")
	cmd.Flags().Bool("time-tracking", false, "Enable time tracking")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
		id := cli.IDArg(cmd, args)
		if err := cli.RequireID(formatter, id, "dotoo project update <id> [flags]"); err != nil {
			return err
		}

		current, err := c.App.ProjectService.GetProject(id)
		if err != nil {
			return formatter.Fail(fmt.Errorf("project '%s': %w", id, err))
		}

		req, err := buildUpdateRequest(cmd, current)
		if err != nil {
			return formatter.FailWith(cli.ExitValidation, "VALIDATION_ERROR", err, "")
		}
		if !hasChanges(cmd) {
			return formatter.FailWith(cli.ExitUsage, "NO_UPDATES", errors.New("no fields to update"),
				"Pass at least one of --name, --description, --type, --view, --color, --icon")
		}

		project, err := c.App.ProjectService.UpdateProject(c.Context(), req)
		if err != nil {
			return formatter.Fail(err)
		}

		if formatter.JSON || formatter.Quiet {
			return formatter.Success(project)
		}
		fmt.Printf("✓ Project '%s' updated\n", project.Name)
		return nil
	})
}

var updateFlags = []string{
	"name", "description", "type", "view", "color", "icon",
	"default-category", "default-priority", "git", "code", "time-tracking",
}

func hasChanges(cmd *cobra.Command) bool {
	for _, name := range updateFlags {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

func buildUpdateRequest(cmd *cobra.Command, current *models.Project) (projectservice.UpdateProjectRequest, error) {
	flags := cmd.Flags()
	req := projectservice.UpdateProjectRequest{ID: current.ID}

	str := func(name string) *string {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetString(name)
		return &v
	}
	req.Name = str("name")
	req.Description = str("description")
	req.Icon = str("icon")

	if v := str("color"); v != nil {
		if err := cli.ValidateColorHex(*v); err != nil {
			return req, err
		}
		req.Color = v
	}
	if v := str("type"); v != nil {
		pt, err := models.ParseProjectType(*v)
		if err != nil {
			return req, err
		}
		req.Type = &pt
	}
	if v := str("view"); v != nil {
		vt, err := models.ParseViewType(*v)
		if err != nil {
			return req, err
		}
		req.ViewType = &vt
	}

	settings := current.Settings
	settingsChanged := false
	if v := str("default-category"); v != nil {
		cat, err := models.ParseCategory(*v)
		if err != nil {
			return req, err
		}
		settings.DefaultCategory = cat
		settingsChanged = true
	}
	if v := str("default-priority"); v != nil {
		p, err := models.ParsePriority(*v)
		if err != nil {
			return req, err
		}
		settings.DefaultPriority = p
		settingsChanged = true
	}
	for name, target := range map[string]*bool{
		"git":           &settings.EnableGitIntegration,
		"code":          &settings.EnableCodeSnippets,
		"time-tracking": &settings.EnableTimeTracking,
	} {
		if flags.Changed(name) {
			*target, _ = flags.GetBool(name)
			settingsChanged = true
		}
	}
	if settingsChanged {
		req.Settings = &settings
	}
	return req, nil
}
