package project

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/dotoo/internal/cli"
	"github.com/thenoetrevino/dotoo/internal/cli/huhforms"
	"github.com/thenoetrevino/dotoo/internal/models"
	projectservice "github.com/thenoetrevino/dotoo/internal/services/project"
)

// CreateCmd returns the project create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new project",
		Long: `Create a new project. Unset fields are filled from the project type's preset.

Examples:
  # Simple project (human-readable output)
  dotoo project create --name="Backend API"

  # JSON output for agents
  dotoo project create --name="Backend API" --type=development --json

  # Quiet mode for bash capture
  PROJECT_ID=$(dotoo project create --name="Backend API" --quiet)

  # Fill the fields in a form
  dotoo project create --interactive
`,
		RunE: runCreate,
	}

	cmd.Flags().String("name", "", "Project name (required unless --interactive)")
	cmd.Flags().String("description", "", "Project description")
	cmd.Flags().String("type", string(models.ProjectDevelopment), "Project type (development, design, marketing, research, personal, other)")
	cmd.Flags().String("view", "", "Default view (kanban, list, calendar, gantt, table, mindmap)")
	cmd.Flags().String("color", "", "Color in hex format #RRGGBB")
	cmd.Flags().String("icon", "", "Icon shown next to the name")
	cmd.Flags().BoolP("interactive", "i", false, "Fill the fields in a form")

	cli.AddOutputFlags(cmd)

	return cmd
}

// createInput is what the flags or the form collected
type createInput struct {
	name, description, projectType, view, color, icon string
}

func runCreate(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
		in := createInput{}
		in.name, _ = cmd.Flags().GetString("name")
		in.description, _ = cmd.Flags().GetString("description")
		in.projectType, _ = cmd.Flags().GetString("type")
		in.view, _ = cmd.Flags().GetString("view")
		in.color, _ = cmd.Flags().GetString("color")
		in.icon, _ = cmd.Flags().GetString("icon")

		if interactive, _ := cmd.Flags().GetBool("interactive"); interactive {
			if err := runCreateForm(c, &in); err != nil {
				return formatter.FailWith(cli.ExitError, "FORM_ERROR", err, "")
			}
		}

		req, err := buildCreateRequest(in)
		if err != nil {
			return formatter.FailWith(cli.ExitValidation, "VALIDATION_ERROR", err, "")
		}

		project, err := c.App.ProjectService.CreateProject(c.Context(), req)
		if err != nil {
			return formatter.Fail(err)
		}

		if formatter.JSON || formatter.Quiet {
			return formatter.Success(project)
		}

		fmt.Printf("✓ Project '%s' created successfully (ID: %s)\n", project.Name, project.ID)
		if c.App.ProjectService.ActiveProjectID() == project.ID {
			fmt.Println("  Now the active project")
		}
		return nil
	})
}

func buildCreateRequest(in createInput) (projectservice.CreateProjectRequest, error) {
	req := projectservice.CreateProjectRequest{
		Name:        in.name,
		Description: in.description,
		Color:       in.color,
		Icon:        in.icon,
	}
	if in.projectType != "" {
		pt, err := models.ParseProjectType(in.projectType)
		if err != nil {
			return req, err
		}
		req.Type = pt
	}
	if in.view != "" {
		vt, err := models.ParseViewType(in.view)
		if err != nil {
			return req, err
		}
		req.ViewType = vt
	}
	if in.color != "" {
		if err := cli.ValidateColorHex(in.color); err != nil {
			return req, err
		}
	}
	return req, nil
}

func runCreateForm(c *cli.CLI, in *createInput) error {
	typeOptions := make([]huh.Option[string], 0, len(models.ProjectTypes))
	for _, pt := range models.ProjectTypes {
		preset := models.PresetFor(pt)
		typeOptions = append(typeOptions, huh.NewOption(preset.Icon+" "+preset.Label, string(pt)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&in.name).
				Validate(func(s string) error {
					if s == "" {
						return models.ErrEmptyProjectName
					}
					return nil
				}),
			huh.NewText().
				Title("Description").
				Value(&in.description),
			huh.NewSelect[string]().
				Title("Type").
				Options(typeOptions...).
				Value(&in.projectType),
		),
	).WithTheme(huhforms.Theme(c.App.Config.ColorScheme))

	return form.Run()
}
