package project

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/dotoo/internal/cli"
)

// DuplicateCmd returns the project duplicate subcommand
func DuplicateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "duplicate <id>",
		Short: "Copy a project's settings into a new, active project",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDuplicate,
	}

	cmd.Flags().String("id", "", "Project ID (can also be provided as positional argument)")
	cmd.Flags().String("name", "", "Name of the copy (defaults to '<name> (Copy)')")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDuplicate(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
		id := cli.IDArg(cmd, args)
		if err := cli.RequireID(formatter, id, "dotoo project duplicate <id> [--name=...]"); err != nil {
			return err
		}

		source, err := c.App.ProjectService.GetProject(id)
		if err != nil {
			return formatter.Fail(fmt.Errorf("project '%s': %w", id, err))
		}
		name, _ := cmd.Flags().GetString("name")
		if name == "" {
			name = source.Name + " (Copy)"
		}

		project, err := c.App.ProjectService.DuplicateProject(c.Context(), id, name)
		if err != nil {
			return formatter.Fail(err)
		}

		if formatter.JSON || formatter.Quiet {
			return formatter.Success(project)
		}
		fmt.Printf("✓ Project '%s' duplicated as '%s' (ID: %s)\n", source.Name, project.Name, project.ID)
		return nil
	})
}
