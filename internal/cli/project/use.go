package project

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/dotoo/internal/cli"
)

// UseCmd returns the project use subcommand
func UseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "use <id>",
		Short: "Switch the active project",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runUse,
	}

	cmd.Flags().String("id", "", "Project ID (can also be provided as positional argument)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runUse(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
		id := cli.IDArg(cmd, args)
		if err := cli.RequireID(formatter, id, "dotoo project use <id>"); err != nil {
			return err
		}

		// the store accepts any id, the CLI insists on a real one
		project, err := c.App.ProjectService.GetProject(id)
		if err != nil {
			return formatter.Fail(fmt.Errorf("project '%s': %w", id, err))
		}
		if err := c.App.ProjectService.SetActiveProject(c.Context(), id); err != nil {
			return formatter.Fail(err)
		}

		if formatter.JSON || formatter.Quiet {
			return formatter.Success(project)
		}
		fmt.Printf("✓ Now using project '%s'\n", project.Name)
		return nil
	})
}
