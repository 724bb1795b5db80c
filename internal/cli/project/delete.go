package project

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/dotoo/internal/cli"
)

// DeleteCmd returns the project delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a project",
		Long: `Delete a project. What happens to its tasks depends on orphan_policy in the
config: cascade (delete them), reassign (move them to the next active project)
or keep (leave them orphaned).`,
		Args: cobra.MaximumNArgs(1),
		RunE: runDelete,
	}

	cmd.Flags().String("id", "", "Project ID (can also be provided as positional argument)")
	cmd.Flags().BoolP("force", "f", false, "Skip confirmation")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
		id := cli.IDArg(cmd, args)
		if err := cli.RequireID(formatter, id, "dotoo project delete <id>"); err != nil {
			return err
		}

		project, err := c.App.ProjectService.GetProject(id)
		if err != nil {
			return formatter.Fail(fmt.Errorf("project '%s': %w", id, err))
		}

		force, _ := cmd.Flags().GetBool("force")
		if !force && !formatter.JSON && !formatter.Quiet {
			fmt.Printf("Delete project '%s'? (y/N): ", project.Name)
			var response string
			_, _ = fmt.Scanln(&response)
			if response != "y" && response != "Y" {
				fmt.Println("Cancelled")
				return nil
			}
		}

		if err := c.App.ProjectService.DeleteProject(c.Context(), id); err != nil {
			return formatter.Fail(err)
		}

		if formatter.JSON || formatter.Quiet {
			return formatter.Success(project)
		}
		fmt.Printf("✓ Project '%s' deleted\n", project.Name)
		if active := c.App.ProjectService.ActiveProject(); active != nil {
			fmt.Printf("  Active project is now '%s'\n", active.Name)
		} else {
			fmt.Println("  No active project")
		}
		return nil
	})
}
