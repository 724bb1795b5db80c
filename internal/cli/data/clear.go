package data

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/dotoo/internal/cli"
)

// ClearCmd returns the data clear subcommand
func ClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every project, task and backup",
		Long: `Delete every project and task. A pre-clear backup is taken first and kept;
all other backups are removed.

Examples:
  dotoo data clear
  dotoo data clear --yes
`,
		RunE: runClear,
	}

	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runClear(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !formatter.JSON && !formatter.Quiet {
			fmt.Print("Delete all projects, tasks and backups? (y/N): ")
			response, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if r := strings.ToLower(strings.TrimSpace(response)); r != "y" && r != "yes" {
				fmt.Println("Cancelled")
				return nil
			}
		}
		if !yes && (formatter.JSON || formatter.Quiet) {
			return formatter.FailWith(cli.ExitUsage, "CONFIRMATION_REQUIRED",
				errors.New("clearing data needs confirmation"), "Pass --yes")
		}

		if err := c.App.DataManager.ClearAllData(cmd.Context()); err != nil {
			return formatter.Fail(err)
		}

		if formatter.JSON {
			return formatter.Success(map[string]interface{}{"cleared": true})
		}
		if !formatter.Quiet {
			fmt.Println("✓ All data cleared")
		}
		return nil
	})
}
