package data

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/dotoo/internal/cli"
	"github.com/thenoetrevino/dotoo/internal/datamanager"
)

// ImportCmd returns the data import subcommand
func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all data with a JSON export",
		Long: `Validate a JSON export and, when it is valid, replace every project and
task with its contents. A backup of the current data is taken first. Use - to
read from stdin.

Examples:
  dotoo data import dotoo-export-2025-03-14.json
  cat export.json | dotoo data import -
`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

// ValidateCmd returns the data validate subcommand
func ValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a JSON export without importing it",
		Args:  cobra.ExactArgs(1),
		RunE:  runValidate,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
		raw, err := readInput(args[0])
		if err != nil {
			return formatter.FailWith(cli.ExitDataErr, "READ_ERROR", fmt.Errorf("failed to read %s: %w", args[0], err), "")
		}
		return reportValidation(formatter, c.App.DataManager.Import(cmd.Context(), raw))
	})
}

func runValidate(cmd *cobra.Command, args []string) error {
	formatter := cli.Formatter(cmd)

	raw, err := readInput(args[0])
	if err != nil {
		return formatter.FailWith(cli.ExitDataErr, "READ_ERROR", fmt.Errorf("failed to read %s: %w", args[0], err), "")
	}
	return reportValidation(formatter, datamanager.ValidateImportData(raw))
}
