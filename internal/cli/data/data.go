// Package data holds the export, import and backup commands
//
// e.g., dotoo data ...
package data

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/dotoo/internal/cli"
	"github.com/thenoetrevino/dotoo/internal/cli/render"
	"github.com/thenoetrevino/dotoo/internal/datamanager"
)

// DataCmd returns the data parent command
func DataCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Export, import and back up dotoo data",
		Long:  "Move projects and tasks in and out of dotoo, and manage stored backups.",
	}

	cmd.AddCommand(ExportCmd())
	cmd.AddCommand(ImportCmd())
	cmd.AddCommand(ValidateCmd())
	cmd.AddCommand(BackupCmd())
	cmd.AddCommand(ClearCmd())
	cmd.AddCommand(StatsCmd())

	return cmd
}

// readInput reads path, or stdin when path is "-"
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// reportValidation prints a validation result and turns an invalid one into
// a data error
func reportValidation(formatter *cli.OutputFormatter, r datamanager.ValidationResult) error {
	switch {
	case formatter.JSON:
		if err := formatter.Success(r); err != nil {
			return err
		}
	case formatter.Quiet:
	default:
		fmt.Println(render.Validation(r))
	}
	if !r.IsValid {
		return cli.Exit(cli.ExitDataErr, fmt.Errorf("invalid data: %d errors", len(r.Errors)))
	}
	return nil
}
