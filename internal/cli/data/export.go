package data

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/dotoo/internal/cli"
)

// ExportCmd returns the data export subcommand
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all projects and tasks",
		Long: `Export every project and task. JSON exports can be imported again; CSV
exports hold tasks only.

Examples:
  dotoo data export > dotoo.json
  dotoo data export --format=csv --output=tasks.csv
  dotoo data export --output=auto
`,
		RunE: runExport,
	}

	cmd.Flags().String("format", "json", "Export format: json or csv")
	cmd.Flags().StringP("output", "o", "", "Write to a file instead of stdout (auto picks dotoo-export-<date>.<format>)")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")

		var content []byte
		switch format {
		case "json":
			data, err := c.App.DataManager.ExportJSON()
			if err != nil {
				return formatter.Fail(err)
			}
			content = append(data, '\n')
		case "csv":
			content = []byte(c.App.DataManager.ExportCSV())
		default:
			return formatter.FailWith(cli.ExitValidation, "INVALID_FORMAT",
				fmt.Errorf("invalid format '%s'", format), "Use --format=json or --format=csv")
		}

		if output == "" {
			_, err := os.Stdout.Write(content)
			return err
		}
		if output == "auto" {
			output = fmt.Sprintf("dotoo-export-%s.%s", c.App.Now().Format("2006-01-02"), format)
		}
		if err := os.WriteFile(output, content, 0o644); err != nil {
			return formatter.Fail(fmt.Errorf("failed to write export: %w", err))
		}
		fmt.Fprintf(os.Stderr, "Exported to %s\n", output)
		return nil
	})
}
