package cli

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

// Run resolves the CLI for cmd, hands it to fn with a formatter built from
// the output flags, and closes it afterwards
func Run(cmd *cobra.Command, fn func(c *CLI, f *OutputFormatter) error) error {
	formatter := Formatter(cmd)

	cliInstance, err := GetCLIFromContext(cmd.Context())
	if err != nil {
		return formatter.FailWith(ExitError, "INITIALIZATION_ERROR", err, "")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	return fn(cliInstance, formatter)
}

// IDArg reads an id from the first positional argument or the --id flag
func IDArg(cmd *cobra.Command, args []string) string {
	if len(args) > 0 {
		return strings.TrimSpace(args[0])
	}
	id, _ := cmd.Flags().GetString("id")
	return strings.TrimSpace(id)
}

// RequireID fails with a usage error when no id was given
func RequireID(f *OutputFormatter, id, usage string) error {
	if id != "" {
		return nil
	}
	return f.FailWith(ExitUsage, "MISSING_ID", errors.New("an id is required"), "Usage: "+usage)
}
