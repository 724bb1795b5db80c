package data

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/dotoo/internal/cli"
	"github.com/thenoetrevino/dotoo/internal/cli/render"
)

// StatsCmd returns the data stats subcommand
func StatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show stored record counts and size",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
				st, err := c.App.DataManager.DataStats(cmd.Context())
				if err != nil {
					return formatter.Fail(err)
				}
				if formatter.JSON {
					return formatter.Success(st)
				}
				fmt.Println(render.Stats(st))
				return nil
			})
		},
	}

	cli.AddOutputFlags(cmd)

	return cmd
}
