package data

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/dotoo/internal/cli"
	"github.com/thenoetrevino/dotoo/internal/cli/render"
	"github.com/thenoetrevino/dotoo/internal/datamanager"
)

// BackupCmd returns the backup parent command
func BackupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Manage stored backups",
	}

	cmd.AddCommand(backupCreateCmd())
	cmd.AddCommand(backupListCmd())
	cmd.AddCommand(backupRestoreCmd())
	cmd.AddCommand(backupDeleteCmd())
	cmd.AddCommand(backupCleanupCmd())

	return cmd
}

// ============================================================================
// CREATE / LIST
// ============================================================================

func backupCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Snapshot all projects and tasks",
		Long: `Store a snapshot of every project and task.

Examples:
  dotoo data backup create
  dotoo data backup create --name="Before cleanup"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
				name, _ := cmd.Flags().GetString("name")
				info, err := c.App.DataManager.CreateBackup(cmd.Context(), name)
				if errors.Is(err, datamanager.ErrNothingToExport) {
					return formatter.FailWith(cli.ExitUsage, "NOTHING_TO_BACKUP", err, "Create a project or task first")
				}
				if err != nil {
					return formatter.Fail(err)
				}

				if formatter.Quiet || formatter.JSON {
					return formatter.Success(info)
				}
				fmt.Printf("✓ Backup '%s' created (%s, %d tasks)\n", info.Name, info.ID, info.TaskCount)
				return nil
			})
		},
	}

	cmd.Flags().String("name", "", "Backup name (default: timestamp)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func backupListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List backups, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
				backups, err := c.App.DataManager.ListBackups(cmd.Context())
				if err != nil {
					return formatter.Fail(err)
				}

				if formatter.Quiet {
					for _, b := range backups {
						fmt.Println(b.ID)
					}
					return nil
				}
				if formatter.JSON {
					return formatter.Success(backups)
				}
				fmt.Println(render.Backups(backups, c.App.Now()))
				return nil
			})
		},
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

// ============================================================================
// RESTORE / DELETE / CLEANUP
// ============================================================================

func backupRestoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore <backup-id>",
		Short: "Replace all data with a backup",
		Long: `Replace every project and task with the contents of a backup. The current
data is backed up first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
				result := c.App.DataManager.RestoreBackup(cmd.Context(), args[0])
				if !result.IsValid && slices.Contains(result.Errors, "Backup not found") {
					return formatter.Fail(fmt.Errorf("%w: %s", datamanager.ErrBackupNotFound, args[0]))
				}
				return reportValidation(formatter, result)
			})
		},
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func backupDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <backup-id>",
		Short: "Delete a backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
				if err := c.App.DataManager.DeleteBackup(cmd.Context(), args[0]); err != nil {
					return formatter.Fail(err)
				}

				if formatter.JSON {
					return formatter.Success(map[string]interface{}{"id": args[0], "deleted": true})
				}
				if !formatter.Quiet {
					fmt.Printf("✓ Backup %s deleted\n", args[0])
				}
				return nil
			})
		},
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func backupCleanupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Delete all but the newest backups",
		Long:  "Delete every backup beyond the newest backups.keep (default 10).",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
				removed, err := c.App.DataManager.CleanupOldBackups(cmd.Context())
				if err != nil {
					return formatter.Fail(err)
				}

				if formatter.JSON {
					return formatter.Success(map[string]interface{}{"removed": removed})
				}
				if !formatter.Quiet {
					fmt.Printf("Removed %d old backups\n", removed)
				}
				return nil
			})
		},
	}

	cli.AddOutputFlags(cmd)

	return cmd
}
