package task

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/dotoo/internal/cli"
	"github.com/thenoetrevino/dotoo/internal/models"
	taskservice "github.com/thenoetrevino/dotoo/internal/services/task"
	"github.com/thenoetrevino/dotoo/internal/user"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update a task",
		Long: `Update task fields. Only the flags you pass are changed.

Examples:
  dotoo task update <id> --title="New title" --priority=high
  dotoo task update <id> --due=2025-04-01
  dotoo task update <id> --clear-due
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("id", "", "Task ID or unique prefix (can also be provided as positional argument)")
	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description")
	cmd.Flags().String("code", "", "New code snippet")
	cmd.Flags().String("language", "", "New snippet language")
	cmd.Flags().String("category", "", "New category")
	cmd.Flags().String("priority", "", "New priority")
	cmd.Flags().String("status", "", "New status")
	cmd.Flags().String("due", "", "New due date (YYYY-MM-DD)")
	cmd.Flags().Bool("clear-due", false, "Remove the due date")
	cmd.Flags().String("branch", "", "New branch name")
	cmd.Flags().StringSlice("tags", nil, "Replace the tags")
	cmd.Flags().String("assign", "", "New assignee (me for yourself)")
	cmd.Flags().Float64("estimate", 0, "Estimated hours")
	cmd.Flags().Float64("actual", 0, "Hours spent")
	cmd.Flags().Int("order", 0, "Manual sort order")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
		id := cli.IDArg(cmd, args)
		if err := cli.RequireID(formatter, id, "dotoo task update <id> [flags]"); err != nil {
			return err
		}

		current, err := resolveTask(c, id)
		if err != nil {
			return formatter.Fail(err)
		}

		req, changed, err := buildUpdateRequest(cmd, c, current.ID)
		if err != nil {
			return formatter.FailWith(cli.ExitValidation, "VALIDATION_ERROR", err, "")
		}
		if !changed {
			return formatter.FailWith(cli.ExitUsage, "NO_UPDATES", errors.New("no fields to update"),
				"Pass at least one field flag, e.g. --title or --status")
		}

		task, err := c.App.TaskService.UpdateTask(c.Context(), req)
		if err != nil {
			return formatter.Fail(err)
		}

		if formatter.JSON || formatter.Quiet {
			return formatter.Success(task)
		}
		fmt.Printf("✓ Task '%s' updated\n", task.Title)
		return nil
	})
}

func buildUpdateRequest(cmd *cobra.Command, c *cli.CLI, id string) (taskservice.UpdateTaskRequest, bool, error) {
	flags := cmd.Flags()
	req := taskservice.UpdateTaskRequest{TaskID: id}
	changed := false

	str := func(name string) *string {
		if !flags.Changed(name) {
			return nil
		}
		changed = true
		v, _ := flags.GetString(name)
		return &v
	}
	req.Title = str("title")
	req.Description = str("description")
	req.Code = str("code")
	req.Language = str("language")
	req.BranchName = str("branch")
	if v := str("assign"); v != nil {
		resolved := user.ResolveAssignee(*v)
		req.AssignedTo = &resolved
	}

	if v := str("category"); v != nil {
		cat, err := models.ParseCategory(*v)
		if err != nil {
			return req, changed, err
		}
		req.Category = &cat
	}
	if v := str("priority"); v != nil {
		p, err := models.ParsePriority(*v)
		if err != nil {
			return req, changed, err
		}
		req.Priority = &p
	}
	if v := str("status"); v != nil {
		s, err := models.ParseStatus(*v)
		if err != nil {
			return req, changed, err
		}
		req.Status = &s
	}
	if v := str("due"); v != nil {
		due, err := cli.ParseDate(*v, c.App.Location)
		if err != nil {
			return req, changed, err
		}
		req.DueDate = &due
	}
	if clear, _ := flags.GetBool("clear-due"); clear {
		req.ClearDueDate = true
		changed = true
	}
	if flags.Changed("tags") {
		req.Tags, _ = flags.GetStringSlice("tags")
		if req.Tags == nil {
			req.Tags = []string{}
		}
		changed = true
	}
	for name, target := range map[string]**float64{"estimate": &req.EstimatedHours, "actual": &req.ActualHours} {
		if flags.Changed(name) {
			v, _ := flags.GetFloat64(name)
			*target = &v
			changed = true
		}
	}
	if flags.Changed("order") {
		v, _ := flags.GetInt("order")
		req.Order = &v
		changed = true
	}
	return req, changed, nil
}
