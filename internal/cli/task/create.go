package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/dotoo/internal/cli"
	"github.com/thenoetrevino/dotoo/internal/models"
	taskservice "github.com/thenoetrevino/dotoo/internal/services/task"
	"github.com/thenoetrevino/dotoo/internal/user"
)

// CreateCmd returns the task create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new task in the active project",
		Long: `Create a new task in the active project. Category and priority default to
the project's settings, and the branch name is derived from the title.

Examples:
  # Simple task (human-readable output)
  dotoo task create --title="Fix login bug" --category=bug

  # JSON output for agents
  dotoo task create --title="Write docs" --due=2025-03-20 --tags=docs,api --json

  # Quiet mode for bash capture
  TASK_ID=$(dotoo task create --title="Ship it" --quiet)
`,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("title", "", "Task title (required)")
	_ = cmd.MarkFlagRequired("title")

	// Optional flags
	cmd.Flags().String("description", "", "Task description (markdown)")
	cmd.Flags().String("code", "", "Code snippet")
	cmd.Flags().String("language", "", "Language of the code snippet")
	cmd.Flags().String("category", "", "Category (feature, bug, docs, refactor, test, chore)")
	cmd.Flags().String("priority", "", "Priority (low, medium, high, critical)")
	cmd.Flags().String("status", "", "Status (todo, doing, done)")
	cmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().String("branch", "", "Branch name (derived from the title when empty)")
	cmd.Flags().StringSlice("tags", nil, "Comma-separated tags")
	cmd.Flags().String("assign", "", "Assignee (me for yourself)")
	cmd.Flags().Float64("estimate", 0, "Estimated hours")
	cmd.Flags().StringSlice("depends", nil, "Comma-separated ids of tasks this one depends on")
	cmd.Flags().String("parent", "", "Parent task id")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
		req, err := buildCreateRequest(cmd, c)
		if err != nil {
			return formatter.FailWith(cli.ExitValidation, "VALIDATION_ERROR", err, "")
		}

		task, err := c.App.TaskService.AddTask(c.Context(), req)
		if err != nil {
			code, exit := cli.Classify(err)
			suggestion := ""
			if exit == cli.ExitUsage {
				suggestion = "Create a project first: dotoo project create --name=..."
			}
			return formatter.FailWith(exit, code, err, suggestion)
		}

		if formatter.JSON || formatter.Quiet {
			return formatter.Success(task)
		}

		fmt.Printf("✓ Task '%s' created successfully (ID: %s)\n", task.Title, task.ID)
		if task.BranchName != "" {
			fmt.Printf("  Branch: %s\n", task.BranchName)
		}
		return nil
	})
}

func buildCreateRequest(cmd *cobra.Command, c *cli.CLI) (taskservice.CreateTaskRequest, error) {
	flags := cmd.Flags()
	req := taskservice.CreateTaskRequest{}

	req.Title, _ = flags.GetString("title")
	req.Description, _ = flags.GetString("description")
	req.Code, _ = flags.GetString("code")
	req.Language, _ = flags.GetString("language")
	req.BranchName, _ = flags.GetString("branch")
	req.Tags, _ = flags.GetStringSlice("tags")
	assignee, _ := flags.GetString("assign")
	req.AssignedTo = user.ResolveAssignee(assignee)
	req.Dependencies, _ = flags.GetStringSlice("depends")
	req.ParentTaskID, _ = flags.GetString("parent")

	if v, _ := flags.GetString("category"); v != "" {
		cat, err := models.ParseCategory(v)
		if err != nil {
			return req, err
		}
		req.Category = cat
	}
	if v, _ := flags.GetString("priority"); v != "" {
		p, err := models.ParsePriority(v)
		if err != nil {
			return req, err
		}
		req.Priority = p
	}
	if v, _ := flags.GetString("status"); v != "" {
		s, err := models.ParseStatus(v)
		if err != nil {
			return req, err
		}
		req.Status = s
	}
	if v, _ := flags.GetString("due"); v != "" {
		due, err := cli.ParseDate(v, c.App.Location)
		if err != nil {
			return req, err
		}
		req.DueDate = &due
	}
	if flags.Changed("estimate") {
		est, _ := flags.GetFloat64("estimate")
		req.EstimatedHours = &est
	}
	return req, nil
}
