// Package task holds all cli commands related to tasks
//
// e.g., dotoo task ...
package task

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/dotoo/internal/cli"
	"github.com/thenoetrevino/dotoo/internal/models"
	taskservice "github.com/thenoetrevino/dotoo/internal/services/task"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks in the active project",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(StatsCmd())

	return cmd
}

// resolveTask finds a task by full id or by a unique id prefix, which is
// what the human-readable listings print
func resolveTask(c *cli.CLI, id string) (*models.Task, error) {
	if t, err := c.App.TaskService.GetTask(id); err == nil {
		return t, nil
	}

	var match *models.Task
	for _, t := range c.App.TaskService.GetAllTasks() {
		if !strings.HasPrefix(t.ID, id) {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("id prefix '%s' is ambiguous", id)
		}
		match = t
	}
	if match == nil {
		return nil, fmt.Errorf("task '%s': %w", id, taskservice.ErrTaskNotFound)
	}
	return match, nil
}
