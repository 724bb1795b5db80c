package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/dotoo/internal/datamanager"
	"github.com/thenoetrevino/dotoo/internal/models"
	projectservice "github.com/thenoetrevino/dotoo/internal/services/project"
	taskservice "github.com/thenoetrevino/dotoo/internal/services/task"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Storage errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Task not found, project not found, backup not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Invalid import files, corrupted backups.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Invalid priority values, invalid category values, invalid status,
	// or any case where input fails validation rules.
	ExitValidation = 5
)

// ExitCodeError carries a process exit code up to main
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error { return e.Err }

// Exit wraps err with an exit code
func Exit(code int, err error) error {
	return &ExitCodeError{Code: code, Err: err}
}

// ExitCode maps an error returned by a command to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	_, code := Classify(err)
	return code
}

// Classify maps a service error to an error code string and exit code
func Classify(err error) (string, int) {
	switch {
	case errors.Is(err, taskservice.ErrTaskNotFound):
		return "TASK_NOT_FOUND", ExitNotFound
	case errors.Is(err, projectservice.ErrProjectNotFound):
		return "PROJECT_NOT_FOUND", ExitNotFound
	case errors.Is(err, datamanager.ErrBackupNotFound):
		return "BACKUP_NOT_FOUND", ExitNotFound
	case errors.Is(err, taskservice.ErrNoActiveProject):
		return "NO_ACTIVE_PROJECT", ExitUsage
	case errors.Is(err, taskservice.ErrEmptyTitle),
		errors.Is(err, taskservice.ErrTitleTooLong),
		errors.Is(err, taskservice.ErrInvalidStatus),
		errors.Is(err, taskservice.ErrInvalidPriority),
		errors.Is(err, taskservice.ErrInvalidCategory),
		errors.Is(err, projectservice.ErrEmptyName),
		errors.Is(err, projectservice.ErrNameTooLong),
		errors.Is(err, projectservice.ErrInvalidProjectType),
		errors.Is(err, projectservice.ErrInvalidViewType),
		errors.Is(err, models.ErrEmptyTitle),
		errors.Is(err, models.ErrEmptyProjectName):
		return "VALIDATION_ERROR", ExitValidation
	}
	return "ERROR", ExitError
}
