package task

import (
	"errors"

	"github.com/thenoetrevino/dotoo/internal/models"
)

// Task-related errors
var (
	// Validation errors
	ErrEmptyTitle      = models.ErrEmptyTitle
	ErrTitleTooLong    = errors.New("task title cannot exceed 255 characters")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidCategory = errors.New("invalid category")

	// Precondition and reference errors: state is left untouched
	ErrNoActiveProject = errors.New("no active project")
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidPolicy   = errors.New("invalid orphan policy")
)
