package models

import "errors"

// Validation errors shared by the stores and the CLI
var (
	// ErrEmptyTitle indicates a task title that is blank after trimming
	ErrEmptyTitle = errors.New("task title cannot be empty")

	// ErrEmptyProjectName indicates a project name that is blank after trimming
	ErrEmptyProjectName = errors.New("project name cannot be empty")
)
