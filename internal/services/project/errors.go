package project

import (
	"errors"

	"github.com/thenoetrevino/dotoo/internal/models"
)

// Domain errors for project service
var (
	// Validation errors
	ErrEmptyName          = models.ErrEmptyProjectName
	ErrNameTooLong        = errors.New("project name cannot exceed 100 characters")
	ErrInvalidProjectType = errors.New("invalid project type")
	ErrInvalidViewType    = errors.New("invalid view type")

	// Reference errors: state is left untouched
	ErrProjectNotFound = errors.New("project not found")
)
