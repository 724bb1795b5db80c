package datamanager

import "errors"

var (
	// ErrBackupNotFound indicates the backup id has no stored snapshot
	ErrBackupNotFound = errors.New("backup not found")

	// ErrNothingToExport indicates there are no projects and no tasks
	ErrNothingToExport = errors.New("no data found to export")
)
