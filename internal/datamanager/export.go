// Package datamanager exports, imports, validates and backs up the task and
// project collections.
package datamanager

import (
	"strings"
	"time"

	"github.com/thenoetrevino/dotoo/internal/models"
)

// CurrentVersion is stamped on every export
const CurrentVersion = "1.0.0"

// isoLayout matches JavaScript's Date.toISOString
const isoLayout = "2006-01-02T15:04:05.000Z07:00"

// Settings carries the UI preferences stored alongside tasks
type Settings struct {
	IsDarkMode    bool                 `json:"isDarkMode"`
	SearchFilters models.SearchFilters `json:"searchFilters"`
}

// ExportData is the portable bundle
type ExportData struct {
	Version         string            `json:"version"`
	ExportedAt      string            `json:"exportedAt"`
	ActiveProjectID string            `json:"activeProjectId,omitempty"`
	Projects        []*models.Project `json:"projects"`
	Tasks           []*models.Task    `json:"tasks"`
	Settings        *Settings         `json:"settings,omitempty"`
}

func iso(t time.Time) string {
	return t.UTC().Format(isoLayout)
}

var csvHeader = []string{"ID", "Title", "Description", "Category", "Priority", "Status", "Created", "Due Date", "Branch", "Tags", "Language"}

// CSV renders one row per task. Title, description, branch and tags are
// always quoted with inner quotes doubled; tags are joined with "; ".
func CSV(tasks []*models.Task) string {
	rows := make([]string, 0, len(tasks)+1)
	rows = append(rows, strings.Join(csvHeader, ","))
	for _, t := range tasks {
		due := ""
		if t.DueDate != nil {
			due = iso(*t.DueDate)
		}
		rows = append(rows, strings.Join([]string{
			t.ID,
			quote(t.Title),
			quote(t.Description),
			string(t.Category),
			string(t.Priority),
			string(t.Status),
			iso(t.CreatedAt),
			due,
			quote(t.BranchName),
			quote(strings.Join(t.Tags, "; ")),
			t.Language,
		}, ","))
	}
	return strings.Join(rows, "\n")
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
