package task

import (
	"strings"
	"time"

	"github.com/thenoetrevino/dotoo/internal/models"
)

// Filter returns the tasks of activeProjectID that satisfy every set
// predicate in f, in their original order. With no active project nothing
// matches. The input slice is not modified.
func Filter(tasks []*models.Task, activeProjectID string, f models.SearchFilters, now time.Time) []*models.Task {
	out := make([]*models.Task, 0, len(tasks))
	if activeProjectID == "" {
		return out
	}
	query := strings.ToLower(strings.TrimSpace(f.Query))

	for _, t := range tasks {
		if t.ProjectID != activeProjectID {
			continue
		}
		if query != "" && !strings.Contains(haystack(t), query) {
			continue
		}
		if f.Category != nil && t.Category != *f.Category {
			continue
		}
		if f.Priority != nil && t.Priority != *f.Priority {
			continue
		}
		if f.Status != nil && t.Status != *f.Status {
			continue
		}
		if len(f.Tags) > 0 && !hasAnyTag(t.Tags, f.Tags) {
			continue
		}
		if f.HasCode != nil && t.HasCode() != *f.HasCode {
			continue
		}
		if f.HasDueDate != nil && (t.DueDate != nil) != *f.HasDueDate {
			continue
		}
		if f.IsOverdue != nil && t.IsOverdue(now) != *f.IsOverdue {
			continue
		}
		if f.ProjectID != nil && t.ProjectID != *f.ProjectID {
			continue
		}
		if f.AssignedTo != nil && t.AssignedTo != *f.AssignedTo {
			continue
		}
		out = append(out, t)
	}
	return out
}

// haystack is the lowercased text a free-text query is matched against
func haystack(t *models.Task) string {
	parts := []string{t.Title, t.Description, strings.Join(t.Tags, " "), t.BranchName}
	return strings.ToLower(strings.Join(parts, "\n"))
}

func hasAnyTag(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}
