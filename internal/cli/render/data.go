package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/thenoetrevino/dotoo/internal/cli/styles"
	"github.com/thenoetrevino/dotoo/internal/datamanager"
)

// Backups renders the backup listing, newest first as given
func Backups(backups []datamanager.BackupInfo, now time.Time) string {
	if len(backups) == 0 {
		return styles.MutedStyle.Render("No backups found")
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d backups:\n\n", len(backups))
	for _, bk := range backups {
		age := bk.CreatedAt
		if t, err := time.Parse(time.RFC3339Nano, bk.CreatedAt); err == nil {
			age = humanize.RelTime(t, now, "ago", "from now")
		}
		fmt.Fprintf(&b, "  %s %s\n", styles.TitleStyle.Render(bk.Name), styles.MutedStyle.Render(bk.ID))
		fmt.Fprintf(&b, "    %d tasks, %s, %s\n", bk.TaskCount, humanize.Bytes(uint64(bk.Size)), age)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Stats renders storage usage
func Stats(s datamanager.DataStats) string {
	var b strings.Builder
	row := func(label, value string) {
		b.WriteString(styles.LabelStyle.Render(fmt.Sprintf("%-10s", label)) + " " + styles.ValueStyle.Render(value) + "\n")
	}
	row("Tasks:", fmt.Sprintf("%d", s.TaskCount))
	row("Projects:", fmt.Sprintf("%d", s.ProjectCount))
	row("Backups:", fmt.Sprintf("%d", s.BackupCount))
	row("Storage:", humanize.Bytes(uint64(s.StorageSize)))
	return strings.TrimRight(b.String(), "\n")
}

// Validation renders an import validation report
func Validation(r datamanager.ValidationResult) string {
	var b strings.Builder
	if r.IsValid {
		b.WriteString(styles.SuccessStyle.Render("✓ Data is valid"))
	} else {
		b.WriteString(styles.ErrorStyle.Render("✗ Data is invalid"))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "  Tasks: %d valid, %d invalid of %d\n", r.Stats.ValidTasks, r.Stats.InvalidTasks, r.Stats.TotalTasks)
	fmt.Fprintf(&b, "  Projects: %d valid, %d invalid of %d\n", r.Stats.ValidProjects, r.Stats.InvalidProjects, r.Stats.TotalProjects)
	for _, e := range r.Errors {
		b.WriteString("  " + styles.ErrorStyle.Render("error:") + " " + e + "\n")
	}
	for _, w := range r.Warnings {
		b.WriteString("  " + styles.WarningStyle.Render("warning:") + " " + w + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
