package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/thenoetrevino/dotoo/internal/cli/styles"
	"github.com/thenoetrevino/dotoo/internal/models"
	"github.com/thenoetrevino/dotoo/internal/views/calendar"
)

// CardOptions control how much of a task the card shows
type CardOptions struct {
	Now         time.Time
	WarningDays int
	Dark        bool
}

// DueLabel describes a due date relative to now, e.g. "Mar 14 (in 2 days)"
func DueLabel(t *models.Task, now time.Time) string {
	if t.DueDate == nil {
		return "no due date"
	}
	due := t.DueDate.In(now.Location())
	days := calendarDays(now, due)
	var rel string
	switch {
	case days == 0:
		rel = "today"
	case days == 1:
		rel = "tomorrow"
	case days < 0:
		rel = humanize.RelTime(due, now, "ago", "from now")
	default:
		rel = fmt.Sprintf("in %d days", days)
	}
	return fmt.Sprintf("%s (%s)", due.Format("Jan 2"), rel)
}

// TaskLine is the one-line summary used in lists and columns
func TaskLine(t *models.Task, now time.Time, warningDays int) string {
	parts := []string{
		styles.RenderStatus(t.Status),
		styles.RenderPriority(t.Priority),
		styles.ValueStyle.Render(t.Title),
	}
	if t.DueDate != nil {
		c := calendar.Classify(t, now, warningDays)
		parts = append(parts, styles.RenderDue("due "+DueLabel(t, now), c))
	}
	parts = append(parts, styles.MutedStyle.Render(shortID(t.ID)))
	return strings.Join(parts, " ")
}

// TaskCard renders every field of a task inside a bordered card
func TaskCard(t *models.Task, opts CardOptions) string {
	var content strings.Builder

	content.WriteString(styles.TitleStyle.Render(t.Title))
	content.WriteString("\n")
	content.WriteString(styles.SubtitleStyle.Render(t.ID))
	content.WriteString("\n\n")

	meta := fmt.Sprintf("%s %s  %s %s  %s %s",
		styles.LabelStyle.Render("Status:"), styles.RenderStatus(t.Status),
		styles.LabelStyle.Render("Priority:"), styles.RenderPriority(t.Priority),
		styles.LabelStyle.Render("Category:"), styles.ValueStyle.Render(string(t.Category)))
	content.WriteString(meta)
	content.WriteString("\n")

	field := func(label, value string) {
		if value == "" {
			return
		}
		content.WriteString(styles.LabelStyle.Render(label+":") + " " + value + "\n")
	}

	if t.DueDate != nil {
		c := calendar.Classify(t, opts.Now, opts.WarningDays)
		field("Due", styles.RenderDue(DueLabel(t, opts.Now), c))
	}
	field("Assigned", styles.ValueStyle.Render(t.AssignedTo))
	field("Branch", styles.ValueStyle.Render(t.BranchName))
	if t.EstimatedHours != nil || t.ActualHours != nil {
		field("Hours", styles.ValueStyle.Render(hours(t)))
	}
	if len(t.Tags) > 0 {
		tags := make([]string, len(t.Tags))
		for i, tag := range t.Tags {
			tags[i] = styles.RenderTag(tag)
		}
		field("Tags", strings.Join(tags, " "))
	}
	if len(t.Dependencies) > 0 {
		field("Depends on", styles.ValueStyle.Render(strings.Join(t.Dependencies, ", ")))
	}
	field("Parent", styles.ValueStyle.Render(t.ParentTaskID))
	field("Created", styles.ValueStyle.Render(humanize.RelTime(t.CreatedAt, opts.Now, "ago", "from now")))

	width := styles.CardWidth - 6
	if desc := Markdown(t.Description, opts.Dark, width); desc != "" {
		content.WriteString(styles.SectionStyle.Render("Description"))
		content.WriteString("\n")
		content.WriteString(desc)
		content.WriteString("\n")
	}
	if code := CodeBlock(t.Code, t.Language, opts.Dark, width); code != "" {
		content.WriteString(styles.SectionStyle.Render("Code"))
		content.WriteString("\n")
		content.WriteString(code)
		content.WriteString("\n")
	}

	return styles.RenderCard(strings.TrimRight(content.String(), "\n"))
}

// calendarDays counts day boundaries between a and b, ignoring the time of day
func calendarDays(a, b time.Time) int {
	da := time.Date(a.Year(), a.Month(), a.Day(), 12, 0, 0, 0, time.UTC)
	db := time.Date(b.Year(), b.Month(), b.Day(), 12, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}

func hours(t *models.Task) string {
	est, act := "-", "-"
	if t.EstimatedHours != nil {
		est = fmt.Sprintf("%.1f", *t.EstimatedHours)
	}
	if t.ActualHours != nil {
		act = fmt.Sprintf("%.1f", *t.ActualHours)
	}
	return act + " / " + est + " est"
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
