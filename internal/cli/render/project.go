package render

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/dotoo/internal/cli/styles"
	"github.com/thenoetrevino/dotoo/internal/models"
)

// ProjectLine is the one-line summary of a project; the active one is starred
func ProjectLine(p *models.Project, activeID string) string {
	marker := "  "
	if p.ID == activeID {
		marker = styles.TodayStyle.Render("* ")
	}
	line := marker + styles.BoldColoredText(strings.TrimSpace(p.Icon+" "+p.Name), p.Color)
	line += " " + styles.MutedStyle.Render(fmt.Sprintf("[%s, %s] %s", p.Type, p.ViewType, p.ID))
	if p.Description != "" {
		line += " - " + styles.ValueStyle.Render(p.Description)
	}
	return line
}

// ProjectCard renders a project with its settings and task counts
func ProjectCard(p *models.Project, stats models.TaskStats) string {
	var b strings.Builder
	b.WriteString(styles.BoldColoredText(strings.TrimSpace(p.Icon+" "+p.Name), p.Color))
	b.WriteString("\n")
	b.WriteString(styles.SubtitleStyle.Render(p.ID))
	b.WriteString("\n\n")
	if p.Description != "" {
		b.WriteString(styles.ValueStyle.Render(p.Description))
		b.WriteString("\n\n")
	}
	row := func(label, value string) {
		b.WriteString(styles.LabelStyle.Render(label) + " " + styles.ValueStyle.Render(value) + "\n")
	}
	row("Type:", string(p.Type))
	row("View:", string(p.ViewType))
	row("Color:", p.Color)
	if p.Settings.DefaultCategory != "" || p.Settings.DefaultPriority != "" {
		row("Defaults:", fmt.Sprintf("%s / %s", p.Settings.DefaultCategory, p.Settings.DefaultPriority))
	}
	row("Features:", features(p.Settings))
	row("Tasks:", fmt.Sprintf("%d total, %d todo, %d doing, %d done, %d overdue",
		stats.Total, stats.Todo, stats.Doing, stats.Done, stats.Overdue))
	return styles.RenderCard(strings.TrimRight(b.String(), "\n"))
}

func features(s models.ProjectSettings) string {
	var on []string
	if s.EnableGitIntegration {
		on = append(on, "git")
	}
	if s.EnableCodeSnippets {
		on = append(on, "code")
	}
	if s.EnableTimeTracking {
		on = append(on, "time tracking")
	}
	if len(on) == 0 {
		return "none"
	}
	return strings.Join(on, ", ")
}
