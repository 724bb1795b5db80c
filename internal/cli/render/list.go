package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/thenoetrevino/dotoo/internal/cli/styles"
	"github.com/thenoetrevino/dotoo/internal/views/list"
)

// Groups renders list groups under their headings. A single ungrouped
// "All Tasks" group is printed without a heading.
func Groups(groups []list.Group, now time.Time, warningDays int) string {
	if len(groups) == 0 {
		return styles.MutedStyle.Render("No tasks found")
	}

	var b strings.Builder
	headings := len(groups) > 1 || groups[0].Name != list.AllTasks
	for i, g := range groups {
		if headings {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(styles.SectionStyle.Render(fmt.Sprintf("%s (%d)", g.Name, len(g.Tasks))))
			b.WriteString("\n")
		}
		for _, t := range g.Tasks {
			b.WriteString("  ")
			b.WriteString(TaskLine(t, now, warningDays))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
