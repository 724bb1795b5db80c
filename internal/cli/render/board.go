package render

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/dotoo/internal/cli/styles"
	"github.com/thenoetrevino/dotoo/internal/views/kanban"
)

// BoardOptions describe the cursor and drag state to highlight
type BoardOptions struct {
	Width       int // total width; 0 means 3 x 32 columns
	Now         time.Time
	WarningDays int
	Cursor      *BoardCursor
	Lifted      string // id of the task being dragged
	Hovered     string // drop target id
}

// BoardCursor points at a card, or at an empty column when Task is -1
type BoardCursor struct {
	Column int
	Task   int
}

// Board renders the three status lanes side by side
func Board(cols []kanban.Column, opts BoardOptions) string {
	colWidth := 32
	if opts.Width > 0 && len(cols) > 0 {
		colWidth = max(16, opts.Width/len(cols)-1)
	}

	rendered := make([]string, len(cols))
	for i, col := range cols {
		rendered[i] = boardColumn(i, col, colWidth, opts)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func boardColumn(i int, col kanban.Column, width int, opts BoardOptions) string {
	var b strings.Builder

	header := fmt.Sprintf("%s (%d)", col.Title, len(col.Tasks))
	b.WriteString(styles.BoldColoredText(header, styles.StatusColor(col.Status)))
	b.WriteString("\n")

	if len(col.Tasks) == 0 {
		b.WriteString(styles.MutedStyle.Render("No tasks"))
	}
	for j, t := range col.Tasks {
		marker := "  "
		if opts.Cursor != nil && opts.Cursor.Column == i && opts.Cursor.Task == j {
			marker = "> "
		}
		if t.ID == opts.Lifted {
			marker = "* "
		}
		title := truncate(t.Title, width-6)
		line := marker + title
		b.WriteString("\n")
		b.WriteString(styles.ColoredText(line, styles.PriorityColor(t.Priority)))
		if t.DueDate != nil {
			b.WriteString("\n    ")
			b.WriteString(styles.MutedStyle.Render(DueLabel(t, opts.Now)))
		}
	}

	style := styles.ColumnStyle
	if opts.Hovered == col.Key || (opts.Cursor != nil && opts.Cursor.Column == i) {
		style = styles.SelectedStyle
	}
	return style.Width(width).Render(b.String())
}

func truncate(s string, n int) string {
	if n <= 1 {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
