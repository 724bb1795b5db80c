package styles

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/dotoo/internal/config"
	"github.com/thenoetrevino/dotoo/internal/config/colors"
	"github.com/thenoetrevino/dotoo/internal/models"
	"github.com/thenoetrevino/dotoo/internal/views/calendar"
)

var (
	// Scheme is the palette the styles below were built from
	Scheme config.ColorScheme

	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Status:", "Priority:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Description", "Code"

	// Layout styles
	ColumnStyle   lipgloss.Style
	SelectedStyle lipgloss.Style
	TodayStyle    lipgloss.Style
	MutedStyle    lipgloss.Style

	// Feedback styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
)

func init() {
	Init(*colors.Default())
}

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	Scheme = colors

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent)).
		Bold(true).
		MarginTop(1)

	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Border)).
		Padding(0, 1)

	SelectedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.SelectedBorder)).
		Padding(0, 1)

	TodayStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Today))

	MutedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.InfoFg))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.ErrorFg))

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.WarningFg))
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// BoldColoredText renders bold text with a hex color
func BoldColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// StatusColor picks the palette entry for a status
func StatusColor(s models.Status) string {
	switch s {
	case models.StatusDoing:
		return Scheme.Doing
	case models.StatusDone:
		return Scheme.Done
	}
	return Scheme.Todo
}

// PriorityColor picks the palette entry for a priority
func PriorityColor(p models.Priority) string {
	switch p {
	case models.PriorityCritical:
		return Scheme.PriorityCritical
	case models.PriorityHigh:
		return Scheme.PriorityHigh
	case models.PriorityMedium:
		return Scheme.PriorityMedium
	}
	return Scheme.PriorityLow
}

// RenderStatus renders a status as a colored chip
func RenderStatus(s models.Status) string {
	return BoldColoredText("["+s.Label()+"]", StatusColor(s))
}

// RenderPriority renders a priority as a colored chip
func RenderPriority(p models.Priority) string {
	return BoldColoredText("["+string(p)+"]", PriorityColor(p))
}

// RenderDue colors a due label by how close the deadline is
func RenderDue(text string, c calendar.Classification) string {
	switch c {
	case calendar.Overdue:
		return ColoredText(text, Scheme.Overdue)
	case calendar.Warning:
		return ColoredText(text, Scheme.DueSoon)
	}
	return ValueStyle.Render(text)
}

// RenderTag renders a tag as "#name"
func RenderTag(tag string) string {
	return ColoredText("#"+tag, Scheme.Accent)
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}
