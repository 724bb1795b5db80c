package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome", "wave")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Board chrome
	Border         string `yaml:"border"`
	SelectedBorder string `yaml:"selected_border"`

	// Status colors (board columns, gantt bars)
	Todo  string `yaml:"todo"`
	Doing string `yaml:"doing"`
	Done  string `yaml:"done"`

	// Priority colors
	PriorityLow      string `yaml:"priority_low"`
	PriorityMedium   string `yaml:"priority_medium"`
	PriorityHigh     string `yaml:"priority_high"`
	PriorityCritical string `yaml:"priority_critical"`

	// Due date highlighting
	Overdue string `yaml:"overdue"`
	DueSoon string `yaml:"due_soon"`
	Today   string `yaml:"today"`

	// Message colors
	InfoFg    string `yaml:"info_fg"`
	WarningFg string `yaml:"warning_fg"`
	ErrorFg   string `yaml:"error_fg"`
}

// Presets lists the built-in scheme names
var Presets = []string{"default", "monochrome", "wave", "dragon", "lotus"}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "wave":
		return Wave()
	case "dragon":
		return Dragon()
	case "lotus":
		return Lotus()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	p := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = p.Preset
	}

	fill(&c.Accent, p.Accent)
	fill(&c.Title, p.Title)
	fill(&c.Subtle, p.Subtle)
	fill(&c.Normal, p.Normal)
	fill(&c.Border, p.Border)
	fill(&c.SelectedBorder, p.SelectedBorder)
	fill(&c.Todo, p.Todo)
	fill(&c.Doing, p.Doing)
	fill(&c.Done, p.Done)
	fill(&c.PriorityLow, p.PriorityLow)
	fill(&c.PriorityMedium, p.PriorityMedium)
	fill(&c.PriorityHigh, p.PriorityHigh)
	fill(&c.PriorityCritical, p.PriorityCritical)
	fill(&c.Overdue, p.Overdue)
	fill(&c.DueSoon, p.DueSoon)
	fill(&c.Today, p.Today)
	fill(&c.InfoFg, p.InfoFg)
	fill(&c.WarningFg, p.WarningFg)
	fill(&c.ErrorFg, p.ErrorFg)
}

// MergeFrom overrides c with every non-empty value in other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	over(&c.Preset, other.Preset)
	over(&c.Accent, other.Accent)
	over(&c.Title, other.Title)
	over(&c.Subtle, other.Subtle)
	over(&c.Normal, other.Normal)
	over(&c.Border, other.Border)
	over(&c.SelectedBorder, other.SelectedBorder)
	over(&c.Todo, other.Todo)
	over(&c.Doing, other.Doing)
	over(&c.Done, other.Done)
	over(&c.PriorityLow, other.PriorityLow)
	over(&c.PriorityMedium, other.PriorityMedium)
	over(&c.PriorityHigh, other.PriorityHigh)
	over(&c.PriorityCritical, other.PriorityCritical)
	over(&c.Overdue, other.Overdue)
	over(&c.DueSoon, other.DueSoon)
	over(&c.Today, other.Today)
	over(&c.InfoFg, other.InfoFg)
	over(&c.WarningFg, other.WarningFg)
	over(&c.ErrorFg, other.ErrorFg)
}

func fill(dst *string, def string) {
	if *dst == "" {
		*dst = def
	}
}

func over(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
