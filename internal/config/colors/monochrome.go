package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		Border:         "#585858",
		SelectedBorder: "#FFFFFF",

		Todo:  "#8A8A8A",
		Doing: "#D0D0D0",
		Done:  "#FFFFFF",

		PriorityLow:      "#585858",
		PriorityMedium:   "#8A8A8A",
		PriorityHigh:     "#D0D0D0",
		PriorityCritical: "#FFFFFF",

		Overdue: "#FFFFFF",
		DueSoon: "#D0D0D0",
		Today:   "#FFFFFF",

		InfoFg:    "#FFFFFF",
		WarningFg: "#FFFFFF",
		ErrorFg:   "#FFFFFF",
	}
}
