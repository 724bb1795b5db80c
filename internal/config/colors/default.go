package colors

// Default returns the default color scheme (purple accent, tailwind status colors)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#874BFD",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Board chrome
		Border:         "#5F87D7",
		SelectedBorder: "#D75FD7",

		// Status
		Todo:  "#6B7280",
		Doing: "#3B82F6",
		Done:  "#10B981",

		// Priority
		PriorityLow:      "#22C55E",
		PriorityMedium:   "#EAB308",
		PriorityHigh:     "#F97316",
		PriorityCritical: "#EF4444",

		// Due dates
		Overdue: "#EF4444",
		DueSoon: "#F59E0B",
		Today:   "#874BFD",

		// Messages
		InfoFg:    "#5F87D7",
		WarningFg: "#F59E0B",
		ErrorFg:   "#FF0000",
	}
}
