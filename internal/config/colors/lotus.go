package colors

// Lotus returns the Kanagawa Lotus color scheme (light theme)
func Lotus() *ColorScheme {
	return &ColorScheme{
		Preset: "lotus",

		Accent: palette.lotusViolet4,

		Title:  palette.lotusBlue4,
		Subtle: palette.lotusGray3,
		Normal: palette.lotusInk1,

		Border:         palette.lotusViolet1,
		SelectedBorder: palette.lotusTeal1,

		Todo:  palette.lotusGray3,
		Doing: palette.lotusBlue4,
		Done:  palette.lotusGreen,

		PriorityLow:      palette.lotusGreen,
		PriorityMedium:   palette.lotusYellow,
		PriorityHigh:     palette.lotusOrange,
		PriorityCritical: palette.lotusRed,

		Overdue: palette.lotusRed2,
		DueSoon: palette.lotusOrange,
		Today:   palette.lotusViolet4,

		InfoFg:    palette.lotusTeal1,
		WarningFg: palette.lotusOrange,
		ErrorFg:   palette.lotusRed,
	}
}
