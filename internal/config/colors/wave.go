package colors

// Wave returns the Kanagawa Wave color scheme (dark theme with blue/purple accents)
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",

		// Primary accent color
		Accent: palette.oniViolet,

		// Text colors
		Title:  palette.crystalBlue,
		Subtle: palette.fujiGray,
		Normal: palette.fujiWhite,

		// Board chrome
		Border:         palette.sumiInk6,
		SelectedBorder: palette.waveAqua2,

		// Status colors
		Todo:  palette.katanaGray,
		Doing: palette.springBlue,
		Done:  palette.springGreen,

		// Priority colors
		PriorityLow:      palette.springGreen,
		PriorityMedium:   palette.carpYellow,
		PriorityHigh:     palette.surimiOrange,
		PriorityCritical: palette.peachRed,

		// Due dates
		Overdue: palette.waveRed,
		DueSoon: palette.roninYellow,
		Today:   palette.oniViolet,

		// Messages
		InfoFg:    palette.dragonBlue,
		WarningFg: palette.roninYellow,
		ErrorFg:   palette.samuraiRed,
	}
}
