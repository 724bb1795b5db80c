package colors

// Dragon returns the Kanagawa Dragon color scheme (dark theme with warm earth tones)
func Dragon() *ColorScheme {
	return &ColorScheme{
		Preset: "dragon",

		// Primary accent color
		Accent: palette.dragonViolet,

		// Text colors
		Title:  palette.dragonBlue2,
		Subtle: palette.dragonAsh,
		Normal: palette.dragonWhite,

		// Board chrome
		Border:         palette.dragonBlack6,
		SelectedBorder: palette.dragonAqua,

		// Status colors
		Todo:  palette.dragonGray3,
		Doing: palette.dragonBlue2,
		Done:  palette.dragonGreen,

		// Priority colors
		PriorityLow:      palette.dragonGreen,
		PriorityMedium:   palette.dragonYellow,
		PriorityHigh:     palette.dragonOrange,
		PriorityCritical: palette.dragonRed,

		// Due dates
		Overdue: palette.dragonRed,
		DueSoon: palette.roninYellow,
		Today:   palette.dragonViolet,

		// Messages
		InfoFg:    palette.dragonBlue,
		WarningFg: palette.roninYellow,
		ErrorFg:   palette.samuraiRed,
	}
}
