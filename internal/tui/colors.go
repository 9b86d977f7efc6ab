package tui

// Color constants for the taskmaster TUI theme
const (
	// Base Colors
	ColorCardBackground = "#1B1530" // Dark purple
	ColorBorder         = "#3A3F55" // Grey-blue

	// Text Colors
	ColorPrimaryText   = "#E6EAF2" // Primary text (titles, user input)
	ColorSecondaryText = "#B1B8C7" // Secondary text - purple-tinted grey
	ColorDisabledText  = "#6D7383" // Disabled/muted text
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors
	ColorAccentMain   = "#7C3AED" // Accent elements, active borders
	ColorAccentBright = "#A78BFA" // Highlights, selected rows

	// State Colors
	ColorError   = "#EF4444" // Errors
	ColorSuccess = "#22C55E" // Success, done column
	ColorWarning = "#F59E0B" // Warnings, in-progress column
)
