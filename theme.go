package cycloid

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values, so the app
// automatically matches any color scheme.
type Theme struct {
	Label   int // Form field labels
	Warning int // Advisory messages
	Error   int // Blocking validation errors
	Success int // Equations generated
	Muted   int // Status bar, placeholders, axes
	Curve   int // Preview plot
	Accent  int // Headings, focused field
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Label:   4,
		Warning: 3,
		Error:   1,
		Success: 2,
		Muted:   8,
		Curve:   6,
		Accent:  5,
	}
}
