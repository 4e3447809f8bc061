package sidebar

// Theme is the color scheme preference driven by the theme toggle.
type Theme string

const (
	// ThemeSystem follows the operating system preference.
	ThemeSystem Theme = "system"
	// ThemeLight forces the light scheme.
	ThemeLight Theme = "light"
	// ThemeDark forces the dark scheme.
	ThemeDark Theme = "dark"
)

// ParseTheme returns the theme named by s, falling back to ThemeSystem.
func ParseTheme(s string) Theme {
	switch Theme(s) {
	case ThemeLight, ThemeDark:
		return Theme(s)
	default:
		return ThemeSystem
	}
}

// Next is the theme selected by one click on the toggle.
func (t Theme) Next() Theme {
	switch t {
	case ThemeLight:
		return ThemeDark
	case ThemeDark:
		return ThemeSystem
	default:
		return ThemeLight
	}
}

// Icon is the glyph representing the theme.
func (t Theme) Icon() Icon {
	switch t {
	case ThemeLight:
		return IconSun
	case ThemeDark:
		return IconMoon
	default:
		return IconMonitor
	}
}

// Label is the human readable theme name.
func (t Theme) Label() string {
	switch t {
	case ThemeLight:
		return "Light"
	case ThemeDark:
		return "Dark"
	default:
		return "System"
	}
}
