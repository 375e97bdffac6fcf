package views

// Theme is the colour scheme a page renders with
type Theme string

// Supported themes
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"

	// ThemeCookie persists the visitor's choice
	ThemeCookie = "theme"
)

// ParseTheme reads a cookie value; anything unknown is light
func ParseTheme(value string) Theme {
	if Theme(value) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// Toggle returns the other theme
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
