package domain

// Theme is the UI theme preference, persisted separately from the
// bookmark data.
type Theme string

// Theme values.
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
	ThemeAuto  Theme = "auto"
)

// DefaultTheme follows the system preference.
const DefaultTheme = ThemeAuto

// Valid reports whether t is a known theme value.
func (t Theme) Valid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeAuto:
		return true
	}
	return false
}
