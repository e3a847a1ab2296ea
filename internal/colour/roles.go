package colour

import "fmt"

// Role identifies a named slot in the derived palette. The set is fixed:
// every materialised palette carries exactly these six roles.
type Role string

const (
	// RoleBackground is the base colour of the theme, covering the largest
	// surface area (desktop, window backgrounds).
	RoleBackground Role = "background"

	// RoleForeground is the primary text colour on the background.
	RoleForeground Role = "foreground"

	// RoleAccent is the highlight colour for interactive elements.
	RoleAccent Role = "accent"

	// RoleSurface is a tonal elevation of the background for panels and cards.
	RoleSurface Role = "surface"

	// RoleSurfaceVariant is a further elevation step for nested containers.
	RoleSurfaceVariant Role = "surfaceVariant"

	// RoleOnSurface is the text colour guaranteed readable on surface.
	RoleOnSurface Role = "onSurface"
)

// AllRoles returns every role in presentation order.
func AllRoles() []Role {
	return []Role{
		RoleBackground,
		RoleForeground,
		RoleAccent,
		RoleSurface,
		RoleSurfaceVariant,
		RoleOnSurface,
	}
}

// IsValidRole checks whether the given string names a known role.
func IsValidRole(s string) bool {
	for _, r := range AllRoles() {
		if Role(s) == r {
			return true
		}
	}
	return false
}

// ThemeType represents the light/dark disposition of a derived palette.
type ThemeType int

const (
	// ThemeAuto detects the theme from the dominant colour's luminance.
	ThemeAuto ThemeType = iota

	// ThemeDark forces a dark background selection.
	ThemeDark

	// ThemeLight forces a light background selection.
	ThemeLight
)

// String returns the theme type as a lowercase string.
func (t ThemeType) String() string {
	switch t {
	case ThemeDark:
		return "dark"
	case ThemeLight:
		return "light"
	default:
		return "auto"
	}
}

// ParseThemeType parses a theme type string ("auto", "dark" or "light").
func ParseThemeType(s string) (ThemeType, error) {
	switch s {
	case "auto", "":
		return ThemeAuto, nil
	case "dark":
		return ThemeDark, nil
	case "light":
		return ThemeLight, nil
	default:
		return ThemeAuto, fmt.Errorf("invalid theme type %q (valid: auto, dark, light)", s)
	}
}

// MarshalJSON encodes the theme type as its string form.
func (t ThemeType) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", t.String())), nil
}

// UnmarshalJSON decodes the theme type from its string form.
func (t *ThemeType) UnmarshalJSON(data []byte) error {
	var s string
	if _, err := fmt.Sscanf(string(data), "%q", &s); err != nil {
		return fmt.Errorf("invalid theme type value %s: %w", data, err)
	}
	parsed, err := ParseThemeType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
