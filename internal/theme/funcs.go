package theme

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/madder-sh/madder/internal/colour"
)

// TemplateFuncs returns the function set shared by every target template.
// Custom override templates get the same set, so a user template can use
// any role or format the built-in ones can.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		// Colour role access.
		"get":     getRoleFunc,
		"getSafe": getSafeRoleFunc,
		"has":     hasRoleFunc,

		// Format conversion.
		"hex":         hexFunc,
		"hexAlpha":    hexAlphaFunc,
		"hexNoHash":   hexNoHashFunc,
		"rgb":         rgbFunc,
		"rgba":        rgbaFunc,
		"rgbDecimal":  rgbDecimalFunc,
		"rgbaDecimal": rgbaDecimalFunc,
		"rgbSpaces":   rgbSpacesFunc,

		// Alpha manipulation.
		"withAlpha": withAlphaFunc,

		// Colour metadata.
		"role": roleFunc,

		// Palette metadata.
		"themeType": themeTypeFunc,
		"allRoles":  allRolesFunc,
		"allColors": allColorsFunc,
		"count":     countFunc,

		// String manipulation (custom wrappers for pipe-friendly argument order).
		"trimPrefix": trimPrefixFunc,
		"trimSuffix": trimSuffixFunc,
		"replace":    replaceFunc,
		"toLower":    strings.ToLower,
		"toUpper":    strings.ToUpper,
	}
}

// getRoleFunc returns a colour by role name.
// Panics if the role doesn't exist - use getSafe or has to check first.
func getRoleFunc(data any, roleName string) colour.ColorValue {
	ph := extractPaletteHelper(data)
	return ph.Get(colour.Role(roleName))
}

// getSafeRoleFunc returns a colour by role name with an existence check.
// Returns an error if the role doesn't exist (Go template convention).
func getSafeRoleFunc(data any, roleName string) (colour.ColorValue, error) {
	ph := extractPaletteHelper(data)
	cv, ok := ph.GetSafe(colour.Role(roleName))
	if !ok {
		return colour.ColorValue{}, fmt.Errorf("role %q not found", roleName)
	}
	return cv, nil
}

// hasRoleFunc checks if a role exists in the palette.
func hasRoleFunc(data any, roleName string) bool {
	ph := extractPaletteHelper(data)
	return ph.Has(colour.Role(roleName))
}

// extractPaletteHelper extracts the PaletteHelper from either *ThemeData or
// *PaletteHelper, so the same functions work for both template data shapes.
func extractPaletteHelper(data any) *colour.PaletteHelper {
	switch v := data.(type) {
	case *colour.ThemeData:
		return v.PaletteHelper
	case *colour.PaletteHelper:
		return v
	default:
		panic(fmt.Sprintf("expected *colour.ThemeData or *colour.PaletteHelper, got %T", data))
	}
}

// hexFunc returns the colour in #RRGGBB format.
func hexFunc(cv colour.ColorValue) string {
	return cv.Hex()
}

// hexAlphaFunc returns the colour in #RRGGBBAA format.
func hexAlphaFunc(cv colour.ColorValue) string {
	return cv.HexAlpha()
}

// hexNoHashFunc returns the colour in RRGGBB format (no # prefix).
func hexNoHashFunc(cv colour.ColorValue) string {
	return cv.HexNoHash()
}

// rgbFunc returns the colour in CSS rgb(r, g, b) format.
func rgbFunc(cv colour.ColorValue) string {
	return cv.RGB()
}

// rgbaFunc returns the colour in CSS rgba(r, g, b, a) format.
func rgbaFunc(cv colour.ColorValue) string {
	return cv.RGBA()
}

// rgbDecimalFunc returns the colour in "r,g,b" decimal format.
func rgbDecimalFunc(cv colour.ColorValue) string {
	return cv.RGBDecimal()
}

// rgbaDecimalFunc returns the colour in "r,g,b,a" decimal format.
func rgbaDecimalFunc(cv colour.ColorValue) string {
	return cv.Format(colour.FormatRGBADecimal)
}

// rgbSpacesFunc returns the colour in "r g b" space-separated format.
func rgbSpacesFunc(cv colour.ColorValue) string {
	return fmt.Sprintf("%d %d %d", cv.R(), cv.G(), cv.B())
}

// withAlphaFunc returns a copy of the colour with a custom alpha (0.0-1.0).
func withAlphaFunc(cv colour.ColorValue, alpha float64) colour.ColorValue {
	return cv.WithAlpha(alpha)
}

// roleFunc returns the role name of a colour.
func roleFunc(cv colour.ColorValue) string {
	return string(cv.Role())
}

// themeTypeFunc returns the theme type string ("dark" or "light").
func themeTypeFunc(data any) string {
	ph := extractPaletteHelper(data)
	return ph.ThemeTypeString()
}

// allRolesFunc returns all colour roles in presentation order.
func allRolesFunc(data any) []colour.Role {
	ph := extractPaletteHelper(data)
	return ph.AllRoles()
}

// allColorsFunc returns all colours in presentation order.
func allColorsFunc(data any) []colour.ColorValue {
	ph := extractPaletteHelper(data)
	return ph.AllColors()
}

// countFunc returns the total number of colours in the palette.
func countFunc(data any) int {
	ph := extractPaletteHelper(data)
	return ph.Count()
}

// trimPrefixFunc removes a prefix from a string (pipe-friendly argument order).
// Unlike strings.TrimPrefix, this takes the prefix first so it works in pipes:
//
//	{{ value | trimPrefix "#" }}
func trimPrefixFunc(prefix, s string) string {
	return strings.TrimPrefix(s, prefix)
}

// trimSuffixFunc removes a suffix from a string (pipe-friendly argument order).
func trimSuffixFunc(suffix, s string) string {
	return strings.TrimSuffix(s, suffix)
}

// replaceFunc replaces all occurrences of old with new (pipe-friendly argument order).
func replaceFunc(old, new, s string) string {
	return strings.ReplaceAll(s, old, new)
}
