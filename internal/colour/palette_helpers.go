// Package colour provides palette helper utilities for theme targets.
package colour

import (
	"fmt"
	"strings"
)

// ColorFormat represents different colour string formats.
type ColorFormat int

const (
	FormatHex         ColorFormat = iota // #RRGGBB
	FormatHexAlpha                       // #RRGGBBAA
	FormatRGB                            // rgb(r,g,b)
	FormatRGBA                           // rgba(r,g,b,a)
	FormatHexNoHash                      // RRGGBB (for Hyprland)
	FormatRGBDecimal                     // "r,g,b"
	FormatRGBADecimal                    // "r,g,b,a" decimal format
)

// ColorValue provides multiple format accessors for a single colour.
// This is the primary type templates interact with.
type ColorValue struct {
	role Role
	rgba RGBA
}

// NewColorValue creates a ColorValue from RGBA with role metadata.
func NewColorValue(rgba RGBA, role Role) ColorValue {
	return ColorValue{
		role: role,
		rgba: rgba,
	}
}

// WithAlpha returns a copy of the ColorValue with custom alpha (0.0-1.0).
// Useful for creating transparent variants in templates.
func (cv ColorValue) WithAlpha(alpha float64) ColorValue {
	newCV := cv
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	newCV.rgba.A = uint8(alpha * 255.0)
	return newCV
}

// Format returns the colour in the specified format.
func (cv ColorValue) Format(format ColorFormat) string {
	switch format {
	case FormatHex:
		return cv.rgba.Hex()
	case FormatHexAlpha:
		return cv.rgba.HexAlpha()
	case FormatRGB:
		return cv.rgba.CSSRgb()
	case FormatRGBA:
		return cv.rgba.CSSRgba()
	case FormatHexNoHash:
		return strings.TrimPrefix(cv.rgba.Hex(), "#")
	case FormatRGBDecimal:
		return fmt.Sprintf("%d,%d,%d", cv.rgba.R, cv.rgba.G, cv.rgba.B)
	case FormatRGBADecimal:
		return fmt.Sprintf("%d,%d,%d,%.2f", cv.rgba.R, cv.rgba.G, cv.rgba.B, cv.rgba.AlphaFloat())
	default:
		return cv.rgba.Hex()
	}
}

// Convenience accessors for common formats.
func (cv ColorValue) Hex() string        { return cv.Format(FormatHex) }
func (cv ColorValue) HexAlpha() string   { return cv.Format(FormatHexAlpha) }
func (cv ColorValue) RGB() string        { return cv.Format(FormatRGB) }
func (cv ColorValue) RGBA() string       { return cv.Format(FormatRGBA) }
func (cv ColorValue) HexNoHash() string  { return cv.Format(FormatHexNoHash) }
func (cv ColorValue) RGBDecimal() string { return cv.Format(FormatRGBDecimal) }

// Role returns the palette role this colour fills.
func (cv ColorValue) Role() Role { return cv.role }

// Component accessors (for advanced template use).
func (cv ColorValue) R() uint8            { return cv.rgba.R }
func (cv ColorValue) G() uint8            { return cv.rgba.G }
func (cv ColorValue) B() uint8            { return cv.rgba.B }
func (cv ColorValue) A() uint8            { return cv.rgba.A }
func (cv ColorValue) AlphaFloat() float64 { return cv.rgba.AlphaFloat() }

// PaletteHelper provides uniform palette access for theme targets, so each
// target does not reimplement role lookup and formatting.
type PaletteHelper struct {
	palette *NamedPalette
	colors  map[Role]ColorValue
}

// NewPaletteHelper creates a helper for the given named palette.
// Called once per target render.
func NewPaletteHelper(palette *NamedPalette) *PaletteHelper {
	ph := &PaletteHelper{
		palette: palette,
		colors:  make(map[Role]ColorValue, len(palette.Colours)),
	}

	for role, cc := range palette.Colours {
		ph.colors[role] = ColorValue{
			role: role,
			rgba: cc.RGBA,
		}
	}

	return ph
}

// Get returns the colour for a role. Panics if the role doesn't exist; the
// materialiser guarantees all six roles, so a miss is a programming error.
func (ph *PaletteHelper) Get(role Role) ColorValue {
	if cv, ok := ph.colors[role]; ok {
		return cv
	}
	panic(fmt.Sprintf("colour role %q not found in palette", role))
}

// GetSafe returns the colour for a role with an existence flag.
func (ph *PaletteHelper) GetSafe(role Role) (ColorValue, bool) {
	cv, ok := ph.colors[role]
	return cv, ok
}

// Has checks if a role exists in the palette.
func (ph *PaletteHelper) Has(role Role) bool {
	_, ok := ph.colors[role]
	return ok
}

// GetWithFallback returns the colour for a role or parses a fallback hex
// string when the role is missing.
func (ph *PaletteHelper) GetWithFallback(role Role, fallbackHex string) ColorValue {
	if cv, ok := ph.colors[role]; ok {
		return cv
	}
	rgb, err := ParseHex(fallbackHex)
	if err != nil {
		rgb = RGB{}
	}
	return ColorValue{
		role: role,
		rgba: RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255},
	}
}

// AllRoles returns the roles present in presentation order.
func (ph *PaletteHelper) AllRoles() []Role {
	var result []Role
	for _, role := range AllRoles() {
		if ph.Has(role) {
			result = append(result, role)
		}
	}
	return result
}

// AllColors returns all colours in presentation order.
func (ph *PaletteHelper) AllColors() []ColorValue {
	roles := ph.AllRoles()
	out := make([]ColorValue, 0, len(roles))
	for _, role := range roles {
		out = append(out, ph.colors[role])
	}
	return out
}

// Count returns the number of colours in the palette.
func (ph *PaletteHelper) Count() int {
	return len(ph.colors)
}

// ThemeType returns the resolved theme type.
func (ph *PaletteHelper) ThemeType() ThemeType {
	return ph.palette.ThemeType
}

// ThemeTypeString returns the theme type as a string ("dark" or "light").
func (ph *PaletteHelper) ThemeTypeString() string {
	return ph.palette.ThemeType.String()
}

// Palette returns the underlying named palette.
func (ph *PaletteHelper) Palette() *NamedPalette {
	return ph.palette
}
