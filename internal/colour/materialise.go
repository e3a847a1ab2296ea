// Package colour provides colour extraction and palette derivation for
// wallpaper-driven theming.
package colour

import (
	"encoding/json"
	"fmt"
	"image/color"
)

// NamedColour is a colour with its assigned role and derived properties.
type NamedColour struct {
	Colour      color.Color `json:"-"`
	Role        Role        `json:"role,omitempty"`
	Hex         string      `json:"hex"`
	RGB         RGB         `json:"rgb"`
	RGBA        RGBA        `json:"rgba"`
	Luminance   float64     `json:"luminance"`
	IsLight     bool        `json:"is_light"`
	Hue         float64     `json:"hue,omitempty"`        // HSL hue (0-360)
	Saturation  float64     `json:"saturation,omitempty"` // HSL saturation (0-1)
	Weight      float64     `json:"weight,omitempty"`     // extraction dominance
	IsGenerated bool        `json:"is_generated,omitempty"`
}

// NamedPalette is the fixed role-to-colour mapping derived from one image.
// It is ephemeral: recomputed fully on every run, never merged with a
// previous value.
type NamedPalette struct {
	Colours   map[Role]NamedColour `json:"colours"`
	ThemeType ThemeType            `json:"theme_type"`

	// Source holds the raw extracted clusters the roles were chosen from,
	// in descending dominance order.
	Source []NamedColour `json:"source,omitempty"`
}

// Get returns the colour for a role and whether it exists.
func (p *NamedPalette) Get(role Role) (NamedColour, bool) {
	c, ok := p.Colours[role]
	return c, ok
}

// Set assigns a colour to a role, stamping the role on the colour.
func (p *NamedPalette) Set(role Role, c NamedColour) {
	c.Role = role
	if p.Colours == nil {
		p.Colours = make(map[Role]NamedColour)
	}
	p.Colours[role] = c
}

// Hex returns the hex string for a role, or the empty string if absent.
func (p *NamedPalette) Hex(role Role) string {
	if c, ok := p.Colours[role]; ok {
		return c.Hex
	}
	return ""
}

// ToJSON serialises the palette with roles in a stable order.
func (p *NamedPalette) ToJSON() ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

// MaterialiseConfig holds tunables for role assignment.
type MaterialiseConfig struct {
	// MinContrastRatio is the minimum foreground/background contrast
	// (WCAG AA for normal text).
	MinContrastRatio float64

	// MinAccentSaturation is the saturation floor below which a colour is
	// not considered an accent candidate.
	MinAccentSaturation float64

	// SurfaceLuminanceShift is the tonal elevation step from background to
	// surface.
	SurfaceLuminanceShift float64

	// VariantLuminanceShift is the elevation step from background to
	// surface variant.
	VariantLuminanceShift float64
}

// DefaultMaterialiseConfig returns the default role assignment configuration.
func DefaultMaterialiseConfig() MaterialiseConfig {
	return MaterialiseConfig{
		MinContrastRatio:      4.5,
		MinAccentSaturation:   0.3,
		SurfaceLuminanceShift: 0.06,
		VariantLuminanceShift: 0.12,
	}
}

// Materialise assigns the fixed role set to colours drawn from a raw
// extracted palette. Every role is always populated: when the extraction is
// too uniform to supply a role (monochrome images), the missing colour is
// synthesised from the background hue and marked IsGenerated.
func Materialise(palette *Palette, themeType ThemeType, config MaterialiseConfig) (*NamedPalette, error) {
	if palette == nil || palette.Len() == 0 {
		return nil, fmt.Errorf("cannot materialise an empty palette")
	}

	extracted := annotate(palette)

	result := &NamedPalette{
		Colours: make(map[Role]NamedColour),
		Source:  extracted,
	}

	// Background anchors everything else and resolves ThemeAuto.
	bg, resolvedTheme := selectBackground(extracted, themeType)
	result.ThemeType = resolvedTheme
	result.Set(RoleBackground, bg)

	// Foreground: highest contrast against background, synthesised for
	// monochrome palettes.
	fgIdx := selectForeground(extracted, bg, config)
	var fg NamedColour
	if fgIdx >= 0 && ContrastRatio(extracted[fgIdx].Colour, bg.Colour) >= config.MinContrastRatio {
		fg = extracted[fgIdx]
	} else {
		fg = generateSyntheticForeground(bg, resolvedTheme, config)
	}
	result.Set(RoleForeground, fg)

	// Accent: the most distinctive saturated colour, synthesised when the
	// image is grey throughout.
	accent := selectAccent(extracted, bg, fg, resolvedTheme, config)
	result.Set(RoleAccent, accent)

	// Surfaces are tonal elevations of the background; onSurface guarantees
	// readable text on them.
	surface := generateSurface(bg, resolvedTheme, config.SurfaceLuminanceShift)
	result.Set(RoleSurface, surface)

	variant := generateSurface(bg, resolvedTheme, config.VariantLuminanceShift)
	result.Set(RoleSurfaceVariant, variant)

	onSurface := generateOnSurface(surface, fg, resolvedTheme)
	result.Set(RoleOnSurface, onSurface)

	return result, nil
}

// annotate converts raw palette colours into NamedColours with derived
// properties, preserving extraction order.
func annotate(palette *Palette) []NamedColour {
	out := make([]NamedColour, 0, palette.Len())
	for i, c := range palette.Colors {
		rgb := ToRGB(c)
		h, s, _ := rgbToHSL(rgb)
		lum := Luminance(c)
		out = append(out, NamedColour{
			Colour:     c,
			Hex:        rgb.Hex(),
			RGB:        rgb,
			RGBA:       RGBToRGBA(rgb),
			Luminance:  lum,
			IsLight:    lum > 0.5,
			Hue:        h,
			Saturation: s,
			Weight:     palette.Weight(i),
		})
	}
	return out
}

// newGeneratedColour builds a NamedColour for a synthesised RGB value.
func newGeneratedColour(rgb RGB) NamedColour {
	c := RGBToColor(rgb)
	h, s, _ := rgbToHSL(rgb)
	lum := Luminance(c)
	return NamedColour{
		Colour:      c,
		Hex:         rgb.Hex(),
		RGB:         rgb,
		RGBA:        RGBToRGBA(rgb),
		Luminance:   lum,
		IsLight:     lum > 0.5,
		Hue:         h,
		Saturation:  s,
		IsGenerated: true,
	}
}
