package colour

import "math"

// ansiReference holds the typical RGB value for a standard ANSI slot
// (xterm-256 basic colours). Used as matching anchors when mapping extracted
// clusters onto a terminal scheme.
type ansiReference struct {
	Slot    int
	Name    string
	R, G, B uint8
	Hue     float64
}

var ansiReferences = []ansiReference{
	{Slot: 1, Name: "red", R: 205, G: 49, B: 49, Hue: 0},
	{Slot: 2, Name: "green", R: 13, G: 188, B: 121, Hue: 150},
	{Slot: 3, Name: "yellow", R: 229, G: 229, B: 16, Hue: 60},
	{Slot: 4, Name: "blue", R: 36, G: 114, B: 200, Hue: 210},
	{Slot: 5, Name: "magenta", R: 188, G: 63, B: 188, Hue: 300},
	{Slot: 6, Name: "cyan", R: 17, G: 168, B: 205, Hue: 190},
}

// TerminalScheme derives a 16-slot ANSI colour scheme from a named palette.
//
// The structural slots come straight from the roles: color0/8 from the
// surface pair, color7/15 from the foreground. The six chromatic slots are
// matched against the raw extracted clusters by perceptual distance, so the
// terminal scheme inherits the wallpaper's actual hues; clusters without
// enough chroma fall back to the reference hue re-lit for the theme.
// Bright variants (9-14) are luminance lifts of their normal counterparts.
func TerminalScheme(palette *NamedPalette) [16]RGB {
	var scheme [16]RGB

	bg, _ := palette.Get(RoleBackground)
	fg, _ := palette.Get(RoleForeground)
	surface, _ := palette.Get(RoleSurface)
	variant, _ := palette.Get(RoleSurfaceVariant)

	scheme[0] = surface.RGB
	scheme[8] = variant.RGB

	// color7 is a dimmed foreground, color15 the full foreground.
	h, s, l := rgbToHSL(fg.RGB)
	if palette.ThemeType == ThemeDark {
		scheme[7] = HSLToRGB(h, s, math.Max(0, l-0.15))
	} else {
		scheme[7] = HSLToRGB(h, s, math.Min(1, l+0.15))
	}
	scheme[15] = fg.RGB

	for _, ref := range ansiReferences {
		base := matchChromaticSlot(palette.Source, ref, bg, palette.ThemeType)
		scheme[ref.Slot] = base
		scheme[ref.Slot+8] = brighten(base, palette.ThemeType)
	}

	return scheme
}

// matchChromaticSlot finds the extracted cluster closest to an ANSI
// reference colour. Clusters that are nearly grey cannot represent a
// chromatic slot, so the reference hue is synthesised instead, lit to stay
// readable on the background.
func matchChromaticSlot(source []NamedColour, ref ansiReference, bg NamedColour, theme ThemeType) RGB {
	bestDist := math.MaxFloat64
	var best *NamedColour

	for i := range source {
		cc := &source[i]
		if cc.Saturation < 0.15 {
			continue
		}
		// Hue gating keeps a blue cluster from claiming the red slot.
		if HueDistance(cc.Hue, ref.Hue) > 60 {
			continue
		}
		dist := colorDistance(ref.R, ref.G, ref.B, cc.RGB.R, cc.RGB.G, cc.RGB.B)
		if dist < bestDist {
			bestDist = dist
			best = cc
		}
	}

	if best != nil {
		return relight(best.RGB, theme)
	}

	// No cluster near this hue: synthesise from the reference hue with a
	// moderate saturation so the slot still fits the theme.
	var lum float64
	if theme == ThemeDark {
		lum = 0.60
	} else {
		lum = 0.40
	}
	_, rgb := adjustLuminanceForContrast(ref.Hue, 0.50, lum, bg.Colour, minAccentBgContrast, theme, 20)
	return rgb
}

// relight nudges a colour's lightness into the readable band for the theme
// without touching its hue.
func relight(rgb RGB, theme ThemeType) RGB {
	h, s, l := rgbToHSL(rgb)
	if theme == ThemeDark {
		if l < 0.45 {
			l = 0.45
		}
		if l > 0.80 {
			l = 0.80
		}
	} else {
		if l > 0.55 {
			l = 0.55
		}
		if l < 0.20 {
			l = 0.20
		}
	}
	return HSLToRGB(h, s, l)
}

// brighten produces the bright ANSI variant of a colour.
func brighten(rgb RGB, theme ThemeType) RGB {
	h, s, l := rgbToHSL(rgb)
	if theme == ThemeDark {
		return HSLToRGB(h, s, math.Min(0.95, l+0.12))
	}
	return HSLToRGB(h, s, math.Max(0.05, l-0.12))
}

// colorDistance calculates perceptual colour distance using a weighted
// Euclidean distance in RGB space (emphasises green like human perception).
func colorDistance(r1, g1, b1, r2, g2, b2 uint8) float64 {
	dr := float64(r1) - float64(r2)
	dg := float64(g1) - float64(g2)
	db := float64(b1) - float64(b2)
	return math.Sqrt(2*dr*dr + 4*dg*dg + 3*db*db)
}
