// Package colour provides surface colour generation.
package colour

// generateSurface creates a surface colour as a tonal elevation of the
// background. Dark themes elevate by lightening, light themes by darkening,
// which creates subtle depth without breaking the background's hue.
//
// The shift parameter is the luminance step: the surface role uses a small
// step, the surface variant a larger one.
func generateSurface(bg NamedColour, theme ThemeType, shift float64) NamedColour {
	h, s, l := rgbToHSL(bg.RGB)

	var newL float64
	if theme == ThemeDark {
		newL = l + shift
		// Cap to prevent too-bright surfaces in dark themes.
		if newL > 0.25+shift {
			newL = 0.25 + shift
		}
	} else {
		newL = l - shift
		// Cap to prevent too-dark surfaces in light themes.
		if newL < 0.75-shift {
			newL = 0.75 - shift
		}
	}

	// Slightly reduce saturation for surfaces (more neutral).
	newS := s * 0.9
	if newS < 0.05 {
		newS = 0.05
	}

	surface := newGeneratedColour(HSLToRGB(h, newS, newL))
	surface.Weight = bg.Weight
	return surface
}

// generateOnSurface creates a readable text colour for surface. The
// foreground is reused when it already meets WCAG AA contrast on the
// surface; otherwise its luminance is walked until AAA contrast is reached.
func generateOnSurface(surface, fg NamedColour, theme ThemeType) NamedColour {
	contrast := ContrastRatio(fg.Colour, surface.Colour)
	if contrast >= 4.5 {
		onSurface := fg
		onSurface.Role = RoleOnSurface
		return onSurface
	}

	h, s, l := rgbToHSL(fg.RGB)
	_, rgb := adjustLuminanceForContrast(h, s, l, surface.Colour, 7.0, theme, 20)
	return newGeneratedColour(rgb)
}
