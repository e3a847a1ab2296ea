// Package colour provides foreground colour selection logic.
package colour

// selectForeground selects the foreground colour for text on the background.
//
// Foreground must meet a minimum 4.5:1 contrast ratio with the background
// (WCAG AA for normal text). Hue is not considered; only contrast matters
// for readability. The colour with the highest contrast wins.
//
// Returns the index of the selected foreground colour, or -1 if the palette
// is empty. The returned index may still fall short of the minimum contrast
// for near-monochrome palettes; the caller decides whether to synthesise.
func selectForeground(extracted []NamedColour, bg NamedColour, config MaterialiseConfig) int {
	fgIdx := -1
	maxContrast := 0.0

	// Find colour with highest contrast that meets the minimum threshold.
	for i, cc := range extracted {
		if cc.Hex == bg.Hex {
			continue // Skip background itself
		}
		contrast := ContrastRatio(cc.Colour, bg.Colour)
		if contrast > maxContrast && contrast >= config.MinContrastRatio {
			maxContrast = contrast
			fgIdx = i
		}
	}

	// Fallback: use colour with highest contrast even if below threshold.
	if fgIdx < 0 {
		maxContrast = 0.0
		for i, cc := range extracted {
			if cc.Hex == bg.Hex {
				continue
			}
			contrast := ContrastRatio(cc.Colour, bg.Colour)
			if contrast > maxContrast {
				maxContrast = contrast
				fgIdx = i
			}
		}
	}

	return fgIdx
}

// generateSyntheticForeground creates a foreground colour when none can be
// extracted. Used for monochromatic images where all colours are too similar.
//
// The synthetic foreground keeps the background's hue for visual cohesion,
// starts at the opposite end of the luminance spectrum, and walks luminance
// until WCAG AA contrast is reached.
func generateSyntheticForeground(bg NamedColour, theme ThemeType, config MaterialiseConfig) NamedColour {
	h, s, _ := rgbToHSL(bg.RGB)

	// Target luminance at the opposite end of the spectrum.
	var targetLum float64
	if theme == ThemeDark {
		targetLum = 0.90
	} else {
		targetLum = 0.10
	}

	// Reduce saturation slightly for text (less visual vibration).
	targetSat := s * 0.7

	_, fgRGB := adjustLuminanceForContrast(h, targetSat, targetLum, bg.Colour, config.MinContrastRatio, theme, 20)

	return newGeneratedColour(fgRGB)
}
