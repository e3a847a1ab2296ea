// Package colour provides accent colour selection logic.
package colour

// Minimum contrast requirement for the accent against the background
// (WCAG AA for large text / UI components).
const minAccentBgContrast = 3.0

// selectAccent picks the single accent colour for the theme.
//
// Candidates are scored on three factors:
//   - Saturation: accents should be the most colourful element on screen.
//   - Contrast with the background: at least 3:1 so interactive elements
//     stay visible.
//   - Hue distinction from the background: near-identical hues read as part
//     of the background, not as a highlight.
//
// When no candidate reaches the saturation floor (greyscale images), the
// accent is synthesised from the background hue rotated to a cool highlight.
func selectAccent(extracted []NamedColour, bg, fg NamedColour, theme ThemeType, config MaterialiseConfig) NamedColour {
	bestIdx := -1
	bestScore := 0.0

	for i, cc := range extracted {
		if cc.Hex == bg.Hex || cc.Hex == fg.Hex {
			continue
		}
		if cc.Saturation < config.MinAccentSaturation {
			continue
		}

		score := cc.Saturation * 3.0

		contrast := ContrastRatio(cc.Colour, bg.Colour)
		if contrast >= 4.5 {
			score += 2.0
		} else if contrast >= minAccentBgContrast {
			score += 1.0
		}

		// Hue distinction from the background.
		if HueDistance(cc.Hue, bg.Hue) > 30 {
			score += 1.0
		}

		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}

	if bestIdx < 0 {
		return generateSyntheticAccent(bg, theme, config)
	}

	accent := extracted[bestIdx]

	// Lift the accent towards the background contrast floor when the image
	// supplied a saturated but too-close colour.
	if ContrastRatio(accent.Colour, bg.Colour) < minAccentBgContrast {
		h, s, l := rgbToHSL(accent.RGB)
		_, lifted := adjustLuminanceForContrast(h, s, l, bg.Colour, minAccentBgContrast, theme, 20)
		boosted := newGeneratedColour(lifted)
		boosted.Weight = accent.Weight
		return boosted
	}

	accent.Role = RoleAccent
	return accent
}

// generateSyntheticAccent creates an accent for palettes with no saturated
// colours. The hue leans on the background when it carries any chroma,
// otherwise a neutral blue highlight is used.
func generateSyntheticAccent(bg NamedColour, theme ThemeType, config MaterialiseConfig) NamedColour {
	h, s, _ := rgbToHSL(bg.RGB)

	hue := h
	if s < 0.05 {
		hue = 210 // Neutral blue for pure greys.
	}

	var targetLum float64
	if theme == ThemeDark {
		targetLum = 0.65
	} else {
		targetLum = 0.40
	}

	_, rgb := adjustLuminanceForContrast(hue, 0.55, targetLum, bg.Colour, minAccentBgContrast, theme, 20)
	return newGeneratedColour(rgb)
}
