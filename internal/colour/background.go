// Package colour provides background colour selection logic.
package colour

// selectBackground selects the background colour based on theme type.
//
// Background is the base colour of the theme, used for the largest surface
// area, so it is chosen by extraction dominance:
//   - ThemeAuto: the most dominant colour wins and its luminance decides the
//     theme (>= 0.5 light, < 0.5 dark).
//   - ThemeDark: the most dominant dark colour (luminance < 0.5), falling
//     back to the darkest colour when none qualifies.
//   - ThemeLight: the most dominant light colour (luminance >= 0.5), falling
//     back to the lightest colour when none qualifies.
func selectBackground(extracted []NamedColour, themeType ThemeType) (NamedColour, ThemeType) {
	if len(extracted) == 0 {
		return NamedColour{}, themeType
	}

	// For ThemeAuto: determine theme based on most dominant colour.
	if themeType == ThemeAuto {
		maxWeight := 0.0
		maxWeightIdx := 0
		for i, c := range extracted {
			if c.Weight > maxWeight {
				maxWeight = c.Weight
				maxWeightIdx = i
			}
		}

		const luminanceThreshold = 0.5
		if extracted[maxWeightIdx].Luminance >= luminanceThreshold {
			themeType = ThemeLight
		} else {
			themeType = ThemeDark
		}

		bg := extracted[maxWeightIdx]
		bg.Role = RoleBackground
		return bg, themeType
	}

	// For explicit theme type: select most dominant colour of appropriate luminance.
	maxWeight := 0.0
	maxWeightIdx := -1

	if themeType == ThemeDark {
		for i, c := range extracted {
			if c.Luminance < 0.5 && c.Weight > maxWeight {
				maxWeight = c.Weight
				maxWeightIdx = i
			}
		}
		// Fallback: if no dark colours, use darkest colour.
		if maxWeightIdx == -1 {
			minLuminance := 2.0
			for i, c := range extracted {
				if c.Luminance < minLuminance {
					minLuminance = c.Luminance
					maxWeightIdx = i
				}
			}
		}
	} else {
		for i, c := range extracted {
			if c.Luminance >= 0.5 && c.Weight > maxWeight {
				maxWeight = c.Weight
				maxWeightIdx = i
			}
		}
		// Fallback: if no light colours, use lightest colour.
		if maxWeightIdx == -1 {
			maxLuminance := -1.0
			for i, c := range extracted {
				if c.Luminance > maxLuminance {
					maxLuminance = c.Luminance
					maxWeightIdx = i
				}
			}
		}
	}

	if maxWeightIdx == -1 {
		maxWeightIdx = 0
	}

	bg := extracted[maxWeightIdx]
	bg.Role = RoleBackground
	return bg, themeType
}
