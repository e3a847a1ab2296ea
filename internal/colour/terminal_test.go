package colour

import (
	"testing"
)

func terminalTestPalette(t *testing.T) *NamedPalette {
	t.Helper()
	np, err := Materialise(tokyoNight(), ThemeAuto, DefaultMaterialiseConfig())
	if err != nil {
		t.Fatalf("Materialise() error = %v", err)
	}
	return np
}

func TestTerminalSchemeStructuralSlots(t *testing.T) {
	np := terminalTestPalette(t)
	scheme := TerminalScheme(np)

	surface, _ := np.Get(RoleSurface)
	variant, _ := np.Get(RoleSurfaceVariant)
	fg, _ := np.Get(RoleForeground)

	if scheme[0] != surface.RGB {
		t.Errorf("color0 = %s, want surface %s", scheme[0].Hex(), surface.RGB.Hex())
	}
	if scheme[8] != variant.RGB {
		t.Errorf("color8 = %s, want surface variant %s", scheme[8].Hex(), variant.RGB.Hex())
	}
	if scheme[15] != fg.RGB {
		t.Errorf("color15 = %s, want foreground %s", scheme[15].Hex(), fg.RGB.Hex())
	}
}

func TestTerminalSchemeDimForeground(t *testing.T) {
	np := terminalTestPalette(t)
	scheme := TerminalScheme(np)

	dim := Luminance(RGBToColor(scheme[7]))
	full := Luminance(RGBToColor(scheme[15]))

	// Dark theme: color7 sits below the full foreground.
	if np.ThemeType != ThemeDark {
		t.Fatalf("test palette resolved %s, want dark", np.ThemeType)
	}
	if dim >= full {
		t.Errorf("color7 luminance %.3f not below color15 %.3f", dim, full)
	}
}

func TestTerminalSchemeBrightVariants(t *testing.T) {
	np := terminalTestPalette(t)
	scheme := TerminalScheme(np)

	for slot := 1; slot <= 6; slot++ {
		base := scheme[slot]
		bright := scheme[slot+8]

		if base == (RGB{}) {
			t.Errorf("color%d is unset", slot)
		}
		if bright == base {
			t.Errorf("color%d bright variant identical to base %s", slot, base.Hex())
		}

		baseLum := Luminance(RGBToColor(base))
		brightLum := Luminance(RGBToColor(bright))
		if np.ThemeType == ThemeDark && brightLum <= baseLum {
			t.Errorf("color%d bright luminance %.3f not above base %.3f", slot, brightLum, baseLum)
		}
	}
}

func TestTerminalSchemeChromaticHues(t *testing.T) {
	np := terminalTestPalette(t)
	scheme := TerminalScheme(np)

	// Each chromatic slot must stay near its reference hue, whether it was
	// matched from a cluster or synthesised.
	for _, ref := range ansiReferences {
		rgb := scheme[ref.Slot]
		h, s, _ := rgbToHSL(rgb)
		if s < 0.1 {
			t.Errorf("color%d (%s) nearly grey: saturation %.2f", ref.Slot, ref.Name, s)
			continue
		}
		if dist := HueDistance(h, ref.Hue); dist > 75 {
			t.Errorf("color%d (%s) hue %.0f too far from reference %.0f (distance %.0f)", ref.Slot, ref.Name, h, ref.Hue, dist)
		}
	}
}

func TestTerminalSchemeGreyscaleWallpaper(t *testing.T) {
	np, err := Materialise(midGreys(), ThemeAuto, DefaultMaterialiseConfig())
	if err != nil {
		t.Fatalf("Materialise() error = %v", err)
	}
	scheme := TerminalScheme(np)

	// No cluster carries chroma, so every chromatic slot is synthesised and
	// must still be distinguishable from the others.
	seen := make(map[RGB]bool)
	for slot := 1; slot <= 6; slot++ {
		if seen[scheme[slot]] {
			t.Errorf("color%d duplicates another chromatic slot: %s", slot, scheme[slot].Hex())
		}
		seen[scheme[slot]] = true
	}
}
