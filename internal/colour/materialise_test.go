package colour

import (
	"image/color"
	"testing"
)

// tokyoNight is a palette shaped like a typical dark wallpaper extraction:
// a dominant near-black blue, a light text colour and two saturated accents.
func tokyoNight() *Palette {
	return NewPaletteWithWeights(
		[]color.Color{
			color.RGBA{R: 0x1a, G: 0x1b, B: 0x26, A: 255}, // dark navy
			color.RGBA{R: 0xc0, G: 0xca, B: 0xf5, A: 255}, // pale blue-white
			color.RGBA{R: 0xff, G: 0x9e, B: 0x64, A: 255}, // orange
			color.RGBA{R: 0x9e, G: 0xce, B: 0x6a, A: 255}, // green
		},
		[]float64{0.5, 0.2, 0.15, 0.15},
	)
}

func paperWhite() *Palette {
	return NewPaletteWithWeights(
		[]color.Color{
			color.RGBA{R: 0xf5, G: 0xf5, B: 0xf5, A: 255}, // near white
			color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 255}, // near black
			color.RGBA{R: 0x33, G: 0x66, B: 0xcc, A: 255}, // blue
		},
		[]float64{0.7, 0.2, 0.1},
	)
}

func midGreys() *Palette {
	return NewPaletteWithWeights(
		[]color.Color{
			color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 255},
			color.RGBA{R: 0x70, G: 0x70, B: 0x70, A: 255},
			color.RGBA{R: 0x90, G: 0x90, B: 0x90, A: 255},
		},
		[]float64{0.5, 0.3, 0.2},
	)
}

func TestMaterialiseAllRolesPresent(t *testing.T) {
	tests := []struct {
		name    string
		palette *Palette
		theme   ThemeType
	}{
		{name: "dark wallpaper auto", palette: tokyoNight(), theme: ThemeAuto},
		{name: "light wallpaper auto", palette: paperWhite(), theme: ThemeAuto},
		{name: "monochrome greys auto", palette: midGreys(), theme: ThemeAuto},
		{name: "single colour", palette: NewPalette([]color.Color{color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 255}}), theme: ThemeAuto},
		{name: "forced dark", palette: paperWhite(), theme: ThemeDark},
		{name: "forced light", palette: tokyoNight(), theme: ThemeLight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			np, err := Materialise(tt.palette, tt.theme, DefaultMaterialiseConfig())
			if err != nil {
				t.Fatalf("Materialise() error = %v", err)
			}

			if np.ThemeType == ThemeAuto {
				t.Error("ThemeType not resolved, still auto")
			}

			for _, role := range AllRoles() {
				c, ok := np.Get(role)
				if !ok {
					t.Errorf("role %s missing from materialised palette", role)
					continue
				}
				if c.Hex == "" {
					t.Errorf("role %s has empty hex", role)
				}
				if c.Role != role {
					t.Errorf("role %s carries role field %q", role, c.Role)
				}
				if c.Colour == nil {
					t.Errorf("role %s has nil colour", role)
				}
			}
		})
	}
}

func TestMaterialiseThemeDetection(t *testing.T) {
	tests := []struct {
		name    string
		palette *Palette
		want    ThemeType
	}{
		{name: "dominant dark resolves dark", palette: tokyoNight(), want: ThemeDark},
		{name: "dominant light resolves light", palette: paperWhite(), want: ThemeLight},
		{name: "mid grey resolves dark", palette: midGreys(), want: ThemeDark},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			np, err := Materialise(tt.palette, ThemeAuto, DefaultMaterialiseConfig())
			if err != nil {
				t.Fatalf("Materialise() error = %v", err)
			}
			if np.ThemeType != tt.want {
				t.Errorf("ThemeType = %s, want %s", np.ThemeType, tt.want)
			}
		})
	}
}

func TestMaterialiseUsesExtractedColoursVerbatim(t *testing.T) {
	np, err := Materialise(tokyoNight(), ThemeAuto, DefaultMaterialiseConfig())
	if err != nil {
		t.Fatalf("Materialise() error = %v", err)
	}

	tests := []struct {
		role    Role
		wantHex string
	}{
		{role: RoleBackground, wantHex: "#1a1b26"},
		{role: RoleForeground, wantHex: "#c0caf5"},
		{role: RoleAccent, wantHex: "#ff9e64"},
	}

	for _, tt := range tests {
		c, ok := np.Get(tt.role)
		if !ok {
			t.Fatalf("role %s missing", tt.role)
		}
		if c.Hex != tt.wantHex {
			t.Errorf("%s = %s, want %s", tt.role, c.Hex, tt.wantHex)
		}
		if c.IsGenerated {
			t.Errorf("%s marked generated, expected extracted colour", tt.role)
		}
	}
}

func TestMaterialiseForegroundContrast(t *testing.T) {
	tests := []struct {
		name        string
		palette     *Palette
		minContrast float64
	}{
		{name: "dark wallpaper", palette: tokyoNight(), minContrast: 4.5},
		{name: "light wallpaper", palette: paperWhite(), minContrast: 4.5},
		// A mid grey background caps the achievable ratio below AA; the
		// luminance walk still gets as close as the gamut allows.
		{name: "mid grey best effort", palette: midGreys(), minContrast: 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			np, err := Materialise(tt.palette, ThemeAuto, DefaultMaterialiseConfig())
			if err != nil {
				t.Fatalf("Materialise() error = %v", err)
			}

			bg, _ := np.Get(RoleBackground)
			fg, _ := np.Get(RoleForeground)

			contrast := ContrastRatio(fg.Colour, bg.Colour)
			if contrast < tt.minContrast {
				t.Errorf("foreground contrast = %.2f:1, want >= %.2f:1", contrast, tt.minContrast)
			}
			t.Logf("fg=%s bg=%s contrast=%.2f:1", fg.Hex, bg.Hex, contrast)
		})
	}
}

func TestMaterialiseOnSurfaceContrast(t *testing.T) {
	for _, palette := range []*Palette{tokyoNight(), paperWhite(), midGreys()} {
		np, err := Materialise(palette, ThemeAuto, DefaultMaterialiseConfig())
		if err != nil {
			t.Fatalf("Materialise() error = %v", err)
		}

		surface, _ := np.Get(RoleSurface)
		onSurface, _ := np.Get(RoleOnSurface)

		contrast := ContrastRatio(onSurface.Colour, surface.Colour)
		if contrast < 4.5 {
			t.Errorf("onSurface contrast = %.2f:1 on %s, want >= 4.5:1", contrast, surface.Hex)
		}
	}
}

func TestMaterialiseMonochromeSynthesis(t *testing.T) {
	np, err := Materialise(midGreys(), ThemeAuto, DefaultMaterialiseConfig())
	if err != nil {
		t.Fatalf("Materialise() error = %v", err)
	}

	fg, _ := np.Get(RoleForeground)
	if !fg.IsGenerated {
		t.Error("foreground for greyscale palette should be synthesised")
	}

	accent, _ := np.Get(RoleAccent)
	if !accent.IsGenerated {
		t.Error("accent for greyscale palette should be synthesised")
	}
	if accent.Saturation < 0.3 {
		t.Errorf("synthetic accent saturation = %.2f, want >= 0.3", accent.Saturation)
	}

	bg, _ := np.Get(RoleBackground)
	if accent.Hex == bg.Hex {
		t.Error("accent collapsed onto the background colour")
	}
}

func TestMaterialiseSurfaceElevation(t *testing.T) {
	tests := []struct {
		name    string
		palette *Palette
	}{
		{name: "dark theme lightens", palette: tokyoNight()},
		{name: "light theme darkens", palette: paperWhite()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			np, err := Materialise(tt.palette, ThemeAuto, DefaultMaterialiseConfig())
			if err != nil {
				t.Fatalf("Materialise() error = %v", err)
			}

			bg, _ := np.Get(RoleBackground)
			surface, _ := np.Get(RoleSurface)
			variant, _ := np.Get(RoleSurfaceVariant)

			if !surface.IsGenerated || !variant.IsGenerated {
				t.Error("surfaces should always be synthesised elevations")
			}

			if np.ThemeType == ThemeDark {
				if surface.Luminance <= bg.Luminance {
					t.Errorf("dark surface luminance %.3f not above background %.3f", surface.Luminance, bg.Luminance)
				}
				if variant.Luminance <= surface.Luminance {
					t.Errorf("dark variant luminance %.3f not above surface %.3f", variant.Luminance, surface.Luminance)
				}
			} else {
				if surface.Luminance >= bg.Luminance {
					t.Errorf("light surface luminance %.3f not below background %.3f", surface.Luminance, bg.Luminance)
				}
				if variant.Luminance >= surface.Luminance {
					t.Errorf("light variant luminance %.3f not below surface %.3f", variant.Luminance, surface.Luminance)
				}
			}
		})
	}
}

func TestMaterialiseDeterministic(t *testing.T) {
	first, err := Materialise(tokyoNight(), ThemeAuto, DefaultMaterialiseConfig())
	if err != nil {
		t.Fatalf("Materialise() error = %v", err)
	}
	second, err := Materialise(tokyoNight(), ThemeAuto, DefaultMaterialiseConfig())
	if err != nil {
		t.Fatalf("Materialise() error = %v", err)
	}

	for _, role := range AllRoles() {
		if first.Hex(role) != second.Hex(role) {
			t.Errorf("role %s differs between runs: %s vs %s", role, first.Hex(role), second.Hex(role))
		}
	}
	if first.ThemeType != second.ThemeType {
		t.Errorf("theme type differs between runs: %s vs %s", first.ThemeType, second.ThemeType)
	}
}

func TestMaterialiseEmptyPalette(t *testing.T) {
	tests := []struct {
		name    string
		palette *Palette
	}{
		{name: "nil palette", palette: nil},
		{name: "zero colours", palette: NewPalette(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Materialise(tt.palette, ThemeAuto, DefaultMaterialiseConfig()); err == nil {
				t.Error("Materialise() expected error, got nil")
			}
		})
	}
}

func TestMaterialiseSourcePreserved(t *testing.T) {
	palette := tokyoNight()
	np, err := Materialise(palette, ThemeAuto, DefaultMaterialiseConfig())
	if err != nil {
		t.Fatalf("Materialise() error = %v", err)
	}

	if len(np.Source) != palette.Len() {
		t.Fatalf("Source has %d colours, want %d", len(np.Source), palette.Len())
	}

	for i, c := range np.Source {
		want := ToRGB(palette.Colors[i]).Hex()
		if c.Hex != want {
			t.Errorf("Source[%d] = %s, want %s", i, c.Hex, want)
		}
		if c.Weight != palette.Weight(i) {
			t.Errorf("Source[%d] weight = %v, want %v", i, c.Weight, palette.Weight(i))
		}
	}
}
