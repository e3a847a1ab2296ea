package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/madder-sh/madder/internal/colour"
)

func testPalette() *colour.NamedPalette {
	p := &colour.NamedPalette{ThemeType: colour.ThemeDark}
	p.Set(colour.RoleBackground, colour.NamedColour{
		Hex: "#1a1b26",
		RGB: colour.RGB{R: 0x1a, G: 0x1b, B: 0x26},
	})
	p.Set(colour.RoleForeground, colour.NamedColour{
		Hex: "#c0caf5",
		RGB: colour.RGB{R: 0xc0, G: 0xca, B: 0xf5},
	})
	return p
}

func TestFormatNamedPaletteHex(t *testing.T) {
	out, err := formatNamedPalette(testPalette(), "hex", false)
	if err != nil {
		t.Fatalf("formatNamedPalette failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want mode plus 2 roles:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "mode") || !strings.Contains(lines[0], "dark") {
		t.Errorf("first line = %q, want the theme mode", lines[0])
	}
	// Roles come out in presentation order, background first.
	if !strings.HasPrefix(lines[1], "background") || !strings.Contains(lines[1], "#1a1b26") {
		t.Errorf("background line = %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "foreground") || !strings.Contains(lines[2], "#c0caf5") {
		t.Errorf("foreground line = %q", lines[2])
	}
}

func TestFormatNamedPaletteJSON(t *testing.T) {
	out, err := formatNamedPalette(testPalette(), "json", false)
	if err != nil {
		t.Fatalf("formatNamedPalette failed: %v", err)
	}

	var decoded struct {
		Colours map[string]struct {
			Hex string `json:"hex"`
		} `json:"colours"`
	}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if got := decoded.Colours["background"].Hex; got != "#1a1b26" {
		t.Errorf("background hex = %q, want #1a1b26", got)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("JSON output should end with a newline")
	}
}

func TestFormatNamedPaletteUnknownFormat(t *testing.T) {
	_, err := formatNamedPalette(testPalette(), "yaml", false)
	if err == nil {
		t.Fatal("expected an error for an unsupported format")
	}
	if !strings.Contains(err.Error(), "yaml") {
		t.Errorf("error %q should name the rejected format", err)
	}
}

func TestFormatRolesPreview(t *testing.T) {
	out := formatRoles(testPalette(), true)

	// Swatches carry ANSI colour escapes alongside the hex value.
	if !strings.Contains(out, "\x1b[") {
		t.Error("preview output should contain ANSI escape sequences")
	}
	if !strings.Contains(out, "#1a1b26") {
		t.Error("preview output should still show the hex value")
	}
}
