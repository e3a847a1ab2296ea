package theme

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func TestDefaultTargetsOrder(t *testing.T) {
	targets := DefaultTargets()

	want := []string{"gtk", "qt", "kitty", "quickshell"}
	if len(targets) != len(want) {
		t.Fatalf("DefaultTargets() returned %d targets, want %d", len(targets), len(want))
	}
	for i, name := range want {
		if targets[i].Name() != name {
			t.Errorf("DefaultTargets()[%d].Name() = %q, want %q", i, targets[i].Name(), name)
		}
	}
}

func TestGTKTargetRender(t *testing.T) {
	data := themeTestData(t)

	files, err := NewGTKTarget().Render(data)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	gtk3, ok := files[filepath.Join("gtk-3.0", "gtk.css")]
	if !ok {
		t.Fatal("Render() missing gtk-3.0/gtk.css")
	}
	gtk4, ok := files[filepath.Join("gtk-4.0", "gtk.css")]
	if !ok {
		t.Fatal("Render() missing gtk-4.0/gtk.css")
	}
	if !bytes.Equal(gtk3, gtk4) {
		t.Error("GTK3 and GTK4 stylesheets differ, want identical content")
	}

	css := string(gtk3)
	for _, want := range []string{
		"@define-color background #1a1b26;",
		"@define-color foreground #c0caf5;",
		"@define-color accent #ff9e64;",
		"@define-color window_bg_color @background;",
		"@define-color accent_bg_color @accent;",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("stylesheet missing %q:\n%s", want, css)
		}
	}
}

func TestQtTargetRender(t *testing.T) {
	data := themeTestData(t)

	files, err := NewQtTarget().Render(data)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	qt5, ok := files[filepath.Join("qt5ct", "colors", "madder.conf")]
	if !ok {
		t.Fatal("Render() missing qt5ct/colors/madder.conf")
	}
	qt6, ok := files[filepath.Join("qt6ct", "colors", "madder.conf")]
	if !ok {
		t.Fatal("Render() missing qt6ct/colors/madder.conf")
	}
	if !bytes.Equal(qt5, qt6) {
		t.Error("qt5ct and qt6ct schemes differ, want identical content")
	}

	conf := string(qt5)
	if !strings.HasPrefix(conf, "[ColorScheme]\n") {
		t.Errorf("scheme does not start with [ColorScheme] section:\n%s", conf)
	}

	// Each colour group carries the full 21-entry QPalette role list.
	hexPattern := regexp.MustCompile(`^#[0-9a-f]{6}$`)
	for _, group := range []string{"active_colors=", "disabled_colors=", "inactive_colors="} {
		line := ""
		for _, l := range strings.Split(conf, "\n") {
			if strings.HasPrefix(l, group) {
				line = strings.TrimPrefix(l, group)
				break
			}
		}
		if line == "" {
			t.Fatalf("scheme missing %s line", group)
		}
		entries := strings.Split(line, ", ")
		if len(entries) != 21 {
			t.Errorf("%s has %d entries, want 21", group, len(entries))
		}
		for _, entry := range entries {
			if !hexPattern.MatchString(entry) {
				t.Errorf("%s entry %q is not a hex colour", group, entry)
			}
		}
	}

	if !strings.Contains(conf, "#ff9e64") {
		t.Error("scheme missing the accent colour")
	}
}

func TestKittyTargetRender(t *testing.T) {
	data := themeTestData(t)

	files, err := NewKittyTarget().Render(data)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	content, ok := files["madder.conf"]
	if !ok {
		t.Fatal("Render() missing madder.conf")
	}
	conf := string(content)

	for _, want := range []string{
		"foreground #c0caf5",
		"background #1a1b26",
		"selection_background #ff9e64",
		"cursor #ff9e64",
	} {
		if !strings.Contains(conf, want) {
			t.Errorf("theme missing %q:\n%s", want, conf)
		}
	}

	// All 16 slots must be emitted, matching the derived scheme verbatim.
	for i := 0; i < 16; i++ {
		want := fmt.Sprintf("color%d %s\n", i, data.Terminal[i].Hex())
		if !strings.Contains(conf, want) {
			t.Errorf("theme missing %q", strings.TrimSpace(want))
		}
	}
}

func TestQuickshellTargetRender(t *testing.T) {
	data := themeTestData(t)

	files, err := NewQuickshellTarget().Render(data)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	content, ok := files["colours.json"]
	if !ok {
		t.Fatal("Render() missing colours.json")
	}

	var doc struct {
		Wallpaper string            `json:"wallpaper"`
		Theme     string            `json:"theme"`
		Colours   map[string]string `json:"colours"`
		Terminal  []string          `json:"terminal"`
	}
	if err := json.Unmarshal(content, &doc); err != nil {
		t.Fatalf("rendered palette is not valid JSON: %v\n%s", err, content)
	}

	if doc.Wallpaper != "/walls/tokyo.png" {
		t.Errorf("wallpaper = %q, want %q", doc.Wallpaper, "/walls/tokyo.png")
	}
	if doc.Theme != "dark" {
		t.Errorf("theme = %q, want %q", doc.Theme, "dark")
	}
	if len(doc.Colours) != 6 {
		t.Errorf("colours has %d entries, want 6", len(doc.Colours))
	}
	if doc.Colours["background"] != "#1a1b26" {
		t.Errorf("background = %q, want %q", doc.Colours["background"], "#1a1b26")
	}
	if len(doc.Terminal) != 16 {
		t.Fatalf("terminal has %d entries, want 16", len(doc.Terminal))
	}
	hexPattern := regexp.MustCompile(`^#[0-9a-f]{6}$`)
	for i, c := range doc.Terminal {
		if !hexPattern.MatchString(c) {
			t.Errorf("terminal[%d] = %q, not a hex colour", i, c)
		}
	}
}

func TestTargetRenderDeterministic(t *testing.T) {
	data := themeTestData(t)

	for _, target := range DefaultTargets() {
		t.Run(target.Name(), func(t *testing.T) {
			first, err := target.Render(data)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			second, err := target.Render(data)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if len(first) != len(second) {
				t.Fatalf("renders produced %d and %d files", len(first), len(second))
			}
			for name, content := range first {
				if !bytes.Equal(content, second[name]) {
					t.Errorf("file %s differs between renders", name)
				}
			}
		})
	}
}

func TestTargetOutputDirOverride(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name   string
		target Target
	}{
		{"gtk", NewGTKTarget().WithOutputDir(dir)},
		{"qt", NewQtTarget().WithOutputDir(dir)},
		{"kitty", NewKittyTarget().WithOutputDir(dir)},
		{"quickshell", NewQuickshellTarget().WithOutputDir(dir)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.target.OutputDir(); got != dir {
				t.Errorf("OutputDir() = %q, want %q", got, dir)
			}
		})
	}
}

func TestTargetsImplementTemplatedTarget(t *testing.T) {
	for _, target := range DefaultTargets() {
		tt, ok := target.(TemplatedTarget)
		if !ok {
			t.Errorf("target %s does not expose its template", target.Name())
			continue
		}
		if tt.TemplateFile() == "" {
			t.Errorf("target %s has empty template filename", target.Name())
		}
	}
}

func TestCustomTemplateOverridesRender(t *testing.T) {
	data := themeTestData(t)
	base := t.TempDir()

	target := NewKittyTarget().WithTemplateBase(base)
	if err := target.DumpTemplate(false); err != nil {
		t.Fatalf("DumpTemplate() error = %v", err)
	}

	customPath := filepath.Join(base, "kitty", kittyTemplate)
	custom := []byte("background {{ get . \"background\" | hex }}\n")
	if err := os.WriteFile(customPath, custom, 0644); err != nil {
		t.Fatalf("failed to write custom template: %v", err)
	}

	files, err := target.Render(data)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := string(files["madder.conf"]); got != "background #1a1b26\n" {
		t.Errorf("Render() with custom template = %q, want %q", got, "background #1a1b26\n")
	}
}
