package theme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoaderLoad(t *testing.T) {
	tmpDir := t.TempDir()
	loader := NewLoader("kitty", templates).WithCustomBase(tmpDir)

	t.Run("loads embedded template when no custom exists", func(t *testing.T) {
		content, fromCustom, err := loader.Load(kittyTemplate)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if fromCustom {
			t.Error("Load() fromCustom = true, want embedded")
		}
		if !strings.Contains(string(content), "foreground") {
			t.Errorf("embedded template missing foreground directive:\n%s", content)
		}
	})

	t.Run("loads custom template when it exists", func(t *testing.T) {
		customContent := []byte("# custom kitty theme\n")
		customPath := loader.CustomPath(kittyTemplate)
		if err := os.MkdirAll(filepath.Dir(customPath), 0755); err != nil {
			t.Fatalf("failed to create custom dir: %v", err)
		}
		if err := os.WriteFile(customPath, customContent, 0644); err != nil {
			t.Fatalf("failed to write custom template: %v", err)
		}

		content, fromCustom, err := loader.Load(kittyTemplate)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if !fromCustom {
			t.Error("Load() fromCustom = false, want custom")
		}
		if string(content) != string(customContent) {
			t.Errorf("Load() = %q, want %q", content, customContent)
		}
	})

	t.Run("returns error for non-existent template", func(t *testing.T) {
		if _, _, err := loader.Load("nonexistent.tmpl"); err == nil {
			t.Error("Load() for missing template = nil error, want error")
		}
	})
}

func TestLoaderCustomPath(t *testing.T) {
	loader := NewLoader("gtk", templates).WithCustomBase("/home/user/.config/madder/templates")

	want := "/home/user/.config/madder/templates/gtk/gtk.css.tmpl"
	if got := loader.CustomPath(gtkTemplate); got != want {
		t.Errorf("CustomPath() = %q, want %q", got, want)
	}

	wantDir := "/home/user/.config/madder/templates/gtk"
	if got := loader.CustomDir(); got != wantDir {
		t.Errorf("CustomDir() = %q, want %q", got, wantDir)
	}
}

func TestLoaderHasCustomTemplate(t *testing.T) {
	tmpDir := t.TempDir()
	loader := NewLoader("qt", templates).WithCustomBase(tmpDir)

	if loader.HasCustomTemplate(qtTemplate) {
		t.Error("HasCustomTemplate() = true before any override written")
	}

	customPath := loader.CustomPath(qtTemplate)
	if err := os.MkdirAll(filepath.Dir(customPath), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(customPath, []byte("[ColorScheme]\n"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if !loader.HasCustomTemplate(qtTemplate) {
		t.Error("HasCustomTemplate() = false after override written")
	}
}

func TestLoaderDumpTemplate(t *testing.T) {
	tmpDir := t.TempDir()
	loader := NewLoader("quickshell", templates).WithCustomBase(tmpDir)

	if err := loader.DumpTemplate(quickshellTemplate, false); err != nil {
		t.Fatalf("DumpTemplate() error = %v", err)
	}

	dumped, err := os.ReadFile(loader.CustomPath(quickshellTemplate))
	if err != nil {
		t.Fatalf("failed to read dumped template: %v", err)
	}
	embedded, err := templates.ReadFile("templates/" + quickshellTemplate)
	if err != nil {
		t.Fatalf("failed to read embedded template: %v", err)
	}
	if string(dumped) != string(embedded) {
		t.Error("dumped template differs from embedded template")
	}

	// A second dump without force must refuse to clobber the override.
	if err := loader.DumpTemplate(quickshellTemplate, false); err == nil {
		t.Error("DumpTemplate() without force over existing override = nil error, want error")
	}
	if err := loader.DumpTemplate(quickshellTemplate, true); err != nil {
		t.Errorf("DumpTemplate() with force = %v, want nil", err)
	}
}
