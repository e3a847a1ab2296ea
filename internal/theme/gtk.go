package theme

import (
	"os"
	"path/filepath"

	"github.com/madder-sh/madder/internal/colour"
)

const gtkTemplate = "gtk.css.tmpl"

// GTKTarget writes the GTK3 and GTK4 colour stylesheets. Both files carry
// the same @define-color set, so GTK3 and GTK4 applications agree on the
// palette.
type GTKTarget struct {
	templated
	outputDir string
}

// NewGTKTarget creates the GTK target with default settings.
func NewGTKTarget() *GTKTarget {
	return &GTKTarget{templated: newTemplated("gtk", gtkTemplate)}
}

// WithOutputDir overrides the base config directory. Used by tests.
func (t *GTKTarget) WithOutputDir(dir string) *GTKTarget {
	t.outputDir = dir
	return t
}

// WithTemplateBase overrides the template override directory.
func (t *GTKTarget) WithTemplateBase(dir string) *GTKTarget {
	t.loader.WithCustomBase(dir)
	return t
}

// Name returns the target name.
func (t *GTKTarget) Name() string {
	return "gtk"
}

// OutputDir returns the base config directory the gtk-3.0 and gtk-4.0
// directories live under.
func (t *GTKTarget) OutputDir() string {
	if t.outputDir != "" {
		return t.outputDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config"
	}
	return filepath.Join(home, ".config")
}

// Render produces an identical stylesheet for both GTK major versions.
func (t *GTKTarget) Render(data *colour.ThemeData) (map[string][]byte, error) {
	content, err := t.render(data)
	if err != nil {
		return nil, err
	}
	return map[string][]byte{
		filepath.Join("gtk-3.0", "gtk.css"): content,
		filepath.Join("gtk-4.0", "gtk.css"): content,
	}, nil
}
