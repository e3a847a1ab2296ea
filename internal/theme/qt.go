package theme

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/madder-sh/madder/internal/colour"
)

const qtTemplate = "qtct.conf.tmpl"

// QtTarget writes a qt5ct/qt6ct colour scheme. The scheme file lands in
// both tools' colors directories; the user selects it once in qt5ct/qt6ct
// and subsequent propagations update it in place.
type QtTarget struct {
	templated
	outputDir string
}

// NewQtTarget creates the Qt target with default settings.
func NewQtTarget() *QtTarget {
	return &QtTarget{templated: newTemplated("qt", qtTemplate)}
}

// WithOutputDir overrides the base config directory. Used by tests.
func (t *QtTarget) WithOutputDir(dir string) *QtTarget {
	t.outputDir = dir
	return t
}

// WithTemplateBase overrides the template override directory.
func (t *QtTarget) WithTemplateBase(dir string) *QtTarget {
	t.loader.WithCustomBase(dir)
	return t
}

// Name returns the target name.
func (t *QtTarget) Name() string {
	return "qt"
}

// OutputDir returns the base config directory the qt5ct and qt6ct
// directories live under.
func (t *QtTarget) OutputDir() string {
	if t.outputDir != "" {
		return t.outputDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config"
	}
	return filepath.Join(home, ".config")
}

// Render produces the same colour scheme for qt5ct and qt6ct.
func (t *QtTarget) Render(data *colour.ThemeData) (map[string][]byte, error) {
	content, err := t.render(data)
	if err != nil {
		return nil, err
	}
	return map[string][]byte{
		filepath.Join("qt5ct", "colors", "madder.conf"): content,
		filepath.Join("qt6ct", "colors", "madder.conf"): content,
	}, nil
}

// Probe skips the target when neither qt5ct nor qt6ct is configured on this
// machine.
func (t *QtTarget) Probe(ctx context.Context) (skip bool, reason string, err error) {
	if t.outputDir != "" {
		return false, "", nil
	}

	base := t.OutputDir()
	for _, dir := range []string{"qt5ct", "qt6ct"} {
		if _, err := os.Stat(filepath.Join(base, dir)); err == nil {
			return false, "", nil
		}
	}
	return true, fmt.Sprintf("neither qt5ct nor qt6ct configuration found under %s", base), nil
}
