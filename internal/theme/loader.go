package theme

import (
	"embed"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/madder-sh/madder/internal/util/xdg"
)

// Loader loads a target's templates with custom override support. It checks
// ~/.config/madder/templates/{target}/ first and falls back to the embedded
// default when no override exists.
type Loader struct {
	target     string
	embedFS    embed.FS
	customBase string
}

// NewLoader creates a template loader for the named target. embedFS is the
// embedded filesystem carrying the built-in templates under templates/.
func NewLoader(target string, embedFS embed.FS) *Loader {
	base, err := xdg.TemplateDir()
	if err != nil {
		base = filepath.Join(".config", "madder", "templates")
	}
	return &Loader{
		target:     target,
		embedFS:    embedFS,
		customBase: base,
	}
}

// WithCustomBase sets the base directory searched for override templates.
func (l *Loader) WithCustomBase(dir string) *Loader {
	l.customBase = dir
	return l
}

// Load reads a template file, checking for a custom override first.
// filename is the bare template name (e.g. "kitty.conf.tmpl"). Returns the
// content and whether it came from an override.
func (l *Loader) Load(filename string) (content []byte, fromCustom bool, err error) {
	customPath := l.CustomPath(filename)
	if content, err := os.ReadFile(customPath); err == nil {
		return content, true, nil
	}

	content, err = l.embedFS.ReadFile(path.Join("templates", filename))
	if err != nil {
		return nil, false, fmt.Errorf("failed to load template %q: %w", filename, err)
	}

	return content, false, nil
}

// CustomPath returns the path where an override for filename would live.
func (l *Loader) CustomPath(filename string) string {
	return filepath.Join(l.customBase, l.target, filename)
}

// CustomDir returns the override directory for this target.
func (l *Loader) CustomDir() string {
	return filepath.Join(l.customBase, l.target)
}

// HasCustomTemplate checks whether an override exists for filename.
func (l *Loader) HasCustomTemplate(filename string) bool {
	_, err := os.Stat(l.CustomPath(filename))
	return err == nil
}

// DumpTemplate writes an embedded template into the override directory so
// the user can edit it. If force is false an existing override is left
// alone.
func (l *Loader) DumpTemplate(filename string, force bool) error {
	content, err := l.embedFS.ReadFile(path.Join("templates", filename))
	if err != nil {
		return fmt.Errorf("failed to read embedded template %q: %w", filename, err)
	}

	outputPath := l.CustomPath(filename)
	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("custom template already exists: %s (use --force to overwrite)", outputPath)
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory %q: %w", filepath.Dir(outputPath), err)
	}

	if err := os.WriteFile(outputPath, content, 0644); err != nil {
		return fmt.Errorf("failed to write template to %q: %w", outputPath, err)
	}

	return nil
}
