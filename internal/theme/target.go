package theme

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"text/template"

	"github.com/madder-sh/madder/internal/colour"
)

//go:embed templates/*.tmpl
var templates embed.FS

// Target renders the theme files for one downstream consumer.
type Target interface {
	// Name returns the target's name (e.g. "gtk", "kitty").
	Name() string

	// Render produces the files to write, keyed by path relative to
	// OutputDir. Rendering never touches the filesystem.
	Render(data *colour.ThemeData) (map[string][]byte, error)

	// OutputDir returns the directory the rendered files are written under.
	OutputDir() string
}

// Prober is an optional Target extension consulted before rendering. A
// skipped target is left untouched for the run, with the reason logged.
type Prober interface {
	Probe(ctx context.Context) (skip bool, reason string, err error)
}

// Reloader is an optional Target extension that tells a running consumer to
// re-read its files after a successful propagation. A consumer that is not
// running is a silent no-op.
type Reloader interface {
	Reload(ctx context.Context) error
}

// TemplatedTarget is implemented by targets that render from an overridable
// template.
type TemplatedTarget interface {
	Target
	TemplateFile() string
	HasCustomTemplate() bool
	DumpTemplate(force bool) error
}

// DefaultTargets returns the built-in targets in their fixed propagation
// order. The order is part of the contract: a mid-run failure leaves a
// predictable prefix of targets updated.
func DefaultTargets() []Target {
	return []Target{
		NewGTKTarget(),
		NewQtTarget(),
		NewKittyTarget(),
		NewQuickshellTarget(),
	}
}

// templated carries the template plumbing shared by the built-in targets.
type templated struct {
	loader   *Loader
	filename string
}

func newTemplated(target, filename string) templated {
	return templated{
		loader:   NewLoader(target, templates),
		filename: filename,
	}
}

// TemplateFile returns the bare template filename the target renders from.
func (t *templated) TemplateFile() string {
	return t.filename
}

// HasCustomTemplate reports whether a user override is in place.
func (t *templated) HasCustomTemplate() bool {
	return t.loader.HasCustomTemplate(t.filename)
}

// DumpTemplate writes the embedded template to the override directory.
func (t *templated) DumpTemplate(force bool) error {
	return t.loader.DumpTemplate(t.filename, force)
}

// render loads, parses and executes the target's template.
func (t *templated) render(data *colour.ThemeData) ([]byte, error) {
	content, _, err := t.loader.Load(t.filename)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(t.filename).Funcs(TemplateFuncs()).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %q: %w", t.filename, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template %q: %w", t.filename, err)
	}

	return buf.Bytes(), nil
}
