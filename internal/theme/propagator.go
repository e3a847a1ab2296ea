package theme

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/hashicorp/go-hclog"

	"github.com/madder-sh/madder/internal/colour"
)

// Propagator pushes a wallpaper's palette out to every target's theme
// files. One propagation is a full rewrite: each target's files are
// regenerated wholesale from the freshly extracted palette, never merged
// with their previous content.
type Propagator struct {
	extractor PaletteExtractor
	targets   []Target
	logger    hclog.Logger
}

// NewPropagator creates a propagator over the given targets. The targets
// are processed in slice order on every run.
func NewPropagator(extractor PaletteExtractor, targets []Target, logger hclog.Logger) *Propagator {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Propagator{
		extractor: extractor,
		targets:   targets,
		logger:    logger,
	}
}

// Targets returns the targets in propagation order.
func (p *Propagator) Targets() []Target {
	return p.targets
}

// Propagate derives a palette from the image and rewrites every target's
// theme files with it, then signals running consumers to reload.
//
// Extraction failure aborts before anything is written. A write failure
// aborts the remaining targets and leaves already written files in place;
// re-running the propagation converges every file onto the same palette.
// Reload failures are logged, not returned: the files on disk are already
// correct.
func (p *Propagator) Propagate(ctx context.Context, imagePath string) error {
	palette, err := p.extractor.Extract(ctx, imagePath)
	if err != nil {
		return fmt.Errorf("palette extraction failed: %w", err)
	}

	data := colour.NewThemeData(palette, imagePath)

	written := 0
	var applied []Target
	for _, target := range p.targets {
		if prober, ok := target.(Prober); ok {
			skip, reason, err := prober.Probe(ctx)
			if err != nil {
				p.logger.Warn("target probe failed, skipping", "target", target.Name(), "error", err)
				continue
			}
			if skip {
				p.logger.Info("skipping target", "target", target.Name(), "reason", reason)
				continue
			}
		}

		files, err := target.Render(data)
		if err != nil {
			return fmt.Errorf("failed to render %s theme: %w", target.Name(), err)
		}

		names := make([]string, 0, len(files))
		for name := range files {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			path := filepath.Join(target.OutputDir(), name)
			if err := p.writeFile(path, files[name]); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			written++
		}

		applied = append(applied, target)
		p.logger.Debug("theme files written", "target", target.Name(), "files", len(files))
	}

	for _, target := range applied {
		reloader, ok := target.(Reloader)
		if !ok {
			continue
		}
		if err := reloader.Reload(ctx); err != nil {
			p.logger.Warn("reload failed", "target", target.Name(), "error", err)
		}
	}

	p.logger.Info("theme propagated",
		"image", imagePath,
		"theme", palette.ThemeType.String(),
		"targets", len(applied),
		"files", written)

	return nil
}

// Apply implements the wallpaper rotation hook: a freshly applied wallpaper
// triggers a full propagation.
func (p *Propagator) Apply(ctx context.Context, imagePath string) error {
	return p.Propagate(ctx, imagePath)
}

// writeFile writes one theme file, preserving any existing version as
// .backup.
func (p *Propagator) writeFile(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		backupPath := path + ".backup"
		if err := os.Rename(path, backupPath); err != nil {
			p.logger.Warn("could not create backup", "path", backupPath, "error", err)
		}
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}
