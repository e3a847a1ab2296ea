// Package theme propagates a wallpaper's colour palette to the theme files
// of downstream desktop consumers.
package theme

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/madder-sh/madder/internal/colour"
	img "github.com/madder-sh/madder/internal/image"
)

// PaletteExtractor is the narrow seam the propagator depends on to turn a
// wallpaper into a named palette.
type PaletteExtractor interface {
	Extract(ctx context.Context, imagePath string) (*colour.NamedPalette, error)
}

// ImageExtractor is the built-in PaletteExtractor: it loads the image,
// clusters its pixels and materialises the fixed role set. The clustering
// seed is derived from image content, so the same wallpaper always yields
// the same palette.
type ImageExtractor struct {
	loader *img.SmartLoader
	config colour.ExtractorConfig
	theme  colour.ThemeType
	logger hclog.Logger
}

// NewImageExtractor creates an extractor with the default algorithm and
// colour count.
func NewImageExtractor(logger hclog.Logger) *ImageExtractor {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &ImageExtractor{
		loader: img.NewSmartLoader(),
		config: colour.DefaultExtractorConfig(),
		theme:  colour.ThemeAuto,
		logger: logger,
	}
}

// WithThemeType forces the light/dark disposition instead of detecting it
// from the dominant colour.
func (e *ImageExtractor) WithThemeType(t colour.ThemeType) *ImageExtractor {
	e.theme = t
	return e
}

// WithAlgorithm selects the clustering algorithm.
func (e *ImageExtractor) WithAlgorithm(algorithm colour.Algorithm) *ImageExtractor {
	e.config.Algorithm = algorithm
	return e
}

// WithColourCount sets how many clusters are extracted before role
// assignment.
func (e *ImageExtractor) WithColourCount(n int) *ImageExtractor {
	e.config.ColorCount = n
	return e
}

// Extract runs the full pipeline: load, cluster, materialise.
func (e *ImageExtractor) Extract(ctx context.Context, imagePath string) (*colour.NamedPalette, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := e.config.Validate(); err != nil {
		return nil, err
	}

	source, err := e.loader.Load(imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}

	seed := contentSeed(source)
	extractor, err := colour.NewExtractorWithOptions(e.config.Algorithm, colour.ExtractorOptions{Seed: seed})
	if err != nil {
		return nil, err
	}

	palette, err := extractor.Extract(source, e.config.ColorCount)
	if err != nil {
		return nil, fmt.Errorf("colour extraction failed: %w", err)
	}

	named, err := colour.Materialise(palette, e.theme, colour.DefaultMaterialiseConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to materialise palette: %w", err)
	}

	e.logger.Debug("palette extracted",
		"image", imagePath,
		"theme", named.ThemeType.String(),
		"colours", len(named.Source),
		"seed", seed)

	return named, nil
}
