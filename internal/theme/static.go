package theme

import (
	"context"

	"github.com/madder-sh/madder/internal/colour"
)

// StaticExtractor is an in-memory PaletteExtractor for tests. It returns a
// fixed palette and records every image path it was asked about.
type StaticExtractor struct {
	Palette *colour.NamedPalette

	// Err, when set, is returned by every Extract call.
	Err error

	// Calls records the image paths passed to Extract, in order.
	Calls []string
}

// Extract returns the fixed palette.
func (s *StaticExtractor) Extract(_ context.Context, imagePath string) (*colour.NamedPalette, error) {
	s.Calls = append(s.Calls, imagePath)
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Palette, nil
}
