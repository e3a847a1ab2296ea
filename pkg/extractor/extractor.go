// Package extractor provides the public API for madder palette extractors.
//
// An extractor is a standalone binary that turns a wallpaper image into a
// weighted colour palette. Madder launches extractors over the HashiCorp
// go-plugin protocol and feeds the returned palette into its theming
// pipeline. Third-party extractors implement the Extractor interface and
// call Run from their main function.
package extractor

import "context"

// Request holds the parameters for a palette extraction.
type Request struct {
	// ImagePath is the absolute path of the image to extract from.
	ImagePath string `json:"image_path"`

	// Colours is the number of palette entries the host wants back.
	// Extractors may return fewer if the image does not support more.
	Colours int `json:"colours"`

	// Mode is the requested theme disposition: "auto", "dark" or "light".
	Mode string `json:"mode"`
}

// Colour is a single weighted palette entry.
type Colour struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`

	// Weight is the colour's share of the image in the range 0..1.
	// When every weight is zero the host treats the palette as uniform.
	Weight float64 `json:"weight,omitempty"`
}

// PaletteData is the result of a palette extraction.
type PaletteData struct {
	Colours []Colour `json:"colours"`

	// ThemeType optionally overrides the host's mode resolution with
	// "dark" or "light". Leave empty to let the host decide from the
	// palette's luminance.
	ThemeType string `json:"theme_type,omitempty"`
}

// Info describes an extractor binary. Binaries print it as JSON when
// invoked with the InfoFlag argument so the host can discover them
// without starting the plugin protocol.
type Info struct {
	Name            string `json:"name"`
	Version         string `json:"version"`
	ProtocolVersion string `json:"protocol_version"`
	Description     string `json:"description,omitempty"`
}

// Extractor is the interface palette extractor binaries implement.
type Extractor interface {
	// Extract produces a palette from the image named in the request.
	Extract(ctx context.Context, req Request) (*PaletteData, error)

	// GetInfo returns metadata about the extractor.
	GetInfo() Info
}
