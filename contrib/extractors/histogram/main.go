// madder-extractor-histogram - histogram palette extractor for madder
//
// Extracts a palette by quantising pixels into coarse RGB bins and
// returning the most populated ones, weighted by pixel share. Compared to
// madder's built-in k-means extractor it is faster and favours large flat
// areas over blended gradients.
//
// Build:
//   go build -o madder-extractor-histogram
//
// Usage:
//   madder config set theme.extractor /path/to/madder-extractor-histogram
//   madder theme apply wallpaper.jpg
package main

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sort"

	_ "golang.org/x/image/webp"

	"github.com/madder-sh/madder/pkg/extractor"
)

// binBits is the per-channel quantisation width. 4 bits gives 4096 bins,
// coarse enough to merge near-identical shades.
const binBits = 4

const defaultColours = 16

type histogramExtractor struct{}

type bin struct {
	count   uint64
	r, g, b uint64
}

// Extract decodes the image and returns the dominant colour bins.
func (e *histogramExtractor) Extract(ctx context.Context, req extractor.Request) (*extractor.PaletteData, error) {
	f, err := os.Open(req.ImagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	shift := 8 - binBits
	bins := make(map[uint32]*bin)
	bounds := img.Bounds()

	var total uint64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			r8, g8, b8 := uint8(r>>8), uint8(g>>8), uint8(b>>8)

			key := uint32(r8>>shift)<<(2*binBits) |
				uint32(g8>>shift)<<binBits |
				uint32(b8>>shift)
			entry := bins[key]
			if entry == nil {
				entry = &bin{}
				bins[key] = entry
			}
			entry.count++
			entry.r += uint64(r8)
			entry.g += uint64(g8)
			entry.b += uint64(b8)
			total++
		}
	}
	if total == 0 {
		return nil, fmt.Errorf("image has no opaque pixels")
	}

	ordered := make([]*bin, 0, len(bins))
	for _, entry := range bins {
		ordered = append(ordered, entry)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].count > ordered[j].count
	})

	want := req.Colours
	if want <= 0 {
		want = defaultColours
	}
	if want > len(ordered) {
		want = len(ordered)
	}

	// Each bin reports its average member colour, not the bin centre, so
	// a bin dominated by one shade returns that shade.
	colours := make([]extractor.Colour, 0, want)
	for _, entry := range ordered[:want] {
		colours = append(colours, extractor.Colour{
			R:      uint8(entry.r / entry.count),
			G:      uint8(entry.g / entry.count),
			B:      uint8(entry.b / entry.count),
			Weight: float64(entry.count) / float64(total),
		})
	}

	return &extractor.PaletteData{Colours: colours}, nil
}

// GetInfo returns the extractor's metadata block.
func (e *histogramExtractor) GetInfo() extractor.Info {
	return extractor.Info{
		Name:            "histogram",
		Version:         "0.1.0",
		ProtocolVersion: extractor.ProtocolVersion,
		Description:     "Quantised histogram extractor favouring dominant flat colours",
	}
}

func main() {
	extractor.Run(&histogramExtractor{})
}
