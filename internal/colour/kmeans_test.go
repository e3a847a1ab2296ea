package colour

import (
	"image"
	"image/color"
	"math"
	"testing"
)

// makeBlockImage builds an image from vertical colour bands. Band widths
// control extraction dominance. A small deterministic jitter is applied per
// pixel so clustering has real work to do.
func makeBlockImage(bands []color.RGBA, widths []int, height int) *image.RGBA {
	total := 0
	for _, w := range widths {
		total += w
	}

	img := image.NewRGBA(image.Rect(0, 0, total, height))
	x0 := 0
	for i, band := range bands {
		for x := x0; x < x0+widths[i]; x++ {
			for y := 0; y < height; y++ {
				jitter := uint8((x + y) % 5)
				img.Set(x, y, color.RGBA{
					R: band.R + jitter,
					G: band.G + jitter,
					B: band.B + jitter,
					A: 255,
				})
			}
		}
		x0 += widths[i]
	}
	return img
}

func testBands() ([]color.RGBA, []int) {
	return []color.RGBA{
		{R: 20, G: 20, B: 40, A: 255},    // dark blue, dominant
		{R: 200, G: 210, B: 230, A: 255}, // light
		{R: 220, G: 120, B: 40, A: 255},  // orange
		{R: 60, G: 160, B: 80, A: 255},   // green
	}, []int{50, 20, 15, 15}
}

func TestKMeansExtractCount(t *testing.T) {
	bands, widths := testBands()
	img := makeBlockImage(bands, widths, 60)

	extractor := NewKMeansExtractorWithSeed(1)
	palette, err := extractor.Extract(img, 4)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if palette.Len() != 4 {
		t.Errorf("Extract() returned %d colours, want 4", palette.Len())
	}
}

func TestKMeansSeedDeterminism(t *testing.T) {
	bands, widths := testBands()
	img := makeBlockImage(bands, widths, 60)

	first, err := NewKMeansExtractorWithSeed(42).Extract(img, 4)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	second, err := NewKMeansExtractorWithSeed(42).Extract(img, 4)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	firstHex := first.ToHex()
	secondHex := second.ToHex()
	if len(firstHex) != len(secondHex) {
		t.Fatalf("runs returned different colour counts: %d vs %d", len(firstHex), len(secondHex))
	}

	for i := range firstHex {
		if firstHex[i] != secondHex[i] {
			t.Errorf("colour %d differs between seeded runs: %s vs %s", i, firstHex[i], secondHex[i])
		}
		if first.Weight(i) != second.Weight(i) {
			t.Errorf("weight %d differs between seeded runs: %v vs %v", i, first.Weight(i), second.Weight(i))
		}
	}
}

func TestKMeansWeightsDescendingAndNormalised(t *testing.T) {
	bands, widths := testBands()
	img := makeBlockImage(bands, widths, 60)

	palette, err := NewKMeansExtractorWithSeed(7).Extract(img, 4)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	sum := 0.0
	for i := 0; i < palette.Len(); i++ {
		w := palette.Weight(i)
		if w < 0 || w > 1 {
			t.Errorf("Weight(%d) = %v, out of [0, 1]", i, w)
		}
		if i > 0 && w > palette.Weight(i-1) {
			t.Errorf("weights not in descending order at %d: %v > %v", i, w, palette.Weight(i-1))
		}
		sum += w
	}

	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("weights sum to %v, want 1.0", sum)
	}
}

func TestKMeansDominantColourFirst(t *testing.T) {
	bands, widths := testBands()
	img := makeBlockImage(bands, widths, 60)

	palette, err := NewKMeansExtractorWithSeed(3).Extract(img, 4)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	// Half the image is the dark blue band, so the first cluster must be it.
	first := ToRGB(palette.Colors[0])
	if first.R > 40 || first.B > 60 {
		t.Errorf("dominant colour = %s, expected the dark blue band", first.Hex())
	}
	if palette.Weight(0) < 0.25 {
		t.Errorf("dominant weight = %v, want >= 0.25", palette.Weight(0))
	}
}

func TestKMeansUniqueColourShortcut(t *testing.T) {
	// Two flat bands, no jitter: only two unique colours exist.
	img := image.NewRGBA(image.Rect(0, 0, 20, 10))
	for x := 0; x < 20; x++ {
		for y := 0; y < 10; y++ {
			if x < 10 {
				img.Set(x, y, color.RGBA{R: 255, A: 255})
			} else {
				img.Set(x, y, color.RGBA{B: 255, A: 255})
			}
		}
	}

	palette, err := NewKMeansExtractorWithSeed(1).Extract(img, 8)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if palette.Len() != 2 {
		t.Errorf("Extract() returned %d colours for a 2-colour image, want 2", palette.Len())
	}
}

func TestKMeansExtractValidation(t *testing.T) {
	bands, widths := testBands()
	img := makeBlockImage(bands, widths, 10)
	extractor := NewKMeansExtractor()

	tests := []struct {
		name  string
		img   image.Image
		count int
	}{
		{name: "nil image", img: nil, count: 4},
		{name: "zero count", img: img, count: 0},
		{name: "negative count", img: img, count: -1},
		{name: "count too large", img: img, count: 257},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := extractor.Extract(tt.img, tt.count); err == nil {
				t.Error("Extract() expected error, got nil")
			}
		})
	}
}

func TestSamplePixelsCapsLargeImages(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 500, 500))
	pixels := samplePixels(img)

	if len(pixels) == 0 {
		t.Fatal("samplePixels() returned no pixels")
	}
	if len(pixels) > 2000 {
		t.Errorf("samplePixels() returned %d pixels, want <= 2000", len(pixels))
	}
}
