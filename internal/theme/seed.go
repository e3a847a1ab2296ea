package theme

import (
	"crypto/sha256"
	"encoding/binary"
	"image"
)

// contentSeed derives a deterministic clustering seed from image content.
// The same pixels produce the same seed regardless of the file's name or
// location, so re-running propagation on an unchanged wallpaper converges
// on identical theme files.
func contentSeed(img image.Image) int64 {
	bounds := img.Bounds()
	hasher := sha256.New()

	dims := make([]byte, 8)
	binary.LittleEndian.PutUint32(dims[0:4], uint32(bounds.Dx()))
	binary.LittleEndian.PutUint32(dims[4:8], uint32(bounds.Dy()))
	hasher.Write(dims)

	// A grid sample is enough to identify the image; hashing every pixel
	// of a large wallpaper buys nothing.
	step := max(bounds.Dx()/100, bounds.Dy()/100, 1)
	pixel := make([]byte, 4)

	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			r, g, b, a := img.At(x, y).RGBA()
			pixel[0] = byte(r >> 8)
			pixel[1] = byte(g >> 8)
			pixel[2] = byte(b >> 8)
			pixel[3] = byte(a >> 8)
			hasher.Write(pixel)
		}
	}

	sum := hasher.Sum(nil)
	return int64(binary.LittleEndian.Uint64(sum[:8]))
}
