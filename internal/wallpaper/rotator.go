package wallpaper

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	img "github.com/madder-sh/madder/internal/image"
)

// Direction selects how the rotator moves through the wallpaper set.
type Direction string

const (
	// DirectionNext advances to the following wallpaper, wrapping to the
	// first past the end.
	DirectionNext Direction = "next"

	// DirectionPrevious steps back, wrapping to the last below zero.
	DirectionPrevious Direction = "previous"

	// DirectionRandom picks a uniformly random wallpaper, independent of the
	// current one.
	DirectionRandom Direction = "random"
)

// ParseDirection parses a rotation direction string.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case DirectionNext, DirectionPrevious, DirectionRandom:
		return Direction(s), nil
	default:
		return "", fmt.Errorf("invalid rotation direction %q (valid: next, previous, random)", s)
	}
}

// Applier propagates the palette of a newly applied wallpaper to the themed
// applications. The rotator invokes it synchronously after the store accepts
// the new wallpaper.
type Applier interface {
	Apply(ctx context.Context, imagePath string) error
}

// Rotator cycles the active wallpaper through a directory in filename
// order. The enumeration happens fresh on every call, so files added or
// removed between rotations are picked up without any cached state.
type Rotator struct {
	store   Store
	applier Applier
	logger  hclog.Logger
	rng     *rand.Rand
}

// NewRotator creates a Rotator. The applier may be nil to rotate without
// theme propagation.
func NewRotator(store Store, applier Applier, logger hclog.Logger) *Rotator {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Rotator{
		store:   store,
		applier: applier,
		logger:  logger,
	}
}

// WithRand fixes the random source used for DirectionRandom, so tests get a
// deterministic sequence. A nil source falls back to the global generator.
func (r *Rotator) WithRand(rng *rand.Rand) *Rotator {
	r.rng = rng
	return r
}

// Rotate applies the wallpaper the given direction lands on and returns its
// path. An empty or missing wallpaper directory is a successful no-op
// returning an empty path.
//
// When the active wallpaper is absent from the current enumeration (deleted,
// renamed, or set outside the rotation), directional moves restart from the
// first entry rather than failing.
func (r *Rotator) Rotate(ctx context.Context, direction Direction, wallpaperDir string) (string, error) {
	images, err := img.ListImages(wallpaperDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.logger.Warn("wallpaper directory does not exist, nothing to rotate", "dir", wallpaperDir)
			return "", nil
		}
		return "", err
	}

	if len(images) == 0 {
		r.logger.Info("no wallpapers found, nothing to rotate", "dir", wallpaperDir)
		return "", nil
	}

	active, err := r.store.Active(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read active wallpaper: %w", err)
	}

	idx := indexOf(images, active)

	var newIdx int
	switch direction {
	case DirectionNext:
		if idx < 0 {
			newIdx = r.restartIndex(active)
		} else {
			newIdx = (idx + 1) % len(images)
		}
	case DirectionPrevious:
		if idx < 0 {
			newIdx = r.restartIndex(active)
		} else {
			newIdx = (idx - 1 + len(images)) % len(images)
		}
	case DirectionRandom:
		newIdx = r.intn(len(images))
	default:
		return "", fmt.Errorf("invalid rotation direction %q (valid: next, previous, random)", direction)
	}

	newPath := images[newIdx]

	if err := r.store.SetActive(ctx, newPath); err != nil {
		return "", fmt.Errorf("failed to apply wallpaper %s: %w", newPath, err)
	}

	r.logger.Info("rotated wallpaper",
		"direction", direction,
		"path", newPath,
		"index", newIdx,
		"total", len(images))

	if r.applier != nil {
		if err := r.applier.Apply(ctx, newPath); err != nil {
			// The wallpaper change stands; only the theme is stale.
			return newPath, fmt.Errorf("wallpaper applied but theme propagation failed: %w", err)
		}
	}

	return newPath, nil
}

// restartIndex handles an active wallpaper that is not in the enumeration:
// rotation restarts from the first entry.
func (r *Rotator) restartIndex(active string) int {
	if active == "" {
		r.logger.Debug("no active wallpaper recorded, starting from the first entry")
	} else {
		r.logger.Warn("active wallpaper not found in directory, restarting from the first entry",
			"active", active)
	}
	return 0
}

func (r *Rotator) intn(n int) int {
	if r.rng != nil {
		return r.rng.Intn(n)
	}
	return rand.Intn(n)
}

// indexOf locates the active path in the enumeration by exact path match
// after lexical cleaning.
func indexOf(images []string, active string) int {
	if active == "" {
		return -1
	}
	cleaned := filepath.Clean(active)
	for i, p := range images {
		if filepath.Clean(p) == cleaned {
			return i
		}
	}
	return -1
}
