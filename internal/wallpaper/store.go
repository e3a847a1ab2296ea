// Package wallpaper manages the compositor's active wallpaper: reading it,
// setting it, and rotating through a wallpaper directory.
package wallpaper

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/madder-sh/madder/internal/run"
)

// Store is the compositor-side record of the active wallpaper. The active
// path is external persisted state: read before each rotation, written
// after.
type Store interface {
	// Name identifies the backing wallpaper daemon.
	Name() string

	// Running reports whether the daemon is available in this session.
	Running(ctx context.Context) bool

	// Active returns the currently applied wallpaper path. An empty string
	// with nil error means the daemon has no wallpaper loaded yet.
	Active(ctx context.Context) (string, error)

	// SetActive applies the wallpaper at path on all monitors.
	SetActive(ctx context.Context, path string) error
}

// Detect probes the session for a running wallpaper daemon and returns the
// matching store. Probe order is fixed: hyprpaper first (the Hyprland
// default), then swww.
func Detect(ctx context.Context, runner run.Runner, logger hclog.Logger) (Store, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	stores := []Store{
		NewHyprpaperStore(runner, logger),
		NewSwwwStore(runner, logger),
	}

	for _, s := range stores {
		if s.Running(ctx) {
			logger.Debug("detected wallpaper daemon", "daemon", s.Name())
			return s, nil
		}
	}

	return nil, fmt.Errorf("no supported wallpaper daemon detected (tried: hyprpaper, swww)")
}
