package wallpaper

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/madder-sh/madder/internal/run"
)

// HyprpaperStore drives hyprpaper through hyprctl.
type HyprpaperStore struct {
	runner run.Runner
	logger hclog.Logger
}

// NewHyprpaperStore creates a store backed by hyprpaper.
func NewHyprpaperStore(runner run.Runner, logger hclog.Logger) *HyprpaperStore {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &HyprpaperStore{runner: runner, logger: logger}
}

// Name identifies the backing wallpaper daemon.
func (s *HyprpaperStore) Name() string { return "hyprpaper" }

// Running checks whether hyprpaper responds over hyprctl.
func (s *HyprpaperStore) Running(ctx context.Context) bool {
	if !s.runner.Available("hyprctl") {
		return false
	}
	res := s.runner.Run(ctx, "hyprctl", []string{"hyprpaper", "listloaded"}, run.DefaultOptions())
	return res.Success()
}

// Active returns the wallpaper currently displayed. With multiple monitors
// the first assignment wins; rotation treats the desktop as a single
// surface.
func (s *HyprpaperStore) Active(ctx context.Context) (string, error) {
	res := s.runner.Run(ctx, "hyprctl", []string{"hyprpaper", "listactive"}, run.DefaultOptions())
	if !res.Success() {
		return "", fmt.Errorf("failed to query active wallpaper: %w (output: %s)", res.Err, res.Stderr)
	}

	// Output format: "MONITOR = /path/to/wallpaper" per line, with an empty
	// monitor name for the wildcard assignment.
	for _, line := range strings.Split(res.Stdout, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.SplitN(line, " = ", 2)
		if len(parts) != 2 {
			continue
		}
		if path := strings.TrimSpace(parts[1]); path != "" {
			return path, nil
		}
	}

	return "", nil
}

// SetActive applies the wallpaper on all monitors. The previously loaded
// images are unloaded first: hyprpaper caches by path, so a changed file
// behind the same path would otherwise show the stale cache.
func (s *HyprpaperStore) SetActive(ctx context.Context, path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	// Ignore errors - nothing might be loaded yet.
	s.runner.Run(ctx, "hyprctl", []string{"hyprpaper", "unload", "all"}, run.DefaultOptions())

	res := s.runner.Run(ctx, "hyprctl", []string{"hyprpaper", "preload", absPath}, run.DefaultOptions())
	if !res.Success() {
		return fmt.Errorf("failed to preload wallpaper: %w (output: %s)", res.Err, res.Stderr)
	}

	// The ",path" syntax assigns the wallpaper to every monitor at once,
	// matching the hyprpaper.conf wildcard pattern.
	res = s.runner.Run(ctx, "hyprctl", []string{"hyprpaper", "wallpaper", "," + absPath}, run.DefaultOptions())
	if !res.Success() {
		return fmt.Errorf("failed to set wallpaper: %w (output: %s)", res.Err, res.Stderr)
	}

	s.logger.Debug("set wallpaper", "daemon", s.Name(), "path", absPath)
	return nil
}
