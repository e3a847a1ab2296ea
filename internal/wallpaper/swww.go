package wallpaper

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/madder-sh/madder/internal/run"
)

// SwwwStore drives the swww wallpaper daemon.
type SwwwStore struct {
	runner run.Runner
	logger hclog.Logger
}

// NewSwwwStore creates a store backed by swww.
func NewSwwwStore(runner run.Runner, logger hclog.Logger) *SwwwStore {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &SwwwStore{runner: runner, logger: logger}
}

// Name identifies the backing wallpaper daemon.
func (s *SwwwStore) Name() string { return "swww" }

// Running checks for the swww daemon process.
func (s *SwwwStore) Running(ctx context.Context) bool {
	res := s.runner.Run(ctx, "pgrep", []string{"-x", "swww-daemon"}, run.DefaultOptions())
	return res.Success()
}

// Active returns the wallpaper currently displayed. With multiple monitors
// the first reported image wins.
func (s *SwwwStore) Active(ctx context.Context) (string, error) {
	res := s.runner.Run(ctx, "swww", []string{"query"}, run.DefaultOptions())
	if !res.Success() {
		return "", fmt.Errorf("failed to query active wallpaper: %w (output: %s)", res.Err, res.Stderr)
	}

	// Output format per monitor:
	// "DP-1: 1920x1080, scale: 1, currently displaying: image: /path"
	for _, line := range strings.Split(res.Stdout, "\n") {
		idx := strings.LastIndex(line, "image: ")
		if idx < 0 {
			continue
		}
		if path := strings.TrimSpace(line[idx+len("image: "):]); path != "" {
			return path, nil
		}
	}

	return "", nil
}

// SetActive applies the wallpaper on all monitors with a fade transition.
func (s *SwwwStore) SetActive(ctx context.Context, path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	res := s.runner.Run(ctx, "swww", []string{"img", absPath, "--transition-type", "fade"}, run.DefaultOptions())
	if !res.Success() {
		return fmt.Errorf("failed to set wallpaper: %w (output: %s)", res.Err, res.Stderr)
	}

	s.logger.Debug("set wallpaper", "daemon", s.Name(), "path", absPath)
	return nil
}
