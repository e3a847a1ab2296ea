//go:build windows

package reload

import (
	"github.com/hashicorp/go-hclog"
)

// ProcessSignal is a no-op on Windows: the signal-based reload contract only
// exists on Unix-like systems, so consumers pick up new files on restart.
type ProcessSignal struct {
	executable string
}

// NewProcessSignal creates a signal for the given executable name.
func NewProcessSignal(executable string, _ hclog.Logger) *ProcessSignal {
	return &ProcessSignal{executable: executable}
}

// Reload does nothing on Windows.
func (s *ProcessSignal) Reload() error {
	return nil
}
