//go:build unix

package reload

import (
	"errors"
	"fmt"
	"syscall"

	"github.com/hashicorp/go-hclog"
)

// ProcessSignal reloads a consumer by sending SIGUSR1 to every running
// process with a matching executable name.
type ProcessSignal struct {
	executable string
	logger     hclog.Logger
}

// NewProcessSignal creates a signal for the given executable name.
func NewProcessSignal(executable string, logger hclog.Logger) *ProcessSignal {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &ProcessSignal{
		executable: executable,
		logger:     logger,
	}
}

// Reload sends SIGUSR1 to all matching processes. No matching process is a
// silent no-op.
func (s *ProcessSignal) Reload() error {
	pids, err := Pids(s.executable)
	if err != nil {
		return fmt.Errorf("failed to find %s processes: %w", s.executable, err)
	}

	if len(pids) == 0 {
		s.logger.Debug("no running instances to signal", "executable", s.executable)
		return nil
	}

	for _, pid := range pids {
		if err := syscall.Kill(pid, syscall.SIGUSR1); err != nil {
			// The process may have exited between listing and signalling.
			if errors.Is(err, syscall.ESRCH) {
				continue
			}
			return fmt.Errorf("failed to send reload signal to %s (PID %d): %w", s.executable, pid, err)
		}
		s.logger.Debug("sent reload signal", "executable", s.executable, "pid", pid)
	}

	return nil
}
