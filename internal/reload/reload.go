// Package reload signals running desktop consumers to re-read their
// configuration after theme files have been rewritten.
package reload

import (
	"fmt"

	"github.com/mitchellh/go-ps"
)

// Signal asks a running consumer to reload its configuration. When the
// consumer is not running at all, implementations return nil: a missing
// consumer is never an error, its files are simply picked up on next start.
type Signal interface {
	Reload() error
}

// Pids returns the PIDs of every running process with the given
// executable name.
func Pids(executable string) ([]int, error) {
	processes, err := ps.Processes()
	if err != nil {
		return nil, fmt.Errorf("failed to get process list: %w", err)
	}

	var pids []int
	for _, p := range processes {
		if p.Executable() == executable {
			pids = append(pids, p.Pid())
		}
	}

	return pids, nil
}
