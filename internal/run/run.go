// Package run provides external command execution for compositor control,
// wallpaper backends and desktop notifications.
package run

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/hashicorp/go-hclog"
)

// Result holds the result of a command execution.
type Result struct {
	Command  string
	Args     []string
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
	Err      error
}

// Success reports whether the command ran and exited zero.
func (r *Result) Success() bool {
	return r.Err == nil && r.ExitCode == 0
}

// Options configures command execution.
type Options struct {
	Dir     string
	Env     []string
	Timeout time.Duration
	Stdin   io.Reader
}

// DefaultOptions returns default execution options. External tools invoked
// here (hyprctl, swww, notify-send, wpctl) respond quickly, so the default
// timeout is short.
func DefaultOptions() Options {
	return Options{
		Timeout: 10 * time.Second,
	}
}

// Runner executes external commands. The single implementation shells out;
// tests substitute a fake to script command outcomes.
type Runner interface {
	// Run executes a command and returns the result. The result is never
	// nil; failures are reported through Result.Err and Result.ExitCode.
	Run(ctx context.Context, name string, args []string, opts Options) *Result

	// Available reports whether the named command can be found on PATH.
	Available(name string) bool
}

// execRunner is the process-spawning Runner implementation.
type execRunner struct {
	logger hclog.Logger
}

// New creates a Runner that executes commands on the host.
func New(logger hclog.Logger) Runner {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &execRunner{logger: logger}
}

// Run executes a command and returns the result.
func (r *execRunner) Run(ctx context.Context, name string, args []string, opts Options) *Result {
	start := time.Now()

	result := &Result{
		Command: name,
		Args:    args,
	}

	// Apply timeout.
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)

	// Set working directory.
	if opts.Dir != "" {
		cmd.Dir = opts.Dir
	}

	// Set environment.
	if len(opts.Env) > 0 {
		cmd.Env = append(os.Environ(), opts.Env...)
	}

	// Set stdin.
	if opts.Stdin != nil {
		cmd.Stdin = opts.Stdin
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.logger.Debug("executing command", "cmd", name, "args", args)

	err := cmd.Run()
	result.Duration = time.Since(start)
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = -1
		}
		result.Err = err
		r.logger.Debug("command failed",
			"cmd", name,
			"exit_code", result.ExitCode,
			"stderr", result.Stderr,
			"duration", result.Duration)
		return result
	}

	result.ExitCode = 0
	r.logger.Debug("command completed", "cmd", name, "duration", result.Duration)
	return result
}

// Available reports whether the named command can be found on PATH.
func (r *execRunner) Available(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
