// Package notify sends desktop notifications through the session's
// notification daemon. A missing daemon is treated like a missing consumer
// elsewhere: the send becomes a silent no-op.
package notify

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/madder-sh/madder/internal/run"
)

// Notification is one message for the notification daemon.
type Notification struct {
	Summary string
	Body    string

	// Icon is a themed icon name or an image path.
	Icon string

	// Progress in 0..100 adds a progress-bar hint; a negative value omits
	// it.
	Progress int

	// Tag makes successive notifications with the same tag replace each
	// other instead of stacking, which is what an on-screen display wants.
	Tag string
}

// Notifier delivers notifications. Implementations must treat an absent
// notification service as a no-op, not an error.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// SendAdapter delivers notifications through notify-send.
type SendAdapter struct {
	runner run.Runner
	logger hclog.Logger
}

// NewSendAdapter creates a Notifier backed by notify-send.
func NewSendAdapter(runner run.Runner, logger hclog.Logger) *SendAdapter {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &SendAdapter{runner: runner, logger: logger}
}

// Notify shells out to notify-send. When the binary is not on PATH the
// notification is dropped with a debug log.
func (a *SendAdapter) Notify(ctx context.Context, n Notification) error {
	if !a.runner.Available("notify-send") {
		a.logger.Debug("notify-send not found, dropping notification", "summary", n.Summary)
		return nil
	}

	args := []string{"-a", "madder", "-u", "low", "-t", "5000"}
	if n.Icon != "" {
		args = append(args, "-i", n.Icon)
	}
	if n.Progress >= 0 {
		args = append(args, "-h", fmt.Sprintf("int:value:%d", n.Progress))
	}
	if n.Tag != "" {
		args = append(args, "-h", "string:x-canonical-private-synchronous:"+n.Tag)
	}
	args = append(args, n.Summary)
	if n.Body != "" {
		args = append(args, n.Body)
	}

	res := a.runner.Run(ctx, "notify-send", args, run.DefaultOptions())
	if !res.Success() {
		return fmt.Errorf("notify-send failed: %w (output: %s)", res.Err, res.Stderr)
	}
	return nil
}
