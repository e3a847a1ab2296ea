// Package osd implements the on-screen-display helpers: volume and
// brightness adjustment with a progress notification, and screenshots.
// Everything here is a pure side effect on the session; no state is kept.
package osd

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/madder-sh/madder/internal/notify"
	"github.com/madder-sh/madder/internal/run"
)

// defaultSink is wpctl's alias for the current default audio sink.
const defaultSink = "@DEFAULT_AUDIO_SINK@"

// osdTag keys the replace-hint so repeated key presses update one
// notification instead of stacking a new one per press.
const osdTag = "madder-osd"

// VolumeAction selects what a volume invocation does.
type VolumeAction string

const (
	VolumeUp   VolumeAction = "up"
	VolumeDown VolumeAction = "down"
	VolumeMute VolumeAction = "mute"
)

// BrightnessAction selects the brightness direction.
type BrightnessAction string

const (
	BrightnessUp   BrightnessAction = "up"
	BrightnessDown BrightnessAction = "down"
)

// OSD drives wpctl, brightnessctl and grim/slurp through the shared
// runner and reports the result as a notification.
type OSD struct {
	runner   run.Runner
	notifier notify.Notifier
	logger   hclog.Logger

	volumeStep     int
	brightnessStep int
	screenshotDir  string
}

// New creates an OSD with the default step sizes.
func New(runner run.Runner, notifier notify.Notifier, logger hclog.Logger) *OSD {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &OSD{
		runner:         runner,
		notifier:       notifier,
		logger:         logger,
		volumeStep:     5,
		brightnessStep: 10,
	}
}

// WithVolumeStep sets the volume step percentage.
func (o *OSD) WithVolumeStep(step int) *OSD {
	if step > 0 {
		o.volumeStep = step
	}
	return o
}

// WithBrightnessStep sets the brightness step percentage.
func (o *OSD) WithBrightnessStep(step int) *OSD {
	if step > 0 {
		o.brightnessStep = step
	}
	return o
}

// WithScreenshotDir sets where screenshots are written. The default is
// ~/Pictures.
func (o *OSD) WithScreenshotDir(dir string) *OSD {
	o.screenshotDir = dir
	return o
}

// Volume adjusts or mutes the default sink, then notifies with the new
// level as a progress bar.
func (o *OSD) Volume(ctx context.Context, action VolumeAction) error {
	var args []string
	switch action {
	case VolumeUp:
		// -l 1.0 caps the sink at 100% so repeated presses cannot push
		// pipewire into software over-amplification.
		args = []string{"set-volume", "-l", "1.0", defaultSink, fmt.Sprintf("%d%%+", o.volumeStep)}
	case VolumeDown:
		args = []string{"set-volume", defaultSink, fmt.Sprintf("%d%%-", o.volumeStep)}
	case VolumeMute:
		args = []string{"set-mute", defaultSink, "toggle"}
	default:
		return fmt.Errorf("unknown volume action %q", action)
	}

	if res := o.runner.Run(ctx, "wpctl", args, run.DefaultOptions()); !res.Success() {
		return fmt.Errorf("wpctl %s failed: %w (output: %s)", args[0], res.Err, res.Stderr)
	}

	res := o.runner.Run(ctx, "wpctl", []string{"get-volume", defaultSink}, run.DefaultOptions())
	if !res.Success() {
		return fmt.Errorf("wpctl get-volume failed: %w (output: %s)", res.Err, res.Stderr)
	}
	percent, muted, err := parseVolume(res.Stdout)
	if err != nil {
		return err
	}

	n := notify.Notification{
		Summary:  fmt.Sprintf("Volume %d%%", percent),
		Icon:     volumeIcon(percent, muted),
		Progress: percent,
		Tag:      osdTag,
	}
	if muted {
		n.Summary = "Volume muted"
	}
	o.send(ctx, n)
	return nil
}

// Brightness adjusts the backlight, then notifies with the new level.
func (o *OSD) Brightness(ctx context.Context, action BrightnessAction) error {
	var arg string
	switch action {
	case BrightnessUp:
		arg = fmt.Sprintf("%d%%+", o.brightnessStep)
	case BrightnessDown:
		arg = fmt.Sprintf("%d%%-", o.brightnessStep)
	default:
		return fmt.Errorf("unknown brightness action %q", action)
	}

	if res := o.runner.Run(ctx, "brightnessctl", []string{"set", arg}, run.DefaultOptions()); !res.Success() {
		return fmt.Errorf("brightnessctl set failed: %w (output: %s)", res.Err, res.Stderr)
	}

	res := o.runner.Run(ctx, "brightnessctl", []string{"-m"}, run.DefaultOptions())
	if !res.Success() {
		return fmt.Errorf("brightnessctl query failed: %w (output: %s)", res.Err, res.Stderr)
	}
	percent, err := parseBrightness(res.Stdout)
	if err != nil {
		return err
	}

	o.send(ctx, notify.Notification{
		Summary:  fmt.Sprintf("Brightness %d%%", percent),
		Icon:     "display-brightness-symbolic",
		Progress: percent,
		Tag:      osdTag,
	})
	return nil
}

// Screenshot captures the screen with grim, or a slurp-selected region,
// and notifies with the saved path. A cancelled region selection returns
// an empty path and no error.
func (o *OSD) Screenshot(ctx context.Context, region bool) (string, error) {
	dir := o.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		dir = filepath.Join(home, "Pictures")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create screenshot directory: %w", err)
	}
	path := filepath.Join(dir, time.Now().Format("screenshot-20060102-150405.png"))

	args := []string{path}
	if region {
		res := o.runner.Run(ctx, "slurp", nil, run.DefaultOptions())
		geometry := strings.TrimSpace(res.Stdout)
		if !res.Success() || geometry == "" {
			// slurp exits non-zero when the selection is cancelled with
			// escape. Nothing to capture, nothing to report.
			o.logger.Debug("region selection cancelled")
			return "", nil
		}
		args = []string{"-g", geometry, path}
	}

	if res := o.runner.Run(ctx, "grim", args, run.DefaultOptions()); !res.Success() {
		return "", fmt.Errorf("grim failed: %w (output: %s)", res.Err, res.Stderr)
	}

	o.send(ctx, notify.Notification{
		Summary:  "Screenshot saved",
		Body:     path,
		Icon:     path,
		Progress: -1,
	})
	return path, nil
}

// send delivers the notification and swallows failures. The adjustment
// already happened; a broken notification daemon must not fail it.
func (o *OSD) send(ctx context.Context, n notify.Notification) {
	if err := o.notifier.Notify(ctx, n); err != nil {
		o.logger.Warn("notification failed", "summary", n.Summary, "error", err)
	}
}

// parseVolume parses wpctl get-volume output, "Volume: 0.45" with an
// optional "[MUTED]" suffix, into a percentage.
func parseVolume(out string) (int, bool, error) {
	muted := strings.Contains(out, "[MUTED]")
	rest, ok := strings.CutPrefix(strings.TrimSpace(out), "Volume:")
	if !ok {
		return 0, false, fmt.Errorf("unexpected wpctl output %q", strings.TrimSpace(out))
	}
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return 0, false, fmt.Errorf("unexpected wpctl output %q", strings.TrimSpace(out))
	}
	level, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, false, fmt.Errorf("unexpected wpctl volume %q", fields[0])
	}
	return int(math.Round(level * 100)), muted, nil
}

// parseBrightness parses brightnessctl -m output. The machine-readable
// format is comma-separated with the percentage as its own field:
// "intel_backlight,backlight,24000,50%,48000".
func parseBrightness(out string) (int, error) {
	for _, field := range strings.Split(strings.TrimSpace(out), ",") {
		if !strings.HasSuffix(field, "%") {
			continue
		}
		percent, err := strconv.Atoi(strings.TrimSuffix(field, "%"))
		if err != nil {
			return 0, fmt.Errorf("unexpected brightnessctl percentage %q", field)
		}
		return percent, nil
	}
	return 0, fmt.Errorf("no percentage in brightnessctl output %q", strings.TrimSpace(out))
}

// volumeIcon picks the themed icon for a volume level.
func volumeIcon(percent int, muted bool) string {
	switch {
	case muted:
		return "audio-volume-muted"
	case percent < 34:
		return "audio-volume-low"
	case percent < 67:
		return "audio-volume-medium"
	default:
		return "audio-volume-high"
	}
}
