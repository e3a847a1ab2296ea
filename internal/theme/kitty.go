package theme

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/madder-sh/madder/internal/colour"
	"github.com/madder-sh/madder/internal/reload"
)

const kittyTemplate = "kitty.conf.tmpl"

// KittyTarget writes the kitty terminal colour theme. The generated file is
// meant to be pulled in with an include directive from kitty.conf; running
// instances pick it up via SIGUSR1.
type KittyTarget struct {
	templated
	outputDir string
	signal    reload.Signal
}

// NewKittyTarget creates the kitty target with default settings.
func NewKittyTarget() *KittyTarget {
	return &KittyTarget{
		templated: newTemplated("kitty", kittyTemplate),
		signal:    reload.NewProcessSignal("kitty", nil),
	}
}

// WithOutputDir overrides the kitty config directory. Used by tests.
func (t *KittyTarget) WithOutputDir(dir string) *KittyTarget {
	t.outputDir = dir
	return t
}

// WithTemplateBase overrides the template override directory.
func (t *KittyTarget) WithTemplateBase(dir string) *KittyTarget {
	t.loader.WithCustomBase(dir)
	return t
}

// WithSignal replaces the reload signal. Used by tests.
func (t *KittyTarget) WithSignal(s reload.Signal) *KittyTarget {
	t.signal = s
	return t
}

// Name returns the target name.
func (t *KittyTarget) Name() string {
	return "kitty"
}

// OutputDir returns the kitty config directory.
func (t *KittyTarget) OutputDir() string {
	if t.outputDir != "" {
		return t.outputDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "kitty")
	}
	return filepath.Join(home, ".config", "kitty")
}

// Render produces the terminal theme file.
func (t *KittyTarget) Render(data *colour.ThemeData) (map[string][]byte, error) {
	content, err := t.render(data)
	if err != nil {
		return nil, err
	}
	return map[string][]byte{"madder.conf": content}, nil
}

// Probe skips the target when kitty is not installed or has no config
// directory to write into.
func (t *KittyTarget) Probe(ctx context.Context) (skip bool, reason string, err error) {
	if t.outputDir != "" {
		return false, "", nil
	}

	if _, err := exec.LookPath("kitty"); err != nil {
		return true, "kitty executable not found on $PATH", nil
	}

	configDir := t.OutputDir()
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		return true, fmt.Sprintf("kitty config directory not found: %s", configDir), nil
	}

	return false, "", nil
}

// Reload signals running kitty instances to re-read their configuration.
func (t *KittyTarget) Reload(ctx context.Context) error {
	return t.signal.Reload()
}
