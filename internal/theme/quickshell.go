package theme

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/madder-sh/madder/internal/colour"
	"github.com/madder-sh/madder/internal/reload"
)

const quickshellTemplate = "quickshell.json.tmpl"

// QuickshellTarget writes the UI shell's palette file. The file plus a
// SIGUSR1 to the running shell is the whole reload contract: quickshell
// re-reads colours.json when signalled.
type QuickshellTarget struct {
	templated
	outputDir string
	signal    reload.Signal
}

// NewQuickshellTarget creates the quickshell target with default settings.
func NewQuickshellTarget() *QuickshellTarget {
	return &QuickshellTarget{
		templated: newTemplated("quickshell", quickshellTemplate),
		signal:    reload.NewProcessSignal("quickshell", nil),
	}
}

// WithOutputDir overrides the output directory. Used by tests.
func (t *QuickshellTarget) WithOutputDir(dir string) *QuickshellTarget {
	t.outputDir = dir
	return t
}

// WithTemplateBase overrides the template override directory.
func (t *QuickshellTarget) WithTemplateBase(dir string) *QuickshellTarget {
	t.loader.WithCustomBase(dir)
	return t
}

// WithSignal replaces the reload signal. Used by tests.
func (t *QuickshellTarget) WithSignal(s reload.Signal) *QuickshellTarget {
	t.signal = s
	return t
}

// Name returns the target name.
func (t *QuickshellTarget) Name() string {
	return "quickshell"
}

// OutputDir returns the directory the palette file is written under.
func (t *QuickshellTarget) OutputDir() string {
	if t.outputDir != "" {
		return t.outputDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "quickshell", "madder")
	}
	return filepath.Join(home, ".config", "quickshell", "madder")
}

// Render produces the palette JSON.
func (t *QuickshellTarget) Render(data *colour.ThemeData) (map[string][]byte, error) {
	content, err := t.render(data)
	if err != nil {
		return nil, err
	}
	return map[string][]byte{"colours.json": content}, nil
}

// Probe skips the target when no quickshell configuration exists at all.
func (t *QuickshellTarget) Probe(ctx context.Context) (skip bool, reason string, err error) {
	if t.outputDir != "" {
		return false, "", nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return false, "", nil
	}
	configDir := filepath.Join(home, ".config", "quickshell")
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		return true, fmt.Sprintf("quickshell config directory not found: %s", configDir), nil
	}

	return false, "", nil
}

// Reload signals the running shell to re-read the palette file.
func (t *QuickshellTarget) Reload(ctx context.Context) error {
	return t.signal.Reload()
}
