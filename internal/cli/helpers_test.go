package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/viper"

	"github.com/madder-sh/madder/internal/config"
	"github.com/madder-sh/madder/internal/theme"
)

// quiet replaces the package logger for the duration of a test. Commands
// normally build it in the root PersistentPreRunE, which tests bypass.
func quiet(t *testing.T) {
	t.Helper()
	prev := logger
	logger = hclog.NewNullLogger()
	t.Cleanup(func() { logger = prev })
}

func TestOpenStoreExplicit(t *testing.T) {
	quiet(t)

	tests := []struct {
		setting string
		want    string
	}{
		{"hyprpaper", "hyprpaper"},
		{"swww", "swww"},
	}

	for _, tt := range tests {
		t.Run(tt.setting, func(t *testing.T) {
			viper.Set(config.KeyWallpaperStore, tt.setting)
			t.Cleanup(func() { viper.Set(config.KeyWallpaperStore, nil) })

			store, err := openStore(context.Background(), newRunner())
			if err != nil {
				t.Fatalf("openStore failed: %v", err)
			}
			if store.Name() != tt.want {
				t.Errorf("store.Name() = %q, want %q", store.Name(), tt.want)
			}
		})
	}
}

func TestOpenStoreUnknown(t *testing.T) {
	quiet(t)
	viper.Set(config.KeyWallpaperStore, "feh")
	t.Cleanup(func() { viper.Set(config.KeyWallpaperStore, nil) })

	_, err := openStore(context.Background(), newRunner())
	if err == nil {
		t.Fatal("expected an error for an unknown store name")
	}
	if !strings.Contains(err.Error(), "feh") {
		t.Errorf("error %q should name the rejected store", err)
	}
}

func TestEnabledTargets(t *testing.T) {
	all := theme.DefaultTargets()

	viper.Set(config.KeyTargetsDisabled, []string{"qt", "kitty"})
	t.Cleanup(func() { viper.Set(config.KeyTargetsDisabled, nil) })

	enabled := enabledTargets()
	if len(enabled) != len(all)-2 {
		t.Fatalf("got %d targets, want %d", len(enabled), len(all)-2)
	}
	for _, target := range enabled {
		if target.Name() == "qt" || target.Name() == "kitty" {
			t.Errorf("disabled target %q still enabled", target.Name())
		}
	}

	// Order follows the built-in propagation order.
	want := 0
	for _, target := range all {
		if target.Name() == "qt" || target.Name() == "kitty" {
			continue
		}
		if enabled[want].Name() != target.Name() {
			t.Errorf("position %d = %q, want %q", want, enabled[want].Name(), target.Name())
		}
		want++
	}
}

func TestEnabledTargetsDefault(t *testing.T) {
	viper.Set(config.KeyTargetsDisabled, nil)

	if got, want := len(enabledTargets()), len(theme.DefaultTargets()); got != want {
		t.Errorf("got %d targets with nothing disabled, want %d", got, want)
	}
}

func TestNewExtractorBuiltin(t *testing.T) {
	quiet(t)
	viper.Set(config.KeyThemeExtractor, "")
	viper.Set(config.KeyThemeMode, "dark")
	viper.Set(config.KeyThemeColours, 8)
	t.Cleanup(func() {
		viper.Set(config.KeyThemeExtractor, nil)
		viper.Set(config.KeyThemeMode, nil)
		viper.Set(config.KeyThemeColours, nil)
	})

	extractor, cleanup, err := newExtractor()
	if err != nil {
		t.Fatalf("newExtractor failed: %v", err)
	}
	defer cleanup()

	if _, ok := extractor.(*theme.ImageExtractor); !ok {
		t.Errorf("extractor is %T, want *theme.ImageExtractor", extractor)
	}
}

func TestNewExtractorBadMode(t *testing.T) {
	quiet(t)
	viper.Set(config.KeyThemeMode, "sepia")
	t.Cleanup(func() { viper.Set(config.KeyThemeMode, nil) })

	if _, _, err := newExtractor(); err == nil {
		t.Fatal("expected an error for an invalid theme mode")
	}
}
