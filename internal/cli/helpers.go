package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/madder-sh/madder/internal/colour"
	"github.com/madder-sh/madder/internal/config"
	"github.com/madder-sh/madder/internal/run"
	"github.com/madder-sh/madder/internal/theme"
	"github.com/madder-sh/madder/internal/util/imagecache"
	"github.com/madder-sh/madder/internal/wallpaper"
)

// bindFlag wires a registered flag into a viper key so the usual
// flag > env > file > default precedence applies to it.
func bindFlag(fs *pflag.FlagSet, key, name string) {
	cobra.CheckErr(viper.BindPFlag(key, fs.Lookup(name)))
}

// newRunner returns the runner every command that shells out goes through.
func newRunner() run.Runner {
	return run.New(logger.Named("run"))
}

// openStore returns the wallpaper store selected by wallpaper.store: "auto"
// probes the session for a running daemon, a concrete name forces it.
func openStore(ctx context.Context, runner run.Runner) (wallpaper.Store, error) {
	switch name := viper.GetString(config.KeyWallpaperStore); name {
	case "", "auto":
		return wallpaper.Detect(ctx, runner, logger)
	case "hyprpaper":
		return wallpaper.NewHyprpaperStore(runner, logger), nil
	case "swww":
		return wallpaper.NewSwwwStore(runner, logger), nil
	default:
		return nil, fmt.Errorf("unknown wallpaper store %q (valid: auto, hyprpaper, swww)", name)
	}
}

// newExtractor builds the configured palette extractor. The returned cleanup
// must be called once extraction is done; for an external extractor it
// terminates the helper process.
func newExtractor() (theme.PaletteExtractor, func(), error) {
	mode, err := colour.ParseThemeType(viper.GetString(config.KeyThemeMode))
	if err != nil {
		return nil, nil, err
	}
	colours := viper.GetInt(config.KeyThemeColours)

	if path := viper.GetString(config.KeyThemeExtractor); path != "" {
		external, err := theme.NewExternalExtractor(config.ExpandPath(path), logger.Named("extractor"))
		if err != nil {
			return nil, nil, err
		}
		external.WithThemeType(mode).WithColourCount(colours)
		return external, external.Close, nil
	}

	builtin := theme.NewImageExtractor(logger.Named("extractor")).
		WithThemeType(mode).
		WithColourCount(colours).
		WithAlgorithm(colour.Algorithm(viper.GetString(config.KeyThemeAlgorithm)))
	return builtin, func() {}, nil
}

// enabledTargets returns the built-in targets minus those listed in
// targets.disabled, preserving propagation order.
func enabledTargets() []theme.Target {
	disabled := viper.GetStringSlice(config.KeyTargetsDisabled)
	var targets []theme.Target
	for _, t := range theme.DefaultTargets() {
		if slices.Contains(disabled, t.Name()) {
			continue
		}
		targets = append(targets, t)
	}
	return targets
}

// newPropagator wires the configured extractor and targets together.
func newPropagator() (*theme.Propagator, func(), error) {
	extractor, cleanup, err := newExtractor()
	if err != nil {
		return nil, nil, err
	}
	return theme.NewPropagator(extractor, enabledTargets(), logger.Named("theme")), cleanup, nil
}

// materialiseImage turns an image argument into a local file path.
// Remote URLs are downloaded into the image cache; external extractors and
// wallpaper daemons only take paths on disk.
func materialiseImage(ctx context.Context, path string) (string, error) {
	if !strings.HasPrefix(path, "http://") && !strings.HasPrefix(path, "https://") {
		return path, nil
	}

	logger.Debug("caching remote image", "url", path)
	cached, err := imagecache.DownloadAndCache(ctx, path, imagecache.CacheOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to fetch remote image: %w", err)
	}
	return cached, nil
}
