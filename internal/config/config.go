package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"

	"github.com/madder-sh/madder/internal/colour"
	"github.com/madder-sh/madder/internal/util/xdg"
)

// EnvPrefix is the prefix of madder's environment variables.
const EnvPrefix = "MADDER"

// EnvKeyReplacer normalises configuration keys into environment variable
// naming conventions.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Field is one configuration setting with its factory default.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Env returns the environment variable name for this field.
func (f Field) Env() string {
	return EnvPrefix + "_" + strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
}

// Default holds every configuration field keyed by its name.
var Default = make(map[string]Field)

// Fields returns the registered fields sorted by key.
func Fields() []Field {
	fields := make([]Field, 0, len(Default))
	for _, f := range Default {
		fields = append(fields, f)
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].Key < fields[j].Key })
	return fields
}

func register(key string, value any, description string) {
	if _, exists := Default[key]; exists {
		panic("duplicate config key: " + key)
	}
	Default[key] = Field{Key: key, Value: value, Description: description}
}

func init() {
	register(KeyWallpaperDir, "~/Pictures/Wallpapers",
		"Directory scanned for wallpapers")
	register(KeyWallpaperStore, "auto",
		"Wallpaper daemon to drive.\nAvailable options are: auto, hyprpaper, swww")
	register(KeyThemeMode, "auto",
		"Theme disposition.\nAvailable options are: auto, dark, light")
	register(KeyThemeAlgorithm, string(colour.AlgorithmKMeans),
		"Colour extraction algorithm")
	register(KeyThemeColours, colour.DefaultExtractorConfig().ColorCount,
		"Number of colours extracted before role assignment")
	register(KeyThemeExtractor, "",
		"Path to an external extractor binary.\nEmpty uses the built-in extractor")
	register(KeyTargetsDisabled, []string{},
		"Targets excluded from propagation.\nKnown targets: gtk, qt, kitty, quickshell")
	register(KeyReloadProcesses, []string{"kitty", "quickshell"},
		"Process names probed for running theme consumers")
	register(KeyGenerateAspectRatio, "16:9",
		"Aspect ratio of generated wallpapers")
	register(KeyGenerateImageSize, "",
		"Image size hint for models that accept one (1K, 2K)")
	register(KeyOSDVolumeStep, 5,
		"Volume change per OSD step, in percent")
	register(KeyOSDBrightnessStep, 10,
		"Brightness change per OSD step, in percent")
	register(KeyOSDScreenshotDir, "",
		"Directory screenshots are saved to.\nEmpty uses ~/Pictures")
}

// Setup initialises the global configuration state: factory defaults,
// environment bindings and the configuration file. configFile overrides
// the default location when non-empty; a missing file is not an error.
func Setup(configFile string) error {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for key := range Default {
		viper.MustBindEnv(key)
	}

	viper.SetTypeByDefaultValue(true)
	for key, field := range Default {
		viper.SetDefault(key, field.Value)
	}

	if configFile != "" {
		viper.SetConfigFile(configFile)
		return viper.ReadInConfig()
	}

	dir, err := xdg.ConfigDir()
	if err != nil {
		// No resolvable config directory: run on defaults and environment.
		return nil
	}

	viper.SetConfigName("config")
	viper.SetConfigType("toml")
	viper.AddConfigPath(dir)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}

	return nil
}

// ExpandPath resolves a leading ~ against the user's home directory.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(strings.TrimPrefix(path, "~"), "/"))
	}
	return path
}

// WallpaperDir returns the configured wallpaper directory with its home
// shorthand expanded.
func WallpaperDir() string {
	return ExpandPath(viper.GetString(KeyWallpaperDir))
}
