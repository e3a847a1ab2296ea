// Package config manages madder's settings through viper: an explicit
// defaults registry, a TOML config file and MADDER_-prefixed environment
// variables.
package config

// Wallpaper management.
const (
	KeyWallpaperDir   = "wallpaper.directory"
	KeyWallpaperStore = "wallpaper.store"
)

// Theme derivation.
const (
	KeyThemeMode      = "theme.mode"
	KeyThemeAlgorithm = "theme.algorithm"
	KeyThemeColours   = "theme.colours"
	KeyThemeExtractor = "theme.extractor"
)

// Target propagation.
const (
	KeyTargetsDisabled = "targets.disabled"
	KeyReloadProcesses = "reload.processes"
)

// Wallpaper generation.
const (
	KeyGenerateAspectRatio = "generate.aspect_ratio"
	KeyGenerateImageSize   = "generate.image_size"
)

// On-screen display.
const (
	KeyOSDVolumeStep     = "osd.volume_step"
	KeyOSDBrightnessStep = "osd.brightness_step"
	KeyOSDScreenshotDir  = "osd.screenshot_dir"
)
