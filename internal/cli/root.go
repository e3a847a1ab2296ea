// Package cli provides the command-line interface for madder.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/madder-sh/madder/internal/config"
	"github.com/madder-sh/madder/internal/version"
)

var (
	// Global flags
	flagVerbose    bool
	flagQuiet      bool
	flagConfigFile string

	// logger is the process-wide logger, built once configuration and flags
	// are resolved. Command output for humans goes to stdout; logs to stderr.
	logger hclog.Logger

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "madder",
		Short: "Wallpaper rotation and palette-driven desktop theming",
		Long: `Madder rotates wallpapers and pushes each wallpaper's colour palette out
to the theme files of your desktop applications.

Rotate through a wallpaper directory, extract a named palette from the
new wallpaper, rewrite the GTK, Qt, kitty and quickshell themes from it,
and signal running consumers to pick the change up.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Setup(flagConfigFile); err != nil {
				return err
			}
			logger = newLogger()
			return nil
		},
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&flagConfigFile, "config", "", "config file (default: ~/.config/madder/config.toml)")
	rootCmd.PersistentFlags().StringP("wallpaper-dir", "d", "", "wallpaper directory (default: ~/Pictures/Wallpapers)")
	rootCmd.PersistentFlags().StringP("mode", "m", "", "theme mode (auto, dark, light)")

	bindFlag(rootCmd.PersistentFlags(), config.KeyWallpaperDir, "wallpaper-dir")
	bindFlag(rootCmd.PersistentFlags(), config.KeyThemeMode, "mode")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(rotateCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(wallpaperCmd)
	rootCmd.AddCommand(backendCmd)
	rootCmd.AddCommand(osdCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger from the verbosity flags. Quiet wins
// over verbose when both are set.
func newLogger() hclog.Logger {
	level := hclog.Info
	if flagVerbose {
		level = hclog.Debug
	}
	if flagQuiet {
		level = hclog.Error
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "madder",
		Level:  level,
		Output: os.Stderr,
	})
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
