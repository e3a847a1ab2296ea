package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/madder-sh/madder/internal/config"
	img "github.com/madder-sh/madder/internal/image"
	"github.com/madder-sh/madder/internal/reload"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the session's theming status",
	Long: `Probe the session and report the compositor, the wallpaper daemon,
the active wallpaper and which theme consumers are running.`,
	RunE: runStatus,
}

// runStatus executes the status command.
func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	fmt.Printf("Compositor:   %s\n", detectCompositor())

	dir := config.WallpaperDir()
	if images, err := img.ListImages(dir); err != nil {
		fmt.Printf("Wallpapers:   %s (unreadable)\n", dir)
	} else {
		fmt.Printf("Wallpapers:   %d in %s\n", len(images), dir)
	}

	store, err := openStore(ctx, newRunner())
	if err != nil {
		fmt.Printf("Daemon:       none (%v)\n", err)
	} else {
		fmt.Printf("Daemon:       %s\n", store.Name())
		active, err := store.Active(ctx)
		switch {
		case err != nil:
			fmt.Printf("Active:       unknown (%v)\n", err)
		case active == "":
			fmt.Println("Active:       (none)")
		default:
			fmt.Printf("Active:       %s\n", active)
		}
	}

	var running, stopped []string
	for _, name := range viper.GetStringSlice(config.KeyReloadProcesses) {
		pids, err := reload.Pids(name)
		if err != nil || len(pids) == 0 {
			stopped = append(stopped, name)
			continue
		}
		running = append(running, fmt.Sprintf("%s (%d)", name, len(pids)))
	}
	if len(running) > 0 {
		fmt.Printf("Consumers:    %s\n", strings.Join(running, ", "))
	}
	if len(stopped) > 0 {
		fmt.Printf("Not running:  %s\n", strings.Join(stopped, ", "))
	}

	return nil
}

// detectCompositor identifies the session's compositor from its environment.
func detectCompositor() string {
	if os.Getenv("HYPRLAND_INSTANCE_SIGNATURE") != "" {
		return "Hyprland"
	}
	if desktop := os.Getenv("XDG_CURRENT_DESKTOP"); desktop != "" {
		return desktop
	}
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		return "wayland (unknown compositor)"
	}
	return "unknown"
}
