package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/madder-sh/madder/internal/config"
	"github.com/madder-sh/madder/internal/wallpaper"
)

var rotateNoTheme bool

// rotateCmd represents the rotate command
var rotateCmd = &cobra.Command{
	Use:   "rotate <next|previous|random>",
	Short: "Rotate the active wallpaper",
	Long: `Rotate the active wallpaper through the wallpaper directory.

The directory is enumerated fresh on every rotation, in filename order.
Next and previous wrap around the set; random picks a uniform entry and
may repeat the current wallpaper. After the new wallpaper is applied its
palette is propagated to all enabled theme targets.

An empty or missing wallpaper directory is not an error: the command
prints nothing and exits zero.

Examples:
  # Advance to the next wallpaper
  madder rotate next

  # Step back without touching the theme
  madder rotate previous --no-theme

  # Pick a random wallpaper from a different directory
  madder rotate random -d ~/Pictures/Alternates`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"next", "previous", "random"},
	RunE:      runRotate,
}

func init() {
	rotateCmd.Flags().BoolVar(&rotateNoTheme, "no-theme", false, "change the wallpaper without propagating its palette")
}

// runRotate executes the rotate command.
func runRotate(cmd *cobra.Command, args []string) error {
	direction, err := wallpaper.ParseDirection(args[0])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	store, err := openStore(ctx, newRunner())
	if err != nil {
		return err
	}

	var applier wallpaper.Applier
	cleanup := func() {}
	if !rotateNoTheme {
		propagator, c, err := newPropagator()
		if err != nil {
			return err
		}
		applier, cleanup = propagator, c
	}
	defer cleanup()

	rotator := wallpaper.NewRotator(store, applier, logger.Named("rotate"))
	path, err := rotator.Rotate(ctx, direction, config.WallpaperDir())

	// A partial failure still changed the wallpaper; report the path either
	// way before surfacing the error.
	if path != "" {
		fmt.Println(path)
	}
	return err
}
