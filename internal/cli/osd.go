package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/madder-sh/madder/internal/config"
	"github.com/madder-sh/madder/internal/notify"
	"github.com/madder-sh/madder/internal/osd"
)

var osdScreenshotRegion bool

// osdCmd groups the on-screen-display helpers. These are meant to be bound
// to compositor keybindings, not typed interactively.
var osdCmd = &cobra.Command{
	Use:   "osd",
	Short: "On-screen display helpers for compositor keybindings",
	Long: `Adjust volume or brightness with a progress notification, or take a
screenshot. Bind these in the compositor:

  bind = , XF86AudioRaiseVolume, exec, madder osd volume up
  bind = , XF86MonBrightnessDown, exec, madder osd brightness down
  bind = SUPER, Print, exec, madder osd screenshot --region`,
}

// osdVolumeCmd represents the osd volume command
var osdVolumeCmd = &cobra.Command{
	Use:       "volume <up|down|mute>",
	Short:     "Adjust or mute the default audio sink",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"up", "down", "mute"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return newOSD().Volume(cmd.Context(), osd.VolumeAction(args[0]))
	},
}

// osdBrightnessCmd represents the osd brightness command
var osdBrightnessCmd = &cobra.Command{
	Use:       "brightness <up|down>",
	Short:     "Adjust the backlight brightness",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"up", "down"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return newOSD().Brightness(cmd.Context(), osd.BrightnessAction(args[0]))
	},
}

// osdScreenshotCmd represents the osd screenshot command
var osdScreenshotCmd = &cobra.Command{
	Use:   "screenshot",
	Short: "Capture the screen or a selected region",
	Long: `Capture the screen with grim into the screenshot directory. With
--region, slurp selects the area first; cancelling the selection exits
without capturing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := newOSD().Screenshot(cmd.Context(), osdScreenshotRegion)
		if err != nil {
			return err
		}
		if path != "" {
			fmt.Println(path)
		}
		return nil
	},
}

func init() {
	osdScreenshotCmd.Flags().BoolVar(&osdScreenshotRegion, "region", false, "select a region with slurp before capturing")

	osdCmd.AddCommand(osdVolumeCmd)
	osdCmd.AddCommand(osdBrightnessCmd)
	osdCmd.AddCommand(osdScreenshotCmd)
}

// newOSD builds the OSD helper from configuration.
func newOSD() *osd.OSD {
	runner := newRunner()
	notifier := notify.NewSendAdapter(runner, logger.Named("notify"))
	return osd.New(runner, notifier, logger.Named("osd")).
		WithVolumeStep(viper.GetInt(config.KeyOSDVolumeStep)).
		WithBrightnessStep(viper.GetInt(config.KeyOSDBrightnessStep)).
		WithScreenshotDir(config.ExpandPath(viper.GetString(config.KeyOSDScreenshotDir)))
}
