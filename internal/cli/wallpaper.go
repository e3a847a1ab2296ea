package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/madder-sh/madder/internal/archive"
	"github.com/madder-sh/madder/internal/config"
	"github.com/madder-sh/madder/internal/genwall"
	img "github.com/madder-sh/madder/internal/image"
)

var (
	// Generate subcommand flags
	wallpaperGeneratePrompt   string
	wallpaperGenerateForce    bool
	wallpaperGenerateApply    bool
	wallpaperGeneratePlain    bool
	wallpaperGenerateProject  string
	wallpaperGenerateLocation string
)

// wallpaperCmd groups the wallpaper set management subcommands.
var wallpaperCmd = &cobra.Command{
	Use:   "wallpaper",
	Short: "Manage the wallpaper directory",
}

// wallpaperListCmd represents the wallpaper list command
var wallpaperListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the wallpapers in rotation order",
	Long: `List the images in the wallpaper directory in rotation order, with
the currently active wallpaper marked.`,
	RunE: runWallpaperList,
}

// wallpaperInstallCmd represents the wallpaper install command
var wallpaperInstallCmd = &cobra.Command{
	Use:   "install <archive|directory|url>",
	Short: "Install a wallpaper pack into the wallpaper directory",
	Long: `Install wallpapers from a pack into the wallpaper directory.

A pack can be a tar.gz, tar.xz, tar.bz2 or zip archive, a bare image
file, a directory of images, or an HTTPS URL to any of those. Image
entries are installed flat under their base name; everything else in an
archive is skipped.

Examples:
  # Install a downloaded archive
  madder wallpaper install ~/Downloads/nord-walls.tar.xz

  # Pull a pack straight from a release
  madder wallpaper install https://example.com/packs/gruvbox.zip

  # Copy every image from another directory
  madder wallpaper install ~/Pictures/Saved`,
	Args: cobra.ExactArgs(1),
	RunE: runWallpaperInstall,
}

// wallpaperGenerateCmd represents the wallpaper generate command
var wallpaperGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a wallpaper with a GenAI image model",
	Long: `Generate a wallpaper from a text prompt using the backend and model
selected with 'madder backend set'.

The gemini-api backend reads GOOGLE_API_KEY; the vertex-ai backend needs
a project and location (flags or GOOGLE_CLOUD_PROJECT /
GOOGLE_CLOUD_LOCATION). Output lands in the wallpaper directory under a
name derived from the prompt and model, so repeating a prompt reuses the
existing file instead of paying for another generation.

Examples:
  # Generate and show the output path
  madder wallpaper generate --prompt "misty pine forest at dawn"

  # Regenerate and apply it as the active wallpaper
  madder wallpaper generate -p "misty pine forest at dawn" --force --apply

  # Ultrawide output on a model that honours the size
  madder wallpaper generate -p "nebula" --aspect-ratio 21:9`,
	RunE: runWallpaperGenerate,
}

func init() {
	wallpaperGenerateCmd.Flags().StringVarP(&wallpaperGeneratePrompt, "prompt", "p", "", "text prompt to generate from (required)")
	wallpaperGenerateCmd.Flags().BoolVar(&wallpaperGenerateForce, "force", false, "regenerate even when a file for this prompt exists")
	wallpaperGenerateCmd.Flags().BoolVar(&wallpaperGenerateApply, "apply", false, "set the generated wallpaper active and propagate its palette")
	wallpaperGenerateCmd.Flags().BoolVar(&wallpaperGeneratePlain, "plain", false, "send the prompt verbatim, without the wallpaper steering suffix")
	wallpaperGenerateCmd.Flags().StringVar(&wallpaperGenerateProject, "project", "", "Vertex AI project (vertex-ai backend)")
	wallpaperGenerateCmd.Flags().StringVar(&wallpaperGenerateLocation, "location", "", "Vertex AI location (vertex-ai backend)")
	wallpaperGenerateCmd.Flags().String("aspect-ratio", "", "requested aspect ratio (default: 16:9)")
	wallpaperGenerateCmd.Flags().String("image-size", "", "output size for models that honour it (1K, 2K)")
	wallpaperGenerateCmd.MarkFlagRequired("prompt")

	bindFlag(wallpaperGenerateCmd.Flags(), config.KeyGenerateAspectRatio, "aspect-ratio")
	bindFlag(wallpaperGenerateCmd.Flags(), config.KeyGenerateImageSize, "image-size")

	wallpaperCmd.AddCommand(wallpaperListCmd)
	wallpaperCmd.AddCommand(wallpaperInstallCmd)
	wallpaperCmd.AddCommand(wallpaperGenerateCmd)
}

// runWallpaperList executes the wallpaper list command.
func runWallpaperList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	dir := config.WallpaperDir()

	images, err := img.ListImages(dir)
	if err != nil {
		return err
	}
	if len(images) == 0 {
		fmt.Printf("No wallpapers in %s\n", dir)
		return nil
	}

	// The active marker is best effort: listing works without a running
	// wallpaper daemon.
	active := ""
	if store, err := openStore(ctx, newRunner()); err == nil {
		if a, err := store.Active(ctx); err == nil {
			active = filepath.Clean(a)
		}
	}

	table := NewTable("", "WALLPAPER", "RESOLUTION", "SIZE")
	for _, path := range images {
		marker := ""
		if active != "" && filepath.Clean(path) == active {
			marker = "*"
		}

		resolution := "-"
		if w, h, err := img.GetImageDimensions(path); err == nil {
			resolution = fmt.Sprintf("%dx%d", w, h)
		}

		size := "-"
		if info, err := os.Stat(path); err == nil {
			size = formatSize(info.Size())
		}

		table.AddRow(marker, filepath.Base(path), resolution, size)
	}

	fmt.Print(table.Render())
	fmt.Printf("\n%d wallpaper(s) in %s\n", len(images), dir)
	return nil
}

// runWallpaperInstall executes the wallpaper install command.
func runWallpaperInstall(cmd *cobra.Command, args []string) error {
	dir := config.WallpaperDir()
	installer := archive.NewInstaller(dir, logger.Named("install"))

	installed, err := installer.Install(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	for _, path := range installed {
		fmt.Printf("  ├─ %s\n", path)
	}
	fmt.Printf("✓ Installed %d wallpaper(s) into %s\n", len(installed), dir)
	return nil
}

// runWallpaperGenerate executes the wallpaper generate command.
func runWallpaperGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	records, err := openRecordStore()
	if err != nil {
		return err
	}

	generator := genwall.New(records, config.WallpaperDir(), logger.Named("genwall")).
		WithAspectRatio(viper.GetString(config.KeyGenerateAspectRatio)).
		WithImageSize(viper.GetString(config.KeyGenerateImageSize)).
		WithVertexProject(wallpaperGenerateProject, wallpaperGenerateLocation).
		WithForce(wallpaperGenerateForce).
		WithPlainPrompt(wallpaperGeneratePlain)

	path, err := generator.Generate(ctx, wallpaperGeneratePrompt)
	if err != nil {
		return err
	}
	fmt.Println(path)

	if !wallpaperGenerateApply {
		return nil
	}

	store, err := openStore(ctx, newRunner())
	if err != nil {
		return err
	}
	if err := store.SetActive(ctx, path); err != nil {
		return fmt.Errorf("failed to apply generated wallpaper: %w", err)
	}

	propagator, cleanup, err := newPropagator()
	if err != nil {
		return err
	}
	defer cleanup()
	if err := propagator.Propagate(ctx, path); err != nil {
		return fmt.Errorf("wallpaper applied but theme propagation failed: %w", err)
	}
	return nil
}

// formatSize renders a byte count in a compact human form.
func formatSize(bytes int64) string {
	const (
		kib = 1024
		mib = 1024 * kib
	)
	switch {
	case bytes >= mib:
		return fmt.Sprintf("%.1f MiB", float64(bytes)/mib)
	case bytes >= kib:
		return fmt.Sprintf("%.1f KiB", float64(bytes)/kib)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
