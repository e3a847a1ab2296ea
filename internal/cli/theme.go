package cli

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/madder-sh/madder/internal/colour"
	"github.com/madder-sh/madder/internal/config"
	img "github.com/madder-sh/madder/internal/image"
	"github.com/madder-sh/madder/internal/theme"
)

var (
	// Extract subcommand flags
	themeExtractFormat  string
	themeExtractPreview bool
	themeExtractOutput  string
)

// themeCmd groups the palette and theming subcommands.
var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Extract palettes and rewrite application themes",
}

// themeApplyCmd represents the theme apply command
var themeApplyCmd = &cobra.Command{
	Use:   "apply [image]",
	Short: "Propagate a wallpaper's palette to all theme targets",
	Long: `Extract the named palette from an image and rewrite every enabled
target's theme files with it, then signal running consumers to reload.

Without an argument the currently active wallpaper is used. A remote URL
is downloaded into the image cache first.

Examples:
  # Re-theme from the active wallpaper
  madder theme apply

  # Theme from a specific image, forcing a light palette
  madder theme apply --mode light ~/Pictures/Wallpapers/dunes.jpg

  # Theme from a remote image
  madder theme apply https://example.com/wallpapers/dunes.jpg`,
	Args: cobra.MaximumNArgs(1),
	RunE: runThemeApply,
}

// themeExtractCmd represents the theme extract command
var themeExtractCmd = &cobra.Command{
	Use:   "extract <image>",
	Short: "Extract the named palette from an image",
	Long: `Extract the named colour palette from an image and print it without
writing any theme files.

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  # Print the role hex codes
  madder theme extract wallpaper.jpg

  # Show colour swatches sized to the terminal
  madder theme extract --preview wallpaper.jpg

  # Full palette as JSON, including the raw extracted clusters
  madder theme extract --format json wallpaper.jpg

  # Save the palette to a file
  madder theme extract -f json -o palette.json wallpaper.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: runThemeExtract,
}

// themeTargetsCmd represents the theme targets command
var themeTargetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List theme targets and their status",
	Long: `List the built-in theme targets with their enable state, output
directory and whether a custom template override is in place.`,
	RunE: runThemeTargets,
}

func init() {
	themeExtractCmd.Flags().StringVarP(&themeExtractFormat, "format", "f", "hex", "output format (hex, json)")
	themeExtractCmd.Flags().BoolVar(&themeExtractPreview, "preview", false, "show colour swatches in the terminal")
	themeExtractCmd.Flags().StringVarP(&themeExtractOutput, "output", "o", "", "output file (default: stdout)")

	themeCmd.AddCommand(themeApplyCmd)
	themeCmd.AddCommand(themeExtractCmd)
	themeCmd.AddCommand(themeTargetsCmd)
}

// runThemeApply executes the theme apply command.
func runThemeApply(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var imagePath string
	if len(args) == 1 {
		imagePath = args[0]
	} else {
		store, err := openStore(ctx, newRunner())
		if err != nil {
			return err
		}
		active, err := store.Active(ctx)
		if err != nil {
			return fmt.Errorf("failed to read active wallpaper: %w", err)
		}
		if active == "" {
			return fmt.Errorf("no active wallpaper to theme from; pass an image path")
		}
		imagePath = active
	}

	if err := img.ValidateImagePath(imagePath); err != nil {
		return err
	}
	imagePath, err := materialiseImage(ctx, imagePath)
	if err != nil {
		return err
	}

	propagator, cleanup, err := newPropagator()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := propagator.Propagate(ctx, imagePath); err != nil {
		return err
	}

	fmt.Printf("✓ Theme applied from %s\n", imagePath)
	return nil
}

// runThemeExtract executes the theme extract command.
func runThemeExtract(cmd *cobra.Command, args []string) error {
	imagePath := args[0]
	if err := img.ValidateImagePath(imagePath); err != nil {
		return err
	}
	imagePath, err := materialiseImage(cmd.Context(), imagePath)
	if err != nil {
		return err
	}

	extractor, cleanup, err := newExtractor()
	if err != nil {
		return err
	}
	defer cleanup()

	palette, err := extractor.Extract(cmd.Context(), imagePath)
	if err != nil {
		return err
	}

	output, err := formatNamedPalette(palette, themeExtractFormat, themeExtractPreview)
	if err != nil {
		return err
	}

	if themeExtractOutput != "" {
		if err := os.WriteFile(themeExtractOutput, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		return nil
	}
	fmt.Print(output)
	return nil
}

// runThemeTargets executes the theme targets command.
func runThemeTargets(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	disabled := viper.GetStringSlice(config.KeyTargetsDisabled)

	table := NewTable("TARGET", "STATUS", "OUTPUT", "TEMPLATE")
	table.SetColumnMaxWidth(1, 40)

	for _, target := range theme.DefaultTargets() {
		status := "enabled"
		if slices.Contains(disabled, target.Name()) {
			status = "disabled"
		} else if prober, ok := target.(theme.Prober); ok {
			if skip, reason, err := prober.Probe(ctx); err == nil && skip {
				status = "skipped: " + reason
			}
		}

		tmpl := "-"
		if tt, ok := target.(theme.TemplatedTarget); ok {
			tmpl = "builtin"
			if tt.HasCustomTemplate() {
				tmpl = "custom"
			}
		}

		table.AddRow(target.Name(), status, target.OutputDir(), tmpl)
	}

	fmt.Print(table.Render())
	return nil
}

// formatNamedPalette renders the palette in the requested output format.
func formatNamedPalette(palette *colour.NamedPalette, format string, preview bool) (string, error) {
	switch format {
	case "hex":
		return formatRoles(palette, preview), nil
	case "json":
		data, err := palette.ToJSON()
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(data) + "\n", nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: hex, json)", format)
	}
}

// formatRoles renders one line per role, in presentation order, with an
// ANSI swatch when preview is on. The theme mode goes first so scripts can
// read it without parsing JSON.
func formatRoles(palette *colour.NamedPalette, preview bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-16s %s\n", "mode", palette.ThemeType.String())

	width := previewWidth()
	for _, role := range colour.AllRoles() {
		c, ok := palette.Get(role)
		if !ok {
			continue
		}
		if preview {
			b.WriteString(colour.FormatColourWithLabel(c.RGB, string(role), width))
		} else {
			fmt.Fprintf(&b, "%-16s %s", role, c.Hex)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// previewWidth sizes swatches to the terminal. Piped output gets the
// default block width.
func previewWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	cols, _, err := term.GetSize(fd)
	if err != nil || cols <= 0 {
		return 0
	}

	// The swatch shares the line with a 16-character label and the hex code.
	width := cols - 28
	if width < 4 {
		return 4
	}
	if width > 24 {
		return 24
	}
	return width
}
