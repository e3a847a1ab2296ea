package colour

// ThemeData is the standard data structure passed to all target templates.
// It embeds PaletteHelper to provide all colour access methods and carries
// the wallpaper the palette was derived from.
type ThemeData struct {
	*PaletteHelper

	// WallpaperPath is the path to the source wallpaper file.
	WallpaperPath string

	// Terminal is the 16-slot ANSI scheme derived from the palette, for
	// targets that theme a terminal emulator.
	Terminal [16]RGB
}

// NewThemeData creates a ThemeData instance for the given palette.
// wallpaperPath may be empty when the palette was not derived from a file.
func NewThemeData(palette *NamedPalette, wallpaperPath string) *ThemeData {
	return &ThemeData{
		PaletteHelper: NewPaletteHelper(palette),
		WallpaperPath: wallpaperPath,
		Terminal:      TerminalScheme(palette),
	}
}
