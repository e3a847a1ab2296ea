// Madder - wallpaper rotation and palette-driven desktop theming
//
// Madder rotates wallpapers, extracts a named colour palette from the
// active image and rewrites application theme files from it.
//
// Copyright (c) 2026 Madder contributors
// Licensed under the MIT License
package main

import "github.com/madder-sh/madder/internal/cli"

func main() {
	cli.Execute()
}
