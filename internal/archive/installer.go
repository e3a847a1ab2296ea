// Package archive installs wallpaper packs into the wallpaper directory.
// A pack can be a tar.gz, tar.xz, tar.bz2 or zip archive, a bare image
// file, a directory of images, or an HTTPS URL to any of those. Image
// entries are installed flat under their base name; everything else is
// skipped.
package archive

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"

	img "github.com/madder-sh/madder/internal/image"
	"github.com/madder-sh/madder/internal/security"
	httputil "github.com/madder-sh/madder/internal/util/http"
)

// defaultMaxEntrySize caps the decompressed size of a single archive
// entry. Wallpapers are large; 100MB still stops a decompression bomb.
const defaultMaxEntrySize int64 = 100 * 1024 * 1024

// Installer copies wallpaper images from a pack source into a directory.
type Installer struct {
	dir    string
	logger hclog.Logger

	maxEntrySize int64
}

// NewInstaller creates an installer writing into dir.
func NewInstaller(dir string, logger hclog.Logger) *Installer {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Installer{
		dir:          dir,
		logger:       logger,
		maxEntrySize: defaultMaxEntrySize,
	}
}

// WithMaxEntrySize overrides the per-entry decompression limit.
func (i *Installer) WithMaxEntrySize(limit int64) *Installer {
	if limit > 0 {
		i.maxEntrySize = limit
	}
	return i
}

// Install resolves the source and installs its images, returning the
// installed paths in installation order. Existing files with the same
// name are overwritten, so reinstalling a pack is idempotent.
func (i *Installer) Install(ctx context.Context, source string) ([]string, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return i.installURL(ctx, source)
	}

	info, err := os.Stat(source)
	if err != nil {
		return nil, fmt.Errorf("failed to access %s: %w", source, err)
	}
	if info.IsDir() {
		return i.installDirectory(source)
	}
	if img.IsImageFile(source) {
		installed, err := i.copyImage(source)
		if err != nil {
			return nil, err
		}
		return []string{installed}, nil
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("failed to read archive: %w", err)
	}
	return i.extractArchive(data, filepath.Base(source))
}

// installURL fetches a remote pack. Only HTTPS to public hosts is
// accepted.
func (i *Installer) installURL(ctx context.Context, rawURL string) ([]string, error) {
	if err := security.ValidateHTTPURL(rawURL); err != nil {
		return nil, err
	}

	i.logger.Info("downloading wallpaper pack", "url", rawURL)
	data, err := httputil.Fetch(ctx, rawURL, httputil.FetchOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to download pack: %w", err)
	}

	name := remoteFilename(rawURL)
	if img.IsImageFile(name) {
		installed, err := i.writeImage(name, data)
		if err != nil {
			return nil, err
		}
		return []string{installed}, nil
	}
	return i.extractArchive(data, name)
}

// installDirectory walks a directory tree and installs every image found.
func (i *Installer) installDirectory(dir string) ([]string, error) {
	var installed []string
	err := filepath.WalkDir(dir, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !img.IsImageFile(p) {
			return nil
		}
		dest, err := i.copyImage(p)
		if err != nil {
			return err
		}
		installed = append(installed, dest)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan directory: %w", err)
	}
	if len(installed) == 0 {
		return nil, fmt.Errorf("no images found in %s", dir)
	}
	return installed, nil
}

// copyImage copies a single image file into the wallpaper directory.
func (i *Installer) copyImage(source string) (string, error) {
	in, err := os.Open(source)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", source, err)
	}
	defer in.Close()

	if err := os.MkdirAll(i.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create wallpaper directory: %w", err)
	}

	destPath := filepath.Join(i.dir, filepath.Base(source))
	out, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", destPath, err)
	}

	_, copyErr := io.Copy(out, in)
	closeErr := out.Close()
	if copyErr != nil {
		os.Remove(destPath)
		return "", fmt.Errorf("failed to copy image: %w", copyErr)
	}
	if closeErr != nil {
		return "", fmt.Errorf("failed to close %s: %w", destPath, closeErr)
	}

	i.logger.Debug("installed wallpaper", "path", destPath)
	return destPath, nil
}

// writeImage writes raw image bytes into the wallpaper directory.
func (i *Installer) writeImage(name string, data []byte) (string, error) {
	if err := os.MkdirAll(i.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create wallpaper directory: %w", err)
	}
	destPath := filepath.Join(i.dir, filepath.Base(name))
	if err := os.WriteFile(destPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", destPath, err)
	}
	i.logger.Debug("installed wallpaper", "path", destPath)
	return destPath, nil
}

// remoteFilename extracts the file name from a URL path, ignoring query
// parameters.
func remoteFilename(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Path == "" || parsed.Path == "/" {
		return "pack"
	}
	return path.Base(parsed.Path)
}
