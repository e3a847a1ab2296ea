// Package imagecache materialises remote images as local files. Theming a
// remote image needs a real path on disk: external extractors and wallpaper
// daemons take file paths, not URLs.
package imagecache

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	httputil "github.com/madder-sh/madder/internal/util/http"
	"github.com/madder-sh/madder/internal/util/xdg"
)

// CacheOptions configures image caching behavior.
type CacheOptions struct {
	// CacheDir is the directory where images are cached.
	// If empty, defaults to the images directory under madder's cache dir.
	CacheDir string

	// Filename overrides the cached file name. If empty, a hash of the
	// URL plus the original extension is used.
	Filename string

	// AllowOverwrite re-downloads even when a cached copy exists.
	AllowOverwrite bool
}

// DefaultCacheDir returns the default image cache directory.
func DefaultCacheDir() (string, error) {
	dir, err := xdg.CacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "images"), nil
}

// cachedFilename derives a deterministic file name from a URL: a hash of
// the full URL keeps distinct query strings apart, the original extension
// keeps the format recognisable.
func cachedFilename(url string) string {
	hash := sha256.Sum256([]byte(url))
	name := fmt.Sprintf("%x", hash[:16])

	ext := filepath.Ext(url)
	if idx := strings.IndexByte(ext, '?'); idx != -1 {
		ext = ext[:idx]
	}
	if ext == "" || len(ext) > 5 {
		ext = ".jpg"
	}
	return name + ext
}

// DownloadAndCache downloads a remote image into the cache and returns the
// local path. A previously cached copy is reused unless AllowOverwrite is
// set.
func DownloadAndCache(ctx context.Context, url string, opts CacheOptions) (string, error) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return "", fmt.Errorf("invalid URL: must start with http:// or https://")
	}

	cacheDir := opts.CacheDir
	if cacheDir == "" {
		dir, err := DefaultCacheDir()
		if err != nil {
			return "", fmt.Errorf("failed to determine cache directory: %w", err)
		}
		cacheDir = dir
	}
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create cache directory: %w", err)
	}

	filename := opts.Filename
	if filename == "" {
		filename = cachedFilename(url)
	}
	cachedPath := filepath.Join(cacheDir, filename)

	if !opts.AllowOverwrite {
		if _, err := os.Stat(cachedPath); err == nil {
			return cachedPath, nil
		}
	}

	data, err := httputil.Fetch(ctx, url, httputil.FetchOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to download image: %w", err)
	}
	if err := os.WriteFile(cachedPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write cached image: %w", err)
	}

	return cachedPath, nil
}
