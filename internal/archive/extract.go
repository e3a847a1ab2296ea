package archive

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"

	img "github.com/madder-sh/madder/internal/image"
	"github.com/madder-sh/madder/internal/security"
)

type format int

const (
	formatUnknown format = iota
	formatTarGz
	formatTarXz
	formatTarBz2
	formatTar
	formatZip
)

// detectFormat recognises an archive by file name, falling back to magic
// bytes for URLs whose path hides the real name.
func detectFormat(name string, data []byte) format {
	switch {
	case hasSuffix(name, ".tar.gz", ".tgz"):
		return formatTarGz
	case hasSuffix(name, ".tar.xz", ".txz"):
		return formatTarXz
	case hasSuffix(name, ".tar.bz2", ".tbz2"):
		return formatTarBz2
	case hasSuffix(name, ".tar"):
		return formatTar
	case hasSuffix(name, ".zip"):
		return formatZip
	}

	switch {
	case len(data) >= 2 && data[0] == 0x1f && data[1] == 0x8b:
		return formatTarGz
	case len(data) >= 6 && bytes.Equal(data[:6], []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}):
		return formatTarXz
	case len(data) >= 3 && data[0] == 'B' && data[1] == 'Z' && data[2] == 'h':
		return formatTarBz2
	case len(data) >= 4 && bytes.Equal(data[:4], []byte("PK\x03\x04")):
		return formatZip
	}
	return formatUnknown
}

func hasSuffix(name string, suffixes ...string) bool {
	lower := strings.ToLower(name)
	for _, s := range suffixes {
		if strings.HasSuffix(lower, s) {
			return true
		}
	}
	return false
}

// extractArchive installs every image entry of the archive. An archive
// with traversal entries is rejected outright rather than sanitised; a
// pack that tries to escape the wallpaper directory is hostile, not
// sloppy.
func (i *Installer) extractArchive(data []byte, name string) ([]string, error) {
	switch detectFormat(name, data) {
	case formatTarGz:
		gzr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzr.Close()
		return i.extractTar(gzr)
	case formatTarXz:
		xzr, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		return i.extractTar(xzr)
	case formatTarBz2:
		return i.extractTar(bzip2.NewReader(bytes.NewReader(data)))
	case formatTar:
		return i.extractTar(bytes.NewReader(data))
	case formatZip:
		return i.extractZip(data)
	default:
		return nil, fmt.Errorf("unsupported pack format: %s (supported: tar.gz, tar.xz, tar.bz2, zip, image file, directory)", name)
	}
}

func (i *Installer) extractTar(r io.Reader) ([]string, error) {
	tr := tar.NewReader(r)

	var installed []string
	for {
		header, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read archive: %w", err)
		}
		if header.Typeflag != tar.TypeReg {
			continue
		}
		if err := security.ValidateFilePath(header.Name, i.dir); err != nil {
			return nil, fmt.Errorf("rejecting archive entry %q: %w", header.Name, err)
		}
		if !img.IsImageFile(header.Name) {
			i.logger.Debug("skipping non-image entry", "entry", header.Name)
			continue
		}

		dest, err := i.writeEntry(header.Name, tr)
		if err != nil {
			return nil, err
		}
		installed = append(installed, dest)
	}

	if len(installed) == 0 {
		return nil, fmt.Errorf("no images found in archive")
	}
	return installed, nil
}

func (i *Installer) extractZip(data []byte) ([]string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to read zip archive: %w", err)
	}

	var installed []string
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if err := security.ValidateFilePath(f.Name, i.dir); err != nil {
			return nil, fmt.Errorf("rejecting archive entry %q: %w", f.Name, err)
		}
		if !img.IsImageFile(f.Name) {
			i.logger.Debug("skipping non-image entry", "entry", f.Name)
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open archive entry %q: %w", f.Name, err)
		}
		dest, err := i.writeEntry(f.Name, rc)
		rc.Close()
		if err != nil {
			return nil, err
		}
		installed = append(installed, dest)
	}

	if len(installed) == 0 {
		return nil, fmt.Errorf("no images found in archive")
	}
	return installed, nil
}

// writeEntry streams one archive entry into the wallpaper directory under
// its base name, bounded by the decompression limit.
func (i *Installer) writeEntry(name string, r io.Reader) (string, error) {
	if err := os.MkdirAll(i.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create wallpaper directory: %w", err)
	}

	destPath := filepath.Join(i.dir, filepath.Base(name))
	out, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", destPath, err)
	}

	limited := security.NewLimitedReader(r, i.maxEntrySize)
	_, copyErr := io.Copy(out, limited)
	closeErr := out.Close()
	if copyErr != nil {
		os.Remove(destPath)
		return "", fmt.Errorf("failed to extract %s: %w", name, copyErr)
	}
	if closeErr != nil {
		return "", fmt.Errorf("failed to close %s: %w", destPath, closeErr)
	}

	i.logger.Debug("installed wallpaper", "path", destPath, "entry", name)
	return destPath, nil
}
