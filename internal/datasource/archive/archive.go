// Package archive unpacks gzip-compressed tar releases of the collision
// dataset next to the archive itself.
package archive

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"collisions/internal/collision"
)

// Ext is the only archive extension Extract accepts.
const Ext = ".tgz"

// ErrUnsafePath is returned for entries that would land outside the
// extraction directory.
var ErrUnsafePath = errors.New("archive entry escapes extraction directory")

// Stats summarizes one extraction.
type Stats struct {
	Dir     string // extraction directory
	Files   int
	Dirs    int
	Skipped int // links, devices and other non-regular entries
	Bytes   int64
}

// Supported reports whether path ends in exactly Ext. "DATA.TGZ" is not
// an archive.
func Supported(path string) bool {
	return filepath.Ext(path) == Ext
}

// Dir returns the directory an archive at path extracts into.
func Dir(path string) string { return filepath.Dir(path) }

// Extract unpacks the archive at path into Dir(path). Existing files are
// overwritten and nothing is removed afterwards. Paths other than *.tgz fail
// with collision.ErrUnsupportedFormat.
func Extract(ctx context.Context, path string) (Stats, error) {
	st := Stats{Dir: Dir(path)}
	if !Supported(path) {
		return st, fmt.Errorf("extract %s: %w", path, collision.ErrUnsupportedFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return st, fmt.Errorf("extract: %w", err)
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return st, fmt.Errorf("extract %s: gzip: %w", path, err)
	}
	defer zr.Close()

	tr := tar.NewReader(zr)
	for {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return st, fmt.Errorf("extract %s: tar: %w", path, err)
		}

		target, err := entryPath(st.Dir, hdr.Name)
		if err != nil {
			return st, fmt.Errorf("extract %s: %w", path, err)
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0o755); err != nil {
				return st, fmt.Errorf("extract %s: %w", path, err)
			}
			st.Dirs++
		case tar.TypeReg:
			n, err := writeFile(target, tr, hdr.FileInfo().Mode().Perm())
			if err != nil {
				return st, fmt.Errorf("extract %s: %w", path, err)
			}
			st.Files++
			st.Bytes += n
		default:
			st.Skipped++
		}
	}

	log.Printf("archive: extracted path=%s files=%d dirs=%d skipped=%d size=%s",
		path, st.Files, st.Dirs, st.Skipped, humanize.Bytes(uint64(st.Bytes)))
	return st, nil
}

// entryPath joins name onto dir and rejects results outside dir.
func entryPath(dir, name string) (string, error) {
	if filepath.IsAbs(name) || strings.HasPrefix(name, "/") {
		return "", fmt.Errorf("%w: %s", ErrUnsafePath, name)
	}
	target := filepath.Join(dir, name)
	rel, err := filepath.Rel(dir, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrUnsafePath, name)
	}
	return target, nil
}

func writeFile(target string, r io.Reader, perm os.FileMode) (int64, error) {
	if perm == 0 {
		perm = 0o644
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return 0, err
	}
	out, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, perm)
	if err != nil {
		return 0, err
	}
	n, err := io.Copy(out, r)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return n, err
}
