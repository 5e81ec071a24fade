package file

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FindFiles walks root recursively and returns every regular file whose
// extension is exactly ext (with or without the leading dot). Symlinks to
// regular files are included; symlinked directories are not descended.
// Paths come back in lexical walk order, so repeated calls over an unchanged
// tree agree.
func FindFiles(root, ext string) ([]string, error) {
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	var out []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if filepath.Ext(path) != ext || !isRegular(path, d) {
			return nil
		}
		out = append(out, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("find %s files under %s: %w", ext, root, err)
	}
	return out, nil
}

// isRegular reports whether d is a regular file, resolving symlinks. Broken
// links are skipped.
func isRegular(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}
