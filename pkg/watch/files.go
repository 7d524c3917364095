package watch

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Matches reports whether path has one of the extensions and, unless
// includeHidden is set, is not a dot file.
func Matches(path string, extensions []string, includeHidden bool) bool {
	if !includeHidden && IsHidden(path) {
		return false
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range extensions {
		if ext == strings.ToLower(want) {
			return true
		}
	}
	return false
}

// IsHidden reports whether the last element of path starts with a dot.
func IsHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".") && base != "." && base != ".."
}

// Files returns the matching files under root in lexical order. A root
// that is a file is returned as is, whatever its extension.
func Files(root string, extensions []string, includeHidden bool) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		if d.IsDir() {
			if !includeHidden && IsHidden(path) {
				return filepath.SkipDir
			}
			return nil
		}
		if Matches(path, extensions, includeHidden) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
