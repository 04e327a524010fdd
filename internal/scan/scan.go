// Package scan resolves user-supplied directory paths and lists the image
// files inside them.
package scan

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// imagePattern matches the supported image extensions. File names are
// lowercased before matching, so the match is case-insensitive.
var imagePattern = glob.MustCompile("*.{png,jpg,jpeg,bmp,gif}")

// IsImage checks if a file name has a supported image extension.
func IsImage(name string) bool {
	return imagePattern.Match(strings.ToLower(filepath.Base(name)))
}

// ResolveDir turns a raw path string into a canonical absolute path,
// expanding a leading "~". The boolean reports whether the path exists and
// is a directory. Invalid input is a normal return value, never an error.
func ResolveDir(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	if raw == "~" || strings.HasPrefix(raw, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false
		}
		raw = filepath.Join(home, raw[1:])
	}
	abs, err := filepath.Abs(raw)
	if err != nil {
		return "", false
	}
	fi, err := os.Stat(abs)
	if err != nil || !fi.IsDir() {
		return abs, false
	}
	return abs, true
}

// ListImages returns the immediate children of dir with a supported image
// extension, sorted ascending by full path. The listing is non-recursive
// and recomputed from disk on every call. A missing or unreadable
// directory yields an empty list, not an error.
func ListImages(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	seen := make(map[string]bool, len(entries))
	var files []string
	for _, e := range entries {
		if e.IsDir() || !IsImage(e.Name()) {
			continue
		}
		p := filepath.Join(dir, e.Name())
		if seen[p] {
			continue
		}
		seen[p] = true
		files = append(files, p)
	}
	sort.Strings(files)
	return files
}
