// Package bookmarks persists the set of saved directory paths as a flat
// JSON file on disk.
package bookmarks

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/sirupsen/logrus"
)

// DefaultEntry stands in for the current directory whenever the backing
// file is missing, unreadable, or holds an empty list.
const DefaultEntry = "."

// Store reads and writes one bookmark file. The file path is supplied at
// construction so tests can point it at a temporary location.
type Store struct {
	path string
	log  *logrus.Logger
}

// NewStore creates a Store backed by the file at path.
func NewStore(path string, log *logrus.Logger) *Store {
	if log == nil {
		log = logrus.New()
	}
	return &Store{path: path, log: log}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load returns the persisted bookmark list, deduplicated and sorted
// ascending. A missing file, a parse failure, or an empty list all fall
// back to the single default entry. Load never fails.
func (s *Store) Load() []string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return []string{DefaultEntry}
	}
	var paths []string
	if err := json.Unmarshal(data, &paths); err != nil {
		s.log.WithError(err).Warnf("bookmark file %s is unreadable, falling back to defaults", s.path)
		return []string{DefaultEntry}
	}
	paths = normalize(paths)
	if len(paths) == 0 {
		return []string{DefaultEntry}
	}
	return paths
}

// Save deduplicates and sorts paths, then rewrites the whole backing file
// as a pretty-printed JSON array. Saving an empty list writes an empty
// array; the next Load resurrects the default entry. Add-if-absent merge
// logic belongs to the caller, not the store.
func (s *Store) Save(paths []string) error {
	paths = normalize(paths)
	if paths == nil {
		paths = []string{}
	}
	data, err := json.MarshalIndent(paths, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, append(data, '\n'), 0644)
}

// normalize applies set semantics: no duplicates, ascending order.
func normalize(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	var out []string
	for _, p := range paths {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
