// Package service ties the path resolver, image lister, bookmark store,
// and metadata aggregator together behind one entry point for the UIs.
package service

import (
	"github.com/sirupsen/logrus"

	"resview/internal/bookmarks"
	"resview/internal/scan"
	"resview/internal/stats"
)

// Service is the main entry point for the gallery's business logic. All
// methods run synchronously; every user interaction re-runs the pipeline
// from disk.
type Service struct {
	Bookmarks *bookmarks.Store
	Log       *logrus.Logger
}

// New constructs a Service.
func New(store *bookmarks.Store, log *logrus.Logger) *Service {
	if log == nil {
		log = logrus.New()
	}
	return &Service{Bookmarks: store, Log: log}
}

// OpenDirectory resolves raw and lists its images. An invalid path yields
// an empty list and ok=false so the caller can show an inline message and
// keep rendering.
func (s *Service) OpenDirectory(raw string) (dir string, files []string, ok bool) {
	dir, ok = scan.ResolveDir(raw)
	if !ok {
		s.Log.WithField("path", raw).Debug("not a valid directory")
		return dir, nil, false
	}
	files = scan.ListImages(dir)
	s.Log.WithFields(logrus.Fields{"dir": dir, "images": len(files)}).Debug("directory listed")
	return dir, files, true
}

// SaveBookmark validates raw and adds the resolved directory to the
// persisted set if it is not already there. The merge lives here, not in
// the store; the store always rewrites the whole file. The updated list is
// returned along with whether anything was added.
func (s *Service) SaveBookmark(raw string) ([]string, bool, error) {
	dir, ok := scan.ResolveDir(raw)
	if !ok {
		return s.Bookmarks.Load(), false, nil
	}
	paths := s.Bookmarks.Load()
	for _, p := range paths {
		if p == dir {
			return paths, false, nil
		}
	}
	paths = append(paths, dir)
	if err := s.Bookmarks.Save(paths); err != nil {
		return paths, false, err
	}
	s.Log.WithField("dir", dir).Info("bookmark saved")
	return s.Bookmarks.Load(), true, nil
}

// Summary aggregates metadata for files and routes per-file warnings to
// the logger.
func (s *Service) Summary(files []string) stats.Summary {
	sum := stats.Aggregate(files)
	for _, w := range sum.Warnings {
		s.Log.Warn(w)
	}
	return sum
}
