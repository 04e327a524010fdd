package service

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resview/internal/bookmarks"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	store := bookmarks.NewStore(filepath.Join(t.TempDir(), "bookmarks.json"), log)
	return New(store, log)
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{A: 255})
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestOpenDirectory(t *testing.T) {
	svc := newTestService(t)
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a.png"), 8, 8)
	writePNG(t, filepath.Join(dir, "b.png"), 8, 8)

	resolved, files, ok := svc.OpenDirectory(dir)
	require.True(t, ok)
	assert.Equal(t, dir, resolved)
	assert.Len(t, files, 2)
}

func TestOpenDirectoryInvalidPath(t *testing.T) {
	svc := newTestService(t)

	_, files, ok := svc.OpenDirectory(filepath.Join(t.TempDir(), "missing"))
	assert.False(t, ok)
	assert.Empty(t, files)
}

func TestSaveBookmarkAddIfAbsent(t *testing.T) {
	svc := newTestService(t)
	dir := t.TempDir()

	paths, added, err := svc.SaveBookmark(dir)
	require.NoError(t, err)
	assert.True(t, added)
	assert.Contains(t, paths, dir)

	// Saving the same directory again is a no-op.
	paths2, added, err := svc.SaveBookmark(dir)
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, paths, paths2)
}

func TestSaveBookmarkRejectsInvalidPath(t *testing.T) {
	svc := newTestService(t)

	paths, added, err := svc.SaveBookmark("")
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, []string{bookmarks.DefaultEntry}, paths)
}

func TestImageInfo(t *testing.T) {
	svc := newTestService(t)
	path := filepath.Join(t.TempDir(), "img.png")
	writePNG(t, path, 40, 30)

	info, err := svc.ImageInfo(path)
	require.NoError(t, err)
	assert.Equal(t, 40, info.Width)
	assert.Equal(t, 30, info.Height)
	assert.Greater(t, info.Size, int64(0))
	assert.Empty(t, info.EXIF) // PNGs carry no EXIF
}

func TestImageInfoUndecodable(t *testing.T) {
	svc := newTestService(t)
	path := filepath.Join(t.TempDir(), "junk.png")
	require.NoError(t, os.WriteFile(path, []byte("nope"), 0644))

	_, err := svc.ImageInfo(path)
	assert.Error(t, err)
}

func TestSummaryForwardsWarnings(t *testing.T) {
	svc := newTestService(t)
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "ok.png"), 10, 10)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.png"), []byte("junk"), 0644))

	sum := svc.Summary([]string{filepath.Join(dir, "ok.png"), filepath.Join(dir, "bad.png")})
	assert.Equal(t, 2, sum.Total)
	assert.Equal(t, 1, sum.Decoded)
	assert.Len(t, sum.Warnings, 1)
}
