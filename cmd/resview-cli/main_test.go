package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resview/internal/bookmarks"
	"resview/internal/service"
)

// newTestRoot builds the CLI with the bookmark store pointed at a
// temporary file and logging discarded.
func newTestRoot(t *testing.T) *cobra.Command {
	t.Helper()
	defaultFile := filepath.Join(t.TempDir(), "bookmarks.json")
	return NewRootCmd(func(bookmarkFile string) (*service.Service, error) {
		if bookmarkFile == "" {
			bookmarkFile = defaultFile
		}
		log := logrus.New()
		log.SetOutput(io.Discard)
		return service.New(bookmarks.NewStore(bookmarkFile, log), log), nil
	})
}

// executeCommandC executes a cobra command and captures its output.
func executeCommandC(root *cobra.Command, args ...string) (string, string, error) {
	bookmarkFileFlag = ""
	verboseFlag = false

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
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

func TestRootHelp(t *testing.T) {
	stdout, stderr, err := executeCommandC(newTestRoot(t), "--help")
	require.NoError(t, err, "stdout: %s, stderr: %s", stdout, stderr)
	assert.Contains(t, stdout, "Usage:")
	assert.Contains(t, stdout, "resview-cli [command]")
}

func TestListCommand(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "b.png"), 8, 8)
	writePNG(t, filepath.Join(dir, "a.png"), 8, 8)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	stdout, stderr, err := executeCommandC(newTestRoot(t), "list", dir)
	require.NoError(t, err, "stderr: %s", stderr)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, filepath.Join(dir, "a.png"), lines[0])
	assert.Equal(t, filepath.Join(dir, "b.png"), lines[1])
}

func TestListCommandInvalidDir(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	stdout, _, err := executeCommandC(newTestRoot(t), "list", missing)
	require.NoError(t, err)
	assert.Contains(t, stdout, "not a valid directory")
}

func TestStatsCommand(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a.png"), 100, 100)
	writePNG(t, filepath.Join(dir, "b.png"), 100, 100)
	writePNG(t, filepath.Join(dir, "c.png"), 100, 100)
	writePNG(t, filepath.Join(dir, "d.png"), 200, 200)

	stdout, stderr, err := executeCommandC(newTestRoot(t), "stats", dir)
	require.NoError(t, err, "stderr: %s", stderr)

	assert.Contains(t, stdout, "Total images: 4")
	assert.Contains(t, stdout, "100x100: 3 (75.0%)")
	assert.Contains(t, stdout, "200x200: 1 (25.0%)")
	// Most common dimension first.
	assert.Less(t,
		strings.Index(stdout, "100x100"),
		strings.Index(stdout, "200x200"))
}

func TestStatsCommandEmptyDir(t *testing.T) {
	stdout, _, err := executeCommandC(newTestRoot(t), "stats", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, stdout, "Total images: 0")
	assert.Contains(t, stdout, "N/A")
}

func TestBookmarksCommands(t *testing.T) {
	bookmarkFile := filepath.Join(t.TempDir(), "bookmarks.json")
	dir := t.TempDir()

	root := newTestRoot(t)

	t.Run("add", func(t *testing.T) {
		stdout, _, err := executeCommandC(root, "--bookmarks", bookmarkFile, "bookmarks", "add", dir)
		require.NoError(t, err)
		assert.Contains(t, stdout, "Saved "+dir)
	})

	t.Run("add duplicate", func(t *testing.T) {
		stdout, _, err := executeCommandC(root, "--bookmarks", bookmarkFile, "bookmarks", "add", dir)
		require.NoError(t, err)
		assert.Contains(t, stdout, "already bookmarked")
	})

	t.Run("add invalid", func(t *testing.T) {
		stdout, _, err := executeCommandC(root, "--bookmarks", bookmarkFile, "bookmarks", "add", filepath.Join(dir, "nope"))
		require.NoError(t, err)
		assert.Contains(t, stdout, "not a valid directory")
	})

	t.Run("list", func(t *testing.T) {
		stdout, _, err := executeCommandC(root, "--bookmarks", bookmarkFile, "bookmarks", "list")
		require.NoError(t, err)
		assert.Contains(t, stdout, dir)
	})

	t.Run("clear", func(t *testing.T) {
		_, _, err := executeCommandC(root, "--bookmarks", bookmarkFile, "bookmarks", "clear")
		require.NoError(t, err)

		stdout, _, err := executeCommandC(root, "--bookmarks", bookmarkFile, "bookmarks", "list")
		require.NoError(t, err)
		assert.Equal(t, bookmarks.DefaultEntry, strings.TrimSpace(stdout))
	})
}
