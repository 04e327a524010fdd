package bookmarks

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewStore(filepath.Join(t.TempDir(), "bookmarks.json"), log)
}

func TestLoadMissingFile(t *testing.T) {
	s := newTestStore(t)
	assert.Equal(t, []string{DefaultEntry}, s.Load())
}

func TestLoadCorruptFile(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("{not json"), 0644))
	assert.Equal(t, []string{DefaultEntry}, s.Load())
}

func TestLoadEmptyList(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("[]"), 0644))
	assert.Equal(t, []string{DefaultEntry}, s.Load())
}

func TestLoadDeduplicatesAndSorts(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte(`["./b", "./a", "./a"]`), 0644))
	assert.Equal(t, []string{"./a", "./b"}, s.Load())
}

func TestSaveWritesSortedJSON(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save([]string{"/z", "/a", "/a"}))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, "[\n    \"/a\",\n    \"/z\"\n]\n", string(data))
}

func TestSaveLoadIdempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save([]string{"/b", "/a"}))

	first := s.Load()
	require.NoError(t, s.Save(first))
	assert.Equal(t, first, s.Load())
}

func TestSaveEmptyListResurrectsDefault(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save(nil))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))

	// The empty file still loads as the default single-entry list.
	assert.Equal(t, []string{DefaultEntry}, s.Load())
}
