package ui

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sync"

	_ "image/gif"
	_ "image/jpeg"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
)

const (
	// ThumbnailWidth is the width of the thumbnails in the grid.
	ThumbnailWidth = 160
	// ThumbnailHeight is the height of the thumbnails in the grid.
	ThumbnailHeight = 160
)

// ThumbnailManager generates grid thumbnails. The cache only spans the
// process lifetime; decoded images are never persisted.
type ThumbnailManager struct {
	cache      map[string]fyne.Resource
	cacheMutex sync.RWMutex
	app        *App
}

// NewThumbnailManager creates a new thumbnail manager.
func NewThumbnailManager(app *App) *ThumbnailManager {
	return &ThumbnailManager{
		cache: make(map[string]fyne.Resource),
		app:   app,
	}
}

// Placeholder is shown while a thumbnail decodes, or forever if it can't.
func (tm *ThumbnailManager) Placeholder() fyne.Resource {
	return theme.FileImageIcon()
}

// Load fetches or generates the thumbnail for path and hands it to
// onComplete on the UI thread. Generation happens off the event loop so a
// directory of large images doesn't freeze the grid; undecodable files
// keep the placeholder and log a warning.
func (tm *ThumbnailManager) Load(path string, onComplete func(fyne.Resource)) {
	tm.cacheMutex.RLock()
	if res, ok := tm.cache[path]; ok {
		tm.cacheMutex.RUnlock()
		onComplete(res)
		return
	}
	tm.cacheMutex.RUnlock()

	go func() {
		img, err := decodeImage(path)
		if err != nil {
			tm.app.log.WithError(err).Warnf("thumbnail failed for %s", filepath.Base(path))
			return
		}

		thumb := resize.Thumbnail(ThumbnailWidth, ThumbnailHeight, img, resize.Lanczos3)
		buf := new(bytes.Buffer)
		if err := png.Encode(buf, thumb); err != nil {
			return
		}
		res := fyne.NewStaticResource(path, buf.Bytes())

		tm.cacheMutex.Lock()
		tm.cache[path] = res
		tm.cacheMutex.Unlock()

		fyne.Do(func() {
			onComplete(res)
		})
	}()
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}
