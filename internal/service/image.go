package service

import (
	"fmt"
	"image"
	"io"
	"os"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/rwcarlsen/goexif/exif"
	_ "golang.org/x/image/bmp"
)

// ImageInfo holds metadata about a single image file, shown in the
// focused view's info panel.
type ImageInfo struct {
	Width   int
	Height  int
	Size    int64
	ModTime time.Time
	EXIF    map[string]string
}

// exifFields are the EXIF tags worth surfacing, when present.
var exifFields = []string{
	"DateTime", "Model", "Make", "ExposureTime", "FNumber", "ISOSpeedRatings", "FocalLength",
}

// readEXIF extracts a few common EXIF fields. Most PNGs and GIFs carry no
// EXIF at all, so a decode failure is not an error.
func readEXIF(r io.Reader) map[string]string {
	x, err := exif.Decode(r)
	if err != nil {
		return nil
	}
	result := make(map[string]string)
	for _, field := range exifFields {
		tag, err := x.Get(exif.FieldName(field))
		if err == nil && tag != nil {
			result[field] = tag.String()
		}
	}
	return result
}

// ImageInfo returns dimensions, byte size, mod time, and any EXIF data for
// the file at path. The file is opened once and closed before returning.
func (s *Service) ImageInfo(path string) (*ImageInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image for info: %w", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat image file: %w", err)
	}

	exifData := readEXIF(f)

	// Seek back to the beginning for the dimension read.
	if _, err = f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to seek in image file: %w", err)
	}

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image for info: %w", err)
	}

	return &ImageInfo{
		Width:   cfg.Width,
		Height:  cfg.Height,
		Size:    fi.Size(),
		ModTime: fi.ModTime(),
		EXIF:    exifData,
	}, nil
}
