// Package stats computes aggregate statistics over a list of image files.
package stats

import (
	"fmt"
	"image"
	"os"
	"sort"

	// Register decoders for the supported formats. Only the header is
	// read, via image.DecodeConfig.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
)

// Dimension is one (width, height) bucket of the histogram.
type Dimension struct {
	Width   int
	Height  int
	Count   int
	Percent float64
}

// String renders the bucket the way the gallery displays it.
func (d Dimension) String() string {
	return fmt.Sprintf("%dx%d: %d (%.1f%%)", d.Width, d.Height, d.Count, d.Percent)
}

// Summary holds the aggregate statistics for one file list. Total counts
// every listed file; Decoded counts only the files whose dimensions could
// be read, and percentages are computed over Decoded.
type Summary struct {
	Total     int
	TotalSize uint64
	Decoded   int
	Histogram []Dimension
	Warnings  []string
}

// HasDimensions reports whether any file yielded usable dimensions. Zero
// listed files and all-unreadable files both come out false; the display
// shows "N/A" for either.
func (s Summary) HasDimensions() bool {
	return s.Decoded > 0
}

// Aggregate scans every file once and produces a Summary. Files whose size
// cannot be read are skipped from the size total; files that do not decode
// as images are skipped from the histogram. Both cases add a warning and
// never abort the pass. Nothing is cached between calls.
func Aggregate(files []string) Summary {
	sum := Summary{Total: len(files)}

	type dims struct{ w, h int }
	counts := make(map[dims]int)
	var order []dims

	for _, f := range files {
		if fi, err := os.Stat(f); err == nil {
			sum.TotalSize += uint64(fi.Size())
		} else {
			sum.Warnings = append(sum.Warnings, fmt.Sprintf("could not stat %s: %v", f, err))
		}

		w, h, err := decodeSize(f)
		if err != nil {
			sum.Warnings = append(sum.Warnings, fmt.Sprintf("could not read %s: %v", f, err))
			continue
		}
		sum.Decoded++
		d := dims{w, h}
		if counts[d] == 0 {
			order = append(order, d)
		}
		counts[d]++
	}

	sum.Histogram = make([]Dimension, 0, len(order))
	for _, d := range order {
		sum.Histogram = append(sum.Histogram, Dimension{
			Width:   d.w,
			Height:  d.h,
			Count:   counts[d],
			Percent: float64(counts[d]) / float64(sum.Decoded) * 100,
		})
	}
	// Descending by count; ties keep first-encountered order.
	sort.SliceStable(sum.Histogram, func(i, j int) bool {
		return sum.Histogram[i].Count > sum.Histogram[j].Count
	})
	return sum
}

// decodeSize reads just enough of the file to learn its pixel dimensions.
func decodeSize(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}
