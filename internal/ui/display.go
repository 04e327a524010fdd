package ui

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"
)

// buildGridView renders the thumbnail grid. Tapping a thumbnail is the
// "View" action that switches to the focused view.
func (a *App) buildGridView() fyne.CanvasObject {
	files := a.state.Files()
	if len(files) == 0 {
		return container.NewCenter(container.NewVBox(
			widget.NewLabel("No images found in the selected directory."),
			widget.NewLabel("Select a valid directory containing images in the sidebar."),
		))
	}

	items := make([]fyne.CanvasObject, 0, len(files))
	for _, f := range files {
		path := f
		thumb := newTappableImage(a.thumbs.Placeholder(), func() {
			// Rebuild before trusting the tap: the file may be gone.
			dir, fresh, ok := a.svc.OpenDirectory(a.rawDir)
			a.dirValid = ok
			a.state.SetFiles(dir, fresh)
			a.summary = a.svc.Summary(fresh)
			a.state.Select(path)
			a.render()
		})
		thumb.SetMinSize(fyne.NewSize(ThumbnailWidth, ThumbnailHeight))
		a.thumbs.Load(path, thumb.SetResource)

		items = append(items, container.NewVBox(
			thumb,
			widget.NewLabelWithStyle(filepath.Base(path), fyne.TextAlignCenter, fyne.TextStyle{}),
		))
	}

	return container.NewVScroll(container.NewGridWithColumns(a.columns, items...))
}

// buildFocusedView renders the single-image view with Previous/Next/Back
// controls, disabled at the list bounds.
func (a *App) buildFocusedView(path string) fyne.CanvasObject {
	img := canvas.NewImageFromFile(path)
	img.FillMode = canvas.ImageFillContain

	prevBtn := widget.NewButton("Previous", func() {
		if a.state.Prev() {
			a.render()
		}
	})
	nextBtn := widget.NewButton("Next", func() {
		if a.state.Next() {
			a.render()
		}
	})
	backBtn := widget.NewButton("Back to Gallery", func() {
		a.state.Back()
		a.render()
	})
	if !a.state.CanPrev() {
		prevBtn.Disable()
	}
	if !a.state.CanNext() {
		nextBtn.Disable()
	}

	controls := container.NewHBox(prevBtn, nextBtn, layout.NewSpacer(), backBtn)

	return container.NewBorder(
		nil,
		container.NewVBox(a.buildInfoLabel(path), controls),
		nil,
		nil,
		img,
	)
}

// buildInfoLabel shows the focused image's metadata. An unreadable file is
// reported inline, never fatal.
func (a *App) buildInfoLabel(path string) fyne.CanvasObject {
	info, err := a.svc.ImageInfo(path)
	if err != nil {
		a.log.WithError(err).Warnf("no metadata for %s", path)
		return widget.NewLabel("Image metadata not available.")
	}

	text := fmt.Sprintf("%s  |  %dx%d px  |  %s  |  modified %s",
		filepath.Base(path), info.Width, info.Height,
		humanize.IBytes(uint64(info.Size)), info.ModTime.Format("2006-01-02 15:04"))

	if len(info.EXIF) > 0 {
		keys := make([]string, 0, len(info.EXIF))
		for k := range info.EXIF {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s: %s", k, info.EXIF[k]))
		}
		text += "\nEXIF  " + strings.Join(parts, "  ")
	}

	label := widget.NewLabel(text)
	label.Wrapping = fyne.TextWrapWord
	return label
}

// updateStatsPanel refreshes the sidebar statistics from the current
// summary.
func (a *App) updateStatsPanel() {
	var b strings.Builder
	fmt.Fprintf(&b, "Total images: %d\n", a.summary.Total)
	fmt.Fprintf(&b, "Total size: %s\n", humanize.IBytes(a.summary.TotalSize))
	b.WriteString("Dimensions:\n")
	if !a.summary.HasDimensions() {
		b.WriteString("  N/A")
	} else {
		for _, d := range a.summary.Histogram {
			fmt.Fprintf(&b, "  %s\n", d)
		}
	}
	a.statsLabel.SetText(strings.TrimRight(b.String(), "\n"))
}
