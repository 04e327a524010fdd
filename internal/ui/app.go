// Package ui contains the Fyne front end of the gallery.
package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"resview/internal/config"
	"resview/internal/gallery"
	"resview/internal/service"
	"resview/internal/stats"
)

// App represents the whole application with all its windows, widgets and
// functions. Every user interaction funnels into rebuild(), which re-runs
// the full pipeline (resolve → list → reconcile → aggregate) and then
// re-renders; no derived data is kept between interactions.
type App struct {
	app fyne.App
	win fyne.Window

	cfg   *config.Config
	svc   *service.Service
	state *gallery.State
	log   *logrus.Logger

	thumbs  *ThumbnailManager
	columns int

	rawDir   string
	dirValid bool
	summary  stats.Summary

	bookmarkSelect *widget.Select
	pathEntry      *widget.Entry
	pathStatus     *widget.Label
	statsLabel     *widget.Label
	statusLabel    *widget.Label
	content        *fyne.Container
}

// CreateApplication builds the main window. Run() starts the event loop.
func CreateApplication(cfg *config.Config, svc *service.Service, log *logrus.Logger) *App {
	a := &App{
		app:     app.NewWithID("resview"),
		cfg:     cfg,
		svc:     svc,
		state:   gallery.New(),
		log:     log,
		columns: cfg.GridColumns,
		rawDir:  cfg.DefaultDir,
	}
	a.thumbs = NewThumbnailManager(a)

	a.win = a.app.NewWindow("resview")
	a.win.SetMaster()
	a.win.Resize(fyne.NewSize(1100, 750))
	a.win.SetContent(a.buildMainUI())
	a.buildKeyboardShortcuts()

	a.rebuild()
	return a
}

// Run shows the main window and blocks until the application exits.
func (a *App) Run() {
	a.win.ShowAndRun()
}

// rebuild re-runs the pipeline for the current raw directory and renders
// the result. The selection is reconciled inside SetFiles; a vanished
// image silently drops the view back to the gallery.
func (a *App) rebuild() {
	dir, files, ok := a.svc.OpenDirectory(a.rawDir)
	a.dirValid = ok
	a.state.SetFiles(dir, files)
	a.summary = a.svc.Summary(files)
	a.render()
}

// render swaps the center area between grid and focused view and updates
// the side panels.
func (a *App) render() {
	a.updateStatsPanel()

	if !a.dirValid {
		a.pathStatus.SetText(fmt.Sprintf("%q is not a valid directory", a.rawDir))
	} else {
		a.pathStatus.SetText("")
	}

	var center fyne.CanvasObject
	if _, path, ok := a.state.Current(); ok {
		center = a.buildFocusedView(path)
	} else {
		center = a.buildGridView()
	}
	a.content.Objects = []fyne.CanvasObject{center}
	a.content.Refresh()
	a.updateStatusBar()
}

func (a *App) updateStatusBar() {
	if i, path, ok := a.state.Current(); ok {
		a.statusLabel.SetText(fmt.Sprintf("%s  |  Image %d / %d", path, i+1, len(a.state.Files())))
		return
	}
	a.statusLabel.SetText(fmt.Sprintf("%s  |  %d images", a.state.Dir(), len(a.state.Files())))
}

// setDirectory is the single entry point for directory changes from the
// bookmark dropdown or the path entry.
func (a *App) setDirectory(raw string) {
	a.rawDir = raw
	a.state.Back() // directory change always returns to the gallery
	a.rebuild()
}

func (a *App) buildMainUI() fyne.CanvasObject {
	a.content = container.NewStack(widget.NewLabel(""))
	a.statusLabel = widget.NewLabel("Ready")

	statusBar := container.NewVBox(
		widget.NewSeparator(),
		container.NewHBox(a.statusLabel),
	)

	return container.NewBorder(
		nil,              // top
		statusBar,        // bottom
		a.buildSidebar(), // left
		nil,              // right
		a.content,
	)
}

// buildSidebar assembles the bookmark dropdown, the add-path entry with
// its Test/Save actions, the images-per-row selector, and the stats panel.
func (a *App) buildSidebar() fyne.CanvasObject {
	// Created first: the selector callbacks below fire during
	// construction and render() reads these labels.
	a.statsLabel = widget.NewLabel("")
	a.pathStatus = widget.NewLabel("")
	a.pathStatus.Wrapping = fyne.TextWrapWord

	a.bookmarkSelect = widget.NewSelect(a.svc.Bookmarks.Load(), func(chosen string) {
		a.setDirectory(chosen)
	})
	a.bookmarkSelect.PlaceHolder = "Select an image directory"

	a.pathEntry = widget.NewEntry()
	a.pathEntry.SetPlaceHolder("Enter a directory path…")

	testBtn := widget.NewButton("Test", func() {
		a.setDirectory(a.pathEntry.Text)
	})
	saveBtn := widget.NewButton("Save", func() {
		paths, added, err := a.svc.SaveBookmark(a.pathEntry.Text)
		switch {
		case err != nil:
			a.pathStatus.SetText("failed to save bookmark: " + err.Error())
		case added:
			a.pathStatus.SetText("Bookmark saved.")
		default:
			a.pathStatus.SetText("Not saved: invalid path or already bookmarked.")
		}
		a.bookmarkSelect.Options = paths
		a.bookmarkSelect.Refresh()
	})

	columnOptions := make([]string, len(config.GridColumnOptions))
	for i, n := range config.GridColumnOptions {
		columnOptions[i] = strconv.Itoa(n)
	}
	columnsSelect := widget.NewSelect(columnOptions, func(chosen string) {
		if n, err := strconv.Atoi(chosen); err == nil {
			a.columns = n
			a.render()
		}
	})
	columnsSelect.SetSelected(strconv.Itoa(a.columns))

	refreshBtn := widget.NewButton("Refresh", func() { a.rebuild() })

	return container.NewVBox(
		widget.NewLabelWithStyle("Configuration", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		a.bookmarkSelect,
		a.pathEntry,
		container.NewGridWithColumns(2, testBtn, saveBtn),
		a.pathStatus,
		widget.NewSeparator(),
		widget.NewLabel("Images per row:"),
		columnsSelect,
		refreshBtn,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Statistics", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		a.statsLabel,
	)
}
