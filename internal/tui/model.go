// Package tui is the terminal front end of the gallery. It drives the
// same navigation state and pipeline as the GUI: every key press re-runs
// resolve → list → reconcile → aggregate before the next render.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"resview/internal/gallery"
	"resview/internal/service"
	"resview/internal/stats"
)

// Model is the bubbletea model. The gallery cursor (which grid item the
// "View" action would open) is presentation state; the selection itself
// lives in gallery.State.
type Model struct {
	svc   *service.Service
	state *gallery.State

	rawDir   string
	dirValid bool

	bookmarkList []string
	bookmarkIdx  int

	cursor  int
	summary stats.Summary
	info    *service.ImageInfo

	status   string
	showHelp bool

	keys keyMap
	help help.Model

	width  int
	height int
}

// New builds the model and runs the first pipeline pass over startDir.
func New(svc *service.Service, startDir string) Model {
	m := Model{
		svc:          svc,
		state:        gallery.New(),
		rawDir:       startDir,
		bookmarkList: svc.Bookmarks.Load(),
		keys:         defaultKeyMap(),
		help:         help.New(),
	}
	m.rebuild()
	return m
}

// rebuild re-runs the full pipeline for the current raw directory and
// reconciles the selection against the fresh list.
func (m *Model) rebuild() {
	dir, files, ok := m.svc.OpenDirectory(m.rawDir)
	m.dirValid = ok
	m.state.SetFiles(dir, files)
	m.summary = m.svc.Summary(files)

	if n := len(files); n == 0 {
		m.cursor = 0
	} else if m.cursor >= n {
		m.cursor = n - 1
	}
	m.refreshInfo()
}

// refreshInfo loads the focused image's metadata, or clears it.
func (m *Model) refreshInfo() {
	m.info = nil
	if _, path, ok := m.state.Current(); ok {
		info, err := m.svc.ImageInfo(path)
		if err != nil {
			m.status = "could not read image metadata"
			return
		}
		m.info = info
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.rebuild()
		return m, nil

	case key.Matches(msg, m.keys.Bookmark):
		if len(m.bookmarkList) > 0 {
			m.bookmarkIdx = (m.bookmarkIdx + 1) % len(m.bookmarkList)
			m.rawDir = m.bookmarkList[m.bookmarkIdx]
			m.cursor = 0
			m.rebuild()
		}
		return m, nil

	case key.Matches(msg, m.keys.Save):
		paths, added, err := m.svc.SaveBookmark(m.rawDir)
		switch {
		case err != nil:
			m.status = "failed to save bookmark: " + err.Error()
		case added:
			m.status = "bookmark saved"
		default:
			m.status = "already bookmarked"
		}
		m.bookmarkList = paths
		return m, nil
	}

	if m.state.Focused() {
		return m.handleFocusedKey(msg)
	}
	return m.handleGalleryKey(msg)
}

func (m Model) handleGalleryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	files := m.state.Files()

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor+1 < len(files) {
			m.cursor++
		}
	case key.Matches(msg, m.keys.View):
		// Re-list before trusting the cursor: files may have changed on
		// disk since the last render.
		m.rebuild()
		files = m.state.Files()
		if m.cursor < len(files) && m.state.Select(files[m.cursor]) {
			m.refreshInfo()
		}
	}
	return m, nil
}

func (m Model) handleFocusedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Next):
		if m.state.Next() {
			m.syncCursor()
			m.refreshInfo()
		}
	case key.Matches(msg, m.keys.Prev):
		if m.state.Prev() {
			m.syncCursor()
			m.refreshInfo()
		}
	case key.Matches(msg, m.keys.Back):
		m.state.Back()
		m.info = nil
	}
	return m, nil
}

// syncCursor keeps the gallery cursor on the focused image so that
// leaving the focused view lands where the user was.
func (m *Model) syncCursor() {
	if i, _, ok := m.state.Current(); ok {
		m.cursor = i
	}
}
