// Package gallery tracks the navigation state of the image browser: the
// active directory, the current file list, and which image (if any) is
// selected for the focused view.
package gallery

// State is the navigation state machine. It has two modes: gallery (no
// selection) and focused (exactly one selected path). The selection is
// remembered by path, never by index; the index is re-derived from the
// current list on every access so that a list rebuilt behind our back can
// never leave a stale index in play.
type State struct {
	dir      string
	files    []string
	selected string // empty means gallery mode
}

// New returns a State in gallery mode with no directory loaded.
func New() *State {
	return &State{}
}

// Dir returns the active directory.
func (s *State) Dir() string {
	return s.dir
}

// Files returns the current file list.
func (s *State) Files() []string {
	return s.files
}

// Focused reports whether an image is selected for the focused view.
func (s *State) Focused() bool {
	_, _, ok := s.Current()
	return ok
}

// Current returns the index and path of the selected image. ok is false in
// gallery mode, or when the selected path is no longer in the list.
func (s *State) Current() (int, string, bool) {
	if s.selected == "" {
		return 0, "", false
	}
	i := s.indexOf(s.selected)
	if i < 0 {
		return 0, "", false
	}
	return i, s.selected, true
}

// SetFiles installs a freshly rebuilt file list for dir and reconciles the
// selection against it. Callers rebuild the list on every directory
// change, bookmark change, or refresh; reconcile decides whether the
// selection survives.
func (s *State) SetFiles(dir string, files []string) {
	s.dir = dir
	s.files = files
	s.Reconcile()
}

// Reconcile clears the selection if it is no longer a member of the
// current list. A failed lookup is treated as "not found", never
// propagated.
func (s *State) Reconcile() {
	if s.selected == "" {
		return
	}
	if s.indexOf(s.selected) < 0 {
		s.selected = ""
	}
}

// Select focuses the image at path. It reports whether the path is a
// member of the current list; selecting an unknown path is a no-op.
func (s *State) Select(path string) bool {
	if s.indexOf(path) < 0 {
		return false
	}
	s.selected = path
	return true
}

// Back returns to gallery mode.
func (s *State) Back() {
	s.selected = ""
}

// CanNext reports whether a next image exists.
func (s *State) CanNext() bool {
	i, _, ok := s.Current()
	return ok && i+1 < len(s.files)
}

// CanPrev reports whether a previous image exists.
func (s *State) CanPrev() bool {
	i, _, ok := s.Current()
	return ok && i > 0
}

// Next advances the selection to the following image. At the last index
// the action is unavailable and Next reports false without changing state.
func (s *State) Next() bool {
	i, _, ok := s.Current()
	if !ok || i+1 >= len(s.files) {
		return false
	}
	s.selected = s.files[i+1]
	return true
}

// Prev moves the selection to the preceding image. At index zero the
// action is unavailable and Prev reports false without changing state.
func (s *State) Prev() bool {
	i, _, ok := s.Current()
	if !ok || i == 0 {
		return false
	}
	s.selected = s.files[i-1]
	return true
}

func (s *State) indexOf(path string) int {
	for i, f := range s.files {
		if f == path {
			return i
		}
	}
	return -1
}
