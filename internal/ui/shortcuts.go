package ui

import (
	"fyne.io/fyne/v2"
)

func (a *App) buildKeyboardShortcuts() {
	a.win.Canvas().SetOnTypedKey(func(key *fyne.KeyEvent) {
		switch key.Name {
		case fyne.KeyRight:
			if a.state.Next() {
				a.render()
			}
		case fyne.KeyLeft:
			if a.state.Prev() {
				a.render()
			}
		case fyne.KeyEscape:
			if a.state.Focused() {
				a.state.Back()
				a.render()
			}
		case fyne.KeyR:
			a.rebuild()
		case fyne.KeyQ:
			a.app.Quit()
		}
	})
}
