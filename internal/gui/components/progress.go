package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// ProgressPopup shows an indeterminate progress dialog while a session
// operation runs. Show and Hide are both invoked on the UI event loop.
type ProgressPopup struct {
	window fyne.Window
	dlg    dialog.Dialog
}

func NewProgressPopup(window fyne.Window) *ProgressPopup {
	return &ProgressPopup{window: window}
}

func (p *ProgressPopup) Show(label string) {
	bar := widget.NewProgressBarInfinite()
	p.dlg = dialog.NewCustomWithoutButtons(label, bar, p.window)
	p.dlg.Show()
}

func (p *ProgressPopup) Hide() {
	if p.dlg != nil {
		p.dlg.Hide()
		p.dlg = nil
	}
}
