package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// ErrorDialogs surfaces errors as modal dialogs on the main window.
type ErrorDialogs struct {
	window fyne.Window
}

func NewErrorDialogs(window fyne.Window) *ErrorDialogs {
	return &ErrorDialogs{window: window}
}

func (e *ErrorDialogs) ShowError(title, message string) {
	label := widget.NewLabel(message)
	label.Wrapping = fyne.TextWrapWord
	dialog.ShowCustom(title, "Close", label, e.window)
}
