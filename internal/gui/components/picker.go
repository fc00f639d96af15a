package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// PickerOption is one entry in a picker popup. Icon is rendered inside the
// popup; BarIcon is the same image at toolbar size, handed to OnSelect so
// the owning button can adopt it.
type PickerOption struct {
	Label    string
	Icon     fyne.Resource
	BarIcon  fyne.Resource
	OnSelect func(barIcon fyne.Resource)
}

// Picker manages the transient option popup tied to a toolbar button. At
// most one popup is open; opening a new one closes the prior one without
// firing its callback. Tapping outside the popup closes it the same way.
type Picker struct {
	canvas fyne.Canvas
	popup  *widget.PopUp
}

func NewPicker(canvas fyne.Canvas) *Picker {
	return &Picker{canvas: canvas}
}

// Open shows a popup listing options next to the owning button.
func (p *Picker) Open(owner fyne.CanvasObject, options []PickerOption) {
	p.Close()

	column := container.NewVBox()
	for _, opt := range options {
		button := widget.NewButtonWithIcon(opt.Label, opt.Icon, func() {
			p.Close()
			opt.OnSelect(opt.BarIcon)
		})
		button.Alignment = widget.ButtonAlignLeading
		column.Add(button)
	}

	p.popup = widget.NewPopUp(column, p.canvas)
	pos := fyne.CurrentApp().Driver().AbsolutePositionForObject(owner)
	p.popup.ShowAtPosition(pos.Add(fyne.NewPos(owner.Size().Width, 0)))
}

// Close dismisses the popup, if open, without firing any callback.
func (p *Picker) Close() {
	if p.popup != nil {
		p.popup.Hide()
		p.popup = nil
	}
}

// IsOpen reports whether a popup is currently showing.
func (p *Picker) IsOpen() bool {
	return p.popup != nil && p.popup.Visible()
}
