// Package gui assembles the main window around the toolbar.
package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"netlab-designer/internal/gui/components"
)

// View lays out the toolbar, the canvas area and the status bar.
type View struct {
	toolbar *components.Toolbar
	status  *widget.Label
	content fyne.CanvasObject
}

func NewView(toolbar *components.Toolbar) *View {
	v := &View{
		toolbar: toolbar,
		status:  widget.NewLabel("Design"),
	}

	// Placeholder for the topology canvas; the toolbar drives its mode
	// through the graph.Canvas interface.
	area := canvas.NewRectangle(color.RGBA{R: 250, G: 249, B: 245, A: 255})
	area.SetMinSize(fyne.NewSize(800, 560))

	v.content = container.NewBorder(
		nil,
		container.NewHBox(v.status),
		toolbar.Container(),
		nil,
		area,
	)
	return v
}

func (v *View) Content() fyne.CanvasObject {
	return v.content
}

func (v *View) SetStatus(text string) {
	v.status.SetText(text)
}
