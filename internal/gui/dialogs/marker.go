// Package dialogs holds the secondary tool dialogs opened from the toolbar.
package dialogs

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// MarkerOptions are the freehand marker drawing settings.
type MarkerOptions struct {
	Size  float32
	Color color.Color
}

var markerSizes = []struct {
	label string
	size  float32
}{
	{"Thin", 2},
	{"Medium", 4},
	{"Thick", 8},
	{"Heavy", 12},
}

var markerColors = []struct {
	label string
	color color.Color
}{
	{"Red", color.RGBA{R: 255, A: 255}},
	{"Yellow", color.RGBA{R: 255, G: 255, A: 255}},
	{"Green", color.RGBA{G: 200, A: 255}},
	{"Blue", color.RGBA{B: 255, A: 255}},
	{"Black", color.RGBA{A: 255}},
}

// MarkerTool lets the user pick marker size and color; every change is
// applied immediately through the apply callback.
type MarkerTool struct {
	dlg   dialog.Dialog
	opts  MarkerOptions
	apply func(MarkerOptions)
}

func NewMarkerTool(window fyne.Window, initial MarkerOptions, apply func(MarkerOptions)) *MarkerTool {
	t := &MarkerTool{opts: initial, apply: apply}

	sizeNames := make([]string, len(markerSizes))
	for i, entry := range markerSizes {
		sizeNames[i] = entry.label
	}
	sizeRadio := widget.NewRadioGroup(sizeNames, func(selected string) {
		for _, entry := range markerSizes {
			if entry.label == selected {
				t.opts.Size = entry.size
				t.apply(t.opts)
				return
			}
		}
	})
	sizeRadio.SetSelected(sizeNameFor(initial.Size))

	colorNames := make([]string, len(markerColors))
	for i, entry := range markerColors {
		colorNames[i] = entry.label
	}
	colorRadio := widget.NewRadioGroup(colorNames, func(selected string) {
		for _, entry := range markerColors {
			if entry.label == selected {
				t.opts.Color = entry.color
				t.apply(t.opts)
				return
			}
		}
	})

	content := container.NewHBox(
		container.NewVBox(widget.NewLabel("Size"), sizeRadio),
		widget.NewSeparator(),
		container.NewVBox(widget.NewLabel("Color"), colorRadio),
	)
	t.dlg = dialog.NewCustom("Marker Tool", "Close", content, window)
	return t
}

func sizeNameFor(size float32) string {
	for _, entry := range markerSizes {
		if entry.size == size {
			return entry.label
		}
	}
	return markerSizes[0].label
}

func (t *MarkerTool) Show() {
	t.dlg.Show()
}

// Destroy dismisses the dialog; the toolbar creates a fresh one on the
// next marker activation.
func (t *MarkerTool) Destroy() {
	t.dlg.Hide()
}
