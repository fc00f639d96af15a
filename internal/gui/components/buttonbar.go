package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ButtonBar is a vertical column of toolbar buttons. Buttons added as
// radios form a single-select toggle group; the rest are plain action
// buttons. At most one radio is selected at a time.
type ButtonBar struct {
	box      *fyne.Container
	all      []*widget.Button
	radios   []*widget.Button
	selected *widget.Button
}

func NewButtonBar() *ButtonBar {
	return &ButtonBar{box: container.NewVBox()}
}

// AddButton appends an always-enabled action button.
func (b *ButtonBar) AddButton(icon fyne.Resource, tapped func()) *widget.Button {
	button := widget.NewButtonWithIcon("", icon, tapped)
	b.all = append(b.all, button)
	b.box.Add(button)
	return button
}

// AddRadio appends a toggle button belonging to the bar's radio group.
func (b *ButtonBar) AddRadio(icon fyne.Resource, tapped func()) *widget.Button {
	button := b.AddButton(icon, tapped)
	b.radios = append(b.radios, button)
	return button
}

// SelectRadio marks selected as the active toggle and clears the rest.
// Re-selecting the active toggle is a no-op, so there is no flicker from
// repeated clicks.
func (b *ButtonBar) SelectRadio(selected *widget.Button) {
	if b.selected == selected {
		return
	}
	for _, button := range b.radios {
		if button.Importance != widget.MediumImportance {
			button.Importance = widget.MediumImportance
			button.Refresh()
		}
	}
	selected.Importance = widget.HighImportance
	selected.Refresh()
	b.selected = selected
}

// Selected returns the active toggle, or nil if none has been selected.
func (b *ButtonBar) Selected() *widget.Button {
	return b.selected
}

// SelectedCount returns how many toggles are currently marked active.
func (b *ButtonBar) SelectedCount() int {
	count := 0
	for _, button := range b.radios {
		if button.Importance == widget.HighImportance {
			count++
		}
	}
	return count
}

// SetEnabled flips every button in the bar.
func (b *ButtonBar) SetEnabled(enabled bool) {
	for _, button := range b.all {
		if enabled {
			button.Enable()
		} else {
			button.Disable()
		}
	}
}

// Enabled reports whether every button in the bar is enabled.
func (b *ButtonBar) Enabled() bool {
	for _, button := range b.all {
		if button.Disabled() {
			return false
		}
	}
	return true
}

func (b *ButtonBar) Container() *fyne.Container {
	return b.box
}
