package gui

import "fyne.io/fyne/v2"

// Menubar owns the main menu. Session items flip with the lifecycle phase:
// start is offered in design, stop and the run tool while running.
type Menubar struct {
	main      *fyne.MainMenu
	startItem *fyne.MenuItem
	stopItem  *fyne.MenuItem
	runItem   *fyne.MenuItem

	onStart func()
	onStop  func()
	onRun   func()
}

func NewMenubar() *Menubar {
	m := &Menubar{}

	m.startItem = fyne.NewMenuItem("Start Session", func() {
		if m.onStart != nil {
			m.onStart()
		}
	})
	m.stopItem = fyne.NewMenuItem("Stop Session", func() {
		if m.onStop != nil {
			m.onStop()
		}
	})
	m.runItem = fyne.NewMenuItem("Run Tool...", func() {
		if m.onRun != nil {
			m.onRun()
		}
	})
	m.stopItem.Disabled = true
	m.runItem.Disabled = true

	m.main = fyne.NewMainMenu(
		fyne.NewMenu("Session", m.startItem, m.stopItem, fyne.NewMenuItemSeparator(), m.runItem),
	)
	return m
}

// SetHandlers wires the menu actions; the toolbar is constructed after the
// menubar, so handlers arrive late.
func (m *Menubar) SetHandlers(onStart, onStop, onRun func()) {
	m.onStart = onStart
	m.onStop = onStop
	m.onRun = onRun
}

// SetRuntime flips the session items for the given phase.
func (m *Menubar) SetRuntime(runtime bool) {
	m.startItem.Disabled = runtime
	m.stopItem.Disabled = !runtime
	m.runItem.Disabled = !runtime
	m.main.Refresh()
}

func (m *Menubar) Main() *fyne.MainMenu {
	return m.main
}
