package components

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"netlab-designer/internal/graph"
	"netlab-designer/internal/icons"
	"netlab-designer/internal/logger"
	"netlab-designer/internal/session"
	"netlab-designer/internal/task"
)

// ErrorSurface shows a modal error to the user.
type ErrorSurface interface {
	ShowError(title, message string)
}

// Menubar is the menu collaborator whose items flip with the session phase.
type Menubar interface {
	SetRuntime(runtime bool)
}

// MarkerTool is the freehand marker options dialog.
type MarkerTool interface {
	Show()
	Destroy()
}

// ToolbarDeps carries the toolbar's collaborators.
type ToolbarDeps struct {
	Log           logger.Logger
	Client        session.Client
	Runner        *task.Runner
	Canvas        graph.Canvas
	Icons         *icons.Provider
	Errors        ErrorSurface
	Menubar       Menubar
	Picker        *Picker
	NewMarkerTool func() MarkerTool
	ShowRunTool   func()
	IconSize      int
	PickerSize    int
	CustomNodes   []graph.NodeDraw
}

// Toolbar renders the design and runtime button bars and coordinates the
// session lifecycle: while a start or stop call is in flight the issuing
// bar is disabled, and completion handlers run on the UI event loop.
type Toolbar struct {
	deps    ToolbarDeps
	machine *session.Machine

	designBar  *ButtonBar
	runtimeBar *ButtonBar
	stack      *fyne.Container

	PlayButton          *widget.Button
	SelectButton        *widget.Button
	LinkButton          *widget.Button
	NodeButton          *widget.Button
	NetworkButton       *widget.Button
	AnnotationButton    *widget.Button
	StopButton          *widget.Button
	RuntimeSelectButton *widget.Button
	RuntimeMarkerButton *widget.Button
	RunButton           *widget.Button

	// current picker selections, kept so Scale can re-render bar icons
	nodeIcon       icons.ID
	nodeFile       string
	networkIcon    icons.ID
	annotationIcon icons.ID

	markerTool MarkerTool
}

func NewToolbar(deps ToolbarDeps) *Toolbar {
	t := &Toolbar{
		deps:           deps,
		machine:        session.NewMachine(deps.Log),
		nodeIcon:       icons.Router,
		networkIcon:    icons.Hub,
		annotationIcon: icons.Marker,
	}
	t.draw()
	return t
}

func (t *Toolbar) draw() {
	t.drawDesignBar()
	t.drawRuntimeBar()

	// Runtime controls stay disabled and hidden until a session is up.
	t.runtimeBar.SetEnabled(false)
	t.runtimeBar.Container().Hide()
	t.stack = container.NewStack(t.designBar.Container(), t.runtimeBar.Container())
}

func (t *Toolbar) drawDesignBar() {
	t.designBar = NewButtonBar()
	t.PlayButton = t.designBar.AddButton(t.icon(icons.Start), t.ClickStart)
	t.SelectButton = t.designBar.AddRadio(t.icon(icons.Select), t.ClickSelection)
	t.LinkButton = t.designBar.AddRadio(t.icon(icons.Link), t.ClickLink)
	t.NodeButton = t.designBar.AddRadio(t.icon(icons.Router), t.OpenNodePicker)
	t.NetworkButton = t.designBar.AddRadio(t.icon(icons.Hub), t.OpenNetworkPicker)
	t.AnnotationButton = t.designBar.AddRadio(t.icon(icons.Marker), t.OpenAnnotationPicker)
}

func (t *Toolbar) drawRuntimeBar() {
	t.runtimeBar = NewButtonBar()
	t.StopButton = t.runtimeBar.AddButton(t.icon(icons.Stop), t.ClickStop)
	t.RuntimeSelectButton = t.runtimeBar.AddRadio(t.icon(icons.Select), t.ClickRuntimeSelection)
	t.RuntimeMarkerButton = t.runtimeBar.AddRadio(t.icon(icons.Marker), t.ClickRuntimeMarker)
	t.RunButton = t.runtimeBar.AddButton(t.icon(icons.Run), t.ClickRun)
}

func (t *Toolbar) icon(id icons.ID) fyne.Resource {
	return t.deps.Icons.Icon(id, t.deps.IconSize)
}

// Container returns the toolbar's root object.
func (t *Toolbar) Container() fyne.CanvasObject {
	return t.stack
}

// Phase returns the current session lifecycle phase.
func (t *Toolbar) Phase() session.Phase {
	return t.machine.Phase()
}

// DesignBar exposes the design button group.
func (t *Toolbar) DesignBar() *ButtonBar { return t.designBar }

// RuntimeBar exposes the runtime button group.
func (t *Toolbar) RuntimeBar() *ButtonBar { return t.runtimeBar }

// ClickStart disables the design controls and starts the session on the
// worker. The bar stays disabled until the completion handler runs, which
// is what prevents a double submit.
func (t *Toolbar) ClickStart() {
	if t.deps.Runner.Busy() {
		t.deps.Log.Warning("toolbar", "start ignored, another operation is in flight", nil)
		return
	}
	if err := t.machine.RequestStart(); err != nil {
		t.deps.Log.Error("toolbar", err, nil)
		return
	}
	t.deps.Menubar.SetRuntime(true)
	t.deps.Canvas.SetMode(graph.ModeSelect)
	t.designBar.SetEnabled(false)

	err := t.deps.Runner.Run("Start", func(ctx context.Context) error {
		result, err := t.deps.Client.StartSession(ctx)
		if err != nil {
			return err
		}
		if !result.Result {
			return &session.OperationError{Op: "start", Reasons: result.Exceptions}
		}
		return nil
	}, t.startDone)
	if err != nil {
		t.deps.Log.Error("toolbar", err, nil)
		_ = t.machine.CompleteStart(false)
		t.deps.Menubar.SetRuntime(false)
		t.designBar.SetEnabled(true)
	}
}

func (t *Toolbar) startDone(opErr error) {
	if err := t.machine.CompleteStart(opErr == nil); err != nil {
		t.deps.Log.Error("toolbar", err, nil)
		return
	}
	if opErr == nil {
		t.setRuntime()
		return
	}
	t.deps.Menubar.SetRuntime(false)
	t.designBar.SetEnabled(true)
	t.deps.Errors.ShowError("Start Session Error", opErr.Error())
}

// ClickStop disables the runtime controls and tears the session down on
// the worker. While another operation holds the runner the click is
// ignored: the session is still up, so the toolbar must stay in runtime.
func (t *Toolbar) ClickStop() {
	if t.deps.Runner.Busy() {
		t.deps.Log.Warning("toolbar", "stop ignored, another operation is in flight", nil)
		return
	}
	if err := t.machine.RequestStop(); err != nil {
		t.deps.Log.Error("toolbar", err, nil)
		return
	}
	t.deps.Menubar.SetRuntime(false)
	t.runtimeBar.SetEnabled(false)

	err := t.deps.Runner.Run("Stop", func(ctx context.Context) error {
		return t.deps.Client.StopSession(ctx)
	}, t.stopDone)
	if err != nil {
		t.deps.Log.Error("toolbar", err, nil)
	}
}

// stopDone always returns to design: the daemon reports no stop failures,
// and a transport error must not leave the toolbar wedged in stopping.
func (t *Toolbar) stopDone(opErr error) {
	if opErr != nil {
		t.deps.Log.Warning("toolbar", "stop session reported an error", map[string]interface{}{
			"reason": opErr.Error(),
		})
	}
	if err := t.machine.CompleteStop(); err != nil {
		t.deps.Log.Error("toolbar", err, nil)
		return
	}
	t.setDesign()
	t.deps.Canvas.StoppedSession()
}

func (t *Toolbar) setRuntime() {
	t.runtimeBar.SetEnabled(true)
	t.designBar.Container().Hide()
	t.runtimeBar.Container().Show()
	t.ClickRuntimeSelection()
}

func (t *Toolbar) setDesign() {
	t.designBar.SetEnabled(true)
	t.runtimeBar.Container().Hide()
	t.designBar.Container().Show()
	t.ClickSelection()
}

func (t *Toolbar) ClickSelection() {
	t.designBar.SelectRadio(t.SelectButton)
	t.deps.Canvas.SetMode(graph.ModeSelect)
}

func (t *Toolbar) ClickRuntimeSelection() {
	t.runtimeBar.SelectRadio(t.RuntimeSelectButton)
	t.deps.Canvas.SetMode(graph.ModeSelect)
}

func (t *Toolbar) ClickLink() {
	t.designBar.SelectRadio(t.LinkButton)
	t.deps.Canvas.SetMode(graph.ModeEdge)
}

// OpenNodePicker lists the built-in container nodes plus any custom nodes
// from the configuration.
func (t *Toolbar) OpenNodePicker() {
	t.designBar.SelectRadio(t.NodeButton)
	options := make([]PickerOption, 0, len(graph.Nodes())+len(t.deps.CustomNodes))
	for _, draw := range graph.Nodes() {
		options = append(options, PickerOption{
			Label:   draw.Label,
			Icon:    t.deps.Icons.Icon(draw.Icon, t.deps.PickerSize),
			BarIcon: t.deps.Icons.Icon(draw.Icon, t.deps.IconSize),
			OnSelect: func(barIcon fyne.Resource) {
				t.applyNodeSelection(draw, barIcon)
			},
		})
	}
	for _, draw := range t.deps.CustomNodes {
		icon, err := t.deps.Icons.CustomIcon(draw.ImageFile, t.deps.PickerSize)
		if err != nil {
			t.deps.Log.Error("toolbar", err, map[string]interface{}{"node": draw.Name})
			continue
		}
		barIcon, err := t.deps.Icons.CustomIcon(draw.ImageFile, t.deps.IconSize)
		if err != nil {
			t.deps.Log.Error("toolbar", err, map[string]interface{}{"node": draw.Name})
			continue
		}
		options = append(options, PickerOption{
			Label:   draw.Label,
			Icon:    icon,
			BarIcon: barIcon,
			OnSelect: func(barIcon fyne.Resource) {
				t.applyNodeSelection(draw, barIcon)
			},
		})
	}
	t.deps.Picker.Open(t.NodeButton, options)
}

// OpenNetworkPicker lists the link-layer node types.
func (t *Toolbar) OpenNetworkPicker() {
	t.designBar.SelectRadio(t.NetworkButton)
	options := make([]PickerOption, 0, len(graph.NetworkNodes()))
	for _, draw := range graph.NetworkNodes() {
		options = append(options, PickerOption{
			Label:   draw.Label,
			Icon:    t.deps.Icons.Icon(draw.Icon, t.deps.PickerSize),
			BarIcon: t.deps.Icons.Icon(draw.Icon, t.deps.IconSize),
			OnSelect: func(barIcon fyne.Resource) {
				t.applyNetworkSelection(draw, barIcon)
			},
		})
	}
	t.deps.Picker.Open(t.NetworkButton, options)
}

// OpenAnnotationPicker lists the annotation shapes.
func (t *Toolbar) OpenAnnotationPicker() {
	t.designBar.SelectRadio(t.AnnotationButton)
	shapes := []struct {
		icon  icons.ID
		shape graph.ShapeType
	}{
		{icons.Marker, graph.ShapeMarker},
		{icons.Oval, graph.ShapeOval},
		{icons.Rectangle, graph.ShapeRectangle},
		{icons.Text, graph.ShapeText},
	}
	options := make([]PickerOption, 0, len(shapes))
	for _, entry := range shapes {
		options = append(options, PickerOption{
			Label:   string(entry.shape),
			Icon:    t.deps.Icons.Icon(entry.icon, t.deps.PickerSize),
			BarIcon: t.deps.Icons.Icon(entry.icon, t.deps.IconSize),
			OnSelect: func(barIcon fyne.Resource) {
				t.applyAnnotationSelection(entry.shape, entry.icon, barIcon)
			},
		})
	}
	t.deps.Picker.Open(t.AnnotationButton, options)
}

func (t *Toolbar) applyNodeSelection(draw graph.NodeDraw, barIcon fyne.Resource) {
	t.NodeButton.SetIcon(barIcon)
	t.deps.Canvas.SetMode(graph.ModePlaceNode)
	t.deps.Canvas.SetNodeDraw(draw)
	if draw.Custom() {
		t.nodeFile = draw.ImageFile
		t.nodeIcon = ""
	} else {
		t.nodeIcon = draw.Icon
		t.nodeFile = ""
	}
}

func (t *Toolbar) applyNetworkSelection(draw graph.NodeDraw, barIcon fyne.Resource) {
	t.NetworkButton.SetIcon(barIcon)
	t.deps.Canvas.SetMode(graph.ModePlaceNode)
	t.deps.Canvas.SetNodeDraw(draw)
	t.networkIcon = draw.Icon
}

func (t *Toolbar) applyAnnotationSelection(shape graph.ShapeType, id icons.ID, barIcon fyne.Resource) {
	t.AnnotationButton.SetIcon(barIcon)
	t.deps.Canvas.SetMode(graph.ModeAnnotation)
	t.deps.Canvas.SetAnnotationType(shape)
	t.annotationIcon = id
	if shape.IsMarker() {
		t.showMarkerTool()
	}
}

// ClickRuntimeMarker activates the marker during a running session.
func (t *Toolbar) ClickRuntimeMarker() {
	t.runtimeBar.SelectRadio(t.RuntimeMarkerButton)
	t.deps.Canvas.SetMode(graph.ModeAnnotation)
	t.deps.Canvas.SetAnnotationType(graph.ShapeMarker)
	t.showMarkerTool()
}

// showMarkerTool replaces any existing marker dialog with a fresh one.
func (t *Toolbar) showMarkerTool() {
	if t.deps.NewMarkerTool == nil {
		return
	}
	if t.markerTool != nil {
		t.markerTool.Destroy()
	}
	t.markerTool = t.deps.NewMarkerTool()
	t.markerTool.Show()
}

func (t *Toolbar) ClickRun() {
	if t.deps.ShowRunTool != nil {
		t.deps.ShowRunTool()
	}
}

// Scale re-renders every bar icon at the given toolbar size, keeping the
// node, network and annotation buttons on their current selections.
func (t *Toolbar) Scale(size int) {
	t.deps.IconSize = size
	t.PlayButton.SetIcon(t.icon(icons.Start))
	t.SelectButton.SetIcon(t.icon(icons.Select))
	t.LinkButton.SetIcon(t.icon(icons.Link))
	if t.nodeFile != "" {
		if icon, err := t.deps.Icons.CustomIcon(t.nodeFile, size); err == nil {
			t.NodeButton.SetIcon(icon)
		} else {
			t.deps.Log.Error("toolbar", err, map[string]interface{}{"file": t.nodeFile})
		}
	} else {
		t.NodeButton.SetIcon(t.icon(t.nodeIcon))
	}
	t.NetworkButton.SetIcon(t.icon(t.networkIcon))
	t.AnnotationButton.SetIcon(t.icon(t.annotationIcon))
	t.StopButton.SetIcon(t.icon(icons.Stop))
	t.RuntimeSelectButton.SetIcon(t.icon(icons.Select))
	t.RuntimeMarkerButton.SetIcon(t.icon(icons.Marker))
	t.RunButton.SetIcon(t.icon(icons.Run))
}
