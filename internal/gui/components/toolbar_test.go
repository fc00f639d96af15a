package components

import (
	"context"
	"errors"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/require"

	"netlab-designer/internal/graph"
	"netlab-designer/internal/icons"
	"netlab-designer/internal/logger"
	"netlab-designer/internal/session"
	"netlab-designer/internal/task"
)

// scriptedClient returns canned daemon responses.
type scriptedClient struct {
	startResult session.StartResult
	startErr    error
	stopErr     error
	startCalls  int
	stopCalls   int
}

func (c *scriptedClient) StartSession(ctx context.Context) (session.StartResult, error) {
	c.startCalls++
	return c.startResult, c.startErr
}

func (c *scriptedClient) StopSession(ctx context.Context) error {
	c.stopCalls++
	return c.stopErr
}

func (c *scriptedClient) RunCommand(ctx context.Context, nodeID, command string) (string, error) {
	return "", nil
}

type errorRecorder struct {
	titles   []string
	messages []string
}

func (e *errorRecorder) ShowError(title, message string) {
	e.titles = append(e.titles, title)
	e.messages = append(e.messages, message)
}

type fakeMenubar struct {
	runtime bool
}

func (m *fakeMenubar) SetRuntime(runtime bool) { m.runtime = runtime }

type noProgress struct{}

func (noProgress) Show(string) {}
func (noProgress) Hide()       {}

type fakeMarker struct {
	shown     *int
	destroyed *int
}

func (m *fakeMarker) Show()    { *m.shown++ }
func (m *fakeMarker) Destroy() { *m.destroyed++ }

type toolbarFixture struct {
	toolbar *Toolbar
	client  *scriptedClient
	canvas  *graph.State
	errors  *errorRecorder
	menubar *fakeMenubar
	queue   chan func()

	markerShown     int
	markerDestroyed int
}

func newToolbarFixture(t *testing.T, client *scriptedClient) *toolbarFixture {
	t.Helper()

	test.NewApp()
	w := test.NewWindow(container.NewVBox())
	w.Resize(fyne.NewSize(600, 400))
	t.Cleanup(w.Close)

	f := &toolbarFixture{
		client:  client,
		canvas:  graph.NewState(),
		errors:  &errorRecorder{},
		menubar: &fakeMenubar{},
		queue:   make(chan func(), 8),
	}

	runner := task.NewRunner(func(fn func()) { f.queue <- fn }, noProgress{}, logger.Nop{})
	f.toolbar = NewToolbar(ToolbarDeps{
		Log:     logger.Nop{},
		Client:  client,
		Runner:  runner,
		Canvas:  f.canvas,
		Icons:   icons.NewProvider(logger.Nop{}),
		Errors:  f.errors,
		Menubar: f.menubar,
		Picker:  NewPicker(w.Canvas()),
		NewMarkerTool: func() MarkerTool {
			return &fakeMarker{shown: &f.markerShown, destroyed: &f.markerDestroyed}
		},
		IconSize:   32,
		PickerSize: 24,
	})
	w.SetContent(f.toolbar.Container())
	return f
}

// pump runs the next completion handler the runner dispatched.
func (f *toolbarFixture) pump(t *testing.T) {
	t.Helper()
	select {
	case fn := <-f.queue:
		fn()
	case <-time.After(2 * time.Second):
		t.Fatal("no completion dispatched")
	}
}

func (f *toolbarFixture) startSession(t *testing.T) {
	t.Helper()
	f.toolbar.ClickStart()
	f.pump(t)
	require.Equal(t, session.PhaseRunning, f.toolbar.Phase())
}

func TestStartSessionSuccess(t *testing.T) {
	f := newToolbarFixture(t, &scriptedClient{startResult: session.StartResult{Result: true}})

	test.Tap(f.toolbar.PlayButton)

	// Synchronous effects: design controls drop out before the daemon call
	// resolves, menubar flips to runtime.
	require.Equal(t, session.PhaseStarting, f.toolbar.Phase())
	require.False(t, f.toolbar.DesignBar().Enabled())
	require.True(t, f.menubar.runtime)
	require.Equal(t, graph.ModeSelect, f.canvas.Mode())

	f.pump(t)

	require.Equal(t, session.PhaseRunning, f.toolbar.Phase())
	require.True(t, f.toolbar.RuntimeBar().Enabled())
	require.True(t, f.toolbar.RuntimeBar().Container().Visible())
	require.False(t, f.toolbar.DesignBar().Container().Visible())

	// Exactly the runtime selection tool is active.
	require.Equal(t, 1, f.toolbar.RuntimeBar().SelectedCount())
	require.Same(t, f.toolbar.RuntimeSelectButton, f.toolbar.RuntimeBar().Selected())
	require.Empty(t, f.errors.messages)
}

func TestStartSessionFailure(t *testing.T) {
	f := newToolbarFixture(t, &scriptedClient{
		startResult: session.StartResult{Result: false, Exceptions: []string{"port in use"}},
	})

	test.Tap(f.toolbar.PlayButton)
	f.pump(t)

	require.Equal(t, session.PhaseDesign, f.toolbar.Phase())
	require.True(t, f.toolbar.DesignBar().Enabled())
	require.False(t, f.menubar.runtime)

	// Runtime controls stay down and hidden.
	require.False(t, f.toolbar.RuntimeBar().Enabled())
	require.False(t, f.toolbar.RuntimeBar().Container().Visible())

	require.Equal(t, []string{"Start Session Error"}, f.errors.titles)
	require.Equal(t, []string{"port in use"}, f.errors.messages)
}

func TestStartSessionTransportError(t *testing.T) {
	f := newToolbarFixture(t, &scriptedClient{startErr: errors.New("daemon unreachable")})

	f.toolbar.ClickStart()
	f.pump(t)

	require.Equal(t, session.PhaseDesign, f.toolbar.Phase())
	require.True(t, f.toolbar.DesignBar().Enabled())
	require.Equal(t, []string{"daemon unreachable"}, f.errors.messages)
}

func TestDoubleStartRejected(t *testing.T) {
	f := newToolbarFixture(t, &scriptedClient{startResult: session.StartResult{Result: true}})

	f.toolbar.ClickStart()
	// Rapid second request: wrong phase, no second daemon call.
	f.toolbar.ClickStart()

	f.pump(t)
	require.Equal(t, session.PhaseRunning, f.toolbar.Phase())
	require.Equal(t, 1, f.client.startCalls)
	require.Empty(t, f.queue, "only one completion may be in flight")
}

func TestStopSession(t *testing.T) {
	f := newToolbarFixture(t, &scriptedClient{startResult: session.StartResult{Result: true}})
	f.startSession(t)

	test.Tap(f.toolbar.StopButton)

	require.Equal(t, session.PhaseStopping, f.toolbar.Phase())
	require.False(t, f.toolbar.RuntimeBar().Enabled())
	require.False(t, f.menubar.runtime)

	f.pump(t)

	require.Equal(t, session.PhaseDesign, f.toolbar.Phase())
	require.True(t, f.toolbar.DesignBar().Enabled())
	require.True(t, f.toolbar.DesignBar().Container().Visible())
	require.False(t, f.toolbar.RuntimeBar().Container().Visible())
	require.Equal(t, 1, f.canvas.StoppedCount())
	require.Same(t, f.toolbar.SelectButton, f.toolbar.DesignBar().Selected())
}

func TestStopTransportErrorStillReturnsToDesign(t *testing.T) {
	f := newToolbarFixture(t, &scriptedClient{
		startResult: session.StartResult{Result: true},
		stopErr:     errors.New("connection reset"),
	})
	f.startSession(t)

	f.toolbar.ClickStop()
	f.pump(t)

	// Stop has no failure payload; a transport error is logged and the UI
	// still resets rather than wedging in stopping.
	require.Equal(t, session.PhaseDesign, f.toolbar.Phase())
	require.Equal(t, 1, f.canvas.StoppedCount())
	require.Empty(t, f.errors.messages)
}

func TestDoubleStopRejected(t *testing.T) {
	f := newToolbarFixture(t, &scriptedClient{startResult: session.StartResult{Result: true}})
	f.startSession(t)

	f.toolbar.ClickStop()
	f.toolbar.ClickStop()

	f.pump(t)
	require.Equal(t, session.PhaseDesign, f.toolbar.Phase())
	require.Equal(t, 1, f.client.stopCalls)
	require.Equal(t, 1, f.canvas.StoppedCount())
	require.Empty(t, f.queue)
}

func TestStopIgnoredWhileCommandInFlight(t *testing.T) {
	f := newToolbarFixture(t, &scriptedClient{startResult: session.StartResult{Result: true}})
	f.startSession(t)

	// A run-command occupies the shared runner.
	release := make(chan struct{})
	err := f.toolbar.deps.Runner.Run("Run Command", func(ctx context.Context) error {
		<-release
		return nil
	}, func(error) {})
	require.NoError(t, err)

	test.Tap(f.toolbar.StopButton)

	// The session is still up: no teardown call, no phase change, runtime
	// controls stay live.
	require.Equal(t, session.PhaseRunning, f.toolbar.Phase())
	require.Zero(t, f.client.stopCalls)
	require.Zero(t, f.canvas.StoppedCount())
	require.True(t, f.toolbar.RuntimeBar().Enabled())
	require.True(t, f.menubar.runtime)

	close(release)
	f.pump(t)

	// Once the runner is free the stop goes through.
	f.toolbar.ClickStop()
	f.pump(t)
	require.Equal(t, session.PhaseDesign, f.toolbar.Phase())
	require.Equal(t, 1, f.client.stopCalls)
	require.Equal(t, 1, f.canvas.StoppedCount())
}

func TestStartIgnoredWhileCommandInFlight(t *testing.T) {
	f := newToolbarFixture(t, &scriptedClient{startResult: session.StartResult{Result: true}})

	release := make(chan struct{})
	err := f.toolbar.deps.Runner.Run("Run Command", func(ctx context.Context) error {
		<-release
		return nil
	}, func(error) {})
	require.NoError(t, err)

	f.toolbar.ClickStart()

	require.Equal(t, session.PhaseDesign, f.toolbar.Phase())
	require.Zero(t, f.client.startCalls)
	require.True(t, f.toolbar.DesignBar().Enabled())
	require.False(t, f.menubar.runtime)

	close(release)
	f.pump(t)
}

func TestRestartAfterFailedStart(t *testing.T) {
	client := &scriptedClient{
		startResult: session.StartResult{Result: false, Exceptions: []string{"boom"}},
	}
	f := newToolbarFixture(t, client)

	f.toolbar.ClickStart()
	f.pump(t)
	require.Equal(t, session.PhaseDesign, f.toolbar.Phase())
	require.Equal(t, []string{"boom"}, f.errors.messages)

	// The daemon recovers; the next start succeeds.
	client.startResult = session.StartResult{Result: true}
	f.toolbar.ClickStart()
	f.pump(t)
	require.Equal(t, session.PhaseRunning, f.toolbar.Phase())
	require.Equal(t, 2, client.startCalls)
}

func TestModeButtonsDriveCanvas(t *testing.T) {
	f := newToolbarFixture(t, &scriptedClient{})

	f.toolbar.ClickLink()
	require.Equal(t, graph.ModeEdge, f.canvas.Mode())
	require.Same(t, f.toolbar.LinkButton, f.toolbar.DesignBar().Selected())

	f.toolbar.ClickSelection()
	require.Equal(t, graph.ModeSelect, f.canvas.Mode())
	require.Same(t, f.toolbar.SelectButton, f.toolbar.DesignBar().Selected())
}

func TestNodePickerSelectionUpdatesModeAndButton(t *testing.T) {
	f := newToolbarFixture(t, &scriptedClient{})

	f.toolbar.OpenNodePicker()
	require.Same(t, f.toolbar.NodeButton, f.toolbar.DesignBar().Selected())

	picker := f.toolbar.deps.Picker
	require.True(t, picker.IsOpen())
	column := picker.popup.Content.(*fyne.Container)
	require.Len(t, column.Objects, len(graph.Nodes()))

	// Pick the second entry (host).
	test.Tap(column.Objects[1].(*widget.Button))
	require.False(t, picker.IsOpen())
	require.Equal(t, graph.ModePlaceNode, f.canvas.Mode())
	require.Equal(t, "host", f.canvas.NodeDraw().Name)
}

func TestAnnotationMarkerOpensMarkerTool(t *testing.T) {
	f := newToolbarFixture(t, &scriptedClient{})

	f.toolbar.OpenAnnotationPicker()
	picker := f.toolbar.deps.Picker
	column := picker.popup.Content.(*fyne.Container)

	// First entry is the marker shape.
	test.Tap(column.Objects[0].(*widget.Button))
	require.Equal(t, graph.ModeAnnotation, f.canvas.Mode())
	require.Equal(t, graph.ShapeMarker, f.canvas.AnnotationType())
	require.Equal(t, 1, f.markerShown)
	require.Zero(t, f.markerDestroyed)

	// Re-activating the marker replaces the dialog.
	f.toolbar.ClickRuntimeMarker()
	require.Equal(t, 2, f.markerShown)
	require.Equal(t, 1, f.markerDestroyed)
}

func TestAnnotationShapeDoesNotOpenMarkerTool(t *testing.T) {
	f := newToolbarFixture(t, &scriptedClient{})

	f.toolbar.OpenAnnotationPicker()
	picker := f.toolbar.deps.Picker
	column := picker.popup.Content.(*fyne.Container)

	// Second entry is the oval shape.
	test.Tap(column.Objects[1].(*widget.Button))
	require.Equal(t, graph.ShapeOval, f.canvas.AnnotationType())
	require.Zero(t, f.markerShown)
}

func TestScaleKeepsSelections(t *testing.T) {
	f := newToolbarFixture(t, &scriptedClient{})

	f.toolbar.OpenNetworkPicker()
	picker := f.toolbar.deps.Picker
	column := picker.popup.Content.(*fyne.Container)
	test.Tap(column.Objects[1].(*widget.Button)) // switch

	f.toolbar.Scale(48)
	require.NotNil(t, f.toolbar.NetworkButton.Icon)
	require.Equal(t, graph.ModePlaceNode, f.canvas.Mode())
	require.Equal(t, "switch", f.canvas.NodeDraw().Name)
}
