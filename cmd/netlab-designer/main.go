package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"netlab-designer/internal/config"
	"netlab-designer/internal/graph"
	"netlab-designer/internal/gui"
	"netlab-designer/internal/gui/components"
	"netlab-designer/internal/gui/dialogs"
	"netlab-designer/internal/icons"
	"netlab-designer/internal/logger"
	"netlab-designer/internal/session"
	"netlab-designer/internal/shutdown"
	"netlab-designer/internal/task"
)

const (
	appName      = "NetLab Designer"
	appID        = "io.netlab.designer"
	windowWidth  = 1100
	windowHeight = 720
	dialTimeout  = 15 * time.Second
)

func main() {
	cfg, err := config.LoadDefault()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	log := logger.NewConsole(logger.ParseLevel(cfg.LogLevel))
	log.Info("main", "starting", map[string]interface{}{"daemon": cfg.DaemonURL})

	dialCtx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()
	client, err := session.Dial(dialCtx, cfg.DaemonURL, log)
	if err != nil {
		log.Error("main", err, map[string]interface{}{"daemon": cfg.DaemonURL})
		os.Exit(1)
	}

	fyneApp := app.NewWithID(appID)
	window := fyneApp.NewWindow(appName)
	window.Resize(fyne.NewSize(windowWidth, windowHeight))

	provider := icons.NewProvider(log)
	canvasState := graph.NewState()
	progress := components.NewProgressPopup(window)
	runner := task.NewRunner(fyne.Do, progress, log)
	menubar := gui.NewMenubar()

	customNodes := make([]graph.NodeDraw, 0, len(cfg.CustomNodes))
	for _, node := range cfg.CustomNodes {
		customNodes = append(customNodes, graph.NodeDraw{
			Name:      node.Name,
			Label:     node.Label,
			ImageFile: node.Icon,
		})
	}

	toolbar := components.NewToolbar(components.ToolbarDeps{
		Log:     log,
		Client:  client,
		Runner:  runner,
		Canvas:  canvasState,
		Icons:   provider,
		Errors:  gui.NewErrorDialogs(window),
		Menubar: menubar,
		Picker:  components.NewPicker(window.Canvas()),
		NewMarkerTool: func() components.MarkerTool {
			return dialogs.NewMarkerTool(window, dialogs.MarkerOptions{
				Size:  canvasState.Marker().Size,
				Color: canvasState.Marker().Color,
			}, func(opts dialogs.MarkerOptions) {
				canvasState.SetMarker(graph.Marker{Size: opts.Size, Color: opts.Color})
			})
		},
		ShowRunTool: func() {
			dialogs.ShowRunTool(window, client, runner, log)
		},
		IconSize:    cfg.ToolbarIconSize,
		PickerSize:  cfg.PickerIconSize,
		CustomNodes: customNodes,
	})
	menubar.SetHandlers(toolbar.ClickStart, toolbar.ClickStop, toolbar.ClickRun)

	view := gui.NewView(toolbar)
	window.SetMainMenu(menubar.Main())
	window.SetContent(view.Content())

	manager := shutdown.NewManager(log)
	manager.Register("session client", func() {
		if err := client.Close(); err != nil {
			log.Warning("main", "close client", map[string]interface{}{"reason": err.Error()})
		}
	})
	manager.Listen(func() { fyne.Do(fyneApp.Quit) })
	window.SetCloseIntercept(func() {
		manager.Shutdown()
		window.Close()
	})

	window.ShowAndRun()
}
