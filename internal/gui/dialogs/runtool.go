package dialogs

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"netlab-designer/internal/logger"
	"netlab-designer/internal/session"
	"netlab-designer/internal/task"
)

// ShowRunTool opens the run-command dialog for a running session. The
// command executes through the shared task runner, so it cannot overlap a
// pending start or stop.
func ShowRunTool(window fyne.Window, client session.Client, runner *task.Runner, log logger.Logger) {
	node := widget.NewEntry()
	node.SetPlaceHolder("node id")
	command := widget.NewEntry()
	command.SetPlaceHolder("command")

	output := widget.NewMultiLineEntry()
	output.Wrapping = fyne.TextWrapWord
	output.SetMinRowsVisible(8)

	run := widget.NewButton("Run", func() {
		nodeID := node.Text
		cmd := command.Text
		if nodeID == "" || cmd == "" {
			output.SetText("node id and command are required")
			return
		}

		var result string
		err := runner.Run("Run", func(ctx context.Context) error {
			out, err := client.RunCommand(ctx, nodeID, cmd)
			if err != nil {
				return err
			}
			result = out
			return nil
		}, func(err error) {
			if err != nil {
				output.SetText("error: " + err.Error())
				return
			}
			output.SetText(result)
		})
		if err != nil {
			log.Warning("runtool", "command rejected", map[string]interface{}{"reason": err.Error()})
			output.SetText(err.Error())
		}
	})
	run.Importance = widget.HighImportance

	content := container.NewVBox(
		container.NewGridWithColumns(2, node, command),
		run,
		output,
	)
	dialog.ShowCustom("Run Tool", "Close", content, window)
}
