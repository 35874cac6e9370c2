//go:build !nogui

package gui

import (
	"calcd/internal/keypad"
	"calcd/internal/log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// buildCalculator lays out the theme switch, the display and the keypad.
func (a *App) buildCalculator() fyne.CanvasObject {
	a.themeToggle = widget.NewCheck("Dark mode", func(checked bool) {
		if a.syncing {
			return
		}
		if err := a.themeCtl.SetDark(checked); err != nil {
			a.ShowError("Could not save theme", err)
		}
	})
	header := container.NewHBox(layout.NewSpacer(), a.themeToggle)

	a.display = canvas.NewText(a.engine.Display(), a.fyneApp.Settings().Theme().Color(themeColorForeground, a.fyneApp.Settings().ThemeVariant()))
	a.display.Alignment = fyne.TextAlignTrailing
	a.display.TextStyle = fyne.TextStyle{Bold: true}
	a.display.TextSize = displayTextSize(a.display.Text)

	a.engine.OnChange(func(display string) {
		a.display.Text = display
		a.display.TextSize = displayTextSize(display)
		a.display.Refresh()
	})

	displayPanel := container.NewPadded(
		container.NewVBox(layout.NewSpacer(), a.display, layout.NewSpacer()),
	)

	return container.NewBorder(
		container.NewVBox(header, displayPanel, widget.NewSeparator()),
		nil,
		nil,
		nil,
		a.buildKeypad(),
	)
}

// buildKeypad creates one grid row per keypad row.
func (a *App) buildKeypad() fyne.CanvasObject {
	rows := make([]fyne.CanvasObject, 0, len(keypad.Layout))
	for _, row := range keypad.Layout {
		cells := make([]fyne.CanvasObject, 0, len(row))
		for _, b := range row {
			cells = append(cells, a.newKeyButton(b))
		}
		rows = append(rows, container.NewGridWithColumns(len(cells), cells...))
	}
	return container.NewGridWithColumns(1, rows...)
}

func (a *App) newKeyButton(b keypad.Button) *widget.Button {
	btn := widget.NewButton(b.Label, func() {
		if err := keypad.Press(a.engine, b.Token); err != nil {
			log.LogWithError(err).Warn("button press ignored")
		}
	})
	btn.Importance = importanceFor(b.Kind)
	a.buttons[b.Label] = btn
	return btn
}
