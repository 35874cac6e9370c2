//go:build !nogui

package gui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
)

const splashIconSize = 80

// showSplash displays the splash for d, then closes it and calls next.
func (a *App) showSplash(d time.Duration, next func()) fyne.Window {
	var w fyne.Window
	if drv, ok := a.fyneApp.Driver().(desktop.Driver); ok {
		w = drv.CreateSplashWindow()
	} else {
		w = a.fyneApp.NewWindow("Calculator")
	}

	fg := a.fyneApp.Settings().Theme().Color(theme.ColorNameForeground, a.fyneApp.Settings().ThemeVariant())

	icon := canvas.NewText("🧮", fg)
	icon.TextSize = splashIconSize
	icon.Alignment = fyne.TextAlignCenter

	title := canvas.NewText("Calculator", fg)
	title.TextSize = 36
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	subtitle := canvas.NewText("Simple & Powerful", fg)
	subtitle.TextSize = 16
	subtitle.Alignment = fyne.TextAlignCenter

	w.SetContent(container.NewCenter(container.NewVBox(icon, title, subtitle)))
	w.Resize(fyne.NewSize(a.cfg.Window.Width, a.cfg.Window.Height))

	// Pulse the icon between 0.8x and 1.2x
	pulse := fyne.NewAnimation(time.Second, func(p float32) {
		icon.TextSize = splashIconSize * (0.8 + 0.4*p)
		icon.Refresh()
	})
	pulse.AutoReverse = true
	pulse.RepeatCount = fyne.AnimationRepeatForever
	pulse.Curve = fyne.AnimationEaseInOut

	w.Show()
	pulse.Start()

	time.AfterFunc(d, func() {
		pulse.Stop()
		w.Close()
		next()
	})
	return w
}
