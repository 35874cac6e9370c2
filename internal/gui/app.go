//go:build !nogui

package gui

import (
	"context"
	"fmt"

	"calcd/internal/config"
	"calcd/internal/engine"
	"calcd/internal/log"
	"calcd/internal/theme"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// App is the GUI application
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	cfg        *config.Config
	engine     *engine.Engine
	themeCtl   *theme.Controller
	themeStore theme.Store

	display     *canvas.Text
	buttons     map[string]*widget.Button
	themeToggle *widget.Check
	syncing     bool // set while applyTheme moves the toggle
}

// NewApp creates the GUI application with a real fyne driver.
func NewApp(cfg *config.Config, eng *engine.Engine) (*App, error) {
	// The ID scopes fyne's preferences storage
	return newApp(app.NewWithID(cfg.App.ID), cfg, eng)
}

func newApp(fyneApp fyne.App, cfg *config.Config, eng *engine.Engine) (*App, error) {
	store, err := theme.NewStore(cfg.Theme, fyneApp.Preferences())
	if err != nil {
		return nil, fmt.Errorf("theme store: %w", err)
	}

	ctl := theme.NewController(store)
	if err := ctl.Load(); err != nil {
		// fall back to the host setting
		log.Warnf("Using system theme: %v", err)
	}

	a := &App{
		fyneApp:    fyneApp,
		cfg:        cfg,
		engine:     eng,
		themeCtl:   ctl,
		themeStore: store,
		buttons:    make(map[string]*widget.Button),
	}

	a.mainWindow = a.fyneApp.NewWindow("Calculator")
	a.mainWindow.SetMaster()
	a.mainWindow.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	a.mainWindow.SetContent(a.buildCalculator())

	a.applyTheme()
	ctl.OnChange(func(bool) { a.applyTheme() })

	return a, nil
}

// GetMainWindow returns the main window instance
func (a *App) GetMainWindow() fyne.Window {
	return a.mainWindow
}

// Run shows the splash, then the calculator, and blocks until the app quits.
func (a *App) Run() {
	ctx, cancel := context.WithCancel(context.Background())
	a.fyneApp.Lifecycle().SetOnStopped(cancel)
	a.startThemeWatcher(ctx)

	if a.cfg.Splash.Enabled && a.cfg.Splash.Duration > 0 {
		a.showSplash(a.cfg.Splash.Duration, a.mainWindow.Show)
	} else {
		a.mainWindow.Show()
	}

	log.Info("Calculator window ready")
	a.fyneApp.Run()
}

// ShowError displays err in a dialog over the calculator.
func (a *App) ShowError(title string, err error) {
	log.LogWithError(err).Error(title)
	dialog.ShowError(fmt.Errorf("%s: %w", title, err), a.mainWindow)
}

// ShowInfo displays an informational dialog.
func (a *App) ShowInfo(message string) {
	dialog.ShowInformation("Calculator", message, a.mainWindow)
}

// startThemeWatcher follows external edits of the theme file.
func (a *App) startThemeWatcher(ctx context.Context) {
	fileStore, ok := a.themeStore.(*theme.FileStore)
	if !ok || !a.cfg.Theme.Watch {
		return
	}

	w, err := theme.NewWatcher(fileStore, a.themeCtl)
	if err != nil {
		log.LogWithError(err).Warn("theme file will not be watched")
		return
	}

	go func() {
		defer w.Close()
		w.Run(ctx)
	}()
}

// applyTheme resolves the preference against the host setting and installs it.
func (a *App) applyTheme() {
	systemDark := a.fyneApp.Settings().ThemeVariant() == themeVariantDark
	dark := a.themeCtl.Resolve(systemDark)

	a.fyneApp.Settings().SetTheme(newCalcTheme(dark))
	if a.themeToggle != nil && a.themeToggle.Checked != dark {
		a.syncing = true
		a.themeToggle.SetChecked(dark)
		a.syncing = false
	}
	if a.display != nil {
		a.display.Color = a.fyneApp.Settings().Theme().Color(themeColorForeground, variantFor(dark))
		a.display.Refresh()
	}
}

// IsGUIAvailable returns whether the GUI is available in this build
func IsGUIAvailable() bool {
	return true
}
