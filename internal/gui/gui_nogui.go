//go:build nogui
// +build nogui

package gui

import (
	"fmt"

	"calcd/internal/config"
	"calcd/internal/engine"
)

// App is a placeholder for builds with GUI disabled
type App struct{}

// NewApp reports that the GUI is unavailable in this build
func NewApp(cfg *config.Config, eng *engine.Engine) (*App, error) {
	return nil, fmt.Errorf("GUI not available in this build")
}

func (a *App) Run() {
	fmt.Println("GUI is disabled in this build. Please use the tui or eval commands.")
}

func (a *App) ShowError(title string, err error) {
	fmt.Printf("[%s] %v\n", title, err)
}

func (a *App) ShowInfo(message string) {
	fmt.Println(message)
}

// IsGUIAvailable returns whether the GUI is available in this build
func IsGUIAvailable() bool {
	return false
}
