package gui

import (
	"calcd/internal/config"
	"calcd/internal/engine"
)

// Interface defines the contract for GUI operations
type Interface interface {
	Run()
	ShowError(title string, err error)
	ShowInfo(message string)
}

// Factory creates GUI instances
type Factory struct {
	config *config.Config
	engine *engine.Engine
}

// NewFactory creates a new GUI factory
func NewFactory(cfg *config.Config, eng *engine.Engine) *Factory {
	return &Factory{
		config: cfg,
		engine: eng,
	}
}

// Create returns a new GUI instance
func (f *Factory) Create() (Interface, error) {
	app, err := NewApp(f.config, f.engine)
	if err != nil {
		return nil, err
	}
	return app, nil
}
