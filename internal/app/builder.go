package app

import (
	"go.trai.ch/locksmith/internal/core/ports"
)

// Components groups the objects the command line needs after wiring.
type Components struct {
	App    *App
	Logger ports.Logger
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(app *App, logger ports.Logger) *Components {
	return &Components{
		App:    app,
		Logger: logger,
	}
}
