package app

import (
	"io"
	"log/slog"
)

// App encapsulates the application's dependencies, configuration and
// lifecycle. Query results (the is-configured answer) go to outW; logs go
// to logW so they never mix with machine-readable output.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
}

// New is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger.
func New(outW, logW io.Writer, config *Config) *App {
	logger := newLogger(config.LogLevel, config.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: config,
	}
}
