package app

import (
	"errors"

	"github.com/vk/upsconf/internal/options"
)

// DefaultConfDir is the system configuration directory used unless --local
// overrides it.
const DefaultConfDir = "/etc/upsconf"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfDir string // directory holding the persisted HCL documents

	LogFormat string
	LogLevel  string

	Options *options.Result
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfDir == "" {
		return nil, errors.New("ConfDir is a required configuration field and cannot be empty")
	}
	if cfg.Options == nil {
		return nil, errors.New("Options is a required configuration field and cannot be nil")
	}
	if !cfg.Options.Valid {
		return nil, errors.New("Options must have passed validation")
	}

	return &cfg, nil
}
