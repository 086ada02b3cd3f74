package app

import (
	"errors"

	"github.com/specialistvlad/bundlegrid/internal/model"
	"github.com/specialistvlad/bundlegrid/internal/output"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	CI        bool
	NPM       bool
	Visualize bool

	ProjectPath  string // hcl file or directory; empty means built-in defaults
	OutputFormat output.Format
	OutPath      string // plan destination; empty means stdout
	Year         int    // pins the banner year; zero means the current year
	WarningsPath string // engine warnings to replay, "-" for stdin

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.Year < 0 {
		return nil, errors.New("year must not be negative")
	}
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = output.FormatJSON
	}
	if _, err := output.ParseFormat(string(cfg.OutputFormat)); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// CommandOptions returns the flags that select bundle targets.
func (c *Config) CommandOptions() model.CommandOptions {
	return model.CommandOptions{CI: c.CI, NPM: c.NPM, Visualize: c.Visualize}
}
