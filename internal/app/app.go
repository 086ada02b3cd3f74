package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/bundlegrid/internal/builder"
	"github.com/specialistvlad/bundlegrid/internal/config"
	"github.com/specialistvlad/bundlegrid/internal/ctxlog"
	"github.com/specialistvlad/bundlegrid/internal/plan"
	"github.com/specialistvlad/bundlegrid/internal/registry"
)

// Streams are the process streams an App reads from and writes to. The plan
// goes to Out; logs and diagnostics go to Err.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	streams Streams
	logger  *slog.Logger
	config  *Config
	project *config.Project
	planner *plan.Planner
}

// NewApp is the constructor for the main application. It loads the project,
// registers the plugin modules and wires the builder and planner. With no
// modules given, the core modules are used.
func NewApp(streams Streams, appConfig *Config, loader config.Loader, modules ...registry.Module) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, streams.Err)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	var projectPaths []string
	if appConfig.ProjectPath != "" {
		projectPaths = append(projectPaths, appConfig.ProjectPath)
	}
	project, err := loader.Load(ctx, projectPaths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	if appConfig.Year > 0 {
		project.License.Year = appConfig.Year
	}
	logger.Debug("Project loaded.", "name", project.Name, "file_name", project.FileName, "year", project.Year())

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All plugin modules registered.", "count", len(modules), "plugins", reg.Names())

	b, err := builder.New(ctx, project, reg)
	if err != nil {
		return nil, err
	}
	planner, err := plan.New(ctx, b, reg)
	if err != nil {
		return nil, err
	}

	return &App{
		streams: streams,
		logger:  logger,
		config:  appConfig,
		project: project,
		planner: planner,
	}, nil
}

// Project returns the loaded project. This is primarily for testing.
func (a *App) Project() *config.Project {
	return a.project
}
