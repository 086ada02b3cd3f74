package app

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/specialistvlad/bundlegrid/internal/ctxlog"
	"github.com/specialistvlad/bundlegrid/internal/model"
	"github.com/specialistvlad/bundlegrid/internal/output"
)

// Run assembles the bundle plan, replays warnings if requested and writes the
// plan in the configured format.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	bundles := a.planner.Assemble(ctx, a.config.CommandOptions())

	if a.config.WarningsPath != "" {
		summary, err := a.replayWarnings(ctx, bundles[0].OnWarn)
		if err != nil {
			return fmt.Errorf("warning replay failed: %w", err)
		}
		a.logger.Info("Warning replay finished.", "surfaced", summary.Surfaced, "suppressed", summary.Suppressed)
	}

	if err := a.writePlan(bundles); err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) writePlan(bundles []model.Descriptor) error {
	if a.config.OutPath == "" {
		return output.NewFormatter(a.config.OutputFormat, a.streams.Out).Print(bundles)
	}

	var buf bytes.Buffer
	if err := output.NewFormatter(a.config.OutputFormat, &buf).Print(bundles); err != nil {
		return err
	}
	if dir := filepath.Dir(a.config.OutPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create plan directory: %w", err)
		}
	}
	if err := os.WriteFile(a.config.OutPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write plan: %w", err)
	}
	a.logger.Info("Bundle plan written.", "path", a.config.OutPath, "format", a.config.OutputFormat, "targets", len(bundles))
	return nil
}
