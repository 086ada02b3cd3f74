package app

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/specialistvlad/bundlegrid/internal/ctxlog"
	"github.com/specialistvlad/bundlegrid/internal/model"
)

// ReplaySummary counts the outcome of a warning replay.
type ReplaySummary struct {
	Surfaced   int
	Suppressed int
}

// replayWarnings feeds engine warnings, one JSON object per line, through the
// descriptor's warning filter and counts what the filter decided.
func (a *App) replayWarnings(ctx context.Context, filter model.WarningFilter) (ReplaySummary, error) {
	logger := ctxlog.FromContext(ctx)

	var r io.Reader
	if a.config.WarningsPath == "-" {
		r = a.streams.In
	} else {
		f, err := os.Open(a.config.WarningsPath)
		if err != nil {
			return ReplaySummary{}, err
		}
		defer f.Close()
		r = f
	}
	logger.Debug("Replaying engine warnings.", "source", a.config.WarningsPath)

	var summary ReplaySummary
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var w model.Warning
		if err := json.Unmarshal([]byte(text), &w); err != nil {
			return summary, fmt.Errorf("line %d: %w", line, err)
		}
		if filter(w) {
			summary.Surfaced++
		} else {
			summary.Suppressed++
		}
	}
	if err := scanner.Err(); err != nil {
		return summary, err
	}
	return summary, nil
}
