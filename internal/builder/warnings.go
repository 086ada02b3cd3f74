package builder

import (
	"log/slog"

	"github.com/specialistvlad/bundlegrid/internal/model"
)

// NewWarningFilter returns a filter that drops warnings whose code is in
// suppressed and logs every other warning at warn level. The filter reports
// true for logged warnings. Logging goes through the handler's level, so
// -log-level=error hides surfaced warnings even though they still count as
// surfaced.
func NewWarningFilter(logger *slog.Logger, suppressed []string) model.WarningFilter {
	codes := make(map[string]struct{}, len(suppressed))
	for _, c := range suppressed {
		codes[c] = struct{}{}
	}
	return func(w model.Warning) bool {
		if _, ok := codes[w.Code]; ok {
			return false
		}
		logger.Warn("WARNING: "+w.String(), "code", w.Code)
		return true
	}
}
