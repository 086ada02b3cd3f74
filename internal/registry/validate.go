package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/bundlegrid/internal/ctxlog"
)

// Validate checks that every required plugin has a registered factory. All
// missing plugins are reported together.
func (r *Registry) Validate(ctx context.Context, required ...string) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for _, name := range required {
		if _, ok := r.factories[name]; !ok {
			errs = append(errs, fmt.Sprintf("plugin '%s' is required but no module registered it", name))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	logger.Debug("Registry validation passed.", "required", required, "registered", r.Names())
	return nil
}
