package typescript

import (
	"log/slog"

	"github.com/specialistvlad/bundlegrid/internal/model"
	"github.com/specialistvlad/bundlegrid/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// Name is the plugin name written into descriptors.
const Name = "typescript"

// Module implements the registry.Module interface for this package.
type Module struct{}

// New builds the transpilation plugin. The options are the merged compiler
// options and are passed through as given, including an empty include list.
func New(opts map[string]cty.Value) (model.Plugin, error) {
	slog.Debug("Configured typescript plugin.", "options", len(opts))
	return model.Plugin{Name: Name, Options: model.CompilerOptions(opts).Value()}, nil
}

// Target returns the compiler target configured on a typescript plugin.
func Target(p model.Plugin) (string, bool) {
	v := p.Option("target")
	if v.IsNull() || v.Type() != cty.String {
		return "", false
	}
	return v.AsString(), true
}

// Register registers the factory with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPlugin(Name, New)
}
