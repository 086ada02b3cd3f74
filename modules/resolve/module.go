package resolve

import (
	"github.com/specialistvlad/bundlegrid/internal/model"
	"github.com/specialistvlad/bundlegrid/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// Name is the plugin name written into descriptors.
const Name = "node-resolve"

// Module implements the registry.Module interface for this package.
type Module struct{}

// New builds the module-resolution plugin. It takes no required options; any
// given are passed through untouched.
func New(opts map[string]cty.Value) (model.Plugin, error) {
	if len(opts) == 0 {
		return model.Plugin{Name: Name}, nil
	}
	return model.Plugin{Name: Name, Options: model.ObjectVal(opts)}, nil
}

// Register registers the factory with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPlugin(Name, New)
}
