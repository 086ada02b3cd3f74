package terser

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/bundlegrid/internal/model"
	"github.com/specialistvlad/bundlegrid/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// Name is the plugin name written into descriptors.
const Name = "terser"

// Module implements the registry.Module interface for this package.
type Module struct{}

// New builds the minification plugin. The preamble option is required: it is
// re-emitted at the top of the minified file, which is how the license banner
// survives minification. Comments are stripped unless comments is true.
func New(opts map[string]cty.Value) (model.Plugin, error) {
	preamble, ok := opts["preamble"]
	if !ok || preamble.IsNull() || preamble.Type() != cty.String || preamble.AsString() == "" {
		return model.Plugin{}, errors.New("option 'preamble' must be a non-empty string")
	}

	comments := cty.False
	if v, ok := opts["comments"]; ok {
		if v.IsNull() || v.Type() != cty.Bool {
			return model.Plugin{}, fmt.Errorf("option 'comments' must be a bool, got %s", friendlyName(v))
		}
		comments = v
	}

	return model.Plugin{
		Name: Name,
		Options: cty.ObjectVal(map[string]cty.Value{
			"output": cty.ObjectVal(map[string]cty.Value{
				"preamble": preamble,
				"comments": comments,
			}),
		}),
	}, nil
}

func friendlyName(v cty.Value) string {
	if v.Type() == cty.NilType {
		return "nothing"
	}
	if v.IsNull() {
		return "null"
	}
	return v.Type().FriendlyName()
}

// Preamble returns the preamble configured on a terser plugin.
func Preamble(p model.Plugin) (string, bool) {
	v := p.Option("output", "preamble")
	if v.IsNull() || v.Type() != cty.String {
		return "", false
	}
	return v.AsString(), true
}

// Register registers the factory with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPlugin(Name, New)
}
