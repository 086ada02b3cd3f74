package commonjs

import (
	"github.com/specialistvlad/bundlegrid/internal/model"
	"github.com/specialistvlad/bundlegrid/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// Name is the plugin name written into descriptors.
const Name = "commonjs"

// DefaultInclude limits the require() polyfill to installed dependencies.
const DefaultInclude = "node_modules/**"

// Module implements the registry.Module interface for this package.
type Module struct{}

// New builds the CommonJS interop plugin, which polyfills require() calls made
// by dependencies. Recognised options are ignore, include and namedExports.
// A missing or empty include falls back to DefaultInclude and an empty
// namedExports is dropped; every other value is passed through.
func New(opts map[string]cty.Value) (model.Plugin, error) {
	out := make(map[string]cty.Value, len(opts)+1)
	for k, v := range opts {
		out[k] = v
	}

	if v, ok := out["include"]; !ok || isBlank(v) {
		out["include"] = cty.StringVal(DefaultInclude)
	}

	if v, ok := out["namedExports"]; ok && isBlank(v) {
		delete(out, "namedExports")
	}

	return model.Plugin{Name: Name, Options: model.ObjectVal(out)}, nil
}

// isBlank reports whether v is unset, null, an empty string or an empty
// collection.
func isBlank(v cty.Value) bool {
	if v.Type() == cty.NilType || v.IsNull() || !v.IsKnown() {
		return true
	}
	ty := v.Type()
	switch {
	case ty == cty.String:
		return v.AsString() == ""
	case ty.IsCollectionType() || ty.IsObjectType() || ty.IsTupleType():
		return v.LengthInt() == 0
	default:
		return false
	}
}

// Register registers the factory with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPlugin(Name, New)
}
