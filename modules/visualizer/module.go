package visualizer

import (
	"github.com/specialistvlad/bundlegrid/internal/model"
	"github.com/specialistvlad/bundlegrid/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// Name is the plugin name written into descriptors.
const Name = "visualizer"

// ReportExt is appended to an output file name to form its report file name.
const ReportExt = ".html"

// Module implements the registry.Module interface for this package.
type Module struct{}

// ReportFile returns the visualization report path for an output file. The
// output file is not validated; an empty name yields ".html".
func ReportFile(outputFile string) string {
	return outputFile + ReportExt
}

// New builds the bundle visualization plugin. Source maps are used for size
// attribution unless sourcemap is given; filename defaults to "".
func New(opts map[string]cty.Value) (model.Plugin, error) {
	out := map[string]cty.Value{
		"sourcemap": cty.True,
		"filename":  cty.StringVal(""),
	}
	for k, v := range opts {
		out[k] = v
	}
	return model.Plugin{Name: Name, Options: model.ObjectVal(out)}, nil
}

// Filename returns the report file configured on a visualizer plugin.
func Filename(p model.Plugin) string {
	v := p.Option("filename")
	if v.IsNull() || v.Type() != cty.String {
		return ""
	}
	return v.AsString()
}

// Register registers the factory with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPlugin(Name, New)
}
