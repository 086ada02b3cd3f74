package registry

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/specialistvlad/bundlegrid/internal/model"
	"github.com/zclconf/go-cty/cty"
)

// Module is the interface that all plugin modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Factory constructs a plugin invocation from options. Factories apply their
// own defaults. Only factories whose options never come from a caller
// override may reject them; the rest pass every value through.
type Factory func(opts map[string]cty.Value) (model.Plugin, error)

// Registry holds the plugin factories for a single application instance.
type Registry struct {
	factories map[string]Factory
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// RegisterPlugin registers the factory for the named plugin.
func (r *Registry) RegisterPlugin(name string, factory Factory) {
	if _, exists := r.factories[name]; exists {
		panic(fmt.Sprintf("plugin with name '%s' already registered", name))
	}
	slog.Debug("Registering plugin factory.", "name", name)
	r.factories[name] = factory
}

// New constructs the named plugin with the given options.
func (r *Registry) New(name string, opts map[string]cty.Value) (model.Plugin, error) {
	factory, ok := r.factories[name]
	if !ok {
		return model.Plugin{}, fmt.Errorf("plugin '%s' is not registered", name)
	}
	plugin, err := factory(opts)
	if err != nil {
		return model.Plugin{}, fmt.Errorf("plugin '%s': %w", name, err)
	}
	return plugin, nil
}

// MustNew is like New but panics on error. It is meant for plugins whose
// presence was already checked with Validate.
func (r *Registry) MustNew(name string, opts map[string]cty.Value) model.Plugin {
	plugin, err := r.New(name, opts)
	if err != nil {
		panic(err)
	}
	return plugin
}

// Names returns the registered plugin names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
