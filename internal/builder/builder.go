package builder

import (
	"context"
	"fmt"
	"slices"

	"github.com/specialistvlad/bundlegrid/internal/config"
	"github.com/specialistvlad/bundlegrid/internal/ctxlog"
	"github.com/specialistvlad/bundlegrid/internal/model"
	"github.com/specialistvlad/bundlegrid/internal/registry"
	"github.com/specialistvlad/bundlegrid/modules/commonjs"
	"github.com/specialistvlad/bundlegrid/modules/resolve"
	"github.com/specialistvlad/bundlegrid/modules/typescript"
	"github.com/specialistvlad/bundlegrid/modules/visualizer"
	"github.com/zclconf/go-cty/cty"
)

// RequiredPlugins are the plugins every Build may construct.
var RequiredPlugins = []string{typescript.Name, resolve.Name, commonjs.Name, visualizer.Name}

// Builder produces bundle descriptors for one project.
type Builder struct {
	project  *config.Project
	registry *registry.Registry
}

// New creates a Builder after checking that every plugin it constructs is
// registered.
func New(ctx context.Context, project *config.Project, reg *registry.Registry) (*Builder, error) {
	if err := reg.Validate(ctx, RequiredPlugins...); err != nil {
		return nil, fmt.Errorf("descriptor builder: %w", err)
	}
	return &Builder{project: project, registry: reg}, nil
}

// Project returns the project the builder was created for.
func (b *Builder) Project() *config.Project {
	return b.project
}

// Build merges p over the project defaults and returns a new descriptor. The
// result shares no mutable state with p or with earlier results.
func (b *Builder) Build(ctx context.Context, p model.Partial) model.Descriptor {
	logger := ctxlog.FromContext(ctx)

	extra := slices.Clone(p.Plugins)
	if p.Visualize {
		filename := visualizer.ReportFile(p.Output.File)
		extra = append(extra, b.registry.MustNew(visualizer.Name, map[string]cty.Value{
			"sourcemap": cty.True,
			"filename":  cty.StringVal(filename),
		}))
		logger.Info(fmt.Sprintf("Will output a bundle visualization in %s", filename), "file", filename)
	}

	tsOptions := b.defaultCompilerOptions().Merge(p.CompilerOptions)

	plugins := make([]model.Plugin, 0, 3+len(extra))
	plugins = append(plugins,
		b.registry.MustNew(typescript.Name, tsOptions),
		b.registry.MustNew(resolve.Name, nil),
		// Polyfill require() from dependencies.
		b.registry.MustNew(commonjs.Name, b.commonJSOptions()),
	)
	plugins = append(plugins, extra...)

	output := b.outputTemplate().Merge(p.Output)

	peers := b.project.PeerModules()
	external := make([]string, 0, len(peers)+len(p.External))
	external = append(external, peers...)
	external = append(external, p.External...)

	d := model.Descriptor{
		Input:              b.project.Input,
		Plugins:            plugins,
		Output:             output,
		External:           external,
		SuppressedWarnings: append([]string(nil), b.project.SuppressWarnings...),
		OnWarn:             NewWarningFilter(logger, b.project.SuppressWarnings),
	}
	logger.Debug("Built bundle descriptor.", "file", d.Output.File, "format", d.Output.Format, "plugins", d.PluginNames())
	return d
}

func (b *Builder) defaultCompilerOptions() model.CompilerOptions {
	return model.CompilerOptions{
		"include": model.StringList(b.project.TypeScript.Include),
		"module":  cty.StringVal(b.project.TypeScript.Module),
	}
}

func (b *Builder) commonJSOptions() map[string]cty.Value {
	cjs := b.project.CommonJS
	opts := map[string]cty.Value{
		"ignore":  model.StringList(cjs.Ignore),
		"include": cty.StringVal(cjs.Include),
	}
	if len(cjs.NamedExports) > 0 {
		opts["namedExports"] = model.StringListMap(cjs.NamedExports)
	}
	return opts
}

func (b *Builder) outputTemplate() model.Output {
	return model.Output{
		Banner:    b.project.Banner(),
		Sourcemap: model.Bool(true),
		Globals:   b.project.Globals(),
	}
}
