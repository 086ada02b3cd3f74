// Package plan decides which bundle targets a run produces and in what order.
package plan

import (
	"context"
	"fmt"

	"github.com/specialistvlad/bundlegrid/internal/builder"
	"github.com/specialistvlad/bundlegrid/internal/ctxlog"
	"github.com/specialistvlad/bundlegrid/internal/model"
	"github.com/specialistvlad/bundlegrid/internal/registry"
	"github.com/specialistvlad/bundlegrid/modules/terser"
	"github.com/zclconf/go-cty/cty"
)

// Output file suffixes appended to the project's file name.
const (
	SuffixNode     = ".node.js"
	SuffixMinified = ".min.js"
	SuffixUMD      = ".js"
)

// FlatSuffix returns the suffix of the minified flat build for a compiler
// target, e.g. ".es2017.esm.min.js".
func FlatSuffix(compilerTarget string) string {
	return "." + compilerTarget + ".esm.min.js"
}

// Planner assembles the ordered list of descriptors for one project.
type Planner struct {
	builder  *builder.Builder
	registry *registry.Registry
}

// New creates a Planner. The terser plugin is required in addition to the
// plugins the builder itself needs.
func New(ctx context.Context, b *builder.Builder, reg *registry.Registry) (*Planner, error) {
	if err := reg.Validate(ctx, terser.Name); err != nil {
		return nil, fmt.Errorf("bundle planner: %w", err)
	}
	return &Planner{builder: b, registry: reg}, nil
}

// Assemble returns the descriptors selected by opts: the Node target always,
// the minified UMD target for ci or npm, and the unminified UMD and minified
// flat targets for npm only.
func (p *Planner) Assemble(ctx context.Context, opts model.CommandOptions) []model.Descriptor {
	logger := ctxlog.FromContext(ctx)
	project := p.builder.Project()

	banner := project.Banner()
	minify := p.registry.MustNew(terser.Name, map[string]cty.Value{
		"preamble": cty.StringVal(banner),
		"comments": cty.False,
	})

	target := func(format model.Format, suffix string, freeze *bool) model.Output {
		return model.Output{
			Format: format,
			Name:   project.Name,
			Extend: model.Bool(true),
			File:   project.OutputFile(suffix),
			Freeze: freeze,
		}
	}
	legacy := model.CompilerOptions{"target": cty.StringVal(project.LegacyTarget)}
	modern := model.CompilerOptions{"target": cty.StringVal(project.ModernTarget)}

	var bundles []model.Descriptor

	// Node
	bundles = append(bundles, p.builder.Build(ctx, model.Partial{
		Output:          target(model.FormatCJS, SuffixNode, model.Bool(false)),
		CompilerOptions: legacy,
	}))

	if opts.CI || opts.NPM {
		// UMD default minified
		bundles = append(bundles, p.builder.Build(ctx, model.Partial{
			Plugins:         []model.Plugin{minify},
			Output:          target(model.FormatUMD, SuffixMinified, model.Bool(false)),
			CompilerOptions: legacy,
			Visualize:       opts.Visualize,
		}))
	}

	if opts.NPM {
		// UMD default unminified
		bundles = append(bundles, p.builder.Build(ctx, model.Partial{
			Output:          target(model.FormatUMD, SuffixUMD, model.Bool(false)),
			CompilerOptions: legacy,
		}))

		// Flat minified, modern target. Emitted with the UMD wrapper despite
		// the esm file name.
		bundles = append(bundles, p.builder.Build(ctx, model.Partial{
			Plugins:         []model.Plugin{minify},
			Output:          target(model.FormatUMD, FlatSuffix(project.ModernTarget), nil),
			CompilerOptions: modern,
		}))
	}

	logger.Info("Bundle plan assembled.", "targets", len(bundles), "ci", opts.CI, "npm", opts.NPM, "visualize", opts.Visualize)
	return bundles
}
