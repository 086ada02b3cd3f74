package builder

import (
	"bytes"
	"context"
	"testing"

	"github.com/specialistvlad/bundlegrid/internal/config"
	"github.com/specialistvlad/bundlegrid/internal/ctxlog"
	"github.com/specialistvlad/bundlegrid/internal/model"
	"github.com/specialistvlad/bundlegrid/internal/registry"
	"github.com/specialistvlad/bundlegrid/modules/commonjs"
	"github.com/specialistvlad/bundlegrid/modules/resolve"
	"github.com/specialistvlad/bundlegrid/modules/terser"
	"github.com/specialistvlad/bundlegrid/modules/typescript"
	"github.com/specialistvlad/bundlegrid/modules/visualizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func newRegistry() *registry.Registry {
	r := registry.New()
	for _, m := range []registry.Module{
		&typescript.Module{},
		&resolve.Module{},
		&commonjs.Module{},
		&terser.Module{},
		&visualizer.Module{},
	} {
		m.Register(r)
	}
	return r
}

func setup(t *testing.T) (*Builder, context.Context, *bytes.Buffer) {
	t.Helper()
	logs := &bytes.Buffer{}
	ctx := ctxlog.WithWriter(context.Background(), logs)
	b, err := New(ctx, config.Defaults(), newRegistry())
	require.NoError(t, err)
	return b, ctx, logs
}

func TestNew_MissingPlugins(t *testing.T) {
	ctx := ctxlog.WithWriter(context.Background(), &bytes.Buffer{})
	r := registry.New()
	(&typescript.Module{}).Register(r)

	_, err := New(ctx, config.Defaults(), r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "descriptor builder")
	assert.Contains(t, err.Error(), "plugin 'node-resolve' is required")
	assert.Contains(t, err.Error(), "plugin 'visualizer' is required")
}

func TestBuild_Defaults(t *testing.T) {
	b, ctx, _ := setup(t)
	project := b.Project()

	d := b.Build(ctx, model.Partial{})

	assert.Equal(t, "src/index.ts", d.Input)
	assert.Equal(t, []string{"typescript", "node-resolve", "commonjs"}, d.PluginNames())
	assert.Equal(t, []string{"@tensorflow/tfjs-core", "@tensorflow/tfjs-converter"}, d.External)
	assert.Equal(t, []string{"CIRCULAR_DEPENDENCY", "CIRCULAR", "THIS_IS_UNDEFINED"}, d.SuppressedWarnings)
	require.NotNil(t, d.OnWarn)

	assert.Equal(t, project.Banner(), d.Output.Banner)
	require.NotNil(t, d.Output.Sourcemap)
	assert.True(t, *d.Output.Sourcemap)
	assert.Equal(t, map[string]string{
		"@tensorflow/tfjs-core":      "tf",
		"@tensorflow/tfjs-converter": "tf",
	}, d.Output.Globals)

	ts, ok := d.Plugin(typescript.Name)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"include": []any{"src/**/*.ts"}, "module": "ES2015"}, native(t, ts))

	cjs, ok := d.Plugin(commonjs.Name)
	require.True(t, ok)
	assert.Equal(t, map[string]any{
		"ignore":       []any{"crypto", "node-fetch", "util"},
		"include":      "node_modules/**",
		"namedExports": map[string]any{"./node_modules/seedrandom/index.js": []any{"alea"}},
	}, native(t, cjs))

	res, ok := d.Plugin(resolve.Name)
	require.True(t, ok)
	assert.False(t, res.HasOptions())
}

func native(t *testing.T, p model.Plugin) any {
	t.Helper()
	v, err := model.ToNative(p.Options)
	require.NoError(t, err)
	return v
}

func TestBuild_Overrides(t *testing.T) {
	b, ctx, _ := setup(t)
	minify, err := terser.New(map[string]cty.Value{"preamble": cty.StringVal("/* x */")})
	require.NoError(t, err)

	d := b.Build(ctx, model.Partial{
		Plugins: []model.Plugin{minify},
		Output: model.Output{
			Format: model.FormatUMD,
			Name:   "cocoSsd",
			File:   "dist/coco-ssd.min.js",
			Freeze: model.Bool(false),
		},
		External:        []string{"long"},
		CompilerOptions: model.CompilerOptions{"target": cty.StringVal("es5"), "module": cty.StringVal("ESNext")},
	})

	assert.Equal(t, []string{"typescript", "node-resolve", "commonjs", "terser"}, d.PluginNames())
	assert.Equal(t, []string{"@tensorflow/tfjs-core", "@tensorflow/tfjs-converter", "long"}, d.External)
	assert.Equal(t, model.FormatUMD, d.Output.Format)
	assert.Equal(t, "dist/coco-ssd.min.js", d.Output.File)
	require.NotNil(t, d.Output.Freeze)
	assert.False(t, *d.Output.Freeze)
	assert.NotEmpty(t, d.Output.Banner, "template keys survive partial overrides")

	ts, _ := d.Plugin(typescript.Name)
	assert.Equal(t, "es5", ts.Option("target").AsString())
	assert.Equal(t, "ESNext", ts.Option("module").AsString())
	assert.Equal(t, []string{"src/**/*.ts"}, model.Strings(ts.Option("include")))
}

func TestBuild_CompilerOverridesAreNotValidated(t *testing.T) {
	b, ctx, _ := setup(t)

	overrides := []model.CompilerOptions{
		{"include": cty.ListValEmpty(cty.String)},
		{"include": cty.StringVal("")},
		{"include": cty.NullVal(cty.List(cty.String))},
		{"module": cty.NumberIntVal(6), "strict": cty.True},
	}
	for _, o := range overrides {
		var d model.Descriptor
		require.NotPanics(t, func() {
			d = b.Build(ctx, model.Partial{CompilerOptions: o})
		})
		ts, ok := d.Plugin(typescript.Name)
		require.True(t, ok)
		for k, v := range o {
			assert.True(t, ts.Option(k).RawEquals(v), "override %q must reach the plugin unchanged", k)
		}
	}

	d := b.Build(ctx, model.Partial{CompilerOptions: model.CompilerOptions{"include": cty.ListValEmpty(cty.String)}})
	ts, _ := d.Plugin(typescript.Name)
	assert.Equal(t, 0, ts.Option("include").LengthInt())
	assert.Equal(t, "ES2015", ts.Option("module").AsString())
}

func TestBuild_PeersCannotBeDropped(t *testing.T) {
	b, ctx, _ := setup(t)

	for _, external := range [][]string{nil, {}, {"@tensorflow/tfjs-core"}, {"a", "b"}} {
		d := b.Build(ctx, model.Partial{External: external})
		require.GreaterOrEqual(t, len(d.External), 2)
		assert.Equal(t, []string{"@tensorflow/tfjs-core", "@tensorflow/tfjs-converter"}, d.External[:2])
		assert.NotContains(t, d.External, "", "no empty slot between peers and caller externals")
	}
}

func TestBuild_Visualize(t *testing.T) {
	b, ctx, logs := setup(t)

	d := b.Build(ctx, model.Partial{
		Output:    model.Output{File: "dist/coco-ssd.min.js"},
		Visualize: true,
	})

	assert.Equal(t, []string{"typescript", "node-resolve", "commonjs", "visualizer"}, d.PluginNames())
	p, ok := d.Plugin(visualizer.Name)
	require.True(t, ok)
	assert.Equal(t, "dist/coco-ssd.min.js.html", visualizer.Filename(p))
	assert.True(t, p.Option("sourcemap").True())
	assert.Contains(t, logs.String(), "Will output a bundle visualization in dist/coco-ssd.min.js.html")

	t.Run("missing output file propagates", func(t *testing.T) {
		d := b.Build(ctx, model.Partial{Visualize: true})
		p, _ := d.Plugin(visualizer.Name)
		assert.Equal(t, ".html", visualizer.Filename(p))
	})
}

func TestBuild_DoesNotMutateInputs(t *testing.T) {
	b, ctx, _ := setup(t)
	minify, err := terser.New(map[string]cty.Value{"preamble": cty.StringVal("/* x */")})
	require.NoError(t, err)

	partial := model.Partial{
		Plugins:         []model.Plugin{minify},
		Output:          model.Output{File: "dist/a.js", Globals: map[string]string{"x": "X"}},
		External:        []string{"x"},
		CompilerOptions: model.CompilerOptions{"target": cty.StringVal("es5")},
		Visualize:       true,
	}

	first := b.Build(ctx, partial)
	first.Plugins[3] = model.Plugin{Name: "replaced"}
	first.Output.Globals["x"] = "changed"
	first.External[2] = "changed"

	assert.Len(t, partial.Plugins, 1, "visualizer must not be appended to the caller's slice")
	assert.Equal(t, "terser", partial.Plugins[0].Name)
	preamble, ok := terser.Preamble(partial.Plugins[0])
	require.True(t, ok)
	assert.Equal(t, "/* x */", preamble)
	assert.Equal(t, "X", partial.Output.Globals["x"])
	assert.Equal(t, []string{"x"}, partial.External)
	assert.Len(t, partial.CompilerOptions, 1)

	second := b.Build(ctx, partial)
	assert.Equal(t, []string{"typescript", "node-resolve", "commonjs", "terser", "visualizer"}, second.PluginNames())
	assert.Equal(t, "X", second.Output.Globals["x"])

	third := b.Build(ctx, model.Partial{})
	assert.Equal(t, "tf", third.Output.Globals["@tensorflow/tfjs-core"], "defaults must not leak between builds")
}

func TestWarningFilter(t *testing.T) {
	b, ctx, logs := setup(t)
	d := b.Build(ctx, model.Partial{})

	for _, code := range []string{"CIRCULAR_DEPENDENCY", "CIRCULAR", "THIS_IS_UNDEFINED"} {
		assert.False(t, d.OnWarn(model.Warning{Code: code, Message: "expected " + code}))
		assert.NotContains(t, logs.String(), "expected "+code)
	}

	assert.True(t, d.OnWarn(model.Warning{Code: "UNRESOLVED_IMPORT", Message: "'long' is imported but could not be resolved"}))
	assert.Contains(t, logs.String(), "WARNING: 'long' is imported but could not be resolved")
	assert.Contains(t, logs.String(), "level=WARN")
}
