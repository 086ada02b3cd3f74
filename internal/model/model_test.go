package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

func TestCompilerOptionsMerge(t *testing.T) {
	defaults := CompilerOptions{
		"include": StringList([]string{"src/**/*.ts"}),
		"module":  cty.StringVal("ES2015"),
	}

	t.Run("overrides win and defaults survive", func(t *testing.T) {
		merged := defaults.Merge(CompilerOptions{"target": cty.StringVal("es5"), "module": cty.StringVal("ESNext")})
		assert.Equal(t, "es5", merged["target"].AsString())
		assert.Equal(t, "ESNext", merged["module"].AsString())
		assert.Equal(t, []string{"src/**/*.ts"}, Strings(merged["include"]))
	})

	t.Run("an empty list override replaces the default", func(t *testing.T) {
		merged := defaults.Merge(CompilerOptions{"include": cty.ListValEmpty(cty.String)})
		assert.Equal(t, 0, merged["include"].LengthInt())
		assert.Equal(t, []string{"src/**/*.ts"}, Strings(defaults["include"]))
	})

	t.Run("inputs are not mutated", func(t *testing.T) {
		overrides := CompilerOptions{"target": cty.StringVal("es2017")}
		merged := defaults.Merge(overrides)
		merged["target"] = cty.StringVal("changed")
		merged["extra"] = cty.True

		assert.Equal(t, "ES2015", defaults["module"].AsString())
		assert.NotContains(t, defaults, "target")
		assert.Len(t, overrides, 1)
		assert.Equal(t, "es2017", overrides["target"].AsString())
	})

	t.Run("nil overrides", func(t *testing.T) {
		merged := defaults.Merge(nil)
		assert.Len(t, merged, 2)
	})

	t.Run("NilVal overrides are ignored", func(t *testing.T) {
		merged := defaults.Merge(CompilerOptions{"module": cty.NilVal})
		assert.Equal(t, "ES2015", merged["module"].AsString())
	})

	t.Run("value is an object", func(t *testing.T) {
		v := defaults.Value()
		require.True(t, v.Type().IsObjectType())
		assert.Equal(t, "ES2015", v.GetAttr("module").AsString())
	})
}

func TestOutputMerge(t *testing.T) {
	template := Output{
		Banner:    "/* banner */",
		Sourcemap: Bool(true),
		Globals:   map[string]string{"a": "A", "b": "B"},
	}

	t.Run("set fields override key by key", func(t *testing.T) {
		merged := template.Merge(Output{
			Format: FormatCJS,
			Name:   "lib",
			File:   "dist/lib.js",
			Freeze: Bool(false),
		})
		assert.Equal(t, FormatCJS, merged.Format)
		assert.Equal(t, "lib", merged.Name)
		assert.Equal(t, "dist/lib.js", merged.File)
		assert.Equal(t, "/* banner */", merged.Banner)
		require.NotNil(t, merged.Freeze)
		assert.False(t, *merged.Freeze)
		require.NotNil(t, merged.Sourcemap)
		assert.True(t, *merged.Sourcemap)
		assert.Nil(t, merged.Extend)
		assert.Equal(t, map[string]string{"a": "A", "b": "B"}, merged.Globals)
	})

	t.Run("explicit false overrides true", func(t *testing.T) {
		merged := template.Merge(Output{Sourcemap: Bool(false)})
		require.NotNil(t, merged.Sourcemap)
		assert.False(t, *merged.Sourcemap)
	})

	t.Run("empty strings do not clear template fields", func(t *testing.T) {
		merged := template.Merge(Output{Banner: ""})
		assert.Equal(t, "/* banner */", merged.Banner)
	})

	t.Run("globals are replaced whole", func(t *testing.T) {
		merged := template.Merge(Output{Globals: map[string]string{"c": "C"}})
		assert.Equal(t, map[string]string{"c": "C"}, merged.Globals)
	})

	t.Run("result shares nothing with the template", func(t *testing.T) {
		merged := template.Merge(Output{})
		merged.Globals["a"] = "changed"
		*merged.Sourcemap = false

		assert.Equal(t, "A", template.Globals["a"])
		assert.True(t, *template.Sourcemap)
	})
}

func TestWarningString(t *testing.T) {
	tests := []struct {
		name    string
		warning Warning
		want    string
	}{
		{"message only", Warning{Code: "EVAL", Message: "Use of eval is strongly discouraged"}, "Use of eval is strongly discouraged"},
		{"falls back to code", Warning{Code: "EMPTY_BUNDLE"}, "EMPTY_BUNDLE"},
		{
			"with location",
			Warning{Code: "EVAL", Message: "eval found", Loc: &WarningLoc{File: "src/index.ts", Line: 3, Column: 7}},
			"src/index.ts (3:7) eval found",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.warning.String())
		})
	}
}

func TestPluginOptions(t *testing.T) {
	p := Plugin{
		Name: "terser",
		Options: cty.ObjectVal(map[string]cty.Value{
			"output": cty.ObjectVal(map[string]cty.Value{
				"preamble": cty.StringVal("/* x */"),
				"comments": cty.False,
			}),
			"ids":    cty.ListVal([]cty.Value{cty.NumberIntVal(1), cty.NumberIntVal(2)}),
			"flags":  cty.MapVal(map[string]cty.Value{"a": cty.True}),
			"ratio":  cty.NumberFloatVal(0.5),
			"absent": cty.NullVal(cty.String),
		}),
	}

	assert.True(t, p.HasOptions())
	assert.Equal(t, "/* x */", p.Option("output", "preamble").AsString())
	assert.True(t, p.Option("flags", "a").True())
	assert.Equal(t, cty.NilVal, p.Option("output", "missing"))
	assert.Equal(t, cty.NilVal, p.Option("ids", "x"))
	assert.False(t, Plugin{Name: "node-resolve"}.HasOptions())

	native, err := ToNative(p.Options)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"output": map[string]any{"preamble": "/* x */", "comments": false},
		"ids":    []any{int64(1), int64(2)},
		"flags":  map[string]any{"a": true},
		"ratio":  0.5,
		"absent": nil,
	}, native)
}

func TestPluginMarshal(t *testing.T) {
	plugins := []Plugin{
		{Name: "node-resolve"},
		{Name: "visualizer", Options: cty.ObjectVal(map[string]cty.Value{
			"sourcemap": cty.True,
			"filename":  cty.StringVal("dist/a.js.html"),
		})},
	}

	data, err := json.Marshal(plugins)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"name":"node-resolve"},
		{"name":"visualizer","options":{"filename":"dist/a.js.html","sourcemap":true}}
	]`, string(data))

	out, err := yaml.Marshal(plugins)
	require.NoError(t, err)
	var decoded []map[string]any
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, "node-resolve", decoded[0]["name"])
	assert.NotContains(t, decoded[0], "options")
	assert.Equal(t, map[string]any{"filename": "dist/a.js.html", "sourcemap": true}, decoded[1]["options"])
}

func TestStringConversions(t *testing.T) {
	assert.Equal(t, 0, StringList(nil).LengthInt())
	assert.False(t, StringList(nil).IsNull())
	assert.Equal(t, []string{"a", "b"}, Strings(StringList([]string{"a", "b"})))
	assert.Nil(t, Strings(cty.StringVal("a")))
	assert.Nil(t, Strings(cty.NilVal))

	m := StringListMap(map[string][]string{"./long.js": {"fromString"}})
	assert.Equal(t, []string{"fromString"}, Strings(m.Index(cty.StringVal("./long.js"))))
	assert.Equal(t, 0, StringListMap(nil).LengthInt())
}

func TestDescriptorPluginLookup(t *testing.T) {
	d := Descriptor{Plugins: []Plugin{
		{Name: "typescript"},
		{Name: "terser", Options: cty.ObjectVal(map[string]cty.Value{"k": cty.NumberIntVal(1)})},
	}}

	assert.Equal(t, []string{"typescript", "terser"}, d.PluginNames())
	assert.True(t, d.HasPlugin("terser"))
	assert.False(t, d.HasPlugin("visualizer"))

	p, ok := d.Plugin("terser")
	require.True(t, ok)
	assert.True(t, p.Option("k").RawEquals(cty.NumberIntVal(1)))
}
