package typescript

import (
	"testing"

	"github.com/specialistvlad/bundlegrid/internal/model"
	"github.com/specialistvlad/bundlegrid/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestNew(t *testing.T) {
	t.Run("passes compiler options through", func(t *testing.T) {
		opts := map[string]cty.Value{
			"include": model.StringList([]string{"src/**/*.ts"}),
			"module":  cty.StringVal("ES2015"),
			"target":  cty.StringVal("es5"),
		}
		p, err := New(opts)
		require.NoError(t, err)
		assert.Equal(t, Name, p.Name)
		assert.Equal(t, []string{"src/**/*.ts"}, model.Strings(p.Option("include")))
		assert.Equal(t, "ES2015", p.Option("module").AsString())

		target, ok := Target(p)
		require.True(t, ok)
		assert.Equal(t, "es5", target)

		opts["target"] = cty.StringVal("changed")
		target, _ = Target(p)
		assert.Equal(t, "es5", target, "plugin options must not alias the input")
	})

	t.Run("empty and missing options are accepted", func(t *testing.T) {
		for _, opts := range []map[string]cty.Value{
			nil,
			{"include": cty.ListValEmpty(cty.String)},
			{"include": cty.StringVal("")},
		} {
			p, err := New(opts)
			require.NoError(t, err)
			assert.Equal(t, Name, p.Name)
		}
	})

	t.Run("no target", func(t *testing.T) {
		p, err := New(nil)
		require.NoError(t, err)
		_, ok := Target(p)
		assert.False(t, ok)
	})
}

func TestRegister(t *testing.T) {
	r := registry.New()
	(&Module{}).Register(r)
	assert.Equal(t, []string{Name}, r.Names())
}
