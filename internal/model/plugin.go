// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Plugin, the opaque plugin invocation carried by a
// descriptor.
//
// Why opaque?
//
// Transpilation, resolution, minification and visualization are the engine's
// business. The plan only records which plugin to run and with which options, so
// a plugin is a name plus a free-form options tree that serializes cleanly to
// JSON and YAML.
//
// Why cty?
//
// The options tree is a cty.Value. cty values are immutable, so one plugin can
// be placed in several descriptors, and one defaults record merged into many
// targets, without any of them observing a change made through another. The
// same type system already carries values decoded from project files.
package model

import (
	"encoding/json"

	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// Plugin is a single plugin invocation in a descriptor's plugin chain.
type Plugin struct {
	Name string
	// Options is an object value, or a null value when the plugin takes none.
	Options cty.Value
}

// HasOptions reports whether the plugin carries an options tree.
func (p Plugin) HasOptions() bool {
	return !p.Options.IsNull()
}

// Option walks the options tree along path and returns the value found there.
// A missing step yields cty.NilVal.
func (p Plugin) Option(path ...string) cty.Value {
	v := p.Options
	for _, name := range path {
		v = attr(v, name)
	}
	return v
}

func attr(v cty.Value, name string) cty.Value {
	if v.IsNull() || !v.IsKnown() {
		return cty.NilVal
	}
	ty := v.Type()
	switch {
	case ty.IsObjectType():
		if !ty.HasAttribute(name) {
			return cty.NilVal
		}
		return v.GetAttr(name)
	case ty.IsMapType():
		key := cty.StringVal(name)
		if v.HasIndex(key).False() {
			return cty.NilVal
		}
		return v.Index(key)
	default:
		return cty.NilVal
	}
}

type pluginJSON struct {
	Name    string          `json:"name"`
	Options json.RawMessage `json:"options,omitempty"`
}

// MarshalJSON encodes the options tree with the cty JSON encoding.
func (p Plugin) MarshalJSON() ([]byte, error) {
	doc := pluginJSON{Name: p.Name}
	if p.HasOptions() {
		raw, err := ctyjson.SimpleJSONValue{Value: p.Options}.MarshalJSON()
		if err != nil {
			return nil, err
		}
		doc.Options = raw
	}
	return json.Marshal(doc)
}

type pluginYAML struct {
	Name    string `yaml:"name"`
	Options any    `yaml:"options,omitempty"`
}

// MarshalYAML converts the options tree to native Go values for yaml.v3.
func (p Plugin) MarshalYAML() (any, error) {
	doc := pluginYAML{Name: p.Name}
	if p.HasOptions() {
		native, err := ToNative(p.Options)
		if err != nil {
			return nil, err
		}
		doc.Options = native
	}
	return doc, nil
}
