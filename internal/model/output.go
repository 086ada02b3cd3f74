// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Output, the output section of a descriptor, and the
// key-by-key merge used to overlay caller overrides on the fixed template.
//
// Why pointer booleans?
//
// An override must be able to say "freeze: false" explicitly, which is
// different from not mentioning freeze at all. Pointers keep those two cases
// apart, and a nil pointer is omitted from the serialized plan so the engine
// applies its own default.
package model

// Format is the module format of an output artifact.
type Format string

const (
	FormatCJS Format = "cjs"
	FormatUMD Format = "umd"
	FormatES  Format = "es"
)

// Output describes how the engine writes one artifact.
type Output struct {
	Format    Format            `json:"format,omitempty" yaml:"format,omitempty"`
	Name      string            `json:"name,omitempty" yaml:"name,omitempty"`
	File      string            `json:"file,omitempty" yaml:"file,omitempty"`
	Banner    string            `json:"banner,omitempty" yaml:"banner,omitempty"`
	Sourcemap *bool             `json:"sourcemap,omitempty" yaml:"sourcemap,omitempty"`
	Extend    *bool             `json:"extend,omitempty" yaml:"extend,omitempty"`
	Freeze    *bool             `json:"freeze,omitempty" yaml:"freeze,omitempty"`
	Globals   map[string]string `json:"globals,omitempty" yaml:"globals,omitempty"`
}

// Merge returns a new Output with every field set in overrides replacing the
// receiver's field. Globals is replaced as a whole when overrides supplies it.
//
// A string field counts as set only when it is non-empty. An override cannot
// clear a string such as Banner to ""; the receiver's value is kept.
func (o Output) Merge(overrides Output) Output {
	out := Output{
		Format:    o.Format,
		Name:      o.Name,
		File:      o.File,
		Banner:    o.Banner,
		Sourcemap: cloneBool(o.Sourcemap),
		Extend:    cloneBool(o.Extend),
		Freeze:    cloneBool(o.Freeze),
		Globals:   cloneGlobals(o.Globals),
	}
	if overrides.Format != "" {
		out.Format = overrides.Format
	}
	if overrides.Name != "" {
		out.Name = overrides.Name
	}
	if overrides.File != "" {
		out.File = overrides.File
	}
	if overrides.Banner != "" {
		out.Banner = overrides.Banner
	}
	if overrides.Sourcemap != nil {
		out.Sourcemap = cloneBool(overrides.Sourcemap)
	}
	if overrides.Extend != nil {
		out.Extend = cloneBool(overrides.Extend)
	}
	if overrides.Freeze != nil {
		out.Freeze = cloneBool(overrides.Freeze)
	}
	if overrides.Globals != nil {
		out.Globals = cloneGlobals(overrides.Globals)
	}
	return out
}

// Bool returns a pointer to b, for populating optional Output fields.
func Bool(b bool) *bool {
	return &b
}

func cloneBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}

func cloneGlobals(g map[string]string) map[string]string {
	if g == nil {
		return nil
	}
	out := make(map[string]string, len(g))
	for k, v := range g {
		out[k] = v
	}
	return out
}
