// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Partial, what a caller supplies for one target, and
// Descriptor, the fully merged result handed to the engine.
//
// Why keep the warning policy twice?
//
// OnWarn is the live callback used when the plan is executed in-process (and by
// the warning replay). SuppressedWarnings is the same policy as data, so an
// engine reading the serialized plan can reproduce the filter without Go code.
package model

// Partial is an incomplete target configuration. All fields are optional.
type Partial struct {
	// Plugins are appended after the fixed transpile/resolve/commonjs chain.
	Plugins []Plugin
	// Output overrides the fixed output template key by key.
	Output Output
	// External lists modules excluded in addition to the peer dependencies.
	External []string
	// Visualize appends a visualization plugin reporting to Output.File + ".html".
	Visualize bool
	// CompilerOptions overrides the default compiler options key by key.
	CompilerOptions CompilerOptions
}

// Descriptor instructs the engine how to produce one artifact from one entry
// point. It is never mutated after construction.
type Descriptor struct {
	Input              string        `json:"input" yaml:"input"`
	Plugins            []Plugin      `json:"plugins" yaml:"plugins"`
	Output             Output        `json:"output" yaml:"output"`
	External           []string      `json:"external" yaml:"external"`
	SuppressedWarnings []string      `json:"suppressedWarnings,omitempty" yaml:"suppressedWarnings,omitempty"`
	OnWarn             WarningFilter `json:"-" yaml:"-"`
}

// PluginNames returns the names of the descriptor's plugins in chain order.
func (d Descriptor) PluginNames() []string {
	names := make([]string, len(d.Plugins))
	for i, p := range d.Plugins {
		names[i] = p.Name
	}
	return names
}

// HasPlugin reports whether a plugin with the given name is in the chain.
func (d Descriptor) HasPlugin(name string) bool {
	for _, p := range d.Plugins {
		if p.Name == name {
			return true
		}
	}
	return false
}

// Plugin returns the first plugin with the given name.
func (d Descriptor) Plugin(name string) (Plugin, bool) {
	for _, p := range d.Plugins {
		if p.Name == name {
			return p, true
		}
	}
	return Plugin{}, false
}
