// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines CompilerOptions, the options record handed to the
// transpilation plugin.
package model

import "github.com/zclconf/go-cty/cty"

// CompilerOptions is a partial compiler options record. Keys mirror the
// TypeScript compiler option names (include, module, target, ...); values are
// immutable cty values.
type CompilerOptions map[string]cty.Value

// Merge returns a new record holding the receiver's keys overlaid with the
// keys of overrides. The merge is one level deep; a key present in overrides
// replaces the receiver's value entirely, whatever its type or length. A
// cty.NilVal override counts as absent.
func (c CompilerOptions) Merge(overrides CompilerOptions) CompilerOptions {
	out := make(CompilerOptions, len(c)+len(overrides))
	for k, v := range c {
		out[k] = v
	}
	for k, v := range overrides {
		if v.Type() == cty.NilType {
			continue
		}
		out[k] = v
	}
	return out
}

// Value returns the record as a cty object.
func (c CompilerOptions) Value() cty.Value {
	return ObjectVal(c)
}
