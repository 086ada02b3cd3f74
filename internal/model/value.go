// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file holds the conversions between plain Go values and the cty values
// that plugin options are stored as.
package model

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// StringList returns ss as a cty list of strings. A nil or empty slice yields
// an empty list rather than a null one.
func StringList(ss []string) cty.Value {
	if len(ss) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	vals := make([]cty.Value, len(ss))
	for i, s := range ss {
		vals[i] = cty.StringVal(s)
	}
	return cty.ListVal(vals)
}

// StringListMap returns m as a cty map of string lists, e.g. named exports
// keyed by module path.
func StringListMap(m map[string][]string) cty.Value {
	if len(m) == 0 {
		return cty.MapValEmpty(cty.List(cty.String))
	}
	vals := make(map[string]cty.Value, len(m))
	for k, v := range m {
		vals[k] = StringList(v)
	}
	return cty.MapVal(vals)
}

// Strings returns the elements of a list, set or tuple of strings. Non-string
// elements and non-collection values are skipped.
func Strings(v cty.Value) []string {
	if v.IsNull() || !v.IsKnown() {
		return nil
	}
	ty := v.Type()
	if !ty.IsListType() && !ty.IsSetType() && !ty.IsTupleType() {
		return nil
	}
	var out []string
	for it := v.ElementIterator(); it.Next(); {
		_, e := it.Element()
		if e.IsKnown() && !e.IsNull() && e.Type() == cty.String {
			out = append(out, e.AsString())
		}
	}
	return out
}

// ToNative converts a cty value to its natural Go counterpart: string, int64 or
// float64, bool, []any and map[string]any. Null and unknown values become nil.
func ToNative(v cty.Value) (any, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, nil
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return v.AsString(), nil

	case ty == cty.Number:
		if v.AsBigFloat().IsInt() {
			var i int64
			if err := gocty.FromCtyValue(v, &i); err == nil {
				return i, nil
			}
		}
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return nil, fmt.Errorf("could not convert cty.Number to float64: %w", err)
		}
		return f, nil

	case ty == cty.Bool:
		var b bool
		if err := gocty.FromCtyValue(v, &b); err != nil {
			return nil, fmt.Errorf("could not convert cty.Bool to bool: %w", err)
		}
		return b, nil

	case ty.IsListType() || ty.IsSetType() || ty.IsTupleType():
		out := make([]any, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, e := it.Element()
			native, err := ToNative(e)
			if err != nil {
				return nil, err
			}
			out = append(out, native)
		}
		return out, nil

	case ty.IsObjectType() || ty.IsMapType():
		out := make(map[string]any, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			k, e := it.Element()
			native, err := ToNative(e)
			if err != nil {
				return nil, fmt.Errorf("in attribute '%s': %w", k.AsString(), err)
			}
			out[k.AsString()] = native
		}
		return out, nil

	default:
		return nil, fmt.Errorf("unsupported cty type: %s", ty.FriendlyName())
	}
}

// ObjectVal builds an object value from attrs, dropping cty.NilVal entries.
func ObjectVal(attrs map[string]cty.Value) cty.Value {
	clean := make(map[string]cty.Value, len(attrs))
	for k, v := range attrs {
		if v.Type() != cty.NilType {
			clean[k] = v
		}
	}
	return cty.ObjectVal(clean)
}
