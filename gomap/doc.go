// Package gomap converts between Go values and ir.Node trees.
//
// FromGo builds a tree from a Go value by reflection: booleans,
// integers, floats, strings, slices, arrays, string-keyed maps, structs
// and pointers. Struct fields honor `json` tags: a tag renames the
// field, "-" skips it, and "omitempty" omits empty values. Map fields
// are emitted in sorted key order since Go map iteration order is not
// stable.
//
// ToGo flattens a tree into untyped Go values (nil, bool, int64,
// float64, string, []any, map[string]any). Object insertion order is
// lost in the map form.
package gomap
