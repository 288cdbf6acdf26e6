// Package dynjson converts between JSON text and a dynamic value tree.
//
// The tree type is ir.Node, a closed tagged union over the seven JSON
// variants (null, bool, integer, float, string, array, object). Decode
// parses text into a tree; Encode walks a tree and emits compact JSON
// text. Both are pure functions over call-local state and are safe to
// call from multiple goroutines simultaneously.
//
// Decode failures are *parse.ParseError values carrying the byte offset
// where parsing stopped and a snippet of the surrounding input. A
// successfully decoded JSON null is an ir.NullType node, never an
// error. Encode fails only for nodes outside the supported variants;
// see EncodeLenient for the non-failing mode.
package dynjson

import (
	"github.com/dynjson/go-dynjson/encode"
	"github.com/dynjson/go-dynjson/ir"
	"github.com/dynjson/go-dynjson/parse"
)

// Decode parses JSON text into a value tree.
func Decode(d []byte) (*ir.Node, error) {
	return parse.Parse(d)
}

// Encode renders node as compact JSON text, failing on nodes outside
// the supported variants.
func Encode(node *ir.Node) (string, error) {
	return encode.String(node)
}

// EncodeLenient renders node as compact JSON text; nodes outside the
// supported variants fall back to their generic text representation
// wrapped as a JSON string, so encoding never fails on type grounds.
func EncodeLenient(node *ir.Node) (string, error) {
	return encode.String(node, encode.Lenient(true))
}
