// Package ir provides the in-memory representation for JSON documents.
//
// # Overview
//
// The ir package defines the core data structure for representing JSON
// documents as a tree of nodes. All documents (whether parsed from text
// or created programmatically) are represented as ir.Node trees.
//
// The IR works as a recursive tagged union structure, where values are
// placed in fields depending on the node type.
//
// # Node Types
//
// The Type field indicates the node's type:
//
//   - NullType: null value
//   - BoolType: boolean (true/false)
//   - IntegerType: numeric value without a fractional or exponent part
//   - FloatType: numeric value with a fractional or exponent part
//   - StringType: string value
//   - ArrayType: ordered list of nodes
//   - ObjectType: key-value pairs (fields and values)
//
// Integer and Float are distinct types because the choice is purely
// syntactic: a numeral containing '.', 'e' or 'E' parses as a float,
// anything else as an integer, and the distinction survives encoding.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	flag := ir.FromBool(true)
//	obj := ir.FromMap(map[string]*ir.Node{
//	    "key": ir.FromString("value"),
//	})
//	arr := ir.FromSlice([]*ir.Node{
//	    ir.FromInt(1),
//	    ir.FromInt(2),
//	})
//
// # Structure Constraints
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i],
// so there are always the same number of fields as values. Fields are
// string typed and unique within an object; Set replaces the value of an
// existing key in place (last write wins, first position kept). Field
// order is insertion order and is preserved by encoding.
//
// The tree is acyclic: every non-root node is exclusively owned by its
// parent, and no node appears in two places. Parent, ParentIndex and
// ParentField are navigation aids maintained by the constructors.
package ir
