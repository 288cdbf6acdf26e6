package ir

import (
	"cmp"
	"slices"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Integers and floats compare numerically, so FromInt(1) and
// FromFloat(1) are equal: the integer/float split is a property of the
// numeral's spelling, not of its value. Objects compare by key set and
// per-key values, not by insertion order; arrays compare elementwise.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case IntegerType, FloatType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.String, b.String)
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case ArrayType:
		return compareArrays(a, b)
	case ObjectType:
		return compareObjects(a, b)
	case NullType:
		return 0
	}
	return 0
}

// Equal reports whether a and b are structurally equal under Compare.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Integer/Float < String < Array < Object
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case IntegerType, FloatType:
		return 2
	case StringType:
		return 3
	case ArrayType:
		return 4
	case ObjectType:
		return 5
	}
	return 100
}

func compareNumbers(a, b *Node) int {
	if a.Type == IntegerType && b.Type == IntegerType {
		return cmp.Compare(a.Int64, b.Int64)
	}
	return cmp.Compare(numValue(a), numValue(b))
}

func numValue(n *Node) float64 {
	if n.Type == IntegerType {
		return float64(n.Int64)
	}
	return n.Float64
}

func compareArrays(a, b *Node) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareObjects(a, b *Node) int {
	keysA := sortedKeys(a)
	keysB := sortedKeys(b)
	if c := slices.Compare(keysA, keysB); c != 0 {
		return c
	}
	for _, key := range keysA {
		if c := Compare(Get(a, key), Get(b, key)); c != 0 {
			return c
		}
	}
	return 0
}

func sortedKeys(y *Node) []string {
	keys := make([]string, len(y.Fields))
	for i, f := range y.Fields {
		keys[i] = f.String
	}
	slices.Sort(keys)
	return keys
}
