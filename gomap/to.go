package gomap

import (
	"github.com/dynjson/go-dynjson/ir"
)

// ToGo flattens an IR node into untyped Go values: nil, bool, int64,
// float64, string, []any and map[string]any. Object insertion order is
// lost in the map form.
func ToGo(node *ir.Node) interface{} {
	if node == nil {
		return nil
	}
	switch node.Type {
	case ir.NullType:
		return nil
	case ir.BoolType:
		return node.Bool
	case ir.IntegerType:
		return node.Int64
	case ir.FloatType:
		return node.Float64
	case ir.StringType:
		return node.String
	case ir.ArrayType:
		res := make([]interface{}, len(node.Values))
		for i, v := range node.Values {
			res[i] = ToGo(v)
		}
		return res
	case ir.ObjectType:
		fields := ir.ToMap(node)
		res := make(map[string]interface{}, len(fields))
		for key, v := range fields {
			res[key] = ToGo(v)
		}
		return res
	default:
		return nil
	}
}
