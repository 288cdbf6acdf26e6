package gomap

import (
	"fmt"
	"math"
	"reflect"
	"sort"

	"github.com/dynjson/go-dynjson/ir"
)

// FromGo converts a Go value to an IR node by reflection.
func FromGo(v interface{}) (*ir.Node, error) {
	if v == nil {
		return ir.Null(), nil
	}
	return fromGoReflect(reflect.ValueOf(v), "")
}

func fromGoReflect(val reflect.Value, fieldPath string) (*ir.Node, error) {
	switch val.Kind() {
	case reflect.Bool:
		return ir.FromBool(val.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(val.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := val.Uint()
		if u > math.MaxInt64 {
			return nil, &MarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("uint value %d overflows int64", u),
			}
		}
		return ir.FromInt(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		return ir.FromFloat(val.Float()), nil
	case reflect.String:
		return ir.FromString(val.String()), nil
	case reflect.Slice:
		if val.IsNil() {
			return ir.Null(), nil
		}
		return fromGoSeq(val, fieldPath)
	case reflect.Array:
		return fromGoSeq(val, fieldPath)
	case reflect.Map:
		return fromGoMap(val, fieldPath)
	case reflect.Struct:
		return fromGoStruct(val, fieldPath)
	case reflect.Pointer, reflect.Interface:
		if val.IsNil() {
			return ir.Null(), nil
		}
		return fromGoReflect(val.Elem(), fieldPath)
	default:
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("unsupported kind %s", val.Kind()),
		}
	}
}

func fromGoSeq(val reflect.Value, fieldPath string) (*ir.Node, error) {
	res := &ir.Node{Type: ir.ArrayType}
	n := val.Len()
	for i := 0; i < n; i++ {
		elt, err := fromGoReflect(val.Index(i), fmt.Sprintf("%s[%d]", fieldPath, i))
		if err != nil {
			return nil, err
		}
		res.Append(elt)
	}
	return res, nil
}

func fromGoMap(val reflect.Value, fieldPath string) (*ir.Node, error) {
	if val.Type().Key().Kind() != reflect.String {
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("map keys must be strings, got %s", val.Type().Key()),
		}
	}
	if val.IsNil() {
		return ir.Null(), nil
	}
	keys := make([]string, 0, val.Len())
	for _, k := range val.MapKeys() {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)
	res := &ir.Node{Type: ir.ObjectType}
	for _, key := range keys {
		v, err := fromGoReflect(val.MapIndex(reflect.ValueOf(key).Convert(val.Type().Key())),
			joinPath(fieldPath, key))
		if err != nil {
			return nil, err
		}
		res.Set(key, v)
	}
	return res, nil
}

func fromGoStruct(val reflect.Value, fieldPath string) (*ir.Node, error) {
	typ := val.Type()
	res := &ir.Node{Type: ir.ObjectType}
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		info := parseFieldTag(f)
		if info.Omit {
			continue
		}
		fv := val.Field(i)
		if info.OmitEmpty && isEmpty(fv) {
			continue
		}
		v, err := fromGoReflect(fv, joinPath(fieldPath, info.Name))
		if err != nil {
			return nil, err
		}
		res.Set(info.Name, v)
	}
	return res, nil
}

func joinPath(p, field string) string {
	if p == "" {
		return field
	}
	return p + "." + field
}
