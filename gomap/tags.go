package gomap

import (
	"reflect"
	"strings"
)

// fieldInfo holds field metadata extracted from struct tags.
type fieldInfo struct {
	// Name is the field name used in the encoded object.
	Name string

	// Omit indicates the field is excluded (`json:"-"`).
	Omit bool

	// OmitEmpty indicates empty values are skipped.
	OmitEmpty bool
}

func parseFieldTag(f reflect.StructField) fieldInfo {
	info := fieldInfo{Name: f.Name}
	tag, ok := f.Tag.Lookup("json")
	if !ok {
		return info
	}
	parts := strings.Split(tag, ",")
	if parts[0] == "-" && len(parts) == 1 {
		info.Omit = true
		return info
	}
	if parts[0] != "" {
		info.Name = parts[0]
	}
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			info.OmitEmpty = true
		}
	}
	return info
}

// isEmpty mirrors encoding/json's notion of an empty value for
// omitempty purposes.
func isEmpty(val reflect.Value) bool {
	switch val.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return val.Len() == 0
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.Pointer, reflect.Interface:
		return val.IsZero()
	}
	return false
}
