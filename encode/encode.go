package encode

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/dynjson/go-dynjson/ir"
	"github.com/dynjson/go-dynjson/token"
)

type EncState struct {
	lenient bool

	Color func(ir.Type, ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return encode(node, w, es)
}

// String encodes node and returns the text.
func String(node *ir.Node, opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	if node == nil {
		return fmt.Errorf("%w: nil node", ErrEncoding)
	}
	switch node.Type {
	case ir.NullType:
		return writeValue(w, es, ir.NullType, "null")
	case ir.BoolType:
		v := "false"
		if node.Bool {
			v = "true"
		}
		return writeValue(w, es, ir.BoolType, v)
	case ir.IntegerType:
		return writeValue(w, es, ir.IntegerType, strconv.FormatInt(node.Int64, 10))
	case ir.FloatType:
		if math.IsNaN(node.Float64) || math.IsInf(node.Float64, 0) {
			if !es.lenient {
				return fmt.Errorf("%w: non-finite float %v", ErrEncoding, node.Float64)
			}
			v := token.Quote(strconv.FormatFloat(node.Float64, 'g', -1, 64))
			return writeValue(w, es, ir.StringType, v)
		}
		return writeValue(w, es, ir.FloatType, formatFloat(node.Float64))
	case ir.StringType:
		return writeValue(w, es, ir.StringType, token.Quote(node.String))
	case ir.ArrayType:
		if err := writeSep(w, es, ir.ArrayType, "["); err != nil {
			return err
		}
		for i, v := range node.Values {
			if i > 0 {
				if err := writeSep(w, es, ir.ArrayType, ","); err != nil {
					return err
				}
			}
			if err := encode(v, w, es); err != nil {
				return err
			}
		}
		return writeSep(w, es, ir.ArrayType, "]")
	case ir.ObjectType:
		if err := writeSep(w, es, ir.ObjectType, "{"); err != nil {
			return err
		}
		for i := range node.Fields {
			if i > 0 {
				if err := writeSep(w, es, ir.ObjectType, ","); err != nil {
					return err
				}
			}
			if err := writeField(w, es, token.Quote(node.Fields[i].String)); err != nil {
				return err
			}
			if err := writeSep(w, es, ir.ObjectType, ":"); err != nil {
				return err
			}
			if err := encode(node.Values[i], w, es); err != nil {
				return err
			}
		}
		return writeSep(w, es, ir.ObjectType, "}")
	default:
		if !es.lenient {
			return fmt.Errorf("%w: unsupported node type %d", ErrEncoding, int(node.Type))
		}
		return writeValue(w, es, ir.StringType, token.Quote(leafText(node)))
	}
}

// formatFloat renders f as locale-independent decimal text. The
// shortest 'g' form keeps every encodable float re-decodable: numerals
// with a fraction or exponent part come back as floats, and the few
// whose shortest form is a plain integer numeral (such as 5.0) come
// back as equal integers.
func formatFloat(f float64) string {
	if f == 0 {
		// negative zero would emit "-0", which re-decodes as integer
		// zero and re-encodes as "0", destabilizing repeated encodes
		return "0"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// leafText is the lenient fallback representation for nodes outside
// the supported variants.
func leafText(node *ir.Node) string {
	if node.String != "" {
		return node.String
	}
	return node.Type.String()
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeValue(w io.Writer, es *EncState, t ir.Type, v string) error {
	if es.Color != nil {
		v = es.Color(t, ValueColor, v)
	}
	return writeString(w, v)
}

func writeField(w io.Writer, es *EncState, v string) error {
	if es.Color != nil {
		v = es.Color(ir.ObjectType, FieldColor, v)
	}
	return writeString(w, v)
}

func writeSep(w io.Writer, es *EncState, t ir.Type, sep string) error {
	if es.Color != nil {
		sep = es.Color(t, SepColor, sep)
	}
	return writeString(w, sep)
}
