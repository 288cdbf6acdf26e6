package encode

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/dynjson/go-dynjson/ir"
	"github.com/dynjson/go-dynjson/parse"

	"github.com/sergi/go-diff/diffmatchpatch"
)

func checkEncodes(t *testing.T, node *ir.Node, want string, opts ...EncodeOption) {
	t.Helper()
	got, err := String(node, opts...)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if got != want {
		dmp := diffmatchpatch.New()
		diffs := dmp.DiffMain(want, got, false)
		t.Fatalf("encode mismatch:\n%s", dmp.DiffPrettyText(diffs))
	}
}

func TestEncodeAtoms(t *testing.T) {
	checkEncodes(t, ir.Null(), `null`)
	checkEncodes(t, ir.FromBool(true), `true`)
	checkEncodes(t, ir.FromBool(false), `false`)
	checkEncodes(t, ir.FromInt(42), `42`)
	checkEncodes(t, ir.FromInt(-7), `-7`)
	checkEncodes(t, ir.FromFloat(3.5), `3.5`)
	checkEncodes(t, ir.FromFloat(1e300), `1e+300`)
	checkEncodes(t, ir.FromFloat(math.Copysign(0, -1)), `0`)
	checkEncodes(t, ir.FromString("hello"), `"hello"`)
}

func TestEncodeComposite(t *testing.T) {
	arr := ir.FromSlice([]*ir.Node{
		ir.FromInt(1), ir.FromString("two"), ir.Null(),
	})
	checkEncodes(t, arr, `[1,"two",null]`)

	obj := ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromInt(1)},
		{Key: "b", Val: arr},
	})
	checkEncodes(t, obj, `{"a":1,"b":[1,"two",null]}`)

	checkEncodes(t, &ir.Node{Type: ir.ObjectType}, `{}`)
	checkEncodes(t, &ir.Node{Type: ir.ArrayType}, `[]`)
}

func TestEncodeInsertionOrder(t *testing.T) {
	// keys inserted "b" then "a" never get reordered
	obj := ir.FromKeyVals([]ir.KeyVal{
		{Key: "b", Val: ir.FromInt(2)},
		{Key: "a", Val: ir.FromInt(1)},
	})
	checkEncodes(t, obj, `{"b":2,"a":1}`)
}

func TestEncodeStringEscapes(t *testing.T) {
	checkEncodes(t, ir.FromString("a\"b\\c"), `"a\"b\\c"`)
	checkEncodes(t, ir.FromString("\b\f\n\r\t"), `"\b\f\n\r\t"`)
	checkEncodes(t, ir.FromString("café"), `"caf\u00e9"`)
	checkEncodes(t, ir.FromString("\U0001f600"), `"\ud83d\ude00"`)
	checkEncodes(t, ir.FromString("\a"), `"\u0007"`)
}

func TestEncodeStrictUnsupported(t *testing.T) {
	bad := &ir.Node{Type: ir.Type(42), String: "blob"}
	_, err := String(bad)
	if !errors.Is(err, ErrEncoding) {
		t.Fatalf("got %v, want ErrEncoding", err)
	}
	// a composite holding a bad leaf fails too, and nothing partial is kept
	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1), bad})
	if _, err := String(arr); !errors.Is(err, ErrEncoding) {
		t.Fatalf("nested: got %v, want ErrEncoding", err)
	}
}

func TestEncodeLenientUnsupported(t *testing.T) {
	bad := &ir.Node{Type: ir.Type(42), String: "blob"}
	checkEncodes(t, bad, `"blob"`, Lenient(true))
	anon := &ir.Node{Type: ir.Type(42)}
	checkEncodes(t, anon, `"<unknown type>"`, Lenient(true))
}

func TestEncodeNonFiniteFloats(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := String(ir.FromFloat(f)); !errors.Is(err, ErrEncoding) {
			t.Fatalf("%v: got %v, want ErrEncoding", f, err)
		}
		got, err := String(ir.FromFloat(f), Lenient(true))
		if err != nil {
			t.Fatalf("%v lenient: %v", f, err)
		}
		if !strings.HasPrefix(got, `"`) {
			t.Fatalf("%v lenient: got %s, want a string", f, got)
		}
	}
}

func TestEncodeNil(t *testing.T) {
	if _, err := String(nil); !errors.Is(err, ErrEncoding) {
		t.Fatalf("got %v, want ErrEncoding", err)
	}
}

func TestMustString(t *testing.T) {
	obj := ir.FromKeyVals([]ir.KeyVal{
		{Key: "k", Val: ir.FromString("v")},
	})
	if got := MustString(obj); got != `{"k":"v"}` {
		t.Fatalf("got %s", got)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustString(&ir.Node{Type: ir.Type(42)})
}

func TestEncodeDecodeEncodeStable(t *testing.T) {
	trees := []*ir.Node{
		ir.Null(),
		ir.FromFloat(5.0), // shortest form re-decodes as an integer
		ir.FromFloat(1e10),
		ir.FromKeyVals([]ir.KeyVal{
			{Key: "b", Val: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromFloat(2.5)})},
			{Key: "a", Val: ir.FromString("x\ny")},
		}),
	}
	for _, v := range trees {
		first, err := String(v)
		if err != nil {
			t.Fatal(err)
		}
		node, err := parse.Parse([]byte(first))
		if err != nil {
			t.Fatalf("decode of %q: %v", first, err)
		}
		if !ir.Equal(v, node) {
			t.Fatalf("decode(encode(v)) != v for %q", first)
		}
		second, err := String(node)
		if err != nil {
			t.Fatal(err)
		}
		if first != second {
			dmp := diffmatchpatch.New()
			diffs := dmp.DiffMain(first, second, false)
			t.Fatalf("encode(decode(encode(v))) != encode(v):\n%s", dmp.DiffPrettyText(diffs))
		}
	}
}

func TestEncodeColorsOff(t *testing.T) {
	// colorization must only wrap the plain rendering; with colors
	// disabled via a nil map entry the output is byte-identical
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	obj := ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromInt(1)},
	})
	checkEncodes(t, obj, `{"a":1}`, EncodeColors(colors))
	checkEncodes(t, obj, `{"a":1}`, EncodeColors(nil))
}
