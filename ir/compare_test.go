package ir

import (
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b *Node
		want int
	}{
		{"Null < Bool", Null(), FromBool(false), -1},
		{"Bool < Number", FromBool(true), FromInt(0), -1},
		{"Number < String", FromInt(7), FromString(""), -1},
		{"String < Array", FromString("z"), FromSlice(nil), -1},
		{"Array < Object", FromSlice(nil), &Node{Type: ObjectType}, -1},
		{"Null == Null", Null(), Null(), 0},
		{"false < true", FromBool(false), FromBool(true), -1},
		{"1 < 2", FromInt(1), FromInt(2), -1},
		{"int == equal float", FromInt(1), FromFloat(1), 0},
		{"1 < 1.5", FromInt(1), FromFloat(1.5), -1},
		{"2.5 > 2", FromFloat(2.5), FromInt(2), 1},
		{"a < b", FromString("a"), FromString("b"), -1},
		{"shorter array first", FromSlice([]*Node{FromInt(1)}),
			FromSlice([]*Node{FromInt(1), FromInt(2)}), -1},
		{"array elementwise", FromSlice([]*Node{FromInt(2)}),
			FromSlice([]*Node{FromInt(1), FromInt(2)}), 1},
		{"nil < non-nil", nil, Null(), -1},
	}
	for _, tt := range tests {
		if got := Compare(tt.a, tt.b); got != tt.want {
			t.Errorf("%s: got %d, want %d", tt.name, got, tt.want)
		}
		if got := Compare(tt.b, tt.a); got != -tt.want {
			t.Errorf("%s (flipped): got %d, want %d", tt.name, got, -tt.want)
		}
	}
}

func TestCompareObjectsKeyOrderInsensitive(t *testing.T) {
	a := FromKeyVals([]KeyVal{
		{Key: "x", Val: FromInt(1)},
		{Key: "y", Val: FromInt(2)},
	})
	b := FromKeyVals([]KeyVal{
		{Key: "y", Val: FromInt(2)},
		{Key: "x", Val: FromInt(1)},
	})
	if !Equal(a, b) {
		t.Fatal("objects with same key set and values should be equal regardless of insertion order")
	}
	c := FromKeyVals([]KeyVal{
		{Key: "x", Val: FromInt(1)},
		{Key: "y", Val: FromInt(3)},
	})
	if Equal(a, c) {
		t.Fatal("objects with differing values should not be equal")
	}
	d := FromKeyVals([]KeyVal{
		{Key: "x", Val: FromInt(1)},
	})
	if Equal(a, d) {
		t.Fatal("objects with differing key sets should not be equal")
	}
}
