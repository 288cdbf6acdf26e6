package token

import (
	"testing"
)

type quotedTest struct {
	raw string
	val string
}

func TestQuotedToString(t *testing.T) {
	qts := []quotedTest{
		{raw: `""`, val: ""},
		{raw: `"hello"`, val: "hello"},
		{raw: `"a\"b"`, val: `a"b`},
		{raw: `"a\\b"`, val: `a\b`},
		{raw: `"a\/b"`, val: "a/b"},
		{raw: `"\b\f\n\r\t"`, val: "\b\f\n\r\t"},
		{raw: `"\u00e9"`, val: "é"},
		{raw: `"\u00E9"`, val: "é"},
		{raw: `"caf\u00e9"`, val: "café"},
		// surrogate pair recombination
		{raw: `"\ud83d\ude00"`, val: "\U0001f600"},
		// lone surrogates decode to U+FFFD
		{raw: `"\ud83d"`, val: "�"},
		{raw: `"\ud83d abc"`, val: "� abc"},
		{raw: `"\ud83dA"`, val: "�A"},
		// raw multibyte passes through
		{raw: `"héllo"`, val: "héllo"},
	}
	for _, qt := range qts {
		n, err := quotedLen([]byte(qt.raw))
		if err != nil {
			t.Fatalf("%q: %v", qt.raw, err)
		}
		if n != len(qt.raw) {
			t.Fatalf("%q: length %d, want %d", qt.raw, n, len(qt.raw))
		}
		if got := QuotedToString([]byte(qt.raw)); got != qt.val {
			t.Errorf("%q: got %q, want %q", qt.raw, got, qt.val)
		}
	}
}

func TestQuote(t *testing.T) {
	qts := []quotedTest{
		{val: "", raw: `""`},
		{val: "hello", raw: `"hello"`},
		{val: `a"b`, raw: `"a\"b"`},
		{val: `a\b`, raw: `"a\\b"`},
		{val: "\b\f\n\r\t", raw: `"\b\f\n\r\t"`},
		// non-ASCII escapes with lowercase hex
		{val: "é", raw: `"\u00e9"`},
		{val: "café", raw: `"caf\u00e9"`},
		{val: "\x01", raw: `"\u0001"`},
		{val: "\x7f", raw: `"\u007f"`},
		// non-BMP emits a surrogate pair
		{val: "\U0001f600", raw: `"\ud83d\ude00"`},
	}
	for _, qt := range qts {
		if got := Quote(qt.val); got != qt.raw {
			t.Errorf("%q: got %s, want %s", qt.val, got, qt.raw)
		}
	}
}

func TestQuoteRoundTrip(t *testing.T) {
	vals := []string{
		"", "plain", "with \"quotes\"", "tab\there", "mixed é → \U0001f680",
		"\x00\x01\x02", "backslash \\ slash /",
	}
	for _, v := range vals {
		raw := Quote(v)
		n, err := quotedLen([]byte(raw))
		if err != nil {
			t.Fatalf("%q: quoted form %s does not scan: %v", v, raw, err)
		}
		if n != len(raw) {
			t.Fatalf("%q: scanned %d of %d bytes", v, n, len(raw))
		}
		if got := QuotedToString([]byte(raw)); got != v {
			t.Errorf("%q: round trip gave %q", v, got)
		}
	}
}
