package token

import (
	"encoding/hex"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// quotedLen validates the quoted string starting at d[0] == '"' and
// returns the number of bytes through the closing quote. On failure the
// returned length is the offset within d where scanning stopped.
func quotedLen(d []byte) (int, error) {
	i, n := 1, len(d)
	for i < n {
		switch d[i] {
		case '"':
			return i + 1, nil
		case '\\':
			i++
			if i >= n {
				return i, ErrUnterminated
			}
			switch d[i] {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				i++
			case 'u':
				if i+5 > n {
					return i, ErrBadUnicode
				}
				if !allHex(d[i+1 : i+5]) {
					return i, ErrBadUnicode
				}
				i += 5
			default:
				return i, ErrBadEscape
			}
		default:
			i++
		}
	}
	return n, ErrUnterminated
}

func allHex(d []byte) bool {
	for _, c := range d {
		if c >= '0' && c <= '9' {
			continue
		}
		if c >= 'a' && c <= 'f' {
			continue
		}
		if c >= 'A' && c <= 'F' {
			continue
		}
		return false
	}
	return true
}

// QuotedToString translates the raw quoted bytes of a validated string
// token into its value. Escape sequences become their literal
// characters; a \uXXXX high surrogate escape followed by a \uXXXX low
// surrogate escape is recombined into the single code point it encodes,
// and a lone surrogate becomes U+FFFD.
func QuotedToString(d []byte) string {
	b := &strings.Builder{}
	i, n := 1, len(d)-1
	for i < n {
		c := d[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		i++
		switch d[i] {
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		case '/':
			b.WriteByte('/')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'u':
			r, sz := unicodeEscape(d[i+1:])
			b.WriteRune(r)
			i += sz
		}
		i++
	}
	return b.String()
}

// unicodeEscape decodes the four hex digits at the start of d and, for
// surrogate pairs, the following \uXXXX escape as well. It returns the
// decoded rune and the number of bytes consumed.
func unicodeEscape(d []byte) (rune, int) {
	r1 := hex4(d[:4])
	if !utf16.IsSurrogate(r1) {
		return r1, 4
	}
	if len(d) >= 10 && d[4] == '\\' && d[5] == 'u' && allHex(d[6:10]) {
		r2 := hex4(d[6:10])
		if r := utf16.DecodeRune(r1, r2); r != utf8.RuneError {
			return r, 10
		}
	}
	return utf8.RuneError, 4
}

func hex4(d []byte) rune {
	dst := []byte{0, 0}
	if _, err := hex.Decode(dst, d); err != nil {
		return utf8.RuneError
	}
	return rune(dst[0])<<8 | rune(dst[1])
}

// Quote renders v as a JSON string. Output is printable ASCII: '"',
// '\\' and the control characters \b \f \n \r \t become two-character
// escapes, and every other character outside 0x20-0x7E is emitted as
// \u plus four lowercase hex digits per UTF-16 code unit, so non-BMP
// characters emit a surrogate pair of escapes.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if r >= 0x20 && r <= 0x7e {
				d = append(d, byte(r))
				continue
			}
			if r > 0xffff {
				r1, r2 := utf16.EncodeRune(r)
				d = appendUnit(d, uint16(r1))
				d = appendUnit(d, uint16(r2))
				continue
			}
			d = appendUnit(d, uint16(r))
		}
	}
	d = append(d, '"')
	return string(d)
}

func appendUnit(d []byte, u uint16) []byte {
	ucs := []byte{byte(u >> 8), byte(u)}
	cps := hex.AppendEncode(make([]byte, 0, 4), ucs)
	return append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
}
