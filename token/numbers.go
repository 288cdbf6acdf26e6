package token

// scanNumber returns the length of the maximal run of number bytes
// ([0-9], '+', '-', '.', 'e', 'E') at the start of d, and whether the
// run spells a float. A run containing '.', 'e' or 'E' is a float;
// anything else is an integer, so exponent-only numerals like 1e10
// classify as floats. No further grammar validation happens here:
// malformed runs such as "1-2" fail at the strconv conversion step in
// the parser.
func scanNumber(d []byte) (int, bool) {
	i, isFloat := 0, false
	for i < len(d) {
		switch c := d[i]; {
		case asciiDigit(c):
		case c == '+' || c == '-':
		case c == '.' || c == 'e' || c == 'E':
			isFloat = true
		default:
			return i, isFloat
		}
		i++
	}
	return i, isFloat
}

func asciiDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}
