package encode

type EncodeOption func(*EncState)

// Lenient makes encoding of unsupported node types fall back to the
// node's generic text representation wrapped as a JSON string, instead
// of failing. Type fidelity is lost; lenient encoding never errors.
func Lenient(v bool) EncodeOption {
	return func(es *EncState) { es.lenient = v }
}

// EncodeColors colorizes output for terminal display. Colored output is
// not re-parseable JSON.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}
