package encode

import (
	"bytes"

	"github.com/dynjson/go-dynjson/ir"
)

// MustString encodes y and panics on error. It is intended for trees
// built from the supported variants, where encoding cannot fail.
func MustString(y *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(y, buf); err != nil {
		panic(err)
	}
	return buf.String()
}
