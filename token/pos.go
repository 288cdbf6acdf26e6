package token

const (
	contextBefore = 5
	contextAfter  = 15
)

// Pos is a byte offset into the input document.
type Pos int

// Context returns the input substring spanning [p-5, p+15], clamped to
// the document bounds. It is used to render error messages.
func (p Pos) Context(d []byte) string {
	start := max(0, int(p)-contextBefore)
	end := min(len(d), int(p)+contextAfter)
	if start >= end {
		return ""
	}
	return string(d[start:end])
}
