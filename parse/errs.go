package parse

import (
	"errors"
	"fmt"

	"github.com/dynjson/go-dynjson/token"
)

var (
	ErrParse = errors.New("parse error")
	ErrDepth = errors.New("max depth exceeded")
)

// ParseError reports where parsing stopped. Offset is the byte position
// in the input, and Snippet is the input substring spanning
// [Offset-5, Offset+15], clamped to the document bounds.
type ParseError struct {
	Err     error
	Offset  int
	Snippet string
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v at offset %d: near %q", e.Err, e.Offset, e.Snippet)
}

func newParseError(err error, pos token.Pos, doc []byte) *ParseError {
	return &ParseError{
		Err:     err,
		Offset:  int(pos),
		Snippet: pos.Context(doc),
	}
}

// asParseError normalizes tokenizer errors into *ParseError so decode
// failures always carry an offset and snippet.
func asParseError(err error, doc []byte) *ParseError {
	pe := &ParseError{}
	if errors.As(err, &pe) {
		return pe
	}
	te := &token.TokenizeErr{}
	if errors.As(err, &te) {
		return &ParseError{Err: te.Err, Offset: int(te.Pos), Snippet: te.Snippet}
	}
	return &ParseError{Err: err, Offset: 0, Snippet: token.Pos(0).Context(doc)}
}
