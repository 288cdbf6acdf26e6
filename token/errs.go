package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminated = errors.New("unterminated string")
	ErrBadEscape    = errors.New("bad escape")
	ErrBadUnicode   = errors.New("bad unicode escape")
	ErrLiteral      = errors.New("bad literal")
)

// TokenizeErr wraps a tokenization failure with the offset at which
// tokenizing stopped and a snippet of the surrounding input.
type TokenizeErr struct {
	Err     error
	Pos     Pos
	Snippet string
}

func (e *TokenizeErr) Unwrap() error {
	return e.Err
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at offset %d: near %q", e.Err.Error(), int(e.Pos), e.Snippet)
}

func NewTokenizeErr(err error, pos Pos, doc []byte) *TokenizeErr {
	return &TokenizeErr{Err: err, Pos: pos, Snippet: pos.Context(doc)}
}

func UnexpectedErr(what string, pos Pos, doc []byte) error {
	return NewTokenizeErr(fmt.Errorf("unexpected %s", what), pos, doc)
}
