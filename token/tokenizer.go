package token

import (
	"fmt"
)

// Tokenizer provides pull-based tokenization over a byte cursor. All
// state is local to the Tokenizer, so distinct Tokenizers may be used
// from multiple goroutines simultaneously.
type Tokenizer struct {
	doc    []byte
	pos    int
	peeked *Token
}

func NewTokenizer(doc []byte) *Tokenizer {
	return &Tokenizer{doc: doc}
}

// Doc returns the input document.
func (t *Tokenizer) Doc() []byte {
	return t.doc
}

// Pos returns the offset of the next token to be scanned.
func (t *Tokenizer) Pos() Pos {
	if t.peeked != nil {
		return t.peeked.Pos
	}
	return Pos(t.pos)
}

// Peek classifies the next token without consuming it.
func (t *Tokenizer) Peek() (*Token, error) {
	if t.peeked != nil {
		return t.peeked, nil
	}
	tok, err := t.scan()
	if err != nil {
		return nil, err
	}
	t.peeked = &tok
	return t.peeked, nil
}

// Next classifies and consumes the next token. At end of input it
// returns a TEOF token, never an error, so callers can distinguish
// exhaustion from malformed input.
func (t *Tokenizer) Next() (Token, error) {
	if t.peeked != nil {
		tok := *t.peeked
		t.peeked = nil
		return tok, nil
	}
	return t.scan()
}

func (t *Tokenizer) skipWhitespace() {
	for t.pos < len(t.doc) {
		switch t.doc[t.pos] {
		case ' ', '\t', '\n', '\r':
			t.pos++
		default:
			return
		}
	}
}

func (t *Tokenizer) scan() (Token, error) {
	t.skipWhitespace()
	d := t.doc
	i := t.pos
	if i >= len(d) {
		return Token{Type: TEOF, Pos: Pos(i)}, nil
	}

	c := d[i]
	switch c {
	case '{':
		return t.delim(TLCurl), nil
	case '}':
		return t.delim(TRCurl), nil
	case '[':
		return t.delim(TLSquare), nil
	case ']':
		return t.delim(TRSquare), nil
	case ':':
		return t.delim(TColon), nil
	case ',':
		return t.delim(TComma), nil
	case '"':
		n, err := quotedLen(d[i:])
		if err != nil {
			return Token{}, NewTokenizeErr(err, Pos(i+n), d)
		}
		tok := Token{
			Type:  TString,
			Pos:   Pos(i),
			Bytes: d[i : i+n],
		}
		t.pos += n
		return tok, nil
	}

	if c == '-' || asciiDigit(c) {
		n, isFloat := scanNumber(d[i:])
		typ := TInteger
		if isFloat {
			typ = TFloat
		}
		tok := Token{
			Type:  typ,
			Pos:   Pos(i),
			Bytes: d[i : i+n],
		}
		t.pos += n
		return tok, nil
	}

	if asciiAlpha(c) {
		n := alphaRun(d[i:])
		word := d[i : i+n]
		var typ TokenType
		switch string(word) {
		case "true":
			typ = TTrue
		case "false":
			typ = TFalse
		case "null":
			typ = TNull
		default:
			return Token{}, NewTokenizeErr(
				fmt.Errorf("%w %q", ErrLiteral, word), Pos(i), d)
		}
		tok := Token{
			Type:  typ,
			Pos:   Pos(i),
			Bytes: word,
		}
		t.pos += n
		return tok, nil
	}

	return Token{}, UnexpectedErr(fmt.Sprintf("character %q", c), Pos(i), d)
}

func (t *Tokenizer) delim(typ TokenType) Token {
	i := t.pos
	t.pos++
	return Token{
		Type:  typ,
		Pos:   Pos(i),
		Bytes: t.doc[i : i+1],
	}
}

func asciiAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func alphaRun(d []byte) int {
	i := 0
	for i < len(d) && asciiAlpha(d[i]) {
		i++
	}
	return i
}
