// Package parse provides JSON parsing support.
//
// Parse builds an ir.Node tree from JSON text via recursive descent
// over a pull tokenizer. Failures are error values, never panics, and a
// successfully parsed JSON null is a NullType node, so valid null is
// never conflated with a failed parse. On failure no partial tree is
// returned.
//
// One deliberate leniency beyond the strict JSON grammar is inherited
// and preserved: comma tokens in object and array bodies are skipped as
// separators, so stray or leading commas are tolerated. Everything else
// (missing colons, non-string keys, misspelled keyword literals,
// truncated input) fails with a positioned error.
package parse

import (
	"fmt"
	"strconv"

	"github.com/dynjson/go-dynjson/ir"
	"github.com/dynjson/go-dynjson/token"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	tk := token.NewTokenizer(d)
	res, err := parseValue(tk, nil, 0, pOpts)
	if err != nil {
		return nil, asParseError(err, d)
	}
	trailing, err := tk.Next()
	if err != nil {
		return nil, asParseError(err, d)
	}
	if trailing.Type != token.TEOF {
		return nil, newParseError(
			fmt.Errorf("%w: trailing %q", ErrParse, string(trailing.Bytes)),
			trailing.Pos, d)
	}
	return res, nil
}

func parseValue(tk *token.Tokenizer, p *ir.Node, depth int, opts *parseOpts) (*ir.Node, error) {
	tok, err := tk.Next()
	if err != nil {
		return nil, err
	}
	switch tok.Type {
	case token.TLCurl:
		if depth >= opts.maxDepth {
			return nil, newParseError(ErrDepth, tok.Pos, tk.Doc())
		}
		objY := &ir.Node{Type: ir.ObjectType, Parent: p}
		return parseObj(tk, objY, depth+1, opts)
	case token.TLSquare:
		if depth >= opts.maxDepth {
			return nil, newParseError(ErrDepth, tok.Pos, tk.Doc())
		}
		arrY := &ir.Node{Type: ir.ArrayType, Parent: p}
		return parseArr(tk, arrY, depth+1, opts)
	case token.TString:
		sy := ir.FromString(tok.String())
		sy.Parent = p
		return sy, nil
	case token.TInteger:
		i, err := strconv.ParseInt(string(tok.Bytes), 10, 64)
		if err != nil {
			return nil, newParseError(
				fmt.Errorf("%w: invalid integer (%v)", ErrParse, err), tok.Pos, tk.Doc())
		}
		iy := ir.FromInt(i)
		iy.Parent = p
		return iy, nil
	case token.TFloat:
		f, err := strconv.ParseFloat(string(tok.Bytes), 64)
		if err != nil {
			return nil, newParseError(
				fmt.Errorf("%w: invalid float (%v)", ErrParse, err), tok.Pos, tk.Doc())
		}
		fy := ir.FromFloat(f)
		fy.Parent = p
		return fy, nil
	case token.TTrue:
		b := ir.FromBool(true)
		b.Parent = p
		return b, nil
	case token.TFalse:
		b := ir.FromBool(false)
		b.Parent = p
		return b, nil
	case token.TNull:
		res := ir.Null()
		res.Parent = p
		return res, nil
	case token.TEOF:
		return nil, newParseError(
			fmt.Errorf("%w: unexpected end of input", ErrParse), tok.Pos, tk.Doc())
	default:
		return nil, newParseError(
			fmt.Errorf("%w: unexpected token %q", ErrParse, string(tok.Bytes)),
			tok.Pos, tk.Doc())
	}
}

func parseObj(tk *token.Tokenizer, p *ir.Node, depth int, opts *parseOpts) (*ir.Node, error) {
	for {
		tok, err := tk.Next()
		if err != nil {
			return nil, err
		}
		switch tok.Type {
		case token.TRCurl:
			return p, nil
		case token.TComma:
			// separators, including stray ones, are skipped
		case token.TString:
			key := tok.String()
			colTok, err := tk.Next()
			if err != nil {
				return nil, err
			}
			if colTok.Type == token.TEOF {
				return nil, newParseError(
					fmt.Errorf("%w: premature end of object", ErrParse),
					colTok.Pos, tk.Doc())
			}
			if colTok.Type != token.TColon {
				return nil, newParseError(
					fmt.Errorf("%w: expected ':' after object key, got %q",
						ErrParse, string(colTok.Bytes)),
					colTok.Pos, tk.Doc())
			}
			val, err := parseValue(tk, p, depth, opts)
			if err != nil {
				return nil, err
			}
			p.Set(key, val)
		case token.TEOF:
			return nil, newParseError(
				fmt.Errorf("%w: premature end of object", ErrParse),
				tok.Pos, tk.Doc())
		default:
			return nil, newParseError(
				fmt.Errorf("%w: object key must be a string, got %q",
					ErrParse, string(tok.Bytes)),
				tok.Pos, tk.Doc())
		}
	}
}

func parseArr(tk *token.Tokenizer, p *ir.Node, depth int, opts *parseOpts) (*ir.Node, error) {
	for {
		tok, err := tk.Peek()
		if err != nil {
			return nil, err
		}
		switch tok.Type {
		case token.TRSquare:
			if _, err := tk.Next(); err != nil {
				return nil, err
			}
			return p, nil
		case token.TComma:
			if _, err := tk.Next(); err != nil {
				return nil, err
			}
		case token.TEOF:
			return nil, newParseError(
				fmt.Errorf("%w: premature end of array", ErrParse),
				tok.Pos, tk.Doc())
		default:
			elt, err := parseValue(tk, p, depth, opts)
			if err != nil {
				return nil, err
			}
			p.Append(elt)
		}
	}
}
