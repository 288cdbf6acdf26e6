// Package token provides lexical analysis for JSON text.
//
// A Tokenizer maintains a cursor over the input document and classifies
// the next significant input into a Token on demand, via Next and Peek.
// The tokenizer owns whitespace skipping and consumes structural
// delimiters ('{', '}', '[', ']', ':', ',') as part of classification,
// so callers never see or double-consume delimiter bytes.
//
// String tokens carry the raw quoted bytes of the input; Token.String
// translates escape sequences. Number tokens are classified as TInteger
// or TFloat from the spelling alone: a maximal run of number bytes
// containing '.', 'e' or 'E' is a float, otherwise an integer.
package token
