package token

type TokenType int

const (
	TEOF TokenType = iota
	TNull
	TTrue
	TFalse
	TInteger
	TFloat
	TString
	TColon
	TComma
	TLCurl
	TRCurl
	TLSquare
	TRSquare
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TEOF:     "TEOF",
		TNull:    "TNull",
		TTrue:    "TTrue",
		TFalse:   "TFalse",
		TInteger: "TInteger",
		TFloat:   "TFloat",
		TString:  "TString",
		TColon:   "TColon",
		TComma:   "TComma",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
	}[t]
}

type Token struct {
	Type  TokenType
	Pos   Pos
	Bytes []byte
}

// String returns the token's value as text. For TString tokens the raw
// quoted bytes are translated: escape sequences become their literal
// characters and surrogate pair escapes are recombined. The bytes must
// have been validated by the tokenizer.
func (t *Token) String() string {
	switch t.Type {
	case TString:
		return QuotedToString(t.Bytes)
	default:
		return string(t.Bytes)
	}
}
