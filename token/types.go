package token

import "fmt"

type TokenType int

const (
	TLParen TokenType = iota
	TRParen
	TAtom
	TString
	THex
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TLParen: "TLParen",
		TRParen: "TRParen",
		TAtom:   "TAtom",
		TString: "TString",
		THex:    "THex",
	}[t]
}

// Token is a lexical element of the textual form. Bytes holds the
// raw source text of the token, including any quotes or hex marks.
type Token struct {
	Type  TokenType
	Bytes []byte
	Pos   Pos
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos)
}
