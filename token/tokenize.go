// Package token tokenizes the textual form of binary s-expressions.
//
// The surface syntax has parentheses, bare atoms, quoted strings
// with Go escape syntax, `#..#` hex atoms for arbitrary bytes, and
// `;` line comments.
package token

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"
)

var ErrTokenize = errors.New("tokenize error")

// delim reports bytes that end a bare atom.
func delim(b byte) bool {
	switch b {
	case '(', ')', '"', '#', ';', ' ', '\t', '\r', '\n':
		return true
	}
	return false
}

// IsBare reports whether b can be spelled as a bare atom: nonempty,
// valid UTF-8, printable, and free of delimiters. The encoder uses
// this to pick an atom spelling.
func IsBare(b []byte) bool {
	if len(b) == 0 || !utf8.Valid(b) {
		return false
	}
	for i := 0; i < len(b); {
		if b[i] < utf8.RuneSelf && delim(b[i]) {
			return false
		}
		r, sz := utf8.DecodeRune(b[i:])
		if !unicode.IsPrint(r) {
			return false
		}
		i += sz
	}
	return true
}

type scanner struct {
	d    []byte
	off  int
	line int
	col  int
}

func (s *scanner) pos() Pos {
	return Pos{Off: s.off, Line: s.line, Col: s.col}
}

func (s *scanner) advance() {
	if s.d[s.off] == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	s.off++
}

func (s *scanner) eof() bool { return s.off >= len(s.d) }

// Tokenize scans d into tokens. Comments and whitespace are elided.
func Tokenize(d []byte) ([]Token, error) {
	s := &scanner{d: d, line: 1, col: 1}
	var res []Token
	for !s.eof() {
		c := d[s.off]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			s.advance()
		case c == ';':
			for !s.eof() && d[s.off] != '\n' {
				s.advance()
			}
		case c == '(':
			res = append(res, Token{Type: TLParen, Bytes: d[s.off : s.off+1], Pos: s.pos()})
			s.advance()
		case c == ')':
			res = append(res, Token{Type: TRParen, Bytes: d[s.off : s.off+1], Pos: s.pos()})
			s.advance()
		case c == '"':
			tok, err := s.quoted()
			if err != nil {
				return nil, err
			}
			res = append(res, tok)
		case c == '#':
			tok, err := s.hex()
			if err != nil {
				return nil, err
			}
			res = append(res, tok)
		default:
			start, pos := s.off, s.pos()
			for !s.eof() && !delim(d[s.off]) {
				s.advance()
			}
			res = append(res, Token{Type: TAtom, Bytes: d[start:s.off], Pos: pos})
		}
	}
	return res, nil
}

// quoted scans a double-quoted string, raw text included. Escapes
// are resolved later by the parser; here a backslash only shields
// the next byte from terminating the token.
func (s *scanner) quoted() (Token, error) {
	start, pos := s.off, s.pos()
	s.advance()
	for !s.eof() {
		switch s.d[s.off] {
		case '\\':
			s.advance()
			if s.eof() {
				break
			}
			s.advance()
		case '"':
			s.advance()
			return Token{Type: TString, Bytes: s.d[start:s.off], Pos: pos}, nil
		case '\n':
			return Token{}, fmt.Errorf("%w: newline in string at %s", ErrTokenize, s.pos())
		default:
			s.advance()
		}
	}
	return Token{}, fmt.Errorf("%w: unterminated string at %s", ErrTokenize, pos)
}

// hex scans a #..# atom. Only hex digits and spaces may appear
// between the marks.
func (s *scanner) hex() (Token, error) {
	start, pos := s.off, s.pos()
	s.advance()
	for !s.eof() {
		c := s.d[s.off]
		switch {
		case c == '#':
			s.advance()
			return Token{Type: THex, Bytes: s.d[start:s.off], Pos: pos}, nil
		case c == ' ' || c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F':
			s.advance()
		default:
			return Token{}, fmt.Errorf("%w: bad hex atom byte %q at %s", ErrTokenize, c, s.pos())
		}
	}
	return Token{}, fmt.Errorf("%w: unterminated hex atom at %s", ErrTokenize, pos)
}
