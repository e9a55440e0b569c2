// Package parse reads the textual form of binary s-expressions into
// ir trees. It is the inverse of the encode package.
package parse

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/bsexp-format/go-bsexp/ir"
	"github.com/signadot/bsexp-format/go-bsexp/token"
)

var ErrParse = errors.New("parse error")

// Parse reads d as a sequence of top-level expressions.
func Parse(d []byte) ([]*ir.Node, error) {
	toks, err := token.Tokenize(d)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	var res []*ir.Node
	for !p.eof() {
		n, err := p.expr()
		if err != nil {
			return nil, err
		}
		res = append(res, n)
	}
	return res, nil
}

// ParseOne reads d as exactly one expression.
func ParseOne(d []byte) (*ir.Node, error) {
	res, err := Parse(d)
	if err != nil {
		return nil, err
	}
	if len(res) != 1 {
		return nil, fmt.Errorf("%w: got %d expressions, want 1", ErrParse, len(res))
	}
	return res[0], nil
}

type parser struct {
	toks []token.Token
	i    int
}

func (p *parser) eof() bool { return p.i >= len(p.toks) }

func (p *parser) expr() (*ir.Node, error) {
	t := &p.toks[p.i]
	p.i++
	switch t.Type {
	case token.TLParen:
		var vals []*ir.Node
		for {
			if p.eof() {
				return nil, fmt.Errorf("%w: unbalanced ( at %s", ErrParse, t.Pos)
			}
			if p.toks[p.i].Type == token.TRParen {
				p.i++
				return ir.FromSlice(vals), nil
			}
			v, err := p.expr()
			if err != nil {
				return nil, err
			}
			vals = append(vals, v)
		}
	case token.TRParen:
		return nil, fmt.Errorf("%w: unexpected ) at %s", ErrParse, t.Pos)
	case token.TAtom:
		return ir.Atom(append([]byte(nil), t.Bytes...)), nil
	case token.TString:
		s, err := strconv.Unquote(string(t.Bytes))
		if err != nil {
			return nil, fmt.Errorf("%w: bad string at %s: %v", ErrParse, t.Pos, err)
		}
		return ir.FromString(s), nil
	case token.THex:
		inner := strings.ReplaceAll(string(t.Bytes[1:len(t.Bytes)-1]), " ", "")
		b, err := hex.DecodeString(inner)
		if err != nil {
			return nil, fmt.Errorf("%w: bad hex atom at %s: %v", ErrParse, t.Pos, err)
		}
		return ir.Atom(b), nil
	}
	return nil, fmt.Errorf("%w: unexpected token %s", ErrParse, t.Info())
}
