package encode

import (
	"bytes"
	"io"
	"strings"

	"github.com/signadot/bsexp-format/go-bsexp/ir"
)

type EncState struct {
	indent int
	width  int
	pretty bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w followed by a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	if err := es.encode(w, node, 0); err != nil {
		return err
	}
	return writeString(w, "\n")
}

// EncodeAll writes each node on its own top-level line.
func EncodeAll(nodes []*ir.Node, w io.Writer, opts ...EncodeOption) error {
	for _, node := range nodes {
		if err := Encode(node, w, opts...); err != nil {
			return err
		}
	}
	return nil
}

// String renders node without a trailing newline.
func String(node *ir.Node, opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	es := newEncState(opts)
	if err := es.encode(buf, node, 0); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func MustString(node *ir.Node, opts ...EncodeOption) string {
	s, err := String(node, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{
		indent: 1,
		width:  60,
		pretty: true,
	}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

func (es *EncState) encode(w io.Writer, n *ir.Node, depth int) error {
	if !es.pretty {
		return es.writeFlat(w, n)
	}
	return es.encodePretty(w, n, depth)
}

// encodePretty lays n out at the given depth. Atoms and lists whose
// one-line form fits within the width render flat; wider lists break,
// keeping an atomic first element on the open-paren line.
func (es *EncState) encodePretty(w io.Writer, n *ir.Node, depth int) error {
	if err := es.writeIndent(w, depth); err != nil {
		return err
	}
	if n.Type == ir.AtomType || es.flatLen(n) < es.width {
		return es.writeFlat(w, n)
	}
	if err := es.writeSep(w, "("); err != nil {
		return err
	}
	vals := n.Values
	if len(vals) > 0 && vals[0].Type == ir.AtomType {
		if err := es.writeFlat(w, vals[0]); err != nil {
			return err
		}
		vals = vals[1:]
	}
	for _, v := range vals {
		if err := writeString(w, "\n"); err != nil {
			return err
		}
		if err := es.encodePretty(w, v, depth+1); err != nil {
			return err
		}
	}
	return es.writeSep(w, ")")
}

// flatLen is the length of the one-line rendering, colors excluded.
func (es *EncState) flatLen(n *ir.Node) int {
	if n.Type == ir.AtomType {
		text, _ := atomText(n.Bytes)
		return len(text)
	}
	res := 2
	for i, v := range n.Values {
		if i > 0 {
			res++
		}
		res += es.flatLen(v)
	}
	return res
}

func (es *EncState) writeFlat(w io.Writer, n *ir.Node) error {
	if n.Type == ir.AtomType {
		text, attr := atomText(n.Bytes)
		return es.writeColored(w, ir.AtomType, attr, text)
	}
	if err := es.writeSep(w, "("); err != nil {
		return err
	}
	for i, v := range n.Values {
		if i > 0 {
			if err := writeString(w, " "); err != nil {
				return err
			}
		}
		if err := es.writeFlat(w, v); err != nil {
			return err
		}
	}
	return es.writeSep(w, ")")
}

func (es *EncState) writeIndent(w io.Writer, depth int) error {
	if depth == 0 {
		return nil
	}
	return writeString(w, strings.Repeat(" ", depth*es.indent))
}

func (es *EncState) writeSep(w io.Writer, sep string) error {
	return es.writeColored(w, ir.ListType, SepColor, sep)
}

func (es *EncState) writeColored(w io.Writer, t ir.Type, attr ColorAttr, s string) error {
	if es.Color != nil {
		s = es.Color(t, attr, s)
	}
	return writeString(w, s)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
