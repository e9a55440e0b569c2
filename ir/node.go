package ir

import "bytes"

type Type int

const (
	AtomType Type = iota
	ListType
)

func (t Type) String() string {
	switch t {
	case AtomType:
		return "Atom"
	case ListType:
		return "List"
	}
	return "<unknown type>"
}

// Types returns all expression types.
func Types() []Type {
	return []Type{AtomType, ListType}
}

// Node is a single expression: an atom holding bytes, or a list
// holding ordered sub-expressions.
type Node struct {
	Type   Type
	Bytes  []byte
	Values []*Node
}

// Atom returns an atom node holding b. The bytes are not copied; the
// caller must not modify b afterwards.
func Atom(b []byte) *Node {
	return &Node{Type: AtomType, Bytes: b}
}

// FromString returns an atom node holding the bytes of s.
func FromString(s string) *Node {
	return &Node{Type: AtomType, Bytes: []byte(s)}
}

// FromSlice returns a list node with the given values.
func FromSlice(vs []*Node) *Node {
	return &Node{Type: ListType, Values: vs}
}

// List returns a list node with the given values.
func List(vs ...*Node) *Node {
	return &Node{Type: ListType, Values: vs}
}

// Text returns the atom content as a string. It returns "" for
// lists.
func (n *Node) Text() string {
	if n.Type != AtomType {
		return ""
	}
	return string(n.Bytes)
}

// Equal reports structural equality of a and b. A nil node is equal
// only to nil.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	if a.Type == AtomType {
		return bytes.Equal(a.Bytes, b.Bytes)
	}
	if len(a.Values) != len(b.Values) {
		return false
	}
	for i := range a.Values {
		if !Equal(a.Values[i], b.Values[i]) {
			return false
		}
	}
	return true
}

// EqualSlices reports structural equality of two expression
// sequences.
func EqualSlices(as, bs []*Node) bool {
	if len(as) != len(bs) {
		return false
	}
	for i := range as {
		if !Equal(as[i], bs[i]) {
			return false
		}
	}
	return true
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

func (n *Node) CloneTo(dst *Node) *Node {
	dst.Type = n.Type
	if n.Bytes != nil {
		dst.Bytes = append([]byte(nil), n.Bytes...)
	} else {
		dst.Bytes = nil
	}
	if n.Values == nil {
		dst.Values = nil
		return dst
	}
	dst.Values = make([]*Node, len(n.Values))
	for i, v := range n.Values {
		dstI := &Node{}
		v.CloneTo(dstI)
		dst.Values[i] = dstI
	}
	return dst
}

// Visit calls f for n and every descendant, once before descending
// (isPost false) and once after (isPost true). Returning false from
// the pre call skips the node's values.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, v := range n.Values {
			if err := v.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
