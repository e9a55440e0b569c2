// Package bsexp provides a literal construction API for binary
// s-expressions and convenience wrappers over the wire codec.
//
//	tree := bsexp.L("define", bsexp.L("fib", "n"), body)
//	buf := bsexp.Marshal(tree)
//	back, err := bsexp.Unmarshal(buf)
package bsexp

import (
	"fmt"

	"github.com/signadot/bsexp-format/go-bsexp/ir"
	"github.com/signadot/bsexp-format/go-bsexp/wire"
)

// A returns an atom holding the bytes of s.
func A(s string) *ir.Node {
	return ir.FromString(s)
}

// AB returns an atom holding b.
func AB(b []byte) *ir.Node {
	return ir.Atom(b)
}

// L builds a list from literal items: strings and []byte become
// atoms, []any becomes a nested list, *ir.Node passes through. It
// panics on unsupported item types; use From for checked building.
func L(items ...any) *ir.Node {
	vals := make([]*ir.Node, len(items))
	for i, item := range items {
		n, err := From(item)
		if err != nil {
			panic(err)
		}
		vals[i] = n
	}
	return ir.FromSlice(vals)
}

// From builds an expression from a literal value.
func From(v any) (*ir.Node, error) {
	switch v := v.(type) {
	case *ir.Node:
		return v, nil
	case string:
		return ir.FromString(v), nil
	case []byte:
		return ir.Atom(v), nil
	case []string:
		vals := make([]*ir.Node, len(v))
		for i, s := range v {
			vals[i] = ir.FromString(s)
		}
		return ir.FromSlice(vals), nil
	case []any:
		vals := make([]*ir.Node, len(v))
		for i, item := range v {
			n, err := From(item)
			if err != nil {
				return nil, err
			}
			vals[i] = n
		}
		return ir.FromSlice(vals), nil
	}
	return nil, fmt.Errorf("cannot build expression from %T", v)
}

// Marshal serializes trees to the wire container.
func Marshal(roots ...*ir.Node) []byte {
	return wire.Encode(roots)
}

// Unmarshal parses a wire container back into trees.
func Unmarshal(d []byte) ([]*ir.Node, error) {
	return wire.Decode(d)
}
