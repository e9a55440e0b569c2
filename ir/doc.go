// Package ir provides the in-memory representation of binary
// s-expressions.
//
// # Overview
//
// An expression is either an atom, an opaque immutable byte string,
// or a list, an ordered sequence of expressions. Expressions are
// represented as a tree of nodes; the tree carries no sharing or
// position information and is purely semantic.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	a := ir.FromString("hello")
//	b := ir.Atom([]byte{0x01, 0x02})
//	l := ir.List(a, b)
//
// Equality between expressions is structural; see [Equal]. Trees
// decoded from the wire format may share subtree pointers, so use
// [Node.Clone] before mutating a decoded tree.
//
// # Related Packages
//
//   - github.com/signadot/bsexp-format/go-bsexp/wire - pooled binary codec
//   - github.com/signadot/bsexp-format/go-bsexp/encode - text rendering
//   - github.com/signadot/bsexp-format/go-bsexp/parse - text parsing
package ir
