package wire

import (
	"github.com/signadot/bsexp-format/go-bsexp/ir"
	"github.com/signadot/bsexp-format/go-bsexp/vli"
)

type encoder struct {
	atoms *atomTable
	nodes *nodeTable
	seen  map[*ir.Node]ref
}

// Encode serializes the given expression sequence. Atom contents and
// node child sequences are interned, so repeated bytes and repeated
// sub-structure are stored once. Equal inputs yield byte-identical
// output. It panics if any node is nil.
func Encode(roots []*ir.Node) []byte {
	e := &encoder{
		atoms: newAtomTable(),
		nodes: newNodeTable(),
		seen:  map[*ir.Node]ref{},
	}
	rootRefs := make([]ref, len(roots))
	for i, r := range roots {
		rootRefs[i] = e.resolve(r)
	}
	out := vli.AppendUint64(nil, e.atoms.n)
	out = vli.AppendUint64(out, uint64(len(e.atoms.buf)))
	out = append(out, e.atoms.buf...)
	out = vli.AppendUint64(out, uint64(len(rootRefs)))
	for _, r := range rootRefs {
		out = vli.AppendUint64(out, uint64(r))
	}
	out = vli.AppendUint64(out, e.nodes.n)
	out = vli.AppendUint64(out, uint64(len(e.nodes.buf)))
	out = append(out, e.nodes.buf...)
	return out
}

// resolve interns n bottom-up and returns its reference. Children are
// resolved left to right before the node itself, so every child
// reference targets a strictly lower node index. Resolution is
// memoized per pointer, keeping cost linear for inputs that already
// share subtree pointers.
func (e *encoder) resolve(n *ir.Node) ref {
	if n == nil {
		panic("wire: Encode called on nil node")
	}
	if r, ok := e.seen[n]; ok {
		return r
	}
	var r ref
	if n.Type == ir.AtomType {
		r = atomRef(e.atoms.intern(n.Bytes))
	} else {
		children := make([]ref, len(n.Values))
		for i, v := range n.Values {
			children[i] = e.resolve(v)
		}
		r = nodeRef(e.nodes.intern(children))
	}
	e.seen[n] = r
	return r
}
