package wire

import (
	"fmt"

	"github.com/signadot/bsexp-format/go-bsexp/ir"
	"github.com/signadot/bsexp-format/go-bsexp/vli"
)

type reader struct {
	buf []byte
	off int
}

func (r *reader) uint64() (uint64, error) {
	v, n, err := vli.Uint64(r.buf[r.off:])
	if err != nil {
		return 0, err
	}
	r.off += n
	return v, nil
}

func (r *reader) slice(n uint64) ([]byte, error) {
	if n > uint64(len(r.buf)-r.off) {
		return nil, ErrTruncatedInput
	}
	s := r.buf[r.off : r.off+int(n)]
	r.off += int(n)
	return s, nil
}

func (r *reader) rest() int { return len(r.buf) - r.off }

// Decode parses a buffer produced by Encode back into its expression
// sequence. It fails fast on the first structural problem and never
// returns a partial result. Each node pool entry is materialized
// exactly once; multiple references to it share the resulting subtree
// pointer, so Clone decoded trees before mutating them.
func Decode(buf []byte) ([]*ir.Node, error) {
	r := &reader{buf: buf}
	atomCount, err := r.uint64()
	if err != nil {
		return nil, err
	}
	atomBufLen, err := r.uint64()
	if err != nil {
		return nil, err
	}
	atomBuf, err := r.slice(atomBufLen)
	if err != nil {
		return nil, err
	}
	atoms, err := parseAtoms(atomBuf, atomCount)
	if err != nil {
		return nil, err
	}
	rootCount, err := r.uint64()
	if err != nil {
		return nil, err
	}
	// every root takes at least one byte
	if rootCount > uint64(r.rest()) {
		return nil, ErrTruncatedInput
	}
	rootRefs := make([]ref, rootCount)
	for i := range rootRefs {
		v, err := r.uint64()
		if err != nil {
			return nil, err
		}
		rootRefs[i] = ref(v)
	}
	nodeCount, err := r.uint64()
	if err != nil {
		return nil, err
	}
	nodeBufLen, err := r.uint64()
	if err != nil {
		return nil, err
	}
	nodeBuf, err := r.slice(nodeBufLen)
	if err != nil {
		return nil, err
	}
	if r.off != len(buf) {
		return nil, fmt.Errorf("%w: %d bytes after node pool", ErrCorrupt, r.rest())
	}
	entries, err := parseNodes(nodeBuf, nodeCount, atomCount)
	if err != nil {
		return nil, err
	}
	for i, rr := range rootRefs {
		if err := checkRef(rr, atomCount, nodeCount); err != nil {
			return nil, fmt.Errorf("%w: root %d", err, i)
		}
	}
	// materialize in index order: the lower-index-only invariant
	// guarantees every child is already built
	memo := make([]*ir.Node, len(entries))
	for i, children := range entries {
		vals := make([]*ir.Node, len(children))
		for j, c := range children {
			vals[j] = materialize(c, atoms, memo)
		}
		memo[i] = ir.FromSlice(vals)
	}
	out := make([]*ir.Node, len(rootRefs))
	for i, rr := range rootRefs {
		out[i] = materialize(rr, atoms, memo)
	}
	return out, nil
}

func materialize(r ref, atoms [][]byte, memo []*ir.Node) *ir.Node {
	if r.isNode() {
		return memo[r.index()]
	}
	return ir.Atom(atoms[r.index()])
}

func checkRef(r ref, atomCount, nodeCount uint64) error {
	limit := atomCount
	if r.isNode() {
		limit = nodeCount
	}
	if r.index() >= limit {
		return ErrInvalidReference
	}
	return nil
}

// parseAtoms splits the atom pool into count byte strings. The bytes
// are copied, so decoded atoms do not alias the input buffer.
func parseAtoms(buf []byte, count uint64) ([][]byte, error) {
	if count > uint64(len(buf)) {
		return nil, ErrTruncatedInput
	}
	atoms := make([][]byte, count)
	off := 0
	for i := range atoms {
		n, sz, err := vli.Uint64(buf[off:])
		if err != nil {
			return nil, err
		}
		off += sz
		if n > uint64(len(buf)-off) {
			return nil, ErrTruncatedInput
		}
		atoms[i] = append([]byte(nil), buf[off:off+int(n)]...)
		off += int(n)
	}
	if off != len(buf) {
		return nil, fmt.Errorf("%w: %d unused bytes in atom pool", ErrCorrupt, len(buf)-off)
	}
	return atoms, nil
}

// parseNodes splits the node pool into count child-reference
// sequences, checking each reference: atom indices must be in range
// and node references must target a strictly lower index.
func parseNodes(buf []byte, count, atomCount uint64) ([][]ref, error) {
	if count > uint64(len(buf)) {
		return nil, ErrTruncatedInput
	}
	entries := make([][]ref, count)
	off := 0
	for i := range entries {
		childCount, sz, err := vli.Uint64(buf[off:])
		if err != nil {
			return nil, err
		}
		off += sz
		if childCount > uint64(len(buf)-off) {
			return nil, ErrTruncatedInput
		}
		children := make([]ref, childCount)
		for j := range children {
			v, sz, err := vli.Uint64(buf[off:])
			if err != nil {
				return nil, err
			}
			off += sz
			c := ref(v)
			if err := checkRef(c, atomCount, uint64(i)); err != nil {
				return nil, fmt.Errorf("%w: node %d child %d", err, i, j)
			}
			children[j] = c
		}
		entries[i] = children
	}
	if off != len(buf) {
		return nil, fmt.Errorf("%w: %d unused bytes in node pool", ErrCorrupt, len(buf)-off)
	}
	return entries, nil
}
