package wire

import "github.com/signadot/bsexp-format/go-bsexp/vli"

// Both pools are content-addressed: a map from an entry's canonical
// serialized form to its assigned index, checked before insertion.
// VLI encodings are minimal, so the serialized form is canonical and
// keying on it is sound.

type atomTable struct {
	index map[string]uint64
	buf   []byte
	n     uint64
}

func newAtomTable() *atomTable {
	return &atomTable{index: map[string]uint64{}}
}

// intern returns the index of the entry holding b, appending a new
// entry on first sight.
func (t *atomTable) intern(b []byte) uint64 {
	if i, ok := t.index[string(b)]; ok {
		return i
	}
	i := t.n
	t.index[string(b)] = i
	t.n++
	t.buf = vli.AppendUint64(t.buf, uint64(len(b)))
	t.buf = append(t.buf, b...)
	return i
}

type nodeTable struct {
	index   map[string]uint64
	buf     []byte
	n       uint64
	scratch []byte
}

func newNodeTable() *nodeTable {
	return &nodeTable{index: map[string]uint64{}}
}

// intern returns the index of the entry with exactly the given child
// sequence, appending a new entry on first sight. Children must
// already be resolved references.
func (t *nodeTable) intern(children []ref) uint64 {
	entry := vli.AppendUint64(t.scratch[:0], uint64(len(children)))
	for _, c := range children {
		entry = vli.AppendUint64(entry, uint64(c))
	}
	t.scratch = entry
	if i, ok := t.index[string(entry)]; ok {
		return i
	}
	i := t.n
	t.index[string(entry)] = i
	t.n++
	t.buf = append(t.buf, entry...)
	return i
}
