package wire

// ref is a tagged reference into the pools: bit 0 selects the pool,
// the remaining bits are the entry index. The bit layout is part of
// the wire format.
type ref uint64

const nodeTag = 1

func atomRef(index uint64) ref { return ref(index << 1) }
func nodeRef(index uint64) ref { return ref(index<<1 | nodeTag) }

func (r ref) isNode() bool  { return r&1 == nodeTag }
func (r ref) index() uint64 { return uint64(r) >> 1 }
