package ir

import (
	"encoding/binary"
	"hash/maphash"
)

var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the node. Structurally equal nodes
// hash equal within a process. It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}
	var h maphash.Hash
	h.SetSeed(hashSeed)
	h.WriteByte(byte(n.Type))
	switch n.Type {
	case AtomType:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], uint64(len(n.Bytes)))
		h.Write(b[:])
		h.Write(n.Bytes)
	case ListType:
		var b [8]byte
		for _, v := range n.Values {
			// combine child hashes order-dependently
			binary.LittleEndian.PutUint64(b[:], v.Hash())
			h.Write(b[:])
		}
	}
	return h.Sum64()
}
