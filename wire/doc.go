// Package wire implements the pooled binary container format for
// expression trees.
//
// # Layout
//
// All integer fields are VLI encoded (see the vli package):
//
//	file      := atomCount atomBufLen atomBuf rootCount root* nodeCount nodeBufLen nodeBuf
//	atomBuf   := (vli(len) bytes){atomCount}
//	root      := vli(taggedRef)
//	nodeBuf   := (vli(childCount) vli(taggedRef){childCount}){nodeCount}
//	taggedRef := (index << 1) | tag      // tag 0 = atom index, tag 1 = node index
//
// # Sharing
//
// Encoding interns atom contents and node child sequences, assigning
// indices in first-seen order. Byte-identical atoms and structurally
// identical sub-lists each get exactly one pool entry, so the tree
// becomes a DAG on the wire. Every node entry references only atoms
// or nodes with strictly lower indices; there are no cycles and no
// forward references.
//
// Encoding is deterministic: equal input sequences produce
// byte-identical buffers.
//
// # Decoding
//
// Decode materializes node entries in index order, memoizing each by
// index, so reconstruction cost is linear in the pool size rather
// than the fully expanded tree. Decoded trees may therefore share
// subtree pointers; Clone before mutating. Decoding fails fast with
// a typed error and never returns a partial result.
//
// # Related Packages
//
//   - github.com/signadot/bsexp-format/go-bsexp/vli - integer encoding
//   - github.com/signadot/bsexp-format/go-bsexp/ir - expression trees
package wire
