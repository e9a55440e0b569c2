// Package encode renders ir trees as text.
//
// # Usage
//
//	// Pretty print to a writer
//	err := encode.Encode(node, w)
//
//	// One-line form
//	err := encode.Encode(node, w, encode.Pretty(false))
//
//	// Wider layout with colors
//	err := encode.Encode(node, w,
//	    encode.Width(100),
//	    encode.EncodeColors(encode.NewColors()))
//
// A list whose one-line rendering fits within the width stays on one
// line; otherwise it breaks, with an atomic first element kept on the
// open-paren line and the remaining elements indented one level each.
//
// Atoms are spelled bare when their bytes allow it, as quoted
// strings with escapes otherwise, and as #..# hex atoms when they
// are not valid UTF-8.
//
// # Related Packages
//
//   - github.com/signadot/bsexp-format/go-bsexp/ir - expression trees
//   - github.com/signadot/bsexp-format/go-bsexp/parse - text to ir
package encode
