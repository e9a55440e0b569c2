package encode

import (
	"encoding/hex"
	"strconv"
	"unicode/utf8"

	"github.com/signadot/bsexp-format/go-bsexp/token"
)

// atomText picks the spelling for an atom: bare when the tokenizer
// would read it back as one token, quoted for other UTF-8 content,
// #..# hex for arbitrary bytes.
func atomText(b []byte) (string, ColorAttr) {
	if token.IsBare(b) {
		return string(b), ValueColor
	}
	if utf8.Valid(b) {
		return strconv.Quote(string(b)), LiteralColor
	}
	return "#" + hex.EncodeToString(b) + "#", LiteralColor
}
