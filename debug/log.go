package debug

import (
	"fmt"
	"os"

	"github.com/signadot/bsexp-format/go-bsexp/encode"
	"github.com/signadot/bsexp-format/go-bsexp/ir"
)

// Sexp renders a node for log output.
type Sexp struct{ *ir.Node }

func (s Sexp) String() string {
	str, err := encode.String(s.Node)
	if err != nil {
		return fmt.Sprintf("[raw node] %v", s.Node)
	}
	return str
}

func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Node:
			args[i] = Sexp{x}.String()
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
