package parse

import (
	"bytes"
	"testing"

	"github.com/signadot/bsexp-format/go-bsexp/encode"
	"github.com/signadot/bsexp-format/go-bsexp/ir"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		``,
		`a`,
		`()`,
		`(a b c)`,
		`((nested) (lists))`,
		`"with\nnewline"`,
		`"with \"quotes\""`,
		`#dead beef#`,
		`; only a comment`,
		`(a ; trailing
		b)`,
		`(define (fib n) (if (< n 2) n (+ (fib (- n 1)) (fib (- n 2)))))`,
		`(`,
		`)`,
		`#zz#`,
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		// primary target: parse should not panic
		nodes, err := Parse(data)
		if err != nil {
			return // parse errors are expected for random input
		}
		// if parse succeeds, rendering must parse back to the same trees
		buf := bytes.NewBuffer(nil)
		if err := encode.EncodeAll(nodes, buf); err != nil {
			t.Fatalf("encode: %v", err)
		}
		again, err := Parse(buf.Bytes())
		if err != nil {
			t.Fatalf("re-parse %q: %v", buf.Bytes(), err)
		}
		if !ir.EqualSlices(nodes, again) {
			t.Fatalf("render round trip changed trees for %q", data)
		}
	})
}
