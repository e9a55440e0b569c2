package parse

import (
	"errors"
	"testing"

	"github.com/signadot/bsexp-format/go-bsexp/ir"
)

type parseTest struct {
	in   string
	want *ir.Node
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{
			in:   `a`,
			want: ir.FromString("a"),
		},
		{
			in:   `()`,
			want: ir.List(),
		},
		{
			in:   `(a b)`,
			want: ir.List(ir.FromString("a"), ir.FromString("b")),
		},
		{
			in:   `(a (b c))`,
			want: ir.List(ir.FromString("a"), ir.List(ir.FromString("b"), ir.FromString("c"))),
		},
		{
			in:   `"two words"`,
			want: ir.FromString("two words"),
		},
		{
			in:   `"esc\n\"q\""`,
			want: ir.FromString("esc\n\"q\""),
		},
		{
			in:   `#dead#`,
			want: ir.Atom([]byte{0xde, 0xad}),
		},
		{
			in:   `#de ad#`,
			want: ir.Atom([]byte{0xde, 0xad}),
		},
		{
			in: `(a ; mid comment
				b)`,
			want: ir.List(ir.FromString("a"), ir.FromString("b")),
		},
		{
			in:   "(+ 1 2)",
			want: ir.List(ir.FromString("+"), ir.FromString("1"), ir.FromString("2")),
		},
	}
	for _, pt := range pts {
		got, err := ParseOne([]byte(pt.in))
		if err != nil {
			t.Errorf("%q: %v", pt.in, err)
			continue
		}
		if !ir.Equal(pt.want, got) {
			t.Errorf("%q: parsed tree differs", pt.in)
		}
	}
}

func TestParseSequence(t *testing.T) {
	res, err := Parse([]byte("a (b) c"))
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 3 {
		t.Fatalf("got %d expressions, want 3", len(res))
	}
	if !ir.Equal(res[1], ir.List(ir.FromString("b"))) {
		t.Error("second expression differs")
	}
	res, err = Parse(nil)
	if err != nil || len(res) != 0 {
		t.Errorf("empty input: got (%d, %v)", len(res), err)
	}
}

func TestParseErrs(t *testing.T) {
	for _, in := range []string{`(a`, `)`, `(a))`, `((`, `#0#`} {
		if _, err := Parse([]byte(in)); !errors.Is(err, ErrParse) {
			t.Errorf("%q: got %v, want ErrParse", in, err)
		}
	}
}
