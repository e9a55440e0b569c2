package bsexp

import (
	"testing"

	"github.com/signadot/bsexp-format/go-bsexp/ir"
)

func TestL(t *testing.T) {
	got := L("define", L("fib", "n"), []byte{1, 2})
	want := ir.List(
		ir.FromString("define"),
		ir.List(ir.FromString("fib"), ir.FromString("n")),
		ir.Atom([]byte{1, 2}),
	)
	if !ir.Equal(want, got) {
		t.Error("literal tree differs")
	}
}

func TestFrom(t *testing.T) {
	got, err := From([]any{"if", []string{"=", "n", "0"}, "a"})
	if err != nil {
		t.Fatal(err)
	}
	want := ir.List(
		ir.FromString("if"),
		ir.List(ir.FromString("="), ir.FromString("n"), ir.FromString("0")),
		ir.FromString("a"),
	)
	if !ir.Equal(want, got) {
		t.Error("From tree differs")
	}
	if _, err := From(42); err == nil {
		t.Error("expected error for unsupported type")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	roots := []*ir.Node{
		A("a"),
		L("b", "c"),
	}
	got, err := Unmarshal(Marshal(roots...))
	if err != nil {
		t.Fatal(err)
	}
	if !ir.EqualSlices(roots, got) {
		t.Error("marshal round trip changed trees")
	}
}
