package encode

import (
	"testing"

	"github.com/signadot/bsexp-format/go-bsexp/ir"
	"github.com/signadot/bsexp-format/go-bsexp/parse"
)

func TestFlat(t *testing.T) {
	n := ir.List(
		ir.FromString("a"),
		ir.List(ir.FromString("b"), ir.FromString("c")),
		ir.List(),
	)
	got := MustString(n, Pretty(false))
	if got != "(a (b c) ())" {
		t.Errorf("got %q, want %q", got, "(a (b c) ())")
	}
}

func TestAtomSpelling(t *testing.T) {
	cases := []struct {
		atom []byte
		want string
	}{
		{[]byte("plain"), "plain"},
		{[]byte("fib-iter"), "fib-iter"},
		{[]byte("+"), "+"},
		{[]byte("two words"), `"two words"`},
		{[]byte(""), `""`},
		{[]byte("a\nb"), `"a\nb"`},
		{[]byte(`say "hi"`), `"say \"hi\""`},
		{[]byte{0xde, 0xad}, "#dead#"},
	}
	for _, c := range cases {
		if got := MustString(ir.Atom(c.atom)); got != c.want {
			t.Errorf("atom %q: got %q, want %q", c.atom, got, c.want)
		}
	}
}

const fibSrc = `(define (fibonacci n)
  (define (fib-iter a b count)
    (if (= count 0) a (fib-iter b (+ a b) (- count 1))))
  (fib-iter 0 1 n))`

const fibPretty = "(define\n" +
	" (fibonacci n)\n" +
	" (define\n" +
	"  (fib-iter a b count)\n" +
	"  (if (= count 0) a (fib-iter b (+ a b) (- count 1))))\n" +
	" (fib-iter 0 1 n))"

func TestPretty(t *testing.T) {
	fib, err := parse.ParseOne([]byte(fibSrc))
	if err != nil {
		t.Fatal(err)
	}
	if got := MustString(fib); got != fibPretty {
		t.Errorf("got:\n%s\nwant:\n%s", got, fibPretty)
	}
	// everything fits on one line with enough width
	wide := MustString(fib, Width(200))
	if len(wide) == 0 || wide[0] != '(' || containsNL(wide) {
		t.Errorf("wide layout should be flat, got:\n%s", wide)
	}
}

func containsNL(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return true
		}
	}
	return false
}

func TestTextRoundTrip(t *testing.T) {
	trees := []*ir.Node{
		ir.FromString("a"),
		ir.Atom(nil),
		ir.Atom([]byte{0x00, 0xff}),
		ir.FromString("white space"),
		ir.List(),
		ir.List(ir.List(ir.FromString("x")), ir.FromString("y z"), ir.Atom([]byte{1})),
	}
	for _, tree := range trees {
		for _, opts := range [][]EncodeOption{nil, {Pretty(false)}, {Width(1)}} {
			text := MustString(tree, opts...)
			got, err := parse.ParseOne([]byte(text))
			if err != nil {
				t.Fatalf("parse %q: %v", text, err)
			}
			if !ir.Equal(tree, got) {
				t.Errorf("round trip through %q changed tree", text)
			}
		}
	}
}

func TestColors(t *testing.T) {
	colors := &Colors{
		Default: func(s string, _ ...any) string { return "<" + s + ">" },
		Map:     map[Colorable]func(string, ...any) string{},
	}
	got := MustString(ir.List(ir.FromString("a")), EncodeColors(colors))
	if got != "<(><a><)>" {
		t.Errorf("got %q, want %q", got, "<(><a><)>")
	}
}
