package token

import (
	"errors"
	"testing"
)

func types(toks []Token) []TokenType {
	res := make([]TokenType, len(toks))
	for i := range toks {
		res[i] = toks[i].Type
	}
	return res
}

func TestTokenizeBasic(t *testing.T) {
	toks, err := Tokenize([]byte(`(a "b c" #00ff# ; comment
	d)`))
	if err != nil {
		t.Fatal(err)
	}
	want := []TokenType{TLParen, TAtom, TString, THex, TAtom, TRParen}
	got := types(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
	if string(toks[2].Bytes) != `"b c"` {
		t.Errorf("string token bytes: got %q", toks[2].Bytes)
	}
	if string(toks[4].Bytes) != "d" {
		t.Errorf("atom token bytes: got %q", toks[4].Bytes)
	}
}

func TestTokenizePos(t *testing.T) {
	toks, err := Tokenize([]byte("(a\n  b)"))
	if err != nil {
		t.Fatal(err)
	}
	b := toks[2]
	if b.Pos.Line != 2 || b.Pos.Col != 3 {
		t.Errorf("got %s, want line 2, col 3", b.Pos)
	}
}

func TestTokenizeErrs(t *testing.T) {
	for _, in := range []string{`"abc`, `"ab\"`, "\"a\nb\"", `#00`, `#0g#`} {
		if _, err := Tokenize([]byte(in)); !errors.Is(err, ErrTokenize) {
			t.Errorf("%q: got %v, want ErrTokenize", in, err)
		}
	}
}

func TestIsBare(t *testing.T) {
	for _, ok := range []string{"a", "fib-iter", "+", "=", "0", "héllo"} {
		if !IsBare([]byte(ok)) {
			t.Errorf("IsBare(%q) = false", ok)
		}
	}
	for _, bad := range []string{"", "a b", "(", "a)", `a"b`, "a#b", "a;b", "a\nb", string([]byte{0xff})} {
		if IsBare([]byte(bad)) {
			t.Errorf("IsBare(%q) = true", bad)
		}
	}
}
