package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"t": TextFormat, "text": TextFormat,
		"w": WireFormat, "wire": WireFormat,
	} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = (%v, %v), want %v", in, got, err, want)
		}
	}
	if _, err := ParseFormat("yaml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v, want ErrBadFormat", err)
	}
}

func TestSuffix(t *testing.T) {
	for _, f := range AllFormats() {
		if FromSuffix("file"+f.Suffix()) != f {
			t.Errorf("suffix round trip failed for %s", f)
		}
	}
	if FromSuffix("noext") != TextFormat {
		t.Error("unknown suffix should default to text")
	}
}
