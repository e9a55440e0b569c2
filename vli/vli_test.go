package vli

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

type boundary struct {
	v uint64
	n int
}

var boundaries = []boundary{
	{0, 1},
	{1, 1},
	{127, 1},
	{128, 2},
	{16383, 2},
	{16384, 3},
	{1<<21 - 1, 3},
	{1 << 21, 4},
	{1<<28 - 1, 4},
	{1 << 28, 5},
	{1<<35 - 1, 5},
	{1 << 35, 6},
	{1<<42 - 1, 6},
	{1 << 42, 7},
	{1<<49 - 1, 7},
	{1 << 49, 8},
	{1<<56 - 1, 8},
	{1 << 56, 9},
	{math.MaxUint64, 9},
}

func TestBoundaries(t *testing.T) {
	for _, b := range boundaries {
		enc := AppendUint64(nil, b.v)
		if len(enc) != b.n {
			t.Errorf("encode %d: got %d bytes, want %d", b.v, len(enc), b.n)
		}
		if got := Len(b.v); got != b.n {
			t.Errorf("Len(%d): got %d, want %d", b.v, got, b.n)
		}
		v, n, err := Uint64(enc)
		if err != nil {
			t.Errorf("decode %d: %v", b.v, err)
			continue
		}
		if v != b.v || n != b.n {
			t.Errorf("decode %d: got (%d, %d), want (%d, %d)", b.v, v, n, b.v, b.n)
		}
	}
}

func TestDeterministic(t *testing.T) {
	for _, b := range boundaries {
		x := AppendUint64(nil, b.v)
		y := AppendUint64(nil, b.v)
		if !bytes.Equal(x, y) {
			t.Errorf("encode %d not deterministic", b.v)
		}
	}
}

func TestTruncated(t *testing.T) {
	for _, b := range boundaries {
		enc := AppendUint64(nil, b.v)
		for i := 0; i < len(enc); i++ {
			if _, _, err := Uint64(enc[:i]); !errors.Is(err, ErrTruncatedInput) {
				t.Errorf("decode %d bytes of %d: got %v, want ErrTruncatedInput", i, b.v, err)
			}
		}
	}
}

func TestContinuationBits(t *testing.T) {
	// all bytes before the terminal one carry the top bit
	enc := AppendUint64(nil, math.MaxUint64)
	for i := 0; i < MaxLen-1; i++ {
		if enc[i]&0x80 == 0 {
			t.Errorf("byte %d missing continuation bit", i)
		}
	}
	// the 9th byte is the top 8 bits verbatim
	if enc[MaxLen-1] != 0xff {
		t.Errorf("terminal byte: got %x, want ff", enc[MaxLen-1])
	}
}

func TestAppend(t *testing.T) {
	buf := AppendUint64(nil, 300)
	buf = AppendUint64(buf, 7)
	v, n, err := Uint64(buf)
	if err != nil || v != 300 {
		t.Fatalf("first: got (%d, %v), want 300", v, err)
	}
	v, _, err = Uint64(buf[n:])
	if err != nil || v != 7 {
		t.Fatalf("second: got (%d, %v), want 7", v, err)
	}
}
