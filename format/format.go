// Package format names the on-disk representations of expression
// data: text and the pooled wire container.
package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	TextFormat Format = iota
	WireFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"t":    TextFormat,
		"text": TextFormat,
		"w":    WireFormat,
		"wire": WireFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case TextFormat:
		return []byte("text"), nil
	case WireFormat:
		return []byte("wire"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsText() bool { return f == TextFormat }
func (f Format) IsWire() bool { return f == WireFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case TextFormat:
		return ".sx"
	case WireFormat:
		return ".bsx"
	default:
		return ""
	}
}

// FromSuffix guesses the format of a file name by its extension,
// defaulting to text.
func FromSuffix(name string) Format {
	n := len(name)
	if n >= 4 && name[n-4:] == ".bsx" {
		return WireFormat
	}
	return TextFormat
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{TextFormat, WireFormat}
}
