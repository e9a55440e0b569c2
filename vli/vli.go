// Package vli implements the variable-length integer encoding used
// throughout the wire format.
//
// A value is split into 7-bit little-endian groups. Each of the first
// 8 encoded bytes carries 7 payload bits plus a continuation bit in
// the top position: 1 if more bytes follow, 0 on the last byte. Values
// of 2^56 and above need a 9th byte, which carries the remaining 8
// bits verbatim and is always terminal.
//
// Encoded length is always minimal for the value, so equal values
// encode to identical bytes. The pool codec relies on this when it
// content-addresses serialized entries.
package vli

import "errors"

// MaxLen is the maximum encoded length of a uint64.
const MaxLen = 9

// ErrTruncatedInput reports that the input ended before a terminating
// byte was seen.
var ErrTruncatedInput = errors.New("truncated input")

// AppendUint64 appends the encoding of v to dst and returns the
// extended slice.
func AppendUint64(dst []byte, v uint64) []byte {
	for range MaxLen - 1 {
		b := byte(v & 0x7f)
		v >>= 7
		if v == 0 {
			return append(dst, b)
		}
		dst = append(dst, b|0x80)
	}
	// top 8 bits, no continuation bit
	return append(dst, byte(v))
}

// Uint64 decodes a value from the front of buf, returning the value
// and the number of bytes consumed.
func Uint64(buf []byte) (uint64, int, error) {
	var v uint64
	for i := range MaxLen - 1 {
		if i >= len(buf) {
			return 0, 0, ErrTruncatedInput
		}
		b := buf[i]
		v |= uint64(b&0x7f) << (7 * i)
		if b&0x80 == 0 {
			return v, i + 1, nil
		}
	}
	if len(buf) < MaxLen {
		return 0, 0, ErrTruncatedInput
	}
	return v | uint64(buf[MaxLen-1])<<56, MaxLen, nil
}

// Len returns the encoded length of v without encoding it.
func Len(v uint64) int {
	for n := 1; n < MaxLen; n++ {
		v >>= 7
		if v == 0 {
			return n
		}
	}
	return MaxLen
}
