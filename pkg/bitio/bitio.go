// Package bitio provides the bit-level read/write capabilities consumed by
// the codec and the compiler. Fields are most-significant-bit-first: the
// first bit read or written is the highest bit of the field.
package bitio

import "errors"

// ErrEndOfStream is returned when a read needs more bits than the source
// still holds.
var ErrEndOfStream = errors.New("bitio: end of stream")

// Reader is a bit source. Reads consume the stream in order; there is no
// peeking and no rewind.
type Reader interface {
	// ReadBit consumes one bit.
	ReadBit() (bool, error)
	// ReadBits consumes n bits (n <= 64) and returns them as an unsigned
	// integer, MSB-first.
	ReadBits(n uint) (uint, error)
}

// Writer is a bit sink.
type Writer interface {
	// WriteBit appends one bit and reports the number of bits written.
	WriteBit(b bool) (int, error)
	// WriteBits appends the low n bits of v, MSB-first, and reports the
	// number of bits written.
	WriteBits(v uint, n uint) (int, error)
}
