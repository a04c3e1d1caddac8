package bitio

import (
	"fmt"

	"github.com/funvibe/funbit/pkg/funbit"
)

// bitReader reads a bitstring front to back with a bit cursor over the
// underlying bytes. Fields are extracted directly at the cursor offset;
// re-matching the remainder per read is not reliable for chained reads.
type bitReader struct {
	data []byte
	bits uint // total stream length in bits
	pos  uint
}

// NewReader returns a Reader over data. The stream holds exactly
// 8*len(data) bits.
func NewReader(data []byte) Reader {
	return &bitReader{data: data, bits: uint(len(data)) * 8}
}

// NewBitStringReader returns a Reader over an existing bitstring, which may
// have a length that is not a whole number of bytes.
func NewBitStringReader(bs *funbit.BitString) Reader {
	return &bitReader{data: bs.ToBytes(), bits: uint(bs.Length())}
}

func (r *bitReader) ReadBits(n uint) (uint, error) {
	if n == 0 {
		return 0, nil
	}
	if r.bits-r.pos < n {
		return 0, ErrEndOfStream
	}
	var v uint
	for i := uint(0); i < n; i++ {
		idx := r.pos + i
		bit := r.data[idx>>3] >> (7 - idx&7) & 1
		v = v<<1 | uint(bit)
	}
	r.pos += n
	return v, nil
}

func (r *bitReader) ReadBit() (bool, error) {
	v, err := r.ReadBits(1)
	return v == 1, err
}

// Remaining reports how many bits the reader still holds.
func (r *bitReader) Remaining() uint {
	return r.bits - r.pos
}

// BufferWriter collects bits into a funbit builder. The zero value is not
// usable; construct with NewWriter.
type BufferWriter struct {
	builder *funbit.Builder
	written uint
}

// NewWriter returns an empty BufferWriter.
func NewWriter() *BufferWriter {
	return &BufferWriter{builder: funbit.NewBuilder()}
}

func (w *BufferWriter) WriteBits(v uint, n uint) (int, error) {
	if n == 0 {
		return 0, nil
	}
	funbit.AddInteger(w.builder, v, funbit.WithSize(n))
	w.written += n
	return int(n), nil
}

func (w *BufferWriter) WriteBit(b bool) (int, error) {
	var v uint
	if b {
		v = 1
	}
	return w.WriteBits(v, 1)
}

// Len reports the number of bits written so far.
func (w *BufferWriter) Len() uint {
	return w.written
}

// BitString finishes the writer and returns the accumulated bits.
func (w *BufferWriter) BitString() (*funbit.BitString, error) {
	bs, err := w.builder.Build()
	if err != nil {
		return nil, fmt.Errorf("bitio: %w", err)
	}
	return bs, nil
}

// Bytes finishes the writer and returns the accumulated bits as a byte
// slice. A final partial byte is zero-padded on the right.
func (w *BufferWriter) Bytes() ([]byte, error) {
	bs, err := w.BitString()
	if err != nil {
		return nil, err
	}
	return bs.ToBytes(), nil
}
