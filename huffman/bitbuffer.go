package huffman

import (
	"bytes"

	"github.com/icza/bitio"
)

// BitBuffer is a variable-length bit buffer for building compressed payloads.
//
// Bits are appended sequentially using MSB-first ordering:
//   - First bit appended goes to bit position 7
//   - Second bit goes to position 6, etc.
//
// A BitBuffer must not be copied after first use.
type BitBuffer struct {
	buf     bytes.Buffer
	w       bitWriter
	numBits int
	err     error
}

// bitWriter is the part of bitio's writer the buffer relies on.
type bitWriter interface {
	WriteBool(b bool) error
	Align() (skipped byte, err error)
}

// NewBitBuffer creates a new empty bit buffer.
func NewBitBuffer() *BitBuffer {
	bb := &BitBuffer{}
	bb.w = bitio.NewWriter(&bb.buf)
	return bb
}

// Clear resets the buffer to empty.
func (bb *BitBuffer) Clear() {
	bb.buf.Reset()
	bb.w = bitio.NewWriter(&bb.buf)
	bb.numBits = 0
	bb.err = nil
}

// NumBits returns the number of bits in the buffer.
func (bb *BitBuffer) NumBits() int {
	return bb.numBits
}

// AppendBit appends a single bit. Any non-zero value is a one bit.
func (bb *BitBuffer) AppendBit(bit byte) {
	if bb.err != nil {
		return
	}
	if err := bb.w.WriteBool(bit != 0); err != nil {
		bb.err = err
		return
	}
	bb.numBits++
}

// AppendCode appends every bit of code in order.
func (bb *BitBuffer) AppendCode(code Bits) {
	for _, bit := range code {
		bb.AppendBit(bit)
	}
}

// Finish pads the last byte with zero bits and returns the packed bytes
// together with the number of padding bits. Finish ends the buffer; call
// Clear before reusing it.
func (bb *BitBuffer) Finish() ([]byte, byte, error) {
	if bb.err != nil {
		return nil, 0, bb.err
	}

	residual, err := bb.w.Align()
	if err != nil {
		return nil, 0, err
	}

	result := make([]byte, bb.buf.Len())
	copy(result, bb.buf.Bytes())
	return result, residual, nil
}
