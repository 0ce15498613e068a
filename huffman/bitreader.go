package huffman

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/icza/bitio"
)

// ErrEOF is returned by ReadBit once the readable bits are used up.
var ErrEOF = errors.New("huffman: bit stream exhausted")

// BitReader walks a payload one bit at a time, most significant bit of each
// byte first, which is the order BitBuffer writes them in.
type BitReader struct {
	r         bitSource
	totalBits int
	position  int
}

// bitSource is the part of bitio's reader the BitReader relies on.
type bitSource interface {
	ReadBool() (b bool, err error)
}

// NewBitReader reads every bit of data.
func NewBitReader(data []byte) *BitReader {
	return NewBitReaderWithBits(data, len(data)*8)
}

// NewBitReaderWithBits reads only the first numBits bits of data, keeping
// trailing padding out of reach. numBits is clamped to what data holds.
func NewBitReaderWithBits(data []byte, numBits int) *BitReader {
	limit := min(max(numBits, 0), len(data)*8)
	return &BitReader{r: bitio.NewReader(bytes.NewReader(data)), totalBits: limit}
}

// Remaining is the count of bits not yet read.
func (br *BitReader) Remaining() int {
	return br.totalBits - br.position
}

// Position is the index of the next bit.
func (br *BitReader) Position() int {
	return br.position
}

// ReadBit returns the next bit as 0 or 1.
func (br *BitReader) ReadBit() (byte, error) {
	if br.position >= br.totalBits {
		return 0, ErrEOF
	}

	b, err := br.r.ReadBool()
	if err != nil {
		return 0, fmt.Errorf("read bit %d: %w", br.position, err)
	}
	br.position++

	if b {
		return 1, nil
	}
	return 0, nil
}
