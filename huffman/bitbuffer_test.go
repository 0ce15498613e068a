package huffman

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func finish(t *testing.T, bb *BitBuffer) ([]byte, byte) {
	t.Helper()
	payload, residual, err := bb.Finish()
	require.NoError(t, err)
	return payload, residual
}

func TestNewBitBuffer(t *testing.T) {
	bb := NewBitBuffer()
	require.Zero(t, bb.NumBits())

	payload, residual := finish(t, bb)
	require.Empty(t, payload)
	require.Zero(t, residual)
}

func TestBitBufferAppendBit(t *testing.T) {
	bb := NewBitBuffer()

	// Append 8 bits: 10101010
	for _, bit := range []byte{1, 0, 1, 0, 1, 0, 1, 0} {
		bb.AppendBit(bit)
	}
	require.Equal(t, 8, bb.NumBits())

	payload, residual := finish(t, bb)
	require.Equal(t, []byte{0xAA}, payload)
	require.Zero(t, residual)
}

func TestBitBufferAppendBitMSBFirst(t *testing.T) {
	bb := NewBitBuffer()

	// First bit should go to position 7 (MSB), the rest is padding
	bb.AppendBit(1)

	payload, residual := finish(t, bb)
	require.Equal(t, []byte{0x80}, payload)
	require.Equal(t, byte(7), residual)
}

func TestBitBufferAppendCode(t *testing.T) {
	bb := NewBitBuffer()

	bb.AppendCode(Bits{1, 0})       // 10
	bb.AppendCode(Bits{1, 1, 1, 1}) // 10 1111
	bb.AppendCode(Bits{})           // nothing
	bb.AppendCode(Bits{1, 1})       // 10 1111 11
	bb.AppendCode(Bits{0, 1, 1})    // 1011 1111 011
	require.Equal(t, 11, bb.NumBits())

	payload, residual := finish(t, bb)
	require.Equal(t, []byte{0xBF, 0x60}, payload)
	require.Equal(t, byte(5), residual)
}

func TestBitBufferNonZeroIsOne(t *testing.T) {
	bb := NewBitBuffer()
	bb.AppendCode(Bits{7, 0, 0, 0, 0, 0, 0, 0xFF})

	payload, _ := finish(t, bb)
	require.Equal(t, []byte{0x81}, payload)
}

func TestBitBufferClear(t *testing.T) {
	bb := NewBitBuffer()
	bb.AppendCode(Bits{1, 1, 1, 1})
	bb.Clear()
	require.Zero(t, bb.NumBits())

	bb.AppendCode(Bits{0, 1})
	payload, residual := finish(t, bb)
	require.Equal(t, []byte{0x40}, payload)
	require.Equal(t, byte(6), residual)
}

func TestBitBufferLargeData(t *testing.T) {
	bb := NewBitBuffer()

	data := make([]byte, 90)
	for i := range data {
		data[i] = byte(i)
	}
	for _, b := range data {
		bits := ByteToBits(b)
		bb.AppendCode(bits[:])
	}
	require.Equal(t, 720, bb.NumBits())

	payload, residual := finish(t, bb)
	require.Equal(t, data, payload)
	require.Zero(t, residual)
}
