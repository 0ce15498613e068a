package huffman

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBitReader(t *testing.T) {
	br := NewBitReader([]byte{0xAB, 0xCD})
	require.Equal(t, 16, br.Remaining())
	require.Zero(t, br.Position())
}

func TestNewBitReaderWithBits(t *testing.T) {
	require.Equal(t, 12, NewBitReaderWithBits([]byte{0xFF, 0xFF}, 12).Remaining())

	t.Run("clamped to data", func(t *testing.T) {
		require.Equal(t, 8, NewBitReaderWithBits([]byte{0xFF}, 64).Remaining())
		require.Zero(t, NewBitReaderWithBits([]byte{0xFF}, -3).Remaining())
	})
}

func TestBitReaderReadBit(t *testing.T) {
	// 0xAA = 10101010
	br := NewBitReader([]byte{0xAA})

	for i, want := range []byte{1, 0, 1, 0, 1, 0, 1, 0} {
		bit, err := br.ReadBit()
		require.NoError(t, err)
		require.Equal(t, want, bit, "bit %d", i)
	}

	_, err := br.ReadBit()
	require.ErrorIs(t, err, ErrEOF)
}

func TestBitReaderMSBFirst(t *testing.T) {
	// 0x01 = 00000001, first bit should be 0, last should be 1
	br := NewBitReader([]byte{0x01})
	for i := 0; i < 7; i++ {
		bit, err := br.ReadBit()
		require.NoError(t, err)
		require.Zero(t, bit, "bit %d of 0x01", i)
	}
	bit, err := br.ReadBit()
	require.NoError(t, err)
	require.Equal(t, byte(1), bit)
}

func TestBitReaderStopsBeforePadding(t *testing.T) {
	// 1111 1111 with only the first 3 bits valid
	br := NewBitReaderWithBits([]byte{0xFF}, 3)
	for i := 0; i < 3; i++ {
		_, err := br.ReadBit()
		require.NoError(t, err)
	}
	require.Zero(t, br.Remaining())
	require.Equal(t, 3, br.Position())

	_, err := br.ReadBit()
	require.ErrorIs(t, err, ErrEOF)
}

func TestBitReaderRoundTrip(t *testing.T) {
	// Write to BitBuffer, read back with BitReader
	rng := rand.New(rand.NewSource(1))
	bits := make(Bits, 1001)
	for i := range bits {
		bits[i] = byte(rng.Intn(2))
	}

	bb := NewBitBuffer()
	bb.AppendCode(bits)
	payload, residual, err := bb.Finish()
	require.NoError(t, err)
	require.Equal(t, Residual(len(bits)), residual)

	br := NewBitReaderWithBits(payload, len(payload)*8-int(residual))
	got := make(Bits, 0, len(bits))
	for br.Remaining() > 0 {
		bit, err := br.ReadBit()
		require.NoError(t, err)
		got = append(got, bit)
	}
	require.Equal(t, bits, got)
}
