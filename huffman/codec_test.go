package huffman

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitsToByte(t *testing.T) {
	require.Equal(t, byte(2), BitsToByte([]byte{0, 0, 0, 0, 0, 0, 1, 0}))
	require.Equal(t, byte(8), BitsToByte([]byte{0, 0, 0, 0, 1, 0, 0, 0}))
	require.Equal(t, byte(42), BitsToByte([]byte{0, 0, 1, 0, 1, 0, 1, 0}))
	require.Equal(t, byte(250), BitsToByte([]byte{1, 1, 1, 1, 1, 0, 1, 0}))

	t.Run("short input is zero padded", func(t *testing.T) {
		require.Equal(t, byte(0xC0), BitsToByte([]byte{1, 1}))
		require.Equal(t, byte(0), BitsToByte(nil))
	})
}

func TestByteToBits(t *testing.T) {
	require.Equal(t, [8]byte{0, 0, 0, 0, 0, 0, 1, 0}, ByteToBits(2))
	require.Equal(t, [8]byte{0, 0, 0, 0, 1, 0, 0, 0}, ByteToBits(8))
	require.Equal(t, [8]byte{0, 0, 0, 1, 0, 0, 0, 1}, ByteToBits(17))
	require.Equal(t, [8]byte{0, 0, 1, 0, 1, 0, 1, 0}, ByteToBits(42))
	require.Equal(t, [8]byte{1, 0, 0, 0, 0, 0, 0, 0}, ByteToBits(0x80))
}

func TestCodecRoundTrip(t *testing.T) {
	for i := 0; i < 256; i++ {
		bits := ByteToBits(byte(i))
		require.Equal(t, byte(i), BitsToByte(bits[:]))
	}
}

func TestBitsString(t *testing.T) {
	require.Equal(t, "", Bits{}.String())
	require.Equal(t, "0110", Bits{0, 1, 1, 0}.String())

	parsed, err := ParseBits("1001")
	require.NoError(t, err)
	require.Equal(t, Bits{1, 0, 0, 1}, parsed)

	_, err = ParseBits("10x1")
	require.Error(t, err)
}
