package huffman

import (
	"fmt"

	"github.com/indigo-web/utils/uf"
)

// Bits is an ordered bit sequence holding one bit per element.
//
// A codeword is read root to leaf: 0 steps to the left child, 1 to the right.
type Bits []byte

// String renders the sequence as '0' and '1' characters.
func (b Bits) String() string {
	if len(b) == 0 {
		return ""
	}

	buf := make([]byte, len(b))
	for i, bit := range b {
		buf[i] = '0' + bit&1
	}
	return uf.B2S(buf)
}

// ParseBits parses a string of '0' and '1' characters.
func ParseBits(s string) (Bits, error) {
	bits := make(Bits, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
		case '1':
			bits[i] = 1
		default:
			return nil, fmt.Errorf("invalid bit %q at position %d", s[i], i)
		}
	}
	return bits, nil
}
