package huffman

// ByteToBits expands b into its eight bits, most significant first.
//
// bits[0] carries weight 2^7 and bits[7] weight 2^0.
func ByteToBits(b byte) [8]byte {
	var bits [8]byte
	for i := 0; i < 8; i++ {
		bits[i] = (b >> (7 - i)) & 1
	}
	return bits
}

// BitsToByte folds the first eight bits, most significant first, into a byte.
// Missing trailing bits count as zero and any non-zero element counts as one.
func BitsToByte(bits []byte) byte {
	var b byte
	for i := 0; i < 8; i++ {
		b <<= 1
		if i < len(bits) && bits[i] != 0 {
			b |= 1
		}
	}
	return b
}
