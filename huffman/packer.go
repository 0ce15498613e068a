package huffman

// Residual returns the number of zero bits needed to pad numBits to a whole
// number of bytes.
func Residual(numBits int) byte {
	return byte((8 - numBits%8) % 8)
}

// Pack groups bits into bytes, most significant bit first, padding the last
// byte with zero bits. It returns the packed bytes and the padding count.
func Pack(bits Bits) ([]byte, byte) {
	payload := make([]byte, 0, (len(bits)+7)/8)
	for start := 0; start < len(bits); start += 8 {
		end := start + 8
		if end > len(bits) {
			end = len(bits)
		}
		payload = append(payload, BitsToByte(bits[start:end]))
	}
	return payload, Residual(len(bits))
}

// Unpack expands payload back into bits, most significant bit first, and
// drops the last residual bits.
func Unpack(payload []byte, residual byte) (Bits, error) {
	if residual > MaxResidual {
		return nil, formatErrorf(0, "residual %d out of range 0..%d", residual, MaxResidual)
	}

	total := len(payload)*8 - int(residual)
	if total < 0 {
		return nil, formatErrorf(0, "residual %d exceeds the %d payload bits", residual, len(payload)*8)
	}

	bits := make(Bits, 0, len(payload)*8)
	for _, b := range payload {
		expanded := ByteToBits(b)
		bits = append(bits, expanded[:]...)
	}
	return bits[:total], nil
}
