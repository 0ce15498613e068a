package huffman

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
)

// Decompress restores the bytes of a stream produced by Compress.
//
// Empty input decompresses to empty output. Any structural problem in the
// stream is reported as a *FormatError and no output is returned.
func Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return []byte{}, nil
	}

	tree, n, err := DeserializeTree(data)
	if err != nil {
		return nil, err
	}

	if n >= len(data) {
		return nil, formatErrorf(n, "missing residual byte")
	}
	residual := data[n]
	if residual > MaxResidual {
		return nil, formatErrorf(n, "residual %d out of range 0..%d", residual, MaxResidual)
	}

	if leaf, ok := tree.(*Leaf); ok {
		return decodeRepeated(leaf, residual, data[n+1:], n+1)
	}
	return decodeStream(tree, residual, data[n+1:], n+1)
}

// decodeRepeated handles single-leaf trees, whose stream stores a symbol
// count instead of codewords.
func decodeRepeated(leaf *Leaf, residual byte, body []byte, offset int) ([]byte, error) {
	if residual != 0 {
		return nil, formatErrorf(offset-1, "single-symbol stream has residual %d, want 0", residual)
	}
	if len(body) != countFieldSize {
		return nil, formatErrorf(offset, "single-symbol stream needs a %d-byte count, got %d bytes", countFieldSize, len(body))
	}

	count := binary.BigEndian.Uint64(body)
	if count == 0 {
		return nil, formatErrorf(offset, "single-symbol stream has zero count")
	}
	if count > math.MaxInt32 {
		return nil, formatErrorf(offset, "symbol count %d too large", count)
	}

	return bytes.Repeat([]byte{leaf.Symbol}, int(count)), nil
}

// decodeStream descends the tree once per symbol until the payload bits,
// minus padding, are used up.
func decodeStream(root Node, residual byte, payload []byte, offset int) ([]byte, error) {
	total := len(payload)*8 - int(residual)
	if total < 0 {
		return nil, formatErrorf(offset-1, "residual %d exceeds the %d payload bits", residual, len(payload)*8)
	}

	reader := NewBitReaderWithBits(payload, total)
	output := make([]byte, 0, len(payload)*2)

	for reader.Remaining() > 0 {
		start := reader.Position()
		sym, err := decodeSymbol(reader, root)
		if err != nil {
			if errors.Is(err, ErrEOF) {
				return nil, formatErrorf(offset+start/8, "payload ends inside the codeword starting at bit %d", start)
			}
			return nil, err
		}
		output = append(output, sym)
	}

	return output, nil
}

func decodeSymbol(reader *BitReader, n Node) (byte, error) {
	for {
		switch node := n.(type) {
		case *Leaf:
			return node.Symbol, nil
		case *Internal:
			bit, err := reader.ReadBit()
			if err != nil {
				return 0, err
			}
			if bit == 0 {
				n = node.Left
			} else {
				n = node.Right
			}
		default:
			return 0, errors.New("tree has a nil node")
		}
	}
}
