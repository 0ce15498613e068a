package huffman

import (
	"encoding/binary"
	"fmt"
)

// Stats describes the output of one compression run.
type Stats struct {
	InputSize       int  // Bytes of input
	OutputSize      int  // Bytes of compressed output, header included
	HeaderSize      int  // Bytes taken by the serialized tree
	PayloadBits     int  // Codeword bits before padding
	Residual        byte // Padding bits in the last payload byte
	DistinctSymbols int  // Leaves in the tree
}

// Ratio returns input size over output size, zero for empty output.
func (s Stats) Ratio() float64 {
	if s.OutputSize == 0 {
		return 0
	}
	return float64(s.InputSize) / float64(s.OutputSize)
}

// Compress compresses data into a self-describing Huffman stream.
//
// Empty input produces empty output without building a tree.
func Compress(data []byte) ([]byte, error) {
	out, _, err := CompressWithStats(data)
	return out, err
}

// CompressWithStats is Compress that also reports sizes of the result.
func CompressWithStats(data []byte) ([]byte, Stats, error) {
	stats := Stats{InputSize: len(data)}
	if len(data) == 0 {
		return []byte{}, stats, nil
	}

	ft := Analyze(data)
	tree, err := BuildTree(ft)
	if err != nil {
		return nil, stats, err
	}
	stats.DistinctSymbols = ft.Len()

	out := AppendTree(make([]byte, 0, 3*ft.Len()+len(data)/2), tree)
	stats.HeaderSize = len(out)

	if _, ok := tree.(*Leaf); ok {
		// Codewords are empty, so the symbol count has to travel explicitly.
		out = append(out, 0)
		out = binary.BigEndian.AppendUint64(out, uint64(len(data)))
		stats.OutputSize = len(out)
		return out, stats, nil
	}

	codes := NewCodeTable(tree)
	bb := NewBitBuffer()
	for _, b := range data {
		code, ok := codes.Lookup(b)
		if !ok {
			return nil, stats, fmt.Errorf("%w: 0x%02X", ErrSymbolNotFound, b)
		}
		bb.AppendCode(code)
	}
	stats.PayloadBits = bb.NumBits()

	payload, residual, err := bb.Finish()
	if err != nil {
		return nil, stats, fmt.Errorf("failed to pack payload: %w", err)
	}
	stats.Residual = residual

	out = append(out, residual)
	out = append(out, payload...)
	stats.OutputSize = len(out)

	return out, stats, nil
}
