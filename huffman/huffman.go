package huffman

import (
	"errors"
	"fmt"
)

// Version is the library version.
const Version = "1.0.0"

// Constants
const (
	MaxResidual = 7   // Largest number of padding bits in the last payload byte
	MaxDepth    = 255 // Deepest leaf possible in a tree over 256 symbols

	tagLeaf        byte = 0x01
	tagInternal    byte = 0x02
	countFieldSize      = 8 // Symbol count of single-leaf streams, big-endian
)

var (
	// ErrEmptyTable is returned when a tree is requested for a table without symbols.
	ErrEmptyTable = errors.New("frequency table is empty")

	// ErrSymbolNotFound is returned when a codeword is requested for a symbol the tree does not hold.
	ErrSymbolNotFound = errors.New("symbol not present in tree")
)

// FormatError reports a malformed compressed stream.
type FormatError struct {
	Offset int    // Byte offset into the compressed stream
	Reason string // What was wrong at Offset
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("huffman: malformed stream at byte %d: %s", e.Offset, e.Reason)
}

func formatErrorf(offset int, format string, args ...any) error {
	return &FormatError{Offset: offset, Reason: fmt.Sprintf(format, args...)}
}
