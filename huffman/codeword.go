package huffman

import "fmt"

// Generate returns the codeword of sym: the path from the root of tree to
// the leaf holding sym. A single-leaf tree yields an empty codeword.
func Generate(sym byte, tree Node) (Bits, error) {
	code, ok := findPath(tree, sym, Bits{})
	if !ok {
		return nil, fmt.Errorf("%w: 0x%02X", ErrSymbolNotFound, sym)
	}
	return code, nil
}

func findPath(n Node, sym byte, prefix Bits) (Bits, bool) {
	switch n := n.(type) {
	case *Leaf:
		if n.Symbol == sym {
			return append(Bits{}, prefix...), true
		}
	case *Internal:
		if code, ok := findPath(n.Left, sym, append(prefix, 0)); ok {
			return code, true
		}
		return findPath(n.Right, sym, append(prefix, 1))
	}
	return nil, false
}

// CodeTable holds the codeword of every symbol in a tree, derived in a
// single walk.
type CodeTable struct {
	codes   [256]Bits
	present [256]bool
}

// NewCodeTable walks tree once and records the codeword of each leaf.
func NewCodeTable(tree Node) *CodeTable {
	ct := &CodeTable{}
	ct.walk(tree, Bits{})
	return ct
}

func (ct *CodeTable) walk(n Node, prefix Bits) {
	switch n := n.(type) {
	case *Leaf:
		ct.codes[n.Symbol] = append(Bits{}, prefix...)
		ct.present[n.Symbol] = true
	case *Internal:
		ct.walk(n.Left, append(prefix, 0))
		ct.walk(n.Right, append(prefix, 1))
	}
}

// Lookup returns the codeword of sym and whether the tree holds sym.
func (ct *CodeTable) Lookup(sym byte) (Bits, bool) {
	return ct.codes[sym], ct.present[sym]
}
