package huffman

// Node is a Huffman tree node, either a *Leaf or an *Internal.
//
// The set of implementations is closed; consumers switch on the concrete
// type. Trees are read-only once built or deserialized.
type Node interface {
	// Weight returns the frequency carried by the node. Deserialized trees
	// carry zero weights.
	Weight() uint64

	node()
}

// Leaf holds one symbol.
type Leaf struct {
	Symbol byte
	Freq   uint64
}

// Internal joins exactly two subtrees. Freq is the sum of the children's weights.
type Internal struct {
	Left  Node
	Right Node
	Freq  uint64
}

func (l *Leaf) Weight() uint64     { return l.Freq }
func (n *Internal) Weight() uint64 { return n.Freq }

func (*Leaf) node()     {}
func (*Internal) node() {}

// Equal reports whether a and b have the same shape and the same symbols at
// the same leaves. Frequencies are ignored.
func Equal(a, b Node) bool {
	switch x := a.(type) {
	case *Leaf:
		y, ok := b.(*Leaf)
		return ok && x.Symbol == y.Symbol
	case *Internal:
		y, ok := b.(*Internal)
		return ok && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	}
	return false
}

// LeafCount returns the number of leaves under n.
func LeafCount(n Node) int {
	switch n := n.(type) {
	case *Leaf:
		return 1
	case *Internal:
		return LeafCount(n.Left) + LeafCount(n.Right)
	}
	return 0
}
