package huffman

// SerializeTree encodes tree in preorder.
//
// A leaf is written as 0x01 followed by its symbol. An internal node is
// written as 0x02 followed by its left subtree and then its right subtree.
// Every internal node has two children, so no end marker is needed.
func SerializeTree(tree Node) []byte {
	return AppendTree(nil, tree)
}

// AppendTree appends the preorder encoding of tree to dst.
func AppendTree(dst []byte, tree Node) []byte {
	switch n := tree.(type) {
	case *Leaf:
		return append(dst, tagLeaf, n.Symbol)
	case *Internal:
		dst = append(dst, tagInternal)
		dst = AppendTree(dst, n.Left)
		return AppendTree(dst, n.Right)
	}
	return dst
}

// DeserializeTree decodes a tree from the front of data and reports how many
// bytes it consumed. Restored nodes carry zero frequencies.
//
// An unknown tag, input that ends inside the structure, or nesting deeper
// than MaxDepth yields a *FormatError.
func DeserializeTree(data []byte) (Node, int, error) {
	d := treeDecoder{data: data}
	tree, err := d.decode(0)
	if err != nil {
		return nil, 0, err
	}
	return tree, d.pos, nil
}

type treeDecoder struct {
	data []byte
	pos  int
}

func (d *treeDecoder) decode(depth int) (Node, error) {
	if d.pos >= len(d.data) {
		return nil, formatErrorf(d.pos, "tree truncated, expected a tag byte")
	}

	switch tag := d.data[d.pos]; tag {
	case tagLeaf:
		if d.pos+1 >= len(d.data) {
			return nil, formatErrorf(d.pos+1, "tree truncated, leaf has no symbol")
		}
		leaf := &Leaf{Symbol: d.data[d.pos+1]}
		d.pos += 2
		return leaf, nil

	case tagInternal:
		if depth >= MaxDepth {
			return nil, formatErrorf(d.pos, "tree deeper than %d levels", MaxDepth)
		}
		d.pos++
		left, err := d.decode(depth + 1)
		if err != nil {
			return nil, err
		}
		right, err := d.decode(depth + 1)
		if err != nil {
			return nil, err
		}
		return &Internal{Left: left, Right: right}, nil

	default:
		return nil, formatErrorf(d.pos, "invalid tag byte 0x%02X", tag)
	}
}
