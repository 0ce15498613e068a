// Package huffman implements static Huffman compression of byte streams.
//
// A compressed stream carries its own code tree, so no external metadata is
// needed to decompress it. The tree is built from per-symbol frequency
// counts with a fixed tie-break rule, which makes the output for a given
// input fully deterministic.
//
// Basic usage:
//
//	// Compress data
//	compressed, err := huffman.Compress(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Decompress data
//	original, err := huffman.Decompress(compressed)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Stream layout:
//
//	[tree, preorder][residual 0..7][payload, MSB-first]
//
// Leaves are written as 0x01 followed by the symbol, internal nodes as 0x02
// followed by the left and then the right subtree. The residual byte counts
// the zero bits appended to the last payload byte. A tree holding a single
// leaf has empty codewords, so its stream carries an 8-byte big-endian
// symbol count in place of the payload. Empty input compresses to empty
// output.
package huffman
