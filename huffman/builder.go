package huffman

import "container/heap"

// BuildTree builds the Huffman tree for ft.
//
// The two lightest nodes are merged repeatedly, the first one taken becoming
// the left child. Equal weights are ordered by rank: a leaf ranks by its
// symbol value and the k-th internal node created ranks 256+k. Lower symbols
// therefore win among leaves, leaves win over internal nodes, and older
// internal nodes win over newer ones.
//
// A table with a single symbol yields that lone *Leaf.
func BuildTree(ft *FrequencyTable) (Node, error) {
	if ft == nil || ft.Len() == 0 {
		return nil, ErrEmptyTable
	}

	entries := ft.Entries()
	h := make(nodeHeap, 0, len(entries))
	for _, e := range entries {
		h = append(h, rankedNode{
			node: &Leaf{Symbol: e.Symbol, Freq: e.Count},
			rank: int(e.Symbol),
		})
	}
	heap.Init(&h)

	rank := 256
	for h.Len() > 1 {
		first := heap.Pop(&h).(rankedNode)
		second := heap.Pop(&h).(rankedNode)
		heap.Push(&h, rankedNode{
			node: &Internal{
				Left:  first.node,
				Right: second.node,
				Freq:  first.node.Weight() + second.node.Weight(),
			},
			rank: rank,
		})
		rank++
	}

	return h[0].node, nil
}

type rankedNode struct {
	node Node
	rank int
}

// nodeHeap is a min-heap on (weight, rank). Ranks are unique, so the order
// is total and the build does not depend on heap internals.
type nodeHeap []rankedNode

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	wi, wj := h[i].node.Weight(), h[j].node.Weight()
	if wi != wj {
		return wi < wj
	}
	return h[i].rank < h[j].rank
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x any) { *h = append(*h, x.(rankedNode)) }

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
