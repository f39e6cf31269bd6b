// Package huffman builds per-image canonical Huffman codes for the DC
// size-category and AC (run,size) alphabets, and packs/parses the
// resulting bitstream.
package huffman

import (
	"container/heap"
	"fmt"
)

// Code is a Huffman codeword: the low Length bits of Bits, MSB-first.
type Code struct {
	Length uint8
	Bits   uint32
}

// maxCodeLength bounds codeword length; a degenerate frequency
// distribution that would produce a longer code is rejected rather than
// silently emitting a code the bit writer can't pack into a uint32.
const maxCodeLength = 32

type treeNode[S comparable] struct {
	freq        int
	seq         int // insertion-order tiebreaker, for deterministic ties
	isLeaf      bool
	sym         S
	left, right *treeNode[S]
}

type nodeHeap[S comparable] []*treeNode[S]

func (h nodeHeap[S]) Len() int { return len(h) }
func (h nodeHeap[S]) Less(i, j int) bool {
	if h[i].freq != h[j].freq {
		return h[i].freq < h[j].freq
	}
	return h[i].seq < h[j].seq
}
func (h nodeHeap[S]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap[S]) Push(x any)        { *h = append(*h, x.(*treeNode[S])) }
func (h *nodeHeap[S]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// BuildCanonical constructs a prefix-free Huffman table from symbol
// frequencies. Symbols are iterated in the order given by order (rather
// than ranging over the map) so that identical frequency inputs always
// produce identical codes regardless of Go's randomized map iteration.
func BuildCanonical[S comparable](freqs map[S]int, order []S) (*Table[S], error) {
	h := &nodeHeap[S]{}
	heap.Init(h)
	seq := 0
	for _, sym := range order {
		f := freqs[sym]
		if f <= 0 {
			continue
		}
		heap.Push(h, &treeNode[S]{freq: f, seq: seq, isLeaf: true, sym: sym})
		seq++
	}
	if h.Len() == 0 {
		return &Table[S]{codes: map[S]Code{}}, nil
	}

	for h.Len() > 1 {
		a := heap.Pop(h).(*treeNode[S])
		b := heap.Pop(h).(*treeNode[S])
		parent := &treeNode[S]{freq: a.freq + b.freq, seq: seq, left: a, right: b}
		seq++
		heap.Push(h, parent)
	}
	root := heap.Pop(h).(*treeNode[S])

	codes := make(map[S]Code)
	if root.isLeaf {
		codes[root.sym] = Code{Length: 1, Bits: 0}
		t := &Table[S]{codes: codes}
		if err := buildDecodeTable(t); err != nil {
			return nil, err
		}
		return t, nil
	}

	var assign func(n *treeNode[S], length uint8, bits uint32) error
	assign = func(n *treeNode[S], length uint8, bits uint32) error {
		if n.isLeaf {
			if length > maxCodeLength {
				return fmt.Errorf("huffman: code length %d exceeds max %d for symbol %v", length, maxCodeLength, n.sym)
			}
			codes[n.sym] = Code{Length: length, Bits: bits}
			return nil
		}
		if err := assign(n.left, length+1, bits<<1); err != nil {
			return err
		}
		return assign(n.right, length+1, (bits<<1)|1)
	}
	if err := assign(root, 0, 0); err != nil {
		return nil, err
	}

	t := &Table[S]{codes: codes}
	if err := buildDecodeTable(t); err != nil {
		return nil, err
	}
	return t, nil
}
