package huffman

import (
	"container/heap"
	"math"

	"github.com/chronos-tachyon/assert"
)

// A node is one vertex of the code tree: either a leaf owning a symbol or a
// branch owning exactly two children.  Modeling the two cases as separate
// types means "is this a leaf" is a type switch, not a nil-child probe.
type node interface {
	freq() uint32
}

type leaf struct {
	sym Symbol
	n   uint32
}

type branch struct {
	n           uint32
	left, right node
}

func (l leaf) freq() uint32    { return l.n }
func (b *branch) freq() uint32 { return b.n }

// buildTree merges the nonzero entries of t into a Huffman code tree and
// returns its root.  The first node popped for a merge becomes the left
// child, the second the right, and the merged branch's frequency is the
// saturating sum of its children's.
//
// Ties on frequency are broken by insertion sequence: leaves carry their
// symbol as sequence number and merged branches are numbered consecutively
// from NumSymbols up.  That makes the ordering strict, so the same table
// always rebuilds the identical tree, which is what lets the decoder derive
// the encoder's code from nothing but the stored frequencies.  Keep the
// tie-break stable across versions.
func buildTree(t *FrequencyTable) node {
	h := nodeQueue{list: make([]queuedNode, 0, NumSymbols)}
	for sym := Symbol(0); sym < NumSymbols; sym++ {
		if f := t[sym]; f != 0 {
			h.list = append(h.list, queuedNode{leaf{sym, f}, int32(sym)})
		}
	}
	assert.Assertf(h.Len() > 0, "huffman: no nonzero frequencies (EOS count must be 1)")
	h.Init()

	seq := int32(NumSymbols)
	for h.Len() > 1 {
		a := heap.Pop(&h).(queuedNode)
		b := heap.Pop(&h).(queuedNode)

		sum := a.node.freq() + b.node.freq()
		if sum < a.node.freq() {
			sum = math.MaxUint32
		}

		heap.Push(&h, queuedNode{&branch{sum, a.node, b.node}, seq})
		seq++
	}
	return heap.Pop(&h).(queuedNode).node
}

// type queuedNode + type nodeQueue {{{

type queuedNode struct {
	node node
	seq  int32
}

type nodeQueue struct {
	list []queuedNode
}

func (h *nodeQueue) Init() {
	heap.Init(h)
}

func (h *nodeQueue) Len() int {
	return len(h.list)
}

func (h *nodeQueue) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeQueue) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if af, bf := a.node.freq(), b.node.freq(); af != bf {
		return af < bf
	}
	return a.seq < b.seq
}

func (h *nodeQueue) Push(x interface{}) {
	h.list = append(h.list, x.(queuedNode))
}

func (h *nodeQueue) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeQueue)(nil)

// }}}
