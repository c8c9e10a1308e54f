package hufftext

import (
	"sort"

	"github.com/chronos-tachyon/assert"
)

// noChild marks the missing children of a leaf.
const noChild = -1

// node is one entry in the tree arena.  A node is a leaf iff left and right
// are both noChild; internal nodes always have both.
type node struct {
	freq   uint64
	symbol Symbol
	left   int
	right  int
}

func (n node) isLeaf() bool {
	return n.left == noChild
}

// tree is a Huffman tree whose nodes are addressed by index.  Each node
// index appears as a child of at most one parent, and only the root has no
// parent.
type tree struct {
	nodes []node
	root  int
}

// buildTree constructs the Huffman tree for ft.
//
// Each round stable-sorts the working set by descending frequency and pops
// the two trailing (lowest-frequency) nodes.  The first one popped becomes
// the left child and the second one the right child.  Ties keep the order
// they had after the previous round, and the initial order is the order of
// first appearance, so the tree is reproducible for a given text.
//
func buildTree(ft FrequencyTable) (tree, error) {
	numLeaves := ft.Len()
	if numLeaves == 0 {
		return tree{}, ErrEmptyInput
	}

	// A full binary tree with n leaves has 2n-1 nodes.
	nodes := make([]node, 0, 2*numLeaves-1)
	working := make([]int, 0, numLeaves)
	for _, sym := range ft.order {
		working = append(working, len(nodes))
		nodes = append(nodes, node{
			freq:   ft.counts[sym],
			symbol: sym,
			left:   noChild,
			right:  noChild,
		})
	}

	for len(working) > 1 {
		sort.SliceStable(working, func(i, j int) bool {
			return nodes[working[i]].freq > nodes[working[j]].freq
		})

		last := len(working) - 1
		a, b := working[last], working[last-1]
		working = working[:last-1]

		freqSum := nodes[a].freq + nodes[b].freq
		assert.Assertf(freqSum >= nodes[a].freq, "frequency overflow: %d + %d", nodes[a].freq, nodes[b].freq)

		working = append(working, len(nodes))
		nodes = append(nodes, node{
			freq:   freqSum,
			symbol: -1,
			left:   a,
			right:  b,
		})
	}

	assert.Assertf(len(nodes) == 2*numLeaves-1, "tree has %d nodes for %d leaves", len(nodes), numLeaves)
	return tree{nodes: nodes, root: working[0]}, nil
}
