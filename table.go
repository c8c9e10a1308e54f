package hufftext

import (
	"github.com/chronos-tachyon/assert"
)

// MaxCodeSize is the longest code the 8-bit length field can describe.
const MaxCodeSize = 255

// Entry is one row of a CodeTable.
type Entry struct {
	Symbol Symbol
	Code   Code
}

// CodeTable maps each Symbol to its Code.  Entries are kept in the order a
// left-first walk of the tree reaches the leaves, and that is also the
// order in which they are serialized.
type CodeTable struct {
	entries []Entry
	index   map[Symbol]int
}

// buildCodeTable walks t from the root, appending '0' when descending left
// and '1' when descending right.  A tree that is a single leaf gives that
// leaf the empty code.
func buildCodeTable(t tree) CodeTable {
	type stackItem struct {
		index int
		code  Code
	}

	numLeaves := (len(t.nodes) + 1) / 2
	ct := CodeTable{
		entries: make([]Entry, 0, numLeaves),
		index:   make(map[Symbol]int, numLeaves),
	}

	stack := make([]stackItem, 0, numLeaves)
	stack = append(stack, stackItem{index: t.root})
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.nodes[top.index]
		if n.isLeaf() {
			assert.Assertf(top.code.Size() <= MaxCodeSize, "code for %q has %d bits, max %d", rune(n.symbol), top.code.Size(), MaxCodeSize)
			ct.index[n.symbol] = len(ct.entries)
			ct.entries = append(ct.entries, Entry{Symbol: n.symbol, Code: top.code})
			continue
		}

		// Right is pushed first so that left is visited first.
		stack = append(stack, stackItem{index: n.right, code: top.code + "1"})
		stack = append(stack, stackItem{index: n.left, code: top.code + "0"})
	}
	return ct
}

// Len returns the number of entries.
func (ct CodeTable) Len() int {
	return len(ct.entries)
}

// Entries returns a copy of the entries in serialization order.
func (ct CodeTable) Entries() []Entry {
	out := make([]Entry, len(ct.entries))
	copy(out, ct.entries)
	return out
}

// Lookup returns the Code for sym.
func (ct CodeTable) Lookup(sym Symbol) (Code, bool) {
	i, found := ct.index[sym]
	if !found {
		return "", false
	}
	return ct.entries[i].Code, true
}

// Cost returns the number of body bits needed to encode a text with the
// given frequencies, i.e. the sum of frequency × code size.  Symbols that
// are not in the table contribute nothing.
func (ct CodeTable) Cost(ft FrequencyTable) uint64 {
	var sum uint64
	for _, e := range ct.entries {
		sum += ft.Count(e.Symbol) * uint64(e.Code.Size())
	}
	return sum
}
