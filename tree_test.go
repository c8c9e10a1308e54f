package hufftext

import (
	"errors"
	"reflect"
	"testing"
)

func TestBuildTree(t *testing.T) {
	tr, err := buildTree(CountFrequencies("aaaabbbcc"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// c(2)+b(3) merge first, then a(4)+5.
	expectNodes := []node{
		{freq: 4, symbol: 'a', left: noChild, right: noChild},
		{freq: 3, symbol: 'b', left: noChild, right: noChild},
		{freq: 2, symbol: 'c', left: noChild, right: noChild},
		{freq: 5, symbol: -1, left: 2, right: 1},
		{freq: 9, symbol: -1, left: 0, right: 3},
	}
	if !reflect.DeepEqual(expectNodes, tr.nodes) {
		t.Errorf("wrong nodes:\n\texpect: %+v\n\tactual: %+v", expectNodes, tr.nodes)
	}
	if tr.root != 4 {
		t.Errorf("expected root 4, got %d", tr.root)
	}
}

func TestBuildTree_SingleSymbol(t *testing.T) {
	tr, err := buildTree(CountFrequencies("zzzz"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tr.nodes) != 1 {
		t.Fatalf("expected 1 node, got %d", len(tr.nodes))
	}
	root := tr.nodes[tr.root]
	if !root.isLeaf() || root.symbol != 'z' || root.freq != 4 {
		t.Errorf("wrong root: %+v", root)
	}
}

func TestBuildTree_Empty(t *testing.T) {
	_, err := buildTree(CountFrequencies(""))
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestBuildTree_RootFrequency(t *testing.T) {
	for _, text := range testTexts {
		t.Run(text, func(t *testing.T) {
			ft := CountFrequencies(text)
			tr, err := buildTree(ft)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if actual := tr.nodes[tr.root].freq; actual != ft.Total() {
				t.Errorf("expected root frequency %d, got %d", ft.Total(), actual)
			}
			for i, n := range tr.nodes {
				if n.isLeaf() {
					continue
				}
				if n.right == noChild {
					t.Errorf("node %d has a left child but no right child", i)
				} else if sum := tr.nodes[n.left].freq + tr.nodes[n.right].freq; sum != n.freq {
					t.Errorf("node %d: children sum to %d, node has %d", i, sum, n.freq)
				}
			}
		})
	}
}
