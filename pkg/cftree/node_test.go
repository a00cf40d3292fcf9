// pkg/cftree/node_test.go
package cftree

import "testing"

func TestCapacityDerivation(t *testing.T) {
	b := Capacity(4096, 2)
	want := (4096 - entryHeaderBytes) / entrySizeBytes(2)
	if b != want {
		t.Errorf("Capacity(4096, 2) = %d, want %d", b, want)
	}
}

func TestCapacityClampsToMinimum(t *testing.T) {
	if b := Capacity(64, 1024); b != minCapacity {
		t.Errorf("Capacity() with tiny page/huge dim = %d, want clamp to %d", b, minCapacity)
	}
}

func TestNodeAppendAndFull(t *testing.T) {
	n := newNode(2, true)
	if !n.IsEmpty() {
		t.Fatal("expected new node to be empty")
	}

	n.Append(pointEntry(1, 1))
	if n.IsFull() {
		t.Error("node should not be full after one append with capacity 2")
	}

	n.Append(pointEntry(2, 2))
	if !n.IsFull() {
		t.Error("expected node to be full after filling to capacity")
	}
	if n.Size() != 2 {
		t.Errorf("Size() = %d, want 2", n.Size())
	}
}

func TestNodeReplaceAndMergeAt(t *testing.T) {
	n := newNode(4, false)
	n.Append(pointEntry(1, 1))

	n.ReplaceAt(0, pointEntry(9, 9))
	if got := n.EntryAt(0); got.Ls[0] != 9 {
		t.Errorf("ReplaceAt did not replace: got %+v", got)
	}

	n.MergeAt(0, pointEntry(1, 1))
	if got := n.EntryAt(0); got.N != 2 {
		t.Errorf("MergeAt did not fold in statistics: got %+v", got)
	}
}

func TestNodeLeafFlagAndCapacity(t *testing.T) {
	n := newNode(5, true)
	if !n.IsLeaf() {
		t.Error("expected leaf node to report IsLeaf() true")
	}
	if n.Capacity() != 5 {
		t.Errorf("Capacity() = %d, want 5", n.Capacity())
	}
}
