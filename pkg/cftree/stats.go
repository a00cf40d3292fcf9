// pkg/cftree/stats.go
package cftree

// Stats is a point-in-time snapshot of a tree's size and bookkeeping,
// supplemental to spec.md: the original birch-clustering-algorithm
// source tracks node_cnt "for statistics and monitoring memory usage"
// across splits and rebuilds (main.cpp, CFTree.h); this mirrors that
// together with the teacher's MemoryBudgetStats snapshot-struct
// convention (pkg/cache/memory_budget.go).
type Stats struct {
	// NodeCount is the number of live nodes currently owned by the tree.
	NodeCount int

	// LeafCount is the number of leaves in the leaf chain.
	LeafCount int

	// EntryCount is the total number of leaf entries across the chain.
	EntryCount int

	// Threshold is the current absorb radius T.
	Threshold float64

	// RebuildCount is how many times Rebuild has run.
	RebuildCount int
}

// Stats returns a snapshot of the tree's current size and bookkeeping.
func (t *Tree) Stats() Stats {
	leafCount, entryCount := 0, 0
	for leaf := range t.LeafIter() {
		leafCount++
		entryCount += leaf.Size()
	}
	return Stats{
		NodeCount:    len(t.nodes),
		LeafCount:    leafCount,
		EntryCount:   entryCount,
		Threshold:    t.threshold,
		RebuildCount: t.rebuildCount,
	}
}
