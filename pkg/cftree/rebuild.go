// pkg/cftree/rebuild.go
package cftree

import "math"

// thresholdGuardFactor is the minimum growth factor applied to the
// threshold on each extending rebuild, guaranteeing forward progress
// even when the geometry-derived candidate would not shrink the leaf
// count any further (spec 4.5).
const thresholdGuardFactor = 1.05

// Rebuild reinserts every current leaf entry into a fresh tree,
// optionally with an enlarged threshold, to compact the tree and merge
// overlapping sub-clusters (spec 4.5). extend=true derives a new
// threshold from the tree's current geometry before rebuilding (used
// to enforce Budget); extend=false rebuilds with the threshold
// unchanged, merging only what already overlaps at the current radius.
func (t *Tree) Rebuild(extend bool) error {
	if extend {
		t.threshold = t.nextThreshold()
	}

	aux := newTreeRaw(t.dim, t.capacity, t.threshold, t.budget, t.rebuildInterval, t.descendKind, t.absorbKind)

	for leaf := range t.LeafIter() {
		// Leaf entries are inserted as already-summarized units; their
		// statistics are never re-derived from raw points, which are
		// long gone by the time a rebuild runs (spec 4.5).
		for _, e := range leaf.Entries() {
			if err := aux.insertEntry(e); err != nil {
				return err
			}
		}
	}

	// Swap the auxiliary tree's structural state into self; the prior
	// nodes become unreachable and are released by the garbage
	// collector (spec 4.5 step 3, spec 9 "Rebuild swap").
	t.root = aux.root
	t.dummy = aux.dummy
	t.nodes = aux.nodes
	t.rebuildCount++

	return nil
}

// RebuildCount returns how many times Rebuild has run.
func (t *Tree) RebuildCount() int {
	return t.rebuildCount
}

// nextThreshold derives the new threshold for an extending rebuild
// (spec 4.5): for every leaf with at least two entries, find each
// entry's nearest-neighbor distance within that same leaf, take its
// square root, and average across every qualifying entry tree-wide.
// The candidate threshold is (avg/2)^2; the effective threshold never
// falls below 1.05x the old one, guaranteeing forward progress even
// when the candidate is non-increasing (spec 9, Open Question (a): no
// qualifying leaf at all collapses to the same guarded-only case:
// totalN stays 0 and the early return below skips the division).
func (t *Tree) nextThreshold() float64 {
	var totalDist float64
	var totalN int

	for leaf := range t.LeafIter() {
		entries := leaf.Entries()
		if len(entries) < 2 {
			continue
		}
		nearest := make([]float64, len(entries))
		for i := range nearest {
			nearest[i] = math.MaxFloat64
		}
		for i := 0; i < len(entries)-1; i++ {
			for j := i + 1; j < len(entries); j++ {
				d := t.descend(entries[i], entries[j])
				if d < 0 {
					d = 0
				}
				d = math.Sqrt(d)
				if d < nearest[i] {
					nearest[i] = d
				}
				if d < nearest[j] {
					nearest[j] = d
				}
			}
		}
		for _, d := range nearest {
			totalDist += d
		}
		totalN += len(entries)
	}

	guarded := t.threshold * thresholdGuardFactor
	if totalN == 0 {
		return guarded
	}

	avg := totalDist / float64(totalN)
	candidate := (avg / 2) * (avg / 2)
	return math.Max(guarded, candidate)
}
