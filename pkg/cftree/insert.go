// pkg/cftree/insert.go
package cftree

import "log"

// splitOutcome is the result of a recursive insert: either the
// subtree absorbed the new entry without growing, or it overflowed and
// produced a second entry the caller must place (spec 9: "a small sum
// type {NoSplit, Split(entry)}").
type splitOutcome struct {
	split    bool
	promoted Entry
}

// Insert absorbs one point into the tree (spec 4.3, spec 6). It fails
// with ErrDimensionMismatch if point's length does not equal the
// tree's dimension; the tree is left unchanged in that case.
func (t *Tree) Insert(point []float64) error {
	p, err := t.validatePoint(point)
	if err != nil {
		return err
	}
	return t.insertEntry(entryFromPoint(p))
}

// insertEntry runs the standard insertion path for an already-built
// entry, shared by Insert (a fresh one-point entry) and by Rebuild
// (existing, already-summarized leaf entries re-absorbed as whole
// units, spec 4.5 step 2).
func (t *Tree) insertEntry(e Entry) error {
	outcome := t.insertInto(t.root, e)
	if outcome.split {
		t.splitRoot(outcome.promoted)
	}

	t.rebuildPos++
	if t.rebuildPos >= t.rebuildInterval {
		t.rebuildPos = 0
		return t.enforceBudget()
	}
	return nil
}

// enforceBudget repeatedly rebuilds with an enlarged threshold while
// the leaf-entry count exceeds Budget (spec 4.3, "Rebuild trigger").
// Each rebuild raises the threshold, which shrinks the leaf count in
// expectation; maxRebuildIterationsPerInsert bounds the loop against
// the degenerate case where the 1.05x guard is the only progress
// (spec 7, RebuildStall) — that is a clustering-quality issue, not a
// correctness violation, so it is logged rather than returned as an
// error.
func (t *Tree) enforceBudget() error {
	if t.budget <= 0 {
		return nil
	}
	for iterations := 0; t.leafEntryCount() > t.budget; iterations++ {
		if iterations >= maxRebuildIterationsPerInsert {
			log.Printf("cftree: rebuild stall after %d rebuild(s), %d leaf entries still exceed budget %d",
				iterations, t.leafEntryCount(), t.budget)
			return nil
		}
		if err := t.Rebuild(true); err != nil {
			return err
		}
	}
	return nil
}

// insertInto descends from node to place e, mutating statistics
// post-order on unwind so every internal entry's sum stays consistent
// with its subtree even mid-recursion (spec 9: "the mutation happens
// after the recursive call returns"). Grounded on the teacher's
// insertRecursive / splitResult out-parameter pattern in
// pkg/btree/btree.go.
func (t *Tree) insertInto(node *Node, e Entry) splitOutcome {
	if node.IsEmpty() {
		node.Append(e)
		return splitOutcome{}
	}

	idx := t.closestIndex(node, e)
	closeEntry := node.EntryAt(idx)

	if closeEntry.HasChild() {
		childOutcome := t.insertInto(closeEntry.child, e)
		if !childOutcome.split {
			node.MergeAt(idx, e)
			return splitOutcome{}
		}
		return t.splitNode(node, idx, childOutcome.promoted)
	}

	// closeEntry is a leaf entry: absorb, append, or signal a split.
	//
	// The threshold comparison is against whatever scale the configured
	// absorb distance returns; D0 (the reference choice) is a squared
	// Euclidean distance, so Threshold must be supplied already-squared
	// when using D0 (spec 9, Open Question (c)).
	if t.absorb(closeEntry, e) < t.threshold {
		node.MergeAt(idx, e)
		return splitOutcome{}
	}
	if !node.IsFull() {
		node.Append(e)
		return splitOutcome{}
	}
	return splitOutcome{split: true, promoted: e}
}

// closestIndex returns the index of the entry in node closest to e
// under the descent distance, breaking ties by lowest index (spec 4.3
// step 2).
func (t *Tree) closestIndex(node *Node, e Entry) int {
	best := 0
	bestDist := t.descend(node.EntryAt(0), e)
	for i := 1; i < node.Size(); i++ {
		d := t.descend(node.EntryAt(i), e)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}
