// pkg/cftree/tree.go
package cftree

import (
	"cftree/pkg/cfvector"
)

// maxRebuildIterationsPerInsert caps the rebuild loop triggered after
// each insertion (spec 7, RebuildStall): if raising the threshold stops
// shrinking the leaf count, the tree logs and carries on rather than
// looping forever.
const maxRebuildIterationsPerInsert = 64

// Tree is a CF-tree: an on-line, memory-bounded structure that absorbs
// fixed-dimension points into a height-balanced tree of sufficient
// statistics (spec 3.4). A Tree is single-threaded: all operations must
// run to completion on one goroutine (spec 5); concurrent mutation is
// undefined.
type Tree struct {
	dim       int
	capacity  int
	threshold float64
	budget    int

	rebuildInterval int
	rebuildPos      int
	rebuildCount    int

	descendKind DistanceKind
	absorbKind  DistanceKind
	descend     DistanceFunc
	absorb      DistanceFunc

	root  *Node
	dummy *Node
	nodes map[*Node]struct{}
}

// New constructs a fresh tree with one empty leaf root (spec 6,
// "construct").
func New(cfg Config) (*Tree, error) {
	if cfg.Dimension <= 0 {
		return nil, ErrInvalidDimension
	}
	if cfg.Threshold <= 0 {
		return nil, ErrInvalidThreshold
	}
	if cfg.Budget < 0 {
		return nil, ErrInvalidBudget
	}
	if cfg.RebuildInterval < 1 {
		return nil, ErrInvalidRebuildInterval
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	capacity := Capacity(pageSize, cfg.Dimension)

	return newTreeRaw(cfg.Dimension, capacity, cfg.Threshold, cfg.Budget, cfg.RebuildInterval, cfg.Descend, cfg.Absorb), nil
}

// newTreeRaw builds a tree from already-validated parameters and a
// precomputed capacity, shared by New and by Rebuild's auxiliary tree
// construction (spec 4.5 step 1: "same K, same R, same distance
// functions").
func newTreeRaw(dim, capacity int, threshold float64, budget, rebuildInterval int, descendKind, absorbKind DistanceKind) *Tree {
	root := newNode(capacity, true)
	dummy := newNode(capacity, true)
	dummy.next = root
	root.prev = dummy

	return &Tree{
		dim:             dim,
		capacity:        capacity,
		threshold:       threshold,
		budget:          budget,
		rebuildInterval: rebuildInterval,
		descendKind:     descendKind,
		absorbKind:      absorbKind,
		descend:         descendKind.Func(),
		absorb:          absorbKind.Func(),
		root:            root,
		dummy:           dummy,
		nodes:           map[*Node]struct{}{root: {}},
	}
}

// Dimension returns D, the fixed point dimension.
func (t *Tree) Dimension() int {
	return t.dim
}

// Threshold returns the current absorb radius T.
func (t *Tree) Threshold() float64 {
	return t.threshold
}

// Budget returns the configured leaf-entry budget K (0 = unbounded).
func (t *Tree) Budget() int {
	return t.budget
}

// Empty reports whether the root is an empty leaf (spec 6, "empty").
func (t *Tree) Empty() bool {
	return t.root.IsEmpty()
}

// registerNode adds a newly allocated node to the tree's flat node
// collection (spec 3.4), used for bulk teardown and (per spec 9, Open
// Question (b)) eagerly dropped for nodes a split makes unreachable.
func (t *Tree) registerNode(n *Node) {
	t.nodes[n] = struct{}{}
}

// unregisterNode drops a node from the collection once it has been
// fully replaced by its two split children.
func (t *Tree) unregisterNode(n *Node) {
	delete(t.nodes, n)
}

// Destroy releases every node owned by the tree (spec 6, "destroy").
// The tree must not be used afterward; doing so panics, the same
// use-after-free contract the teacher's pager.Page applies to a
// released page.
func (t *Tree) Destroy() {
	t.root = nil
	t.dummy = nil
	t.nodes = nil
}

// firstLeaf returns the first real leaf in the chain, or nil if the
// tree is empty of leaves (never true once constructed, since the root
// starts as an empty leaf reachable from dummy.next).
func (t *Tree) firstLeaf() *Node {
	return t.dummy.next
}

// LeafIter returns a Go 1.23 range-over-func iterator walking the leaf
// chain in order, satisfying spec 6's leaf_iter() (spec 9's reference
// implementation used a forward C++ iterator; idiomatic Go expresses
// the same finite forward walk as range-over-func).
func (t *Tree) LeafIter() func(yield func(*Node) bool) {
	return func(yield func(*Node) bool) {
		for leaf := t.firstLeaf(); leaf != nil; leaf = leaf.next {
			if !yield(leaf) {
				return
			}
		}
	}
}

// Entries returns a flat, ordered copy of every leaf entry across the
// whole chain (spec 6, "entries()").
func (t *Tree) Entries() []Entry {
	var out []Entry
	for leaf := range t.LeafIter() {
		out = append(out, leaf.Entries()...)
	}
	return out
}

// leafEntryCount returns the total number of leaf entries across the
// chain, used by the rebuild trigger to test against Budget.
func (t *Tree) leafEntryCount() int {
	n := 0
	for leaf := range t.LeafIter() {
		n += leaf.Size()
	}
	return n
}

// validatePoint checks a caller-supplied point against the tree's
// dimension, converting it to a defensive cfvector.Point copy.
func (t *Tree) validatePoint(point []float64) (cfvector.Point, error) {
	if len(point) != t.dim {
		return nil, ErrDimensionMismatch
	}
	return cfvector.NewPoint(point), nil
}
