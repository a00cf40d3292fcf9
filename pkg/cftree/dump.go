// pkg/cftree/dump.go
package cftree

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes an indented, depth-first listing of every node and entry
// to w, for development and debugging — grounded on the dumper.go
// convention shared by the bart route-table implementations in the
// reference pack (indented per-depth node listing written to an
// io.Writer).
func (t *Tree) Dump(w io.Writer) error {
	if t.root == nil {
		_, err := io.WriteString(w, "(destroyed tree)\n")
		return err
	}
	return dumpNode(w, t.root, 0)
}

func dumpNode(w io.Writer, n *Node, depth int) error {
	indent := strings.Repeat(".", depth)
	kind := "LEAF"
	if !n.IsLeaf() {
		kind = "INTERNAL"
	}
	if _, err := fmt.Fprintf(w, "%s[%s] size=%d/%d\n", indent, kind, n.Size(), n.Capacity()); err != nil {
		return err
	}
	for i, e := range n.Entries() {
		if _, err := fmt.Fprintf(w, "%s  entry[%d] n=%d ls=%v ss=%.6g\n", indent, i, e.N, e.Ls, e.Ss); err != nil {
			return err
		}
		if e.HasChild() {
			if err := dumpNode(w, e.child, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}
