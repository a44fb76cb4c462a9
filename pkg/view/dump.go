package view

import (
	"fmt"
	"io"
	"strings"
)

// Dump renders the subtree as an indented outline, one node per line.
func Dump(root *Node) string {
	var sb strings.Builder
	Fprint(&sb, root)
	return sb.String()
}

// Fprint writes the outline produced by Dump to w.
func Fprint(w io.Writer, root *Node) {
	var walk func(n *Node, depth int)
	walk = func(n *Node, depth int) {
		f := n.frame
		fmt.Fprintf(w, "%s%s#%s [%s] @(%.0f,%.0f %.0fx%.0f)\n",
			strings.Repeat("  ", depth), n.kind, n.id, n.params,
			f.Left, f.Top, f.Width(), f.Height())
		for _, c := range n.children {
			walk(c, depth+1)
		}
	}
	if root != nil {
		walk(root, 0)
	}
}
