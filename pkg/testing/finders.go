package testing

import (
	"fmt"

	"github.com/go-drift/badger/pkg/view"
)

// Finder locates nodes in a host tree.
type Finder interface {
	// Evaluate returns all matching nodes under root (depth-first pre-order).
	Evaluate(root *view.Node) []*view.Node
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	nodes  []*view.Node
	finder Finder
}

// Find evaluates f against root.
func Find(root *view.Node, f Finder) FinderResult {
	return FinderResult{nodes: f.Evaluate(root), finder: f}
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() *view.Node {
	if len(r.nodes) == 0 {
		panic(fmt.Sprintf("Finder found no nodes: %s", r.describe()))
	}
	return r.nodes[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() *view.Node {
	if len(r.nodes) == 0 {
		return nil
	}
	return r.nodes[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) *view.Node {
	if index < 0 || index >= len(r.nodes) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.nodes), r.describe()))
	}
	return r.nodes[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []*view.Node {
	return r.nodes
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.nodes)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.nodes) > 0
}

func (r FinderResult) describe() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

type predicateFinder struct {
	match func(*view.Node) bool
	desc  string
}

func (f *predicateFinder) Evaluate(root *view.Node) []*view.Node {
	var out []*view.Node
	view.Walk(root, func(n *view.Node) bool {
		if f.match(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByID matches nodes with the given ID. Several nodes may share an ID, for
// example a host and the wrapper that took over its identity.
func ByID(id string) Finder {
	return &predicateFinder{
		match: func(n *view.Node) bool { return n.ID() == id },
		desc:  fmt.Sprintf("ByID(%q)", id),
	}
}

// ByKind matches nodes of the given kind.
func ByKind(kind view.Kind) Finder {
	return &predicateFinder{
		match: func(n *view.Node) bool { return n.Kind() == kind },
		desc:  fmt.Sprintf("ByKind(%s)", kind),
	}
}

// ByPredicate matches nodes for which fn returns true.
func ByPredicate(desc string, fn func(*view.Node) bool) Finder {
	return &predicateFinder{match: fn, desc: fmt.Sprintf("ByPredicate(%s)", desc)}
}
