package view

import (
	"errors"
	"fmt"

	"github.com/go-drift/badger/pkg/graphics"
	"github.com/go-drift/badger/pkg/layout"
)

var (
	// ErrHasParent is returned when adding a node that is already attached.
	ErrHasParent = errors.New("view: node already has a parent")
	// ErrNotContainer is returned when adding children to a leaf.
	ErrNotContainer = errors.New("view: node is not a container")
	// ErrCycle is returned when a node would become its own ancestor.
	ErrCycle = errors.New("view: node would become its own ancestor")
	// ErrIndex is returned for an insertion index outside [0, ChildCount].
	ErrIndex = errors.New("view: child index out of range")
)

// Kind identifies what a node is and how it lays out children.
type Kind int

const (
	// KindLeaf is a content node (text, image) that cannot hold children.
	KindLeaf Kind = iota
	// KindColumn stacks children top to bottom.
	KindColumn
	// KindRow places children left to right.
	KindRow
	// KindFrame overlays children, placing each by gravity and margins.
	KindFrame
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindColumn:
		return "column"
	case KindRow:
		return "row"
	case KindFrame:
		return "frame"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Node is an element of the host tree.
type Node struct {
	id        string
	kind      Kind
	params    layout.Params
	parent    *Node
	children  []*Node
	intrinsic graphics.Size
	frame     graphics.Rect
}

// New creates a detached node with wrap-content params.
func New(kind Kind, id string) *Node {
	return &Node{id: id, kind: kind, params: layout.WrapParams(layout.GravityNone)}
}

// NewLeaf creates a detached leaf.
func NewLeaf(id string) *Node { return New(KindLeaf, id) }

// NewColumn creates a detached column container.
func NewColumn(id string) *Node { return New(KindColumn, id) }

// NewRow creates a detached row container.
func NewRow(id string) *Node { return New(KindRow, id) }

// NewFrame creates a detached overlay container.
func NewFrame(id string) *Node { return New(KindFrame, id) }

// ID returns the node's identifier. IDs are not required to be unique.
func (n *Node) ID() string { return n.id }

// SetID replaces the node's identifier.
func (n *Node) SetID(id string) { n.id = id }

// Kind returns the node kind.
func (n *Node) Kind() Kind { return n.kind }

// Params returns the node's layout params.
func (n *Node) Params() layout.Params { return n.params }

// SetParams replaces the node's layout params.
func (n *Node) SetParams(p layout.Params) { n.params = p }

// Intrinsic returns the content size used for wrap-content dimensions.
func (n *Node) Intrinsic() graphics.Size { return n.intrinsic }

// SetIntrinsic sets the content size. A zero dimension makes a
// wrap-content node take all the space offered, as a plain view does.
func (n *Node) SetIntrinsic(s graphics.Size) { n.intrinsic = s }

// Frame returns the node's bounds in root coordinates from the last Layout.
func (n *Node) Frame() graphics.Rect { return n.frame }

// Parent returns the containing node, or nil.
func (n *Node) Parent() *Node { return n.parent }

// IsContainer reports whether the node can hold children.
func (n *Node) IsContainer() bool { return n.kind != KindLeaf }

// OverlayCapable reports whether children are placed by gravity.
func (n *Node) OverlayCapable() bool { return n.kind == KindFrame }

// ChildCount returns the number of children.
func (n *Node) ChildCount() int { return len(n.children) }

// ChildAt returns the child at index i, or nil when out of range.
func (n *Node) ChildAt(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Children returns a copy of the child list.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// IndexOf returns the index of child, or -1.
func (n *Node) IndexOf(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

// AddChild appends child keeping its current params.
func (n *Node) AddChild(child *Node) error {
	return n.InsertChildAt(len(n.children), child)
}

// AddChildWithParams appends child after replacing its params.
func (n *Node) AddChildWithParams(child *Node, p layout.Params) error {
	if err := n.canAdopt(child); err != nil {
		return err
	}
	child.params = p
	return n.InsertChildAt(len(n.children), child)
}

// InsertChildAt inserts child at index, shifting later children.
func (n *Node) InsertChildAt(index int, child *Node) error {
	if err := n.canAdopt(child); err != nil {
		return err
	}
	if index < 0 || index > len(n.children) {
		return fmt.Errorf("%w: %d not in [0,%d]", ErrIndex, index, len(n.children))
	}
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	child.parent = n
	return nil
}

// RemoveChild detaches child and reports whether it was a child of n.
func (n *Node) RemoveChild(child *Node) bool {
	i := n.IndexOf(child)
	if i < 0 {
		return false
	}
	n.children = append(n.children[:i], n.children[i+1:]...)
	child.parent = nil
	return true
}

// Detach removes n from its parent, if any.
func (n *Node) Detach() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

// Root returns the topmost ancestor of n.
func (n *Node) Root() *Node {
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// IsAncestorOf reports whether n contains other at any depth.
func (n *Node) IsAncestorOf(other *Node) bool {
	for p := other.parent; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

func (n *Node) canAdopt(child *Node) error {
	switch {
	case child == nil:
		return errors.New("view: nil child")
	case !n.IsContainer():
		return fmt.Errorf("%w: %s#%s", ErrNotContainer, n.kind, n.id)
	case child.parent != nil:
		return fmt.Errorf("%w: %s#%s", ErrHasParent, child.kind, child.id)
	case child == n || child.IsAncestorOf(n):
		return ErrCycle
	}
	return nil
}

// Walk visits n and its descendants depth-first, pre-order. Returning false
// from visit skips the node's children.
func Walk(n *Node, visit func(*Node) bool) {
	if n == nil || !visit(n) {
		return
	}
	for _, c := range n.children {
		Walk(c, visit)
	}
}

// Find returns the first node in pre-order with the given ID.
func Find(root *Node, id string) *Node {
	var found *Node
	Walk(root, func(n *Node) bool {
		if found != nil {
			return false
		}
		if n.id == id {
			found = n
			return false
		}
		return true
	})
	return found
}
