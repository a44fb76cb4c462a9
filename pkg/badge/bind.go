package badge

import (
	stderrors "errors"
	"fmt"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/go-drift/badger/pkg/errors"
	"github.com/go-drift/badger/pkg/layout"
	"github.com/go-drift/badger/pkg/view"
)

var (
	// ErrNoParent is returned when the host is not attached to a container,
	// so there is nowhere to put the badge.
	ErrNoParent = stderrors.New("badge: host has no parent")
	// ErrSelfBind is returned when a badge is asked to decorate itself.
	ErrSelfBind = stderrors.New("badge: cannot bind a badge to itself")
	// ErrPlanApplied is returned by Apply on a plan that already ran.
	ErrPlanApplied = stderrors.New("badge: plan already applied")
	// ErrStalePlan is returned by Apply when the tree no longer matches the
	// plan. Nothing is modified.
	ErrStalePlan = stderrors.New("badge: plan does not match the tree")
)

// StepOp is a single host tree mutation.
type StepOp int

const (
	// StepDetach removes the badge from its current container.
	StepDetach StepOp = iota
	// StepRemove removes the host from its container.
	StepRemove
	// StepAdd appends Child to Parent with Params.
	StepAdd
	// StepInsert inserts Child into Parent at Index.
	StepInsert
)

func (op StepOp) String() string {
	switch op {
	case StepDetach:
		return "detach"
	case StepRemove:
		return "remove"
	case StepAdd:
		return "add"
	case StepInsert:
		return "insert"
	default:
		return fmt.Sprintf("StepOp(%d)", int(op))
	}
}

// Step is one mutation of a Plan.
type Step struct {
	Op     StepOp
	Parent *view.Node
	Child  *view.Node
	Index  int
	Params layout.Params
}

func (s Step) String() string {
	switch s.Op {
	case StepAdd:
		return fmt.Sprintf("add %s#%s to %s#%s [%s]", s.Child.Kind(), s.Child.ID(), s.Parent.Kind(), s.Parent.ID(), s.Params)
	case StepInsert:
		return fmt.Sprintf("insert %s#%s into %s#%s at %d", s.Child.Kind(), s.Child.ID(), s.Parent.Kind(), s.Parent.ID(), s.Index)
	default:
		return fmt.Sprintf("%s %s#%s from %s#%s", s.Op, s.Child.Kind(), s.Child.ID(), s.Parent.Kind(), s.Parent.ID())
	}
}

// Plan is the ordered list of mutations that attaches a badge to a host.
type Plan struct {
	Steps []Step
	// Container is the overlay node that will hold the badge.
	Container *view.Node
	// Wrapper is the overlay node created for the host, or nil when the
	// host's parent was already overlay capable.
	Wrapper *view.Node

	applied bool
}

// Wraps reports whether applying the plan inserts a wrapper.
func (p *Plan) Wraps() bool { return p.Wrapper != nil }

func (p *Plan) String() string {
	lines := make([]string, len(p.Steps))
	for i, s := range p.Steps {
		lines[i] = s.String()
	}
	return strings.Join(lines, "\n")
}

// PlanBind computes how to attach badgeNode, with params, next to host. It
// does not modify the tree; the wrapper it may create stays detached until
// the plan is applied.
func PlanBind(host, badgeNode *view.Node, params layout.Params) (*Plan, error) {
	if host == nil || host.Parent() == nil {
		return nil, ErrNoParent
	}
	if host == badgeNode {
		return nil, ErrSelfBind
	}
	if badgeNode.IsAncestorOf(host) {
		return nil, fmt.Errorf("badge: host %s#%s is inside the badge node", host.Kind(), host.ID())
	}

	plan := &Plan{}
	parent := host.Parent()
	index := parent.IndexOf(host)

	if current := badgeNode.Parent(); current != nil {
		plan.Steps = append(plan.Steps, Step{Op: StepDetach, Parent: current, Child: badgeNode})
		if current == parent && current.IndexOf(badgeNode) < index {
			index--
		}
	}

	if parent.OverlayCapable() {
		plan.Container = parent
		plan.Steps = append(plan.Steps, Step{Op: StepAdd, Parent: parent, Child: badgeNode, Params: params})
		return plan, nil
	}

	wrapper := view.NewFrame(host.ID())
	wrapper.SetParams(host.Params())
	plan.Container = wrapper
	plan.Wrapper = wrapper
	plan.Steps = append(plan.Steps,
		Step{Op: StepRemove, Parent: parent, Child: host, Index: index},
		Step{Op: StepAdd, Parent: wrapper, Child: host, Params: host.Params()},
		Step{Op: StepAdd, Parent: wrapper, Child: badgeNode, Params: params},
		Step{Op: StepInsert, Parent: parent, Child: wrapper, Index: index},
	)
	return plan, nil
}

// Apply performs the plan's mutations in order. A plan can be applied once.
//
// The steps are first replayed against a copy of the affected child lists.
// If the tree changed since PlanBind in a way that would make a step fail,
// Apply returns ErrStalePlan and the tree is left untouched; the plan may be
// applied later once the tree matches again.
func (p *Plan) Apply() error {
	if p.applied {
		return ErrPlanApplied
	}
	if err := p.check(); err != nil {
		return err
	}
	p.applied = true
	for _, s := range p.Steps {
		if err := s.apply(); err != nil {
			return fmt.Errorf("%s: %w", s, err)
		}
	}
	return nil
}

// planState shadows the parent and children of every node a plan touches.
type planState struct {
	parents  map[*view.Node]*view.Node
	children map[*view.Node][]*view.Node
}

func (st *planState) parent(n *view.Node) *view.Node {
	if p, ok := st.parents[n]; ok {
		return p
	}
	return n.Parent()
}

func (st *planState) kids(n *view.Node) []*view.Node {
	if c, ok := st.children[n]; ok {
		return c
	}
	c := n.Children()
	st.children[n] = c
	return c
}

func (st *planState) isAncestor(a, n *view.Node) bool {
	for p := st.parent(n); p != nil; p = st.parent(p) {
		if p == a {
			return true
		}
	}
	return false
}

func (p *Plan) check() error {
	st := &planState{
		parents:  make(map[*view.Node]*view.Node),
		children: make(map[*view.Node][]*view.Node),
	}
	for _, s := range p.Steps {
		if err := st.step(s); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrStalePlan, s, err)
		}
	}
	return nil
}

func (st *planState) step(s Step) error {
	switch s.Op {
	case StepDetach, StepRemove:
		kids := st.kids(s.Parent)
		i := slices.Index(kids, s.Child)
		if i < 0 {
			return fmt.Errorf("%s#%s is no longer a child", s.Child.Kind(), s.Child.ID())
		}
		if s.Op == StepRemove && i != s.Index {
			return fmt.Errorf("%s#%s moved from index %d to %d", s.Child.Kind(), s.Child.ID(), s.Index, i)
		}
		st.children[s.Parent] = slices.Delete(kids, i, i+1)
		st.parents[s.Child] = nil
		return nil
	case StepAdd, StepInsert:
		if !s.Parent.IsContainer() {
			return view.ErrNotContainer
		}
		if st.parent(s.Child) != nil {
			return view.ErrHasParent
		}
		if s.Child == s.Parent || st.isAncestor(s.Child, s.Parent) {
			return view.ErrCycle
		}
		kids := st.kids(s.Parent)
		i := len(kids)
		if s.Op == StepInsert {
			if s.Index < 0 || s.Index > len(kids) {
				return fmt.Errorf("%w: %d not in [0,%d]", view.ErrIndex, s.Index, len(kids))
			}
			i = s.Index
		}
		st.children[s.Parent] = slices.Insert(kids, i, s.Child)
		st.parents[s.Child] = s.Parent
		return nil
	default:
		return fmt.Errorf("unknown step %s", s.Op)
	}
}

func (s Step) apply() error {
	switch s.Op {
	case StepDetach, StepRemove:
		if !s.Parent.RemoveChild(s.Child) {
			return fmt.Errorf("%s#%s is no longer a child", s.Child.Kind(), s.Child.ID())
		}
		return nil
	case StepAdd:
		return s.Parent.AddChildWithParams(s.Child, s.Params)
	case StepInsert:
		return s.Parent.InsertChildAt(s.Index, s.Child)
	default:
		return fmt.Errorf("unknown step %s", s.Op)
	}
}

// Bind attaches the badge next to host. Binding an already bound badge is a
// no-op that returns nil, even if host differs; Unbind first to move it.
func (b *Badge) Bind(host *view.Node) error {
	if b.IsBound() {
		return nil
	}
	plan, err := PlanBind(host, b.node, b.node.Params())
	if err != nil {
		return b.bindError(host, err)
	}
	if err := plan.Apply(); err != nil {
		return b.bindError(host, err)
	}
	b.bound = true
	log.WithFields(logrus.Fields{
		"node":    b.node.ID(),
		"host":    host.ID(),
		"wrapped": plan.Wraps(),
	}).Debug("badge bound")
	b.MarkNeedsPaint()
	return nil
}

func (b *Badge) bindError(host *view.Node, err error) error {
	id := ""
	if host != nil {
		id = host.ID()
	}
	return errors.Wrap("badge.Bind", errors.KindBind, id, err)
}

// Unbind removes the badge from its container. It is a no-op when the badge
// is not bound. A wrapper inserted by Bind is left in place.
func (b *Badge) Unbind() {
	if !b.IsBound() {
		return
	}
	parent := b.node.Parent()
	parent.RemoveChild(b.node)
	b.bound = false
	log.WithField("node", b.node.ID()).Debug("badge unbound")
}
