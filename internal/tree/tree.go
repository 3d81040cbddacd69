// Package tree implements the layout tree ( C3): the
// recursive binary container tree with embedded per-leaf stacks, and the
// shape mutations (add/remove/swap/fullscreen/parent) that the rule's
// tree invariants must survive.
//
// Nodes live in an arena (Workspace.nodes, a []node slice) addressed by
// NodeRef indices rather than pointers, per the "Back-pointers in
// the tree" design note — parent links are indices, and absorbing a
// subtree on removal is a pointer-rewire, not a manual free-and-copy.
package tree

import (
	"github.com/axiswm/tilecore/internal/coreerr"
	"github.com/axiswm/tilecore/internal/geometry"
	"github.com/axiswm/tilecore/internal/registry"
	"github.com/axiswm/tilecore/internal/solver"
)

// NodeRef addresses a node in a workspace's arena. NoRef means "absent".
type NodeRef int

// NoRef is the absent-node sentinel, used for an empty tree's root, a
// branch-less leaf's children, and a root node's parent.
const NoRef NodeRef = -1

// Kind distinguishes a Branch from a Leaf (the container node sum
// type).
type Kind int

const (
	Branch Kind = iota
	Leaf
)

type node struct {
	kind   Kind
	parent NodeRef
	rect   geometry.Rect
	used   bool

	// Branch fields.
	axis  geometry.Axis
	ratio float64
	left  NodeRef
	right NodeRef

	// Leaf fields.
	stack   Stack
	stacked bool // explicit "stacked" leaf mode; distinct from Len()>1
}

// Mode is a workspace's layout mode.
type Mode int

const (
	BSP Mode = iota
	Monocle
	Float
)

func (m Mode) String() string {
	switch m {
	case Monocle:
		return "monocle"
	case Float:
		return "float"
	default:
		return "bsp"
	}
}

// Workspace is one (display, virtual-desktop) pair's layout state. It
// exclusively owns its tree's arena.
type Workspace struct {
	ID          string
	Initialized bool
	Mode        Mode
	Offset      geometry.Offset
	FocusedWID  registry.WindowID // 0 = absent

	root NodeRef
	nodes []node
	free  []NodeRef
	index map[registry.WindowID]NodeRef

	fullscreenWID registry.WindowID
	parentWID     registry.WindowID

	lastDisplayRect geometry.Rect
}

// New creates an empty, uninitialized workspace.
func New(id string, offset geometry.Offset) *Workspace {
	return &Workspace{
		ID:     id,
		Offset: offset,
		root:   NoRef,
		index:  make(map[registry.WindowID]NodeRef),
	}
}

// Root returns the workspace's root node reference, or NoRef if the tree is
// absent.
func (ws *Workspace) Root() NodeRef { return ws.root }

// Empty reports whether the tree holds no windows at all.
func (ws *Workspace) Empty() bool { return ws.root == NoRef }

// ---- arena management ----

func (ws *Workspace) alloc() NodeRef {
	if n := len(ws.free); n > 0 {
		ref := ws.free[n-1]
		ws.free = ws.free[:n-1]
		ws.nodes[ref] = node{used: true}
		return ref
	}
	ws.nodes = append(ws.nodes, node{used: true})
	return NodeRef(len(ws.nodes) - 1)
}

func (ws *Workspace) allocLeaf(parent NodeRef, rect geometry.Rect) NodeRef {
	ref := ws.alloc()
	ws.nodes[ref].kind = Leaf
	ws.nodes[ref].parent = parent
	ws.nodes[ref].rect = rect
	ws.nodes[ref].left = NoRef
	ws.nodes[ref].right = NoRef
	return ref
}

func (ws *Workspace) freeNode(ref NodeRef) {
	if ref == NoRef {
		return
	}
	ws.nodes[ref] = node{used: false}
	ws.free = append(ws.free, ref)
}

func (ws *Workspace) at(ref NodeRef) *node {
	if ref == NoRef || int(ref) >= len(ws.nodes) || !ws.nodes[ref].used {
		coreerr.Invariant("reference to a freed or out-of-range node")
	}
	return &ws.nodes[ref]
}

// ---- NodeView: read-only traversal surface for callers outside the package ----

// NodeView is a snapshot of one node, returned by View for traversal,
// rendering, and tests.
type NodeView struct {
	Kind    Kind
	Rect    geometry.Rect
	Parent  NodeRef
	Axis    geometry.Axis
	Ratio   float64
	Left    NodeRef
	Right   NodeRef
	Stack   []registry.WindowID
	Stacked bool
}

// View returns a snapshot of ref. ok is false if ref is NoRef or invalid.
func (ws *Workspace) View(ref NodeRef) (NodeView, bool) {
	if ref == NoRef || int(ref) >= len(ws.nodes) || !ws.nodes[ref].used {
		return NodeView{}, false
	}
	n := &ws.nodes[ref]
	return NodeView{
		Kind:    n.kind,
		Rect:    n.rect,
		Parent:  n.parent,
		Axis:    n.axis,
		Ratio:   n.ratio,
		Left:    n.left,
		Right:   n.right,
		Stack:   n.stack.All(),
		Stacked: n.stacked,
	}, true
}

// Locate returns the leaf node holding wid, if any.
func (ws *Workspace) Locate(wid registry.WindowID) (NodeRef, bool) {
	ref, ok := ws.index[wid]
	return ref, ok
}

// Leaves returns every leaf node reference, in left-to-right in-order
// traversal order.
func (ws *Workspace) Leaves() []NodeRef {
	var out []NodeRef
	var walk func(ref NodeRef)
	walk = func(ref NodeRef) {
		if ref == NoRef {
			return
		}
		n := ws.at(ref)
		if n.kind == Leaf {
			out = append(out, ref)
			return
		}
		walk(n.left)
		walk(n.right)
	}
	walk(ws.root)
	return out
}

// FirstLeaf returns the leftmost leaf in in-order traversal — the default
// anchor for add() per the focus policy.
func (ws *Workspace) FirstLeaf() (NodeRef, bool) {
	leaves := ws.Leaves()
	if len(leaves) == 0 {
		return NoRef, false
	}
	return leaves[0], true
}

// EmptyLeaf returns the first pseudo-leaf (a leaf holding no window,
// stacked or not) found, if any
// — used by the reconciler to prefer attaching new windows to an empty
// leaf over splitting.
func (ws *Workspace) EmptyLeaf() (NodeRef, bool) {
	for _, ref := range ws.Leaves() {
		n := ws.at(ref)
		if n.stack.Len() == 0 {
			return ref, true
		}
	}
	return NoRef, false
}

// WindowIDs returns every window id reachable in the tree, in traversal
// (leaf, then stack) order.
func (ws *Workspace) WindowIDs() []registry.WindowID {
	var out []registry.WindowID
	for _, ref := range ws.Leaves() {
		out = append(out, ws.at(ref).stack.All()...)
	}
	return out
}

// LastDisplayRect returns the display rectangle used on the most recent
// solve, for building a fresh empty root when none exists yet.
func (ws *Workspace) LastDisplayRect() geometry.Rect { return ws.lastDisplayRect }

// SetLastDisplayRect records the display rectangle used for a solve pass.
func (ws *Workspace) SetLastDisplayRect(r geometry.Rect) { ws.lastDisplayRect = r }

// ---- solver.Tree adapter ----

func (ws *Workspace) Kind(ref solver.Ref) solver.Kind {
	n := ws.at(NodeRef(ref))
	if n.kind == Branch {
		return solver.Branch
	}
	return solver.Leaf
}
func (ws *Workspace) Axis(ref solver.Ref) geometry.Axis { return ws.at(NodeRef(ref)).axis }
func (ws *Workspace) Ratio(ref solver.Ref) float64      { return ws.at(NodeRef(ref)).ratio }
func (ws *Workspace) Children(ref solver.Ref) (solver.Ref, solver.Ref) {
	n := ws.at(NodeRef(ref))
	return solver.Ref(n.left), solver.Ref(n.right)
}
func (ws *Workspace) Gap() float64 { return ws.Offset.Gap }
func (ws *Workspace) SetRect(ref solver.Ref, r geometry.Rect) { ws.at(NodeRef(ref)).rect = r }

// solveSubtree re-solves containers rooted at ref using ref's own current
// rectangle as the incoming rect, per the rule "all mutations end by
// re-solving containers (C4) on the touched subtree".
func (ws *Workspace) solveSubtree(ref NodeRef) {
	if ref == NoRef {
		return
	}
	solver.Solve(ws, solver.Ref(ref), ws.at(ref).rect)
}

// solveRoot re-solves the whole tree from the workspace's last known
// display rectangle and offset.
func (ws *Workspace) solveRoot() {
	if ws.root == NoRef {
		return
	}
	solver.SolveWorkspace(ws, solver.Ref(ws.root), ws.lastDisplayRect, ws.Offset)
}

