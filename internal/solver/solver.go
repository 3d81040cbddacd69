// Package solver is the container solver ( C4): it computes
// child rectangles from a parent rectangle, split axis, and ratio, and
// assigns the resulting "computed rectangle" to every node in a subtree.
//
// It is deliberately decoupled from the layout tree's own node
// representation — it operates over the small Tree interface below — so
// the tree package (which owns node storage) can depend on it without a
// import cycle back the other way.
package solver

import "github.com/axiswm/tilecore/internal/geometry"

// Ref is an opaque node reference, matching tree.NodeRef's underlying type.
type Ref int

// NoRef is the absent-node sentinel.
const NoRef Ref = -1

// Kind distinguishes a Branch from a Leaf, matching the container
// node sum type.
type Kind int

const (
	Branch Kind = iota
	Leaf
)

// Tree is the minimal read/write view the solver needs over a workspace's
// arena: shape (Kind, Children, Axis, Ratio) and the sink for computed
// rectangles (SetRect).
type Tree interface {
	Kind(ref Ref) Kind
	Axis(ref Ref) geometry.Axis
	Ratio(ref Ref) float64
	Children(ref Ref) (left, right Ref)
	Gap() float64
	SetRect(ref Ref, r geometry.Rect)
}

// Solve assigns rect as root's incoming rectangle and recurses into its
// subtree, splitting at every Branch and applying the uniform
// g/2 inset to every Leaf. A Branch's own computed rectangle is the raw
// (un-inset) split result — needed verbatim by the "promote to parent"
// command, which targets a Branch's rectangle one level up.
func Solve(t Tree, root Ref, rect geometry.Rect) {
	if root == NoRef {
		return
	}
	if t.Kind(root) == Leaf {
		t.SetRect(root, rect.Inset(t.Gap()/2))
		return
	}

	t.SetRect(root, rect)
	left, right := t.Children(root)
	leftRect, rightRect := geometry.Split(rect, t.Axis(root), t.Ratio(root), t.Gap())
	Solve(t, left, leftRect)
	Solve(t, right, rightRect)
}

// SolveWorkspace subtracts offset's outer padding from displayRect (at the
// root only, per the rule) and solves the resulting subtree.
func SolveWorkspace(t Tree, root Ref, displayRect geometry.Rect, offset geometry.Offset) {
	Solve(t, root, offset.Apply(displayRect))
}
