package solver

import (
	"testing"

	"github.com/axiswm/tilecore/internal/geometry"
)

// fakeTree is a minimal in-memory Tree for exercising Solve without the
// full arena machinery in package tree.
type fakeTree struct {
	kind      map[Ref]Kind
	axis      map[Ref]geometry.Axis
	ratio     map[Ref]float64
	children  map[Ref][2]Ref
	gap       float64
	rects     map[Ref]geometry.Rect
}

func newFakeTree(gap float64) *fakeTree {
	return &fakeTree{
		kind:     make(map[Ref]Kind),
		axis:     make(map[Ref]geometry.Axis),
		ratio:    make(map[Ref]float64),
		children: make(map[Ref][2]Ref),
		gap:      gap,
		rects:    make(map[Ref]geometry.Rect),
	}
}

func (f *fakeTree) Kind(ref Ref) Kind                { return f.kind[ref] }
func (f *fakeTree) Axis(ref Ref) geometry.Axis       { return f.axis[ref] }
func (f *fakeTree) Ratio(ref Ref) float64            { return f.ratio[ref] }
func (f *fakeTree) Children(ref Ref) (Ref, Ref)      { c := f.children[ref]; return c[0], c[1] }
func (f *fakeTree) Gap() float64                     { return f.gap }
func (f *fakeTree) SetRect(ref Ref, r geometry.Rect) { f.rects[ref] = r }

func TestSolveLeafOnlyTree(t *testing.T) {
	f := newFakeTree(0)
	f.kind[0] = Leaf

	Solve(f, 0, geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080})

	want := geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}
	if f.rects[0] != want {
		t.Fatalf("leaf rect = %+v, want %+v", f.rects[0], want)
	}
}

func TestSolveLeafGapInset(t *testing.T) {
	f := newFakeTree(20)
	f.kind[0] = Leaf

	Solve(f, 0, geometry.Rect{X: 0, Y: 0, Width: 1000, Height: 1000})

	want := geometry.Rect{X: 10, Y: 10, Width: 980, Height: 980}
	if f.rects[0] != want {
		t.Fatalf("leaf rect = %+v, want %+v (g/2 inset on all sides)", f.rects[0], want)
	}
}

// Two-window BSP scenario from the rule.
func TestSolveTwoLeafBranch(t *testing.T) {
	f := newFakeTree(0)
	f.kind[0] = Branch
	f.axis[0] = geometry.Vertical
	f.ratio[0] = 0.5
	f.children[0] = [2]Ref{1, 2}
	f.kind[1] = Leaf
	f.kind[2] = Leaf

	Solve(f, 0, geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080})

	if f.rects[1] != (geometry.Rect{X: 0, Y: 0, Width: 960, Height: 1080}) {
		t.Fatalf("left leaf rect = %+v", f.rects[1])
	}
	if f.rects[2] != (geometry.Rect{X: 960, Y: 0, Width: 960, Height: 1080}) {
		t.Fatalf("right leaf rect = %+v", f.rects[2])
	}
	// the branch's own computed rectangle is un-inset, used by parent-promotion.
	if f.rects[0] != (geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}) {
		t.Fatalf("branch rect = %+v, want the raw un-inset rect", f.rects[0])
	}
}

func TestSolveWorkspaceAppliesPadding(t *testing.T) {
	f := newFakeTree(0)
	f.kind[0] = Leaf

	offset := geometry.Offset{Top: 10, Bottom: 10, Left: 20, Right: 20}
	SolveWorkspace(f, 0, geometry.Rect{X: 0, Y: 0, Width: 1000, Height: 800}, offset)

	want := geometry.Rect{X: 20, Y: 10, Width: 960, Height: 780}
	if f.rects[0] != want {
		t.Fatalf("rect = %+v, want %+v", f.rects[0], want)
	}
}

func TestSolveNoRefIsNoop(t *testing.T) {
	f := newFakeTree(0)
	Solve(f, NoRef, geometry.Rect{Width: 100, Height: 100})
	if len(f.rects) != 0 {
		t.Fatalf("Solve(NoRef, ...) should not write any rects")
	}
}
