package tree

import (
	"testing"

	"github.com/axiswm/tilecore/internal/geometry"
)

func newTestWorkspace(t *testing.T, display geometry.Rect, gap float64) *Workspace {
	t.Helper()
	ws := New("test", geometry.Offset{Gap: gap})
	ws.SetLastDisplayRect(display)
	return ws
}

// buildFirstThree reproduces scenario 2's right-leaning shape: each new
// window splits the previously-inserted window's leaf, not the leftmost
// leaf, so the result is root.Left = single(10), root.Right =
// Branch(20, 30).
func buildFirstThree(t *testing.T, ws *Workspace) {
	t.Helper()
	ws.AddFirst(10)
	ws.Add(ws.root, 20, nil)
	anchor, ok := ws.Locate(20)
	if !ok {
		t.Fatalf("expected window 20 to be anchored in the tree")
	}
	ws.Add(anchor, 30, nil)
}

// Scenario 1: two windows, BSP, optimal split.
func TestScenarioTwoWindowsOptimalSplit(t *testing.T) {
	ws := newTestWorkspace(t, geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}, 0)
	ws.AddFirst(10)
	ws.Add(ws.root, 20, nil)

	root, ok := ws.View(ws.Root())
	if !ok || root.Kind != Branch {
		t.Fatalf("expected root to be a branch")
	}
	if root.Axis != geometry.Vertical {
		t.Fatalf("axis = %v, want vertical", root.Axis)
	}
	if root.Ratio != 0.5 {
		t.Fatalf("ratio = %v, want 0.5", root.Ratio)
	}

	left, _ := ws.View(root.Left)
	right, _ := ws.View(root.Right)
	if len(left.Stack) != 1 || left.Stack[0] != 10 {
		t.Fatalf("left leaf = %+v, want single(10)", left.Stack)
	}
	if left.Rect != (geometry.Rect{X: 0, Y: 0, Width: 960, Height: 1080}) {
		t.Fatalf("left rect = %+v", left.Rect)
	}
	if len(right.Stack) != 1 || right.Stack[0] != 20 {
		t.Fatalf("right leaf = %+v, want single(20)", right.Stack)
	}
	if right.Rect != (geometry.Rect{X: 960, Y: 0, Width: 960, Height: 1080}) {
		t.Fatalf("right rect = %+v", right.Rect)
	}
}

// Scenario 2: remove middle of three.
func TestScenarioRemoveMiddleOfThree(t *testing.T) {
	ws := newTestWorkspace(t, geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}, 0)
	buildFirstThree(t, ws)

	root, _ := ws.View(ws.Root())
	if root.Kind != Branch || root.Axis != geometry.Vertical {
		t.Fatalf("root = %+v, want vertical branch", root)
	}
	left, _ := ws.View(root.Left)
	if len(left.Stack) != 1 || left.Stack[0] != 10 {
		t.Fatalf("left leaf = %+v, want single(10)", left.Stack)
	}
	rightBranch, _ := ws.View(root.Right)
	if rightBranch.Kind != Branch || rightBranch.Axis != geometry.Horizontal {
		t.Fatalf("right = %+v, want horizontal branch", rightBranch)
	}

	hint, destroyed := ws.Remove(20)
	if destroyed {
		t.Fatalf("tree should not be destroyed by removing 20")
	}
	if hint != 30 {
		t.Fatalf("focus hint = %v, want 30 (leftmost of absorbed sibling)", hint)
	}

	root, _ = ws.View(ws.Root())
	if root.Kind != Branch || root.Axis != geometry.Vertical {
		t.Fatalf("root after remove = %+v, want vertical branch", root)
	}
	left, _ = ws.View(root.Left)
	if len(left.Stack) != 1 || left.Stack[0] != 10 {
		t.Fatalf("left leaf after remove = %+v, want single(10)", left.Stack)
	}
	if left.Rect != (geometry.Rect{X: 0, Y: 0, Width: 960, Height: 1080}) {
		t.Fatalf("left rect after remove = %+v", left.Rect)
	}
	right, _ := ws.View(root.Right)
	if len(right.Stack) != 1 || right.Stack[0] != 30 {
		t.Fatalf("right leaf after remove = %+v, want single(30)", right.Stack)
	}
	if right.Rect != (geometry.Rect{X: 960, Y: 0, Width: 960, Height: 1080}) {
		t.Fatalf("right rect after remove = %+v", right.Rect)
	}
}

// Scenario 3: stacked leaf.
func TestScenarioStackedLeaf(t *testing.T) {
	ws := newTestWorkspace(t, geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}, 0)
	ref := ws.EnsureRootLeaf(ws.LastDisplayRect())
	ws.SetLeafStacked(ref, true)

	ws.Add(ref, 10, nil)
	ws.Add(ref, 20, nil)
	ws.Add(ref, 30, nil)

	view, ok := ws.View(ws.Root())
	if !ok || view.Kind != Leaf || !view.Stacked {
		t.Fatalf("root = %+v, want a single stacked leaf", view)
	}
	if got := view.Stack; len(got) != 3 || got[0] != 10 || got[1] != 20 || got[2] != 30 {
		t.Fatalf("stack = %v, want [10 20 30]", got)
	}

	hint, destroyed := ws.Remove(20)
	if destroyed {
		t.Fatalf("removing a middle stack member must not destroy the tree")
	}
	if hint != 10 {
		t.Fatalf("focus hint = %v, want 10 (previous member)", hint)
	}
	view, _ = ws.View(ws.Root())
	if got := view.Stack; len(got) != 2 || got[0] != 10 || got[1] != 30 {
		t.Fatalf("stack after removing 20 = %v, want [10 30]", got)
	}

	hint, destroyed = ws.Remove(10)
	if destroyed {
		t.Fatalf("removing the head with a successor must not destroy the tree")
	}
	if hint != 30 {
		t.Fatalf("focus hint = %v, want 30 (successor becomes new head)", hint)
	}
	view, _ = ws.View(ws.Root())
	if got := view.Stack; len(got) != 1 || got[0] != 30 {
		t.Fatalf("stack after removing 10 = %v, want [30]", got)
	}
}

// Scenario 4: swap preserves geometry.
func TestScenarioSwapPreservesGeometry(t *testing.T) {
	ws := newTestWorkspace(t, geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}, 0)
	ws.AddFirst(10)
	ws.Add(ws.root, 20, nil)

	if err := ws.Swap(10, 20); err != nil {
		t.Fatalf("Swap returned error: %v", err)
	}

	root, _ := ws.View(ws.Root())
	left, _ := ws.View(root.Left)
	right, _ := ws.View(root.Right)
	if len(left.Stack) != 1 || left.Stack[0] != 20 {
		t.Fatalf("left leaf = %+v, want single(20)", left.Stack)
	}
	if left.Rect != (geometry.Rect{X: 0, Y: 0, Width: 960, Height: 1080}) {
		t.Fatalf("left rect changed by swap: %+v", left.Rect)
	}
	if len(right.Stack) != 1 || right.Stack[0] != 10 {
		t.Fatalf("right leaf = %+v, want single(10)", right.Stack)
	}
	if right.Rect != (geometry.Rect{X: 960, Y: 0, Width: 960, Height: 1080}) {
		t.Fatalf("right rect changed by swap: %+v", right.Rect)
	}
}

func TestSwapInvolution(t *testing.T) {
	ws := newTestWorkspace(t, geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}, 0)
	buildFirstThree(t, ws)

	before := ws.WindowIDs()
	if err := ws.Swap(10, 30); err != nil {
		t.Fatalf("first swap: %v", err)
	}
	if err := ws.Swap(10, 30); err != nil {
		t.Fatalf("second swap: %v", err)
	}
	after := ws.WindowIDs()
	if len(before) != len(after) {
		t.Fatalf("window count changed across swap/swap: %v -> %v", before, after)
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("swap;swap is not the identity: %v -> %v", before, after)
		}
	}
}

// Scenario 6: Monocle <-> BSP round-trip.
func TestScenarioMonocleBSPRoundTrip(t *testing.T) {
	ws := newTestWorkspace(t, geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}, 0)
	ws.Mode = Monocle
	ref := ws.EnsureRootLeaf(ws.LastDisplayRect())
	ws.SetLeafStacked(ref, true)
	ws.Add(ref, 10, nil)
	ws.Add(ref, 20, nil)
	ws.Add(ref, 30, nil)

	ws.ConvertToBSP()
	ws.Mode = BSP

	got := ws.WindowIDs()
	if len(got) != 3 {
		t.Fatalf("lost windows converting to BSP: %v", got)
	}
	root, _ := ws.View(ws.Root())
	if root.Kind != Branch {
		t.Fatalf("BSP root must be a branch, got %+v", root)
	}

	ws.ConvertToMonocle()
	ws.Mode = Monocle

	view, ok := ws.View(ws.Root())
	if !ok || view.Kind != Leaf || !view.Stacked {
		t.Fatalf("Monocle root = %+v, want a single stacked leaf", view)
	}
	if len(view.Stack) != 3 || view.Stack[0] != 10 || view.Stack[1] != 20 || view.Stack[2] != 30 {
		t.Fatalf("stack after round trip = %v, want [10 20 30]", view.Stack)
	}
}

// Boundary: single-window workspace. Remove destroys the root.
func TestBoundarySingleWindowRemoveDestroysRoot(t *testing.T) {
	ws := newTestWorkspace(t, geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}, 0)
	ws.AddFirst(10)

	hint, destroyed := ws.Remove(10)
	if !destroyed {
		t.Fatalf("removing the sole window must destroy the tree")
	}
	if hint != 0 {
		t.Fatalf("hint = %v, want 0 (no window left to focus)", hint)
	}
	if !ws.Empty() {
		t.Fatalf("workspace should be empty after destroying its only window")
	}
}

// Add/remove round-trip law: add(T, w); remove(T, w) reproduces T, when w
// lands in a fresh sibling whose parent absorption perfectly reverses the
// split.
func TestAddRemoveRoundTrip(t *testing.T) {
	ws := newTestWorkspace(t, geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}, 0)
	ws.AddFirst(10)

	before := ws.WindowIDs()
	anchor, _ := ws.FirstLeaf()
	ws.Add(anchor, 20, nil)
	if _, destroyed := ws.Remove(20); destroyed {
		t.Fatalf("removing the freshly-added sibling destroyed the tree")
	}

	after := ws.WindowIDs()
	if len(before) != len(after) || before[0] != after[0] {
		t.Fatalf("add/remove round trip changed the tree: %v -> %v", before, after)
	}
	root, _ := ws.View(ws.Root())
	if root.Kind != Leaf || len(root.Stack) != 1 || root.Stack[0] != 10 {
		t.Fatalf("root after round trip = %+v, want single(10) leaf", root)
	}
	if root.Rect != (geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}) {
		t.Fatalf("root rect after round trip = %+v, want the full display rect", root.Rect)
	}
}

func TestClampRatioBoundary(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{in: -1, want: geometry.MinRatio},
		{in: 0, want: geometry.MinRatio},
		{in: 0.5, want: 0.5},
		{in: 1, want: geometry.MaxRatio},
		{in: 2, want: geometry.MaxRatio},
	}
	for _, c := range cases {
		if got := geometry.ClampRatio(c.in); got != c.want {
			t.Fatalf("ClampRatio(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
