package reconciler

import (
	"testing"

	"github.com/axiswm/tilecore/internal/geometry"
	"github.com/axiswm/tilecore/internal/registry"
	"github.com/axiswm/tilecore/internal/tree"
)

func descs(ids ...registry.WindowID) []registry.Descriptor {
	out := make([]registry.Descriptor, len(ids))
	for i, id := range ids {
		out[i] = registry.Descriptor{WID: id}
	}
	return out
}

func newWorkspace() *tree.Workspace {
	ws := tree.New("main", geometry.Offset{})
	ws.SetLastDisplayRect(geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080})
	return ws
}

func TestSyncBuildsTreeFromObserved(t *testing.T) {
	ws := newWorkspace()

	result := Sync(ws, descs(10, 20), nil, nil)

	if len(result.Added) != 2 {
		t.Fatalf("added = %v, want 2 windows", result.Added)
	}
	if !result.HasPending || result.PendingFocus != 20 {
		t.Fatalf("pending focus = %v (%v), want 20", result.PendingFocus, result.HasPending)
	}
	got := ws.WindowIDs()
	if len(got) != 2 {
		t.Fatalf("tree windows = %v, want [10 20]", got)
	}
}

func TestSyncRemovesStaleWindows(t *testing.T) {
	ws := newWorkspace()
	Sync(ws, descs(10, 20, 30), nil, nil)

	result := Sync(ws, descs(10, 30), nil, nil)
	if len(result.Removed) != 1 || result.Removed[0] != 20 {
		t.Fatalf("removed = %v, want [20]", result.Removed)
	}
	got := ws.WindowIDs()
	if len(got) != 2 {
		t.Fatalf("tree windows after removal = %v", got)
	}
	for _, wid := range got {
		if wid == 20 {
			t.Fatalf("stale window 20 still present: %v", got)
		}
	}
}

func TestSyncExcludesFloating(t *testing.T) {
	ws := newWorkspace()
	floating := map[registry.WindowID]bool{20: true}

	Sync(ws, descs(10, 20), floating, nil)

	got := ws.WindowIDs()
	if len(got) != 1 || got[0] != 10 {
		t.Fatalf("tree windows = %v, want [10] (20 is floating)", got)
	}
}

func TestSyncIdempotent(t *testing.T) {
	ws := newWorkspace()
	observed := descs(10, 20, 30)

	Sync(ws, observed, nil, nil)
	firstPass := ws.WindowIDs()

	second := Sync(ws, observed, nil, nil)
	secondPass := ws.WindowIDs()

	if len(second.Added) != 0 || len(second.Removed) != 0 {
		t.Fatalf("second Sync with unchanged input mutated the tree: added=%v removed=%v", second.Added, second.Removed)
	}
	if len(firstPass) != len(secondPass) {
		t.Fatalf("tree windows changed across idempotent Sync calls: %v -> %v", firstPass, secondPass)
	}
	for i := range firstPass {
		if firstPass[i] != secondPass[i] {
			t.Fatalf("tree window order changed across idempotent Sync calls: %v -> %v", firstPass, secondPass)
		}
	}
}

func TestSyncMonocleAppendsToSingleStackedLeaf(t *testing.T) {
	ws := newWorkspace()
	ws.Mode = tree.Monocle

	Sync(ws, descs(10, 20, 30), nil, nil)

	view, ok := ws.View(ws.Root())
	if !ok || view.Kind != tree.Leaf {
		t.Fatalf("monocle root = %+v, want a single leaf", view)
	}
	if len(view.Stack) != 3 {
		t.Fatalf("stack = %v, want all three windows in one leaf", view.Stack)
	}
}

// A pseudo-leaf (empty, under a Branch) only arises from a stacked leaf's
// stack emptying out — a Branch-owned single leaf is absorbed by its
// sibling on removal instead of going empty. Build that shape explicitly,
// then confirm Sync reuses the pseudo-leaf rather than splitting further.
func TestSyncAttachesToEmptyLeafBeforeSplitting(t *testing.T) {
	ws := newWorkspace()
	ws.AddFirst(10)
	rightRef := ws.Add(ws.Root(), 20, nil)
	ws.SetLeafStacked(rightRef, true)
	if _, destroyed := ws.Remove(20); destroyed {
		t.Fatalf("unexpected destroy")
	}

	empty, ok := ws.EmptyLeaf()
	if !ok {
		t.Fatalf("expected an empty pseudo-leaf after emptying the stacked leaf")
	}
	if empty != rightRef {
		t.Fatalf("empty leaf = %v, want the emptied stacked leaf %v", empty, rightRef)
	}

	Sync(ws, descs(10, 30), nil, nil)

	view, ok := ws.View(rightRef)
	if !ok {
		t.Fatalf("former pseudo-leaf reference became invalid")
	}
	if len(view.Stack) != 1 || view.Stack[0] != 30 {
		t.Fatalf("leaf after reattach = %+v, want single(30) reusing the empty leaf", view.Stack)
	}
}

func TestSyncDestroysTreeWhenLastWindowLeaves(t *testing.T) {
	ws := newWorkspace()
	Sync(ws, descs(10), nil, nil)

	result := Sync(ws, nil, nil, nil)
	if !result.Destroyed {
		t.Fatalf("expected the tree to be destroyed once the last window is gone")
	}
	if !ws.Empty() {
		t.Fatalf("workspace should be empty")
	}
}

func TestSyncUsesSuppliedAnchor(t *testing.T) {
	ws := newWorkspace()
	Sync(ws, descs(10, 20), nil, nil)

	anchorRef, ok := ws.Locate(20)
	if !ok {
		t.Fatalf("expected to locate window 20")
	}
	anchorCalls := 0
	anchorFor := func(w *tree.Workspace, incoming registry.WindowID) (tree.NodeRef, bool) {
		anchorCalls++
		return anchorRef, true
	}

	Sync(ws, descs(10, 20, 30), nil, anchorFor)

	if anchorCalls == 0 {
		t.Fatalf("custom anchor function was never consulted")
	}
	view, ok := ws.View(anchorRef)
	if ok {
		// anchorRef was split by the add; only the total window count is
		// checked below, not where 30 landed.
		_ = view
	}
	got := ws.WindowIDs()
	if len(got) != 3 {
		t.Fatalf("tree windows = %v, want all three windows present", got)
	}
}
