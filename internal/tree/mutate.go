package tree

import (
	"github.com/axiswm/tilecore/internal/coreerr"
	"github.com/axiswm/tilecore/internal/geometry"
	"github.com/axiswm/tilecore/internal/registry"
)

// AddFirst creates the workspace's root as a leaf holding wid. Called only
// when the tree is absent (the rule lifecycle: root is optional until the
// first window is observed).
func (ws *Workspace) AddFirst(wid registry.WindowID) NodeRef {
	if ws.root != NoRef {
		coreerr.Invariant("AddFirst called with a tree already present")
	}
	ref := ws.allocLeaf(NoRef, geometry.Rect{})
	ws.nodes[ref].stack.Append(wid)
	ws.index[wid] = ref
	ws.root = ref
	ws.Initialized = true
	ws.solveRoot()
	return ref
}

// Add implements the add(root, wid): anchor must be a Leaf.
// If anchor is in *stacked* state, wid is appended to its stack tail.
// Otherwise (empty or single), anchor is split into a fresh Branch whose
// two children are fresh Leaves: one inherits anchor's previous occupant
// (if any), the other carries wid. axisOverride, if non-nil, replaces the
// optimal-axis heuristic.
func (ws *Workspace) Add(anchor NodeRef, wid registry.WindowID, axisOverride *geometry.Axis) NodeRef {
	n := ws.at(anchor)
	if n.kind != Leaf {
		coreerr.Invariant("add() anchor must be a leaf")
	}

	if n.stacked {
		n.stack.Append(wid)
		ws.index[wid] = anchor
		return anchor
	}

	axis := geometry.OptimalAxis(n.rect)
	if axisOverride != nil {
		axis = *axisOverride
	}

	prevWID, hadPrev := n.stack.Head()

	leftRef := ws.allocLeaf(anchor, geometry.Rect{})
	rightRef := ws.allocLeaf(anchor, geometry.Rect{})
	if hadPrev {
		ws.nodes[leftRef].stack.Append(prevWID)
		ws.index[prevWID] = leftRef
	}
	ws.nodes[rightRef].stack.Append(wid)
	ws.index[wid] = rightRef

	// Re-acquire anchor's node: the two allocLeaf calls above may have grown
	// ws.nodes and reallocated its backing array, stranding the pointer n
	// captured before them.
	n = ws.at(anchor)

	// Convert anchor in place into a Branch, so the parent's child pointer
	// (or ws.root) does not need to change.
	n.kind = Branch
	n.axis = axis
	n.ratio = 0.5
	n.left = leftRef
	n.right = rightRef
	n.stack = Stack{}
	n.stacked = false

	ws.solveSubtree(anchor)
	return rightRef
}

// AttachEmpty places wid into ref, an existing empty pseudo-leaf, without
// splitting it. This is the reconciler's "attach in place" path, distinct
// from Add, which always splits a non-stacked leaf regardless of
// occupancy. ref must be an empty Leaf (stacked or not).
func (ws *Workspace) AttachEmpty(ref NodeRef, wid registry.WindowID) {
	n := ws.at(ref)
	if n.kind != Leaf || n.stack.Len() != 0 {
		coreerr.Invariant("AttachEmpty requires an empty leaf")
	}
	n.stack.Append(wid)
	ws.index[wid] = ref
}

// Remove implements the remove(root, wid) (the four cases).
// hint is the window the caller should consider focusing next; destroyed
// reports whether the entire tree was torn down (wid was the sole window).
func (ws *Workspace) Remove(wid registry.WindowID) (hint registry.WindowID, destroyed bool) {
	ref, ok := ws.index[wid]
	if !ok {
		return 0, false
	}
	n := ws.at(ref)
	if n.kind != Leaf {
		coreerr.Invariant("index points at a non-leaf node")
	}

	if n.stacked {
		return ws.removeStackMember(ref, wid)
	}

	delete(ws.index, wid)
	if n.parent == NoRef {
		// Case 4: wid is the sole window in the entire tree.
		ws.freeNode(ref)
		ws.root = NoRef
		return 0, true
	}
	hint = ws.absorbSibling(ref)
	return hint, false
}

// removeStackMember handles cases 1 and 2: unlinking a stack member.
func (ws *Workspace) removeStackMember(ref NodeRef, wid registry.WindowID) (hint registry.WindowID, destroyed bool) {
	n := ws.at(ref)
	idx := n.stack.IndexOf(wid)
	if idx < 0 {
		coreerr.Invariant("stack does not contain indexed wid")
	}

	all := n.stack.All()
	if idx == 0 {
		// Case 2: head. Successor becomes the new head / focus hint.
		if len(all) > 1 {
			hint = all[1]
		}
	} else {
		// Case 1: non-head member. Focus hint = previous member.
		hint = all[idx-1]
	}

	n.stack.Remove(wid)
	delete(ws.index, wid)

	if n.stack.Len() == 0 {
		n.stacked = false
		if n.parent == NoRef {
			// The stacked leaf was the entire tree.
			ws.freeNode(ref)
			ws.root = NoRef
			return 0, true
		}
	}
	return hint, false
}

// absorbSibling implements case 3: wid was the sole occupant of a
// Branch-owned Leaf. The sibling's subtree is rewired into the parent's
// position in the grandparent (or as the new root), and its rectangles are
// re-solved against the absorbed space. Returns the leftmost leaf's window
// of the absorbed subtree as the focus hint.
func (ws *Workspace) absorbSibling(leafRef NodeRef) registry.WindowID {
	leaf := ws.at(leafRef)
	parentRef := leaf.parent
	parent := ws.at(parentRef)

	var siblingRef NodeRef
	if parent.left == leafRef {
		siblingRef = parent.right
	} else {
		siblingRef = parent.left
	}

	grandparentRef := parent.parent
	parentRect := parent.rect

	if grandparentRef == NoRef {
		ws.root = siblingRef
		ws.at(siblingRef).parent = NoRef
	} else {
		gp := ws.at(grandparentRef)
		if gp.left == parentRef {
			gp.left = siblingRef
		} else {
			gp.right = siblingRef
		}
		ws.at(siblingRef).parent = grandparentRef
	}

	ws.at(siblingRef).rect = parentRect
	ws.solveSubtree(siblingRef)

	ws.freeNode(parentRef)
	ws.freeNode(leafRef)

	return ws.leftmostWindow(siblingRef)
}

func (ws *Workspace) leftmostWindow(ref NodeRef) registry.WindowID {
	n := ws.at(ref)
	if n.kind == Leaf {
		if wid, ok := n.stack.Head(); ok {
			return wid
		}
		return 0
	}
	return ws.leftmostWindow(n.left)
}

// StackCycle returns wid's neighbour in its leaf's stack, wrapping around
// at either end. Used by Monocle mode's "shift"/"swap nearest" commands,
// which navigate by stack order with cycle-through-screen wrap instead of
// C6's spatial scoring.
func (ws *Workspace) StackCycle(wid registry.WindowID, forward bool) (registry.WindowID, bool) {
	ref, ok := ws.index[wid]
	if !ok {
		return 0, false
	}
	n := ws.at(ref)
	all := n.stack.All()
	if len(all) < 2 {
		return 0, false
	}
	idx := n.stack.IndexOf(wid)
	if idx < 0 {
		return 0, false
	}
	var next int
	if forward {
		next = (idx + 1) % len(all)
	} else {
		next = (idx - 1 + len(all)) % len(all)
	}
	return all[next], true
}

// Swap exchanges the window ids held at a's and b's slots. Structure and
// rectangles are unchanged (the swap(a,b)).
func (ws *Workspace) Swap(a, b registry.WindowID) error {
	if a == b {
		return nil
	}
	refA, okA := ws.index[a]
	refB, okB := ws.index[b]
	if !okA || !okB {
		return coreerr.ErrNotFound
	}

	if refA == refB {
		n := ws.at(refA)
		ia, ib := n.stack.IndexOf(a), n.stack.IndexOf(b)
		n.stack.ReplaceAt(ia, b)
		n.stack.ReplaceAt(ib, a)
	} else {
		na, nb := ws.at(refA), ws.at(refB)
		ia, ib := na.stack.IndexOf(a), nb.stack.IndexOf(b)
		na.stack.ReplaceAt(ia, b)
		nb.stack.ReplaceAt(ib, a)
	}

	ws.index[a] = refB
	ws.index[b] = refA
	return nil
}

// SetFullscreen records or clears wid as the root's fullscreen slot
// occupant (the set_fullscreen). Paint-time (not this method)
// resolves the fullscreen occupant's target rectangle to the root's rect.
func (ws *Workspace) SetFullscreen(wid registry.WindowID, on bool) {
	if on {
		ws.fullscreenWID = wid
		return
	}
	if ws.fullscreenWID == wid {
		ws.fullscreenWID = 0
	}
}

// Fullscreen returns the current fullscreen-slot occupant, or 0 if none.
func (ws *Workspace) Fullscreen() registry.WindowID { return ws.fullscreenWID }

// SetParentPromoted records or clears wid as promoted to its parent
// Branch's rectangle (the set_parent).
func (ws *Workspace) SetParentPromoted(wid registry.WindowID, on bool) {
	if on {
		ws.parentWID = wid
		return
	}
	if ws.parentWID == wid {
		ws.parentWID = 0
	}
}

// ParentPromoted returns the current parent-promoted occupant, or 0.
func (ws *Workspace) ParentPromoted() registry.WindowID { return ws.parentWID }

// ParentRect returns the rectangle of ref's parent Branch, used to resolve
// a parent-promoted window's paint target (the rule set_parent).
func (ws *Workspace) ParentRect(ref NodeRef) (geometry.Rect, bool) {
	n := ws.at(ref)
	if n.parent == NoRef {
		return geometry.Rect{}, false
	}
	return ws.at(n.parent).rect, true
}

// SetLeafStacked toggles a leaf between BSP (single/empty) and stacked
// mode. Used to mark a pseudo-leaf as stacked before the first window
// lands in it.
func (ws *Workspace) SetLeafStacked(ref NodeRef, stacked bool) {
	n := ws.at(ref)
	if n.kind != Leaf {
		coreerr.Invariant("SetLeafStacked on a non-leaf node")
	}
	n.stacked = stacked
}

// EnsureRootLeaf creates an empty pseudo-leaf root covering displayRect if
// no root exists yet, and returns it. Used so a leaf can be marked stacked
// before any window has arrived.
func (ws *Workspace) EnsureRootLeaf(displayRect geometry.Rect) NodeRef {
	if ws.root != NoRef {
		return ws.root
	}
	ws.lastDisplayRect = displayRect
	ref := ws.allocLeaf(NoRef, ws.Offset.Apply(displayRect))
	ws.root = ref
	return ref
}

// Destroy tears down the entire tree, used when the last tiled window
// leaves a workspace (the rule lifecycle).
func (ws *Workspace) Destroy() {
	ws.nodes = nil
	ws.free = nil
	ws.index = make(map[registry.WindowID]NodeRef)
	ws.root = NoRef
	ws.fullscreenWID = 0
	ws.parentWID = 0
}

// ConvertToMonocle rebuilds the tree as a single stacked leaf containing
// every window currently in the tree, in their current traversal order
//.
func (ws *Workspace) ConvertToMonocle() {
	wids := ws.WindowIDs()
	displayRect := ws.lastDisplayRect
	ws.Destroy()
	if len(wids) == 0 {
		return
	}
	ref := ws.allocLeaf(NoRef, geometry.Rect{})
	ws.nodes[ref].stacked = true
	for _, wid := range wids {
		ws.nodes[ref].stack.Append(wid)
		ws.index[wid] = ref
	}
	ws.root = ref
	ws.lastDisplayRect = displayRect
	ws.solveRoot()
}

// ConvertToBSP rebuilds the tree as a Branch hierarchy from the windows
// currently in the tree, in their current order: each window after the
// first splits the leaf of the window added just before it, so the new
// tree's traversal order matches the old one.
func (ws *Workspace) ConvertToBSP() {
	wids := ws.WindowIDs()
	displayRect := ws.lastDisplayRect
	ws.Destroy()
	ws.lastDisplayRect = displayRect
	var prev registry.WindowID
	for _, wid := range wids {
		if ws.root == NoRef {
			ws.AddFirst(wid)
			prev = wid
			continue
		}
		anchor, ok := ws.Locate(prev)
		prev = wid
		if !ok {
			ws.AddFirst(wid)
			continue
		}
		ws.Add(anchor, wid, nil)
	}
}
