// Package reconciler implements the tree reconciler ( C5): it
// diffs a workspace's layout tree against the observed, tilable,
// non-floating window set, and brings the tree back in sync.
package reconciler

import (
	"github.com/axiswm/tilecore/internal/logging"
	"github.com/axiswm/tilecore/internal/registry"
	"github.com/axiswm/tilecore/internal/tree"
)

// Result reports what Sync changed, so the caller (Core) can update focus
// and recentre the cursor without the reconciler reaching into focus state
// itself.
type Result struct {
	Removed      []registry.WindowID
	Added        []registry.WindowID
	PendingFocus registry.WindowID // 0 if no add happened this pass
	HasPending   bool
	Destroyed    bool
}

// AnchorFunc resolves the leaf a new window should be anchored to when no
// empty leaf is available, per the anchor-selection policy
// (insertion point when nothing is marked, else the mark, else the leftmost
// leaf). incoming is the wid
// about to be inserted, excluded from candidacy. Core supplies the real
// policy (focus.State.Anchor); a nil AnchorFunc falls back to the leftmost
// leaf only.
type AnchorFunc func(ws *tree.Workspace, incoming registry.WindowID) (tree.NodeRef, bool)

// Sync brings ws's tree in line with observed, skipping wids in floating.
// It does not check tilability itself: observed is taken as already
// filtered to tilable windows. It never touches focus state directly; the
// caller is expected to act on Result.PendingFocus per the rule.
func Sync(ws *tree.Workspace, observed []registry.Descriptor, floating map[registry.WindowID]bool, anchorFor AnchorFunc) Result {
	wanted := make(map[registry.WindowID]bool, len(observed))
	order := make([]registry.WindowID, 0, len(observed))
	for _, d := range observed {
		if floating[d.WID] {
			continue
		}
		if !wanted[d.WID] {
			wanted[d.WID] = true
			order = append(order, d.WID)
		}
	}

	present := make(map[registry.WindowID]bool)
	for _, wid := range ws.WindowIDs() {
		present[wid] = true
	}

	var result Result

	for wid := range present {
		if !wanted[wid] {
			if _, destroyed := ws.Remove(wid); destroyed {
				result.Destroyed = true
			}
			result.Removed = append(result.Removed, wid)
			logging.Debug().
				Str("workspace", ws.ID).
				Uint32("wid", uint32(wid)).
				Msg("reconciler: removed stale window")
		}
	}

	for _, wid := range order {
		if present[wid] {
			continue
		}
		attach(ws, wid, anchorFor)
		result.Added = append(result.Added, wid)
		result.PendingFocus = wid
		result.HasPending = true
		logging.Debug().
			Str("workspace", ws.ID).
			Uint32("wid", uint32(wid)).
			Msg("reconciler: added window")
	}

	return result
}

// attach attaches to an existing empty leaf if one exists, otherwise
// splits via add(), anchored per the C7 focus policy. In
// Monocle mode every add appends to the workspace's single stacked leaf; no
// Branch may appear.
func attach(ws *tree.Workspace, wid registry.WindowID, anchorFor AnchorFunc) {
	if ws.Empty() {
		ref := ws.AddFirst(wid)
		if ws.Mode == tree.Monocle {
			ws.SetLeafStacked(ref, true)
		}
		return
	}

	if ws.Mode == tree.Monocle {
		root := ws.Root()
		ws.Add(root, wid, nil)
		return
	}

	if empty, ok := ws.EmptyLeaf(); ok {
		ws.AttachEmpty(empty, wid)
		return
	}

	var anchor tree.NodeRef
	var ok bool
	if anchorFor != nil {
		anchor, ok = anchorFor(ws, wid)
	}
	if !ok {
		anchor, ok = ws.FirstLeaf()
	}
	if !ok {
		ws.AddFirst(wid)
		return
	}
	ws.Add(anchor, wid, nil)
}
