// Package focus implements the focus state machine ( C7):
// the process-wide Focused/InsertionPoint/Marked state, focus-follows-
// cursor, and the anchor-leaf selection policy consumed by the reconciler
// and command surface. Cross-workspace focus handoff is done by
// internal/core, not here.
package focus

import (
	"github.com/axiswm/tilecore/internal/geometry"
	"github.com/axiswm/tilecore/internal/logging"
	"github.com/axiswm/tilecore/internal/registry"
	"github.com/axiswm/tilecore/internal/tree"
)

// State is the process-wide focus state (the rule "Global singletons":
// lifted out of file-scope globals into one owned struct per process).
// Focused, InsertionPoint, and Marked are shared across every workspace;
// a workspace's own FocusedWID (tree.Workspace) records the last focus
// within that workspace specifically, distinct from this process-wide
// state per the data model.
type State struct {
	Focused        registry.WindowID
	InsertionPoint registry.WindowID
	Marked         registry.WindowID
}

// New returns an empty focus state.
func New() *State { return &State{} }

// SetFocused records wid as the focused window. originatedFromUser should
// be true for explicit user-driven focus commands (focus by id or
// direction); focus-follows-cursor must pass false, since it does not
// update the insertion point (the rule "Insertion point").
func (s *State) SetFocused(wid registry.WindowID, originatedFromUser bool) {
	s.Focused = wid
	if originatedFromUser {
		s.InsertionPoint = wid
	}
}

// Mark sets the marked window, replacing any previous mark.
func (s *State) Mark(wid registry.WindowID) { s.Marked = wid }

// ClearMark clears the mark, e.g. after it was consumed by a swap or an
// anchor resolution, or because the marked window stopped being tilable.
func (s *State) ClearMark() { s.Marked = 0 }

// Anchor implements the anchor-leaf selection policy for add/
// "anchor leaf" resolution (used by the reconciler, C3, and the command
// surface, C8): the insertion point when no window is marked, otherwise
// the mark (which is then cleared), else the leftmost leaf. incoming is the
// wid about to be inserted, excluded from candidacy so a window never
// anchors itself.
func (s *State) Anchor(ws *tree.Workspace, incoming registry.WindowID) (tree.NodeRef, bool) {
	if s.Marked == 0 && s.InsertionPoint != 0 && s.InsertionPoint != incoming {
		if ref, ok := ws.Locate(s.InsertionPoint); ok {
			return ref, true
		}
	}
	if s.Marked != 0 && s.Marked != incoming {
		if ref, ok := ws.Locate(s.Marked); ok {
			s.ClearMark()
			return ref, true
		}
	}
	return ws.FirstLeaf()
}

// CursorTarget is a window eligible for focus-follows-cursor: its id and
// last-known rectangle, in F (focus-candidate) order.
type CursorTarget struct {
	WID  registry.WindowID
	Rect geometry.Rect
}

// IsIgnoredHelper reports whether a descriptor is a platform dock helper
// or the launchpad overlay, both of which focus-follows-cursor must skip.
// A nil IsIgnoredHelper ignores nothing.
type IsIgnoredHelper func(registry.WindowID) bool

// FollowCursor scans candidates in order and focuses the first window
// whose rectangle contains the cursor, skipping ignored helpers. It is
// idempotent when the found window already equals the current focus, and
// does not update the insertion point (focus-follows-cursor is not a
// user-originated focus command).
func (s *State) FollowCursor(cursor geometry.Point, candidates []CursorTarget, ignored IsIgnoredHelper) (registry.WindowID, bool) {
	for _, c := range candidates {
		if ignored != nil && ignored(c.WID) {
			continue
		}
		if !c.Rect.Contains(cursor) {
			continue
		}
		if c.WID == s.Focused {
			return c.WID, true
		}
		s.SetFocused(c.WID, false)
		logging.Debug().Uint32("wid", uint32(c.WID)).Msg("focus: followed cursor")
		return c.WID, true
	}
	return 0, false
}
