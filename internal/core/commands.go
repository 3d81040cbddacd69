package core

import (
	"github.com/axiswm/tilecore/internal/coreerr"
	"github.com/axiswm/tilecore/internal/geometry"
	"github.com/axiswm/tilecore/internal/logging"
	"github.com/axiswm/tilecore/internal/registry"
	"github.com/axiswm/tilecore/internal/tree"
)

// FocusDirection moves focus to the neighbour of the currently focused
// window in direction d (the "focus(dir)"). A no-op on an empty
// workspace or when no neighbour exists in that direction.
func (c *Core) FocusDirection(d geometry.Direction) error {
	if c.gated() {
		return coreerr.ErrTransitioning
	}
	ws := c.workspace(c.current)
	if ws.Empty() || c.focus.Focused == 0 {
		return nil
	}
	neighbor, ok := c.resolveNeighbor(ws, c.focus.Focused, d, c.opts.NavWrap)
	if !ok {
		return coreerr.ErrNoNeighbor
	}
	return c.FocusWindow(neighbor)
}

// Shift is the "Shift focus in direction d": resolve neighbour,
// then focus(neighbour). It shares FocusDirection's neighbour resolution —
// the two command names describe the same composed operation.
func (c *Core) Shift(d geometry.Direction) error { return c.FocusDirection(d) }

// FocusWindow focuses wid directly, anywhere it lives. If wid is on
// another workspace, this performs the cross-workspace handoff: ensure
// the target workspace is initialized, switch current, then focus.
func (c *Core) FocusWindow(wid registry.WindowID) error {
	if c.gated() {
		return coreerr.ErrTransitioning
	}
	targetID, ok := c.locateWorkspace(wid)
	if !ok {
		return coreerr.ErrNotFound
	}
	if targetID != c.current {
		c.switchTo(targetID)
	}
	return c.focusRef(wid, true)
}

// locateWorkspace finds which workspace currently holds wid in its tree.
func (c *Core) locateWorkspace(wid registry.WindowID) (string, bool) {
	for id, ws := range c.workspaces {
		if _, ok := ws.Locate(wid); ok {
			return id, true
		}
	}
	return "", false
}

// SwapDirection resolves the neighbour in direction d and swaps the
// focused window with it (the rule "Swap nearest in direction d").
func (c *Core) SwapDirection(d geometry.Direction) error {
	if c.gated() {
		return coreerr.ErrTransitioning
	}
	ws := c.workspace(c.current)
	if ws.Empty() || c.focus.Focused == 0 {
		return nil
	}
	neighbor, ok := c.resolveNeighbor(ws, c.focus.Focused, d, c.opts.NavWrap)
	if !ok {
		return coreerr.ErrNoNeighbor
	}
	if err := ws.Swap(c.focus.Focused, neighbor); err != nil {
		return err
	}
	c.repaint(ws)
	return nil
}

// SwapWithMark swaps the focused window with the marked window when both
// are tilable on the same workspace, then clears the mark.
func (c *Core) SwapWithMark() error {
	if c.gated() {
		return coreerr.ErrTransitioning
	}
	if c.focus.Marked == 0 || c.focus.Focused == c.focus.Marked {
		return nil
	}
	ws := c.workspace(c.current)
	if _, ok := ws.Locate(c.focus.Marked); !ok {
		c.focus.ClearMark()
		return coreerr.ErrNotFound
	}
	if _, ok := ws.Locate(c.focus.Focused); !ok {
		return coreerr.ErrNotFound
	}
	if err := ws.Swap(c.focus.Focused, c.focus.Marked); err != nil {
		return err
	}
	c.focus.ClearMark()
	c.repaint(ws)
	return nil
}

// Mark sets the marked window (the rule "mark(wid)").
func (c *Core) Mark(wid registry.WindowID) error {
	if _, ok := c.locateWorkspace(wid); !ok {
		return coreerr.ErrNotFound
	}
	c.focus.Mark(wid)
	if c.overlay != nil {
		_ = c.overlay.Update("marked")
	}
	return nil
}

// ToggleFloat moves wid between the floating set and the tree. Entering
// float keeps the window's current geometry; leaving float re-inserts it
// by the standard anchor rules.
func (c *Core) ToggleFloat(wid registry.WindowID) error {
	if c.registry.IsFloating(wid) {
		c.registry.Unfloat(wid)
		ws := c.workspace(c.current)
		if empty, ok := ws.EmptyLeaf(); ok {
			ws.AttachEmpty(empty, wid)
		} else if anchor, ok := c.focus.Anchor(ws, wid); ok {
			ws.Add(anchor, wid, c.axisOverride)
		} else {
			ws.AddFirst(wid)
		}
		c.repaint(ws)
		return nil
	}

	targetID, ok := c.locateWorkspace(wid)
	if !ok {
		return coreerr.ErrNotFound
	}
	ws := c.workspace(targetID)
	ws.Remove(wid)
	c.registry.Float(wid)
	c.repaint(ws)
	return nil
}

// ToggleFullscreen toggles the focused window's fullscreen slot.
func (c *Core) ToggleFullscreen() error {
	if c.focus.Focused == 0 {
		return nil
	}
	ws := c.workspace(c.current)
	if ws.Fullscreen() == c.focus.Focused {
		ws.SetFullscreen(c.focus.Focused, false)
	} else {
		ws.SetFullscreen(c.focus.Focused, true)
	}
	c.repaint(ws)
	return nil
}

// ToggleParent toggles the focused window's parent-promotion.
func (c *Core) ToggleParent() error {
	if c.focus.Focused == 0 {
		return nil
	}
	ws := c.workspace(c.current)
	if ws.ParentPromoted() == c.focus.Focused {
		ws.SetParentPromoted(c.focus.Focused, false)
	} else {
		ws.SetParentPromoted(c.focus.Focused, true)
	}
	c.repaint(ws)
	return nil
}

// DetachReinsert floats wid (removing it from the tree), then immediately
// un-floats it, anchored at find_closest(focused, d, false) rather than
// the standard anchor policy (the rule "Detach and reinsert").
func (c *Core) DetachReinsert(wid registry.WindowID, d geometry.Direction) error {
	targetID, ok := c.locateWorkspace(wid)
	if !ok {
		return coreerr.ErrNotFound
	}
	ws := c.workspace(targetID)
	ws.Remove(wid)

	anchorWID := c.focus.Focused
	var anchorRef tree.NodeRef
	anchorFound := false
	if anchorWID != 0 && anchorWID != wid {
		if neighbor, ok := c.resolveNeighbor(ws, anchorWID, d, false); ok {
			if ref, ok := ws.Locate(neighbor); ok {
				anchorRef, anchorFound = ref, true
			}
		}
	}

	switch {
	case ws.Empty():
		ws.AddFirst(wid)
	case anchorFound:
		ws.Add(anchorRef, wid, c.axisOverride)
	default:
		if empty, ok := ws.EmptyLeaf(); ok {
			ws.AttachEmpty(empty, wid)
		} else if anchor, ok := c.focus.Anchor(ws, wid); ok {
			ws.Add(anchor, wid, c.axisOverride)
		} else if anchor, ok := ws.FirstLeaf(); ok {
			ws.Add(anchor, wid, c.axisOverride)
		}
	}

	c.repaint(ws)
	return nil
}

// SetSplitAxis presets the axis used for the next add()-driven split,
// overriding the optimal-axis heuristic until cleared (the rule
// "Callers may override with an explicit axis").
func (c *Core) SetSplitAxis(axis geometry.Axis) {
	a := axis
	c.axisOverride = &a
}

// ClearSplitAxisOverride restores the optimal-axis heuristic.
func (c *Core) ClearSplitAxisOverride() { c.axisOverride = nil }

// SetSpaceMode switches the current workspace's mode, converting its tree
// shape so a BSP<->Monocle round trip preserves window set and order.
func (c *Core) SetSpaceMode(mode tree.Mode) error {
	ws := c.workspace(c.current)
	if ws.Mode == mode {
		return nil
	}
	switch mode {
	case tree.Monocle:
		ws.ConvertToMonocle()
	case tree.BSP:
		ws.ConvertToBSP()
	case tree.Float:
		// Float mode manages no tree (documented Open Question
		// resolution): every window already in the tree becomes
		// implicitly floating.
		for _, wid := range ws.WindowIDs() {
			c.registry.Float(wid)
		}
		ws.Destroy()
	}
	ws.Mode = mode
	logging.Debug().Str("workspace", ws.ID).Str("mode", mode.String()).Msg("core: space mode changed")
	c.repaint(ws)
	return nil
}
