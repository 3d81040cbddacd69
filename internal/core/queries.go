package core

import "github.com/axiswm/tilecore/internal/registry"

// IsFloating reports whether wid is in the floating set (the rule
// "is_floating(wid)").
func (c *Core) IsFloating(wid registry.WindowID) bool { return c.registry.IsFloating(wid) }

// IsFullscreen reports whether wid currently occupies its workspace's
// fullscreen slot (the rule "is_fullscreen(wid)").
func (c *Core) IsFullscreen(wid registry.WindowID) bool {
	for _, ws := range c.workspaces {
		if ws.Fullscreen() == wid {
			return true
		}
	}
	return false
}

// WindowsOnWorkspace returns every tiled wid on workspace id, in traversal
// order (the rule "windows_on_workspace(ws) → [wid]").
func (c *Core) WindowsOnWorkspace(id string) []registry.WindowID {
	ws, ok := c.workspaces[id]
	if !ok {
		return nil
	}
	return ws.WindowIDs()
}

// FocusedWID returns the process-wide focused window id, or 0 if none
// (the rule "focused_wid()").
func (c *Core) FocusedWID() registry.WindowID { return c.focus.Focused }

// MarkedWID returns the currently marked window id, or 0 if none.
func (c *Core) MarkedWID() registry.WindowID { return c.focus.Marked }

// Windows returns the active-window list W, for table/tree rendering (C11).
func (c *Core) Windows() []registry.Descriptor { return c.registry.Windows() }

// FloatingSet returns a snapshot of the floating window ids, for rendering.
func (c *Core) FloatingSet() map[registry.WindowID]bool { return c.registry.FloatingSet() }
