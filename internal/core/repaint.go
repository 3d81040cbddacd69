package core

import (
	"github.com/axiswm/tilecore/internal/geometry"
	"github.com/axiswm/tilecore/internal/logging"
	"github.com/axiswm/tilecore/internal/tree"
)

// repaint pushes every tiled window's current leaf rectangle to the
// platform bridge, honouring the fullscreen and parent-promotion paint
// overrides of the rule (set_fullscreen, set_parent): the fullscreen
// occupant paints to the root rectangle instead of its leaf's, and a
// parent-promoted occupant paints to its parent Branch's rectangle.
func (c *Core) repaint(ws *tree.Workspace) {
	if ws.Empty() {
		return
	}

	rootView, ok := ws.View(ws.Root())
	if !ok {
		return
	}

	for _, ref := range ws.Leaves() {
		view, ok := ws.View(ref)
		if !ok {
			continue
		}
		for _, wid := range view.Stack {
			rect := view.Rect
			switch {
			case ws.Fullscreen() == wid:
				rect = rootView.Rect
			case ws.ParentPromoted() == wid:
				if parentRect, ok := ws.ParentRect(ref); ok {
					rect = parentRect
				}
			}
			if _, err := c.bridge.SetRect(wid, rect); err != nil {
				logging.Warn().Uint32("wid", uint32(wid)).Err(err).Msg("core: set_rect failed")
			}
		}
	}
}

// gapOffset exposes the workspace's configured inset. Nothing in the
// module calls it at present.
func (c *Core) gapOffset() geometry.Offset { return c.offset() }
