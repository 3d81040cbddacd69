package core

import (
	"github.com/axiswm/tilecore/internal/geometry"
	"github.com/axiswm/tilecore/internal/nav"
	"github.com/axiswm/tilecore/internal/registry"
	"github.com/axiswm/tilecore/internal/tree"
)

// resolveNeighbor finds the window the direction commands should target
// next: C6's alignment-biased spatial search in BSP mode, or the stacked
// leaf's cycle-with-wrap order in Monocle mode ("swap nearest" targets the
// stack neighbour with cycle-through-screen wrap).
func (c *Core) resolveNeighbor(ws *tree.Workspace, origin registry.WindowID, d geometry.Direction, wrap bool) (registry.WindowID, bool) {
	if ws.Mode == tree.Monocle {
		forward := d == geometry.Right || d == geometry.Down
		return ws.StackCycle(origin, forward)
	}

	originRef, ok := ws.Locate(origin)
	if !ok {
		return 0, false
	}
	originView, ok := ws.View(originRef)
	if !ok {
		return 0, false
	}

	var candidates []nav.Candidate
	order := 0
	for _, ref := range ws.Leaves() {
		view, ok := ws.View(ref)
		if !ok {
			continue
		}
		for _, wid := range view.Stack {
			candidates = append(candidates, nav.Candidate{WID: wid, Rect: view.Rect, Order: order})
			order++
		}
	}

	return nav.FindClosest(originView.Rect, origin, candidates, d, wrap, ws.LastDisplayRect())
}
