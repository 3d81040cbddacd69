package core

import (
	"github.com/axiswm/tilecore/internal/bridge"
	"github.com/axiswm/tilecore/internal/geometry"
	"github.com/axiswm/tilecore/internal/logging"
	"github.com/axiswm/tilecore/internal/reconciler"
	"github.com/axiswm/tilecore/internal/registry"
	"github.com/axiswm/tilecore/internal/tree"
)

// OnSnapshot drives one end-to-end observation tick (the fixed
// ordering: refresh → filter_for_screen → reconcile → repaint → focus
// update). It is the only entry point platform callbacks should invoke.
func (c *Core) OnSnapshot(display geometry.Rect) error {
	if c.gated() {
		logging.Debug().Msg("core: tick skipped, space transition in progress")
		return nil
	}

	observed, err := c.bridge.Snapshot()
	if err != nil {
		return err
	}

	descriptors := make([]registry.Descriptor, 0, len(observed))
	systemModal := false
	for _, w := range observed {
		d := registry.Descriptor{PID: w.PID, WID: w.WID, Layer: w.Layer, App: w.App, Title: w.Title, Rect: w.Rect}
		if role, _, err := c.bridge.Role(w.WID); err == nil && role == registry.RoleSystemModal {
			systemModal = true
		}
		descriptors = append(descriptors, d)
	}

	c.registry.Refresh(descriptors)

	ok := c.registry.FilterForScreen(func(registry.WindowID) bool { return true }, systemModal)
	if !ok {
		logging.Debug().Msg("core: filter_for_screen reported a system-modal window, tick aborted")
		return nil
	}

	c.applyRules()

	ws := c.workspace(c.current)
	ws.SetLastDisplayRect(display)
	if ws.Empty() {
		root := ws.EnsureRootLeaf(display)
		if ws.Mode == tree.Monocle {
			ws.SetLeafStacked(root, true)
		}
	}

	tilable := c.tilableDescriptors()
	floating := c.registry.FloatingSet()

	result := reconciler.Sync(ws, tilable, floating, c.focus.Anchor)

	c.repaint(ws)

	if result.HasPending {
		if err := c.focusRef(result.PendingFocus, false); err == nil {
			c.recentreCursor(result.PendingFocus)
		}
	}

	return nil
}

// applyRules consults the rules engine once per observed, non-floating
// window, floating or ignoring it before the reconciler ever
// sees it. RuleWorkspaceAssign is not acted on here: workspace/display
// enumeration is an explicit out-of-scope collaborator, so
// this core has no workspace table to assign into beyond the one the
// bridge already placed the window on.
func (c *Core) applyRules() {
	if c.rules == nil {
		return
	}
	for _, d := range c.registry.Windows() {
		if c.registry.IsFloating(d.WID) {
			continue
		}
		obs := bridge.WindowObservation{WID: d.WID, PID: d.PID, Layer: d.Layer, App: d.App, Title: d.Title, Rect: d.Rect}
		switch result := c.rules.Apply(obs); result.Effect {
		case bridge.RuleFloat:
			c.registry.Float(d.WID)
		case bridge.RuleIgnore:
			c.registry.Float(d.WID)
		}
	}
}

// tilableDescriptors restricts the registry's active-window list to
// windows the bridge reports as tilable (the rule's
// `tilable(w)` predicate in observed = {w.wid | w ∈ W, tilable(w), ...}).
func (c *Core) tilableDescriptors() []registry.Descriptor {
	all := c.registry.Windows()
	out := make([]registry.Descriptor, 0, len(all))
	for _, d := range all {
		ok, err := c.bridge.IsTilable(d.WID)
		if err != nil || !ok {
			continue
		}
		out = append(out, d)
	}
	return out
}
