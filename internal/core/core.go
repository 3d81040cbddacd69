// Package core implements the command surface ( C8): the
// single-cooperative-thread context that owns every workspace's layout
// tree, the process-wide focus state, and the observation tick, and
// exposes the composed user commands and queries of the rule.
package core

import (
	"github.com/axiswm/tilecore/internal/bridge"
	"github.com/axiswm/tilecore/internal/coreerr"
	"github.com/axiswm/tilecore/internal/focus"
	"github.com/axiswm/tilecore/internal/geometry"
	"github.com/axiswm/tilecore/internal/logging"
	"github.com/axiswm/tilecore/internal/registry"
	"github.com/axiswm/tilecore/internal/tree"
)

// Options carries the knobs the ambient settings section (C10)
// loads from the settings file: gap/padding, the default space mode, and
// the navigation wrap/extend defaults. The settings file's split-axis
// override is not an Options field; it is applied through SetSplitAxis.
type Options struct {
	Gap          float64
	PaddingTop   float64
	PaddingLeft  float64
	PaddingRight float64
	PaddingBot   float64
	DefaultMode  tree.Mode
	NavWrap      bool
	NavExtend    bool
}

// Core is the single process-owned context: one instance per process,
// never safe for concurrent use. It is driven by a single cooperative
// caller — the CLI's run loop or a platform-callback dispatcher — one
// command or tick at a time.
type Core struct {
	bridge   bridge.PlatformBridge
	cursor   bridge.Cursor
	rules    bridge.RulesEngine
	overlay  bridge.BorderOverlay
	notify   bridge.NotificationHub
	sentinel bridge.TransitionSentinel

	registry *registry.Registry
	focus    *focus.State

	workspaces map[string]*tree.Workspace
	current    string

	opts Options

	axisOverride   *geometry.Axis
	notifyHandle   string
	notifiedPID    int
}

// New constructs a Core wired to the given collaborators. initialWorkspace
// is the workspace id that becomes current before the first tick.
func New(b bridge.PlatformBridge, cur bridge.Cursor, rules bridge.RulesEngine, overlay bridge.BorderOverlay, notify bridge.NotificationHub, sentinel bridge.TransitionSentinel, opts Options, initialWorkspace string) *Core {
	c := &Core{
		bridge:     b,
		cursor:     cur,
		rules:      rules,
		overlay:    overlay,
		notify:     notify,
		sentinel:   sentinel,
		focus:      focus.New(),
		workspaces: make(map[string]*tree.Workspace),
		current:    initialWorkspace,
		opts:       opts,
	}
	c.registry = registry.New(nil, func(wid registry.WindowID) (registry.Role, registry.SubRole) {
		role, subRole, err := b.Role(wid)
		if err != nil {
			return registry.RoleStandardWindow, registry.SubRoleStandard
		}
		return role, subRole
	})
	c.workspace(initialWorkspace)
	return c
}

func (c *Core) offset() geometry.Offset {
	return geometry.Offset{
		Top: c.opts.PaddingTop, Bottom: c.opts.PaddingBot,
		Left: c.opts.PaddingLeft, Right: c.opts.PaddingRight,
		Gap: c.opts.Gap,
	}
}

// workspace returns the workspace for id, creating it (uninitialized, in
// the configured default mode) on first reference.
func (c *Core) workspace(id string) *tree.Workspace {
	ws, ok := c.workspaces[id]
	if !ok {
		ws = tree.New(id, c.offset())
		ws.Mode = c.opts.DefaultMode
		c.workspaces[id] = ws
	}
	return ws
}

// Current returns the workspace currently receiving commands.
func (c *Core) Current() *tree.Workspace { return c.workspace(c.current) }

// CurrentID returns the id of the current workspace.
func (c *Core) CurrentID() string { return c.current }

// switchTo makes target the current workspace. If target has no tree and
// its display rect is already known, it is given an empty root so later
// commands have somewhere to anchor (the rule "Cross-workspace focus");
// a workspace whose display rect is still unset is left without a root.
func (c *Core) switchTo(target string) {
	ws := c.workspace(target)
	if ws.Root() == tree.NoRef && ws.LastDisplayRect() != (geometry.Rect{}) {
		root := ws.EnsureRootLeaf(ws.LastDisplayRect())
		if ws.Mode == tree.Monocle {
			ws.SetLeafStacked(root, true)
		}
	}
	c.current = target
	logging.Debug().Str("workspace", target).Msg("core: switched current workspace")
}

// gated reports whether entry points must short-circuit to a no-op this
// tick (the rule "sentinel ... causes all reconciliation and
// focus-follows-cursor entry points to short-circuit").
func (c *Core) gated() bool {
	if c.sentinel == nil {
		return false
	}
	return c.sentinel.SpaceTransitionInProgress() || !c.sentinel.ActiveSpaceManaged()
}

// focusRef asks the bridge to raise and key-focus wid, updates local focus
// state and the border overlay. On refusal, focus state is left unchanged,
// the overlay is cleared, and ErrUnfocusable is returned to the caller.
func (c *Core) focusRef(wid registry.WindowID, userOriginated bool) error {
	if err := c.bridge.FocusRef(wid); err != nil {
		logging.Warn().Uint32("wid", uint32(wid)).Err(err).Msg("core: platform refused focus")
		if c.overlay != nil {
			c.overlay.Clear("")
		}
		return coreerr.ErrUnfocusable
	}
	c.focus.SetFocused(wid, userOriginated)
	c.workspace(c.current).FocusedWID = wid
	if c.overlay != nil {
		c.overlay.Update("focused")
	}
	c.rebindNotification(wid)
	return nil
}

// rebindNotification moves the per-application observer registration to
// the newly focused window's owning process, leaving it in place when
// focus moves within the same application ( the handle is
// "maintained across focus changes within one application").
func (c *Core) rebindNotification(wid registry.WindowID) {
	if c.notify == nil {
		return
	}
	desc, ok := c.registry.ByID(wid)
	if !ok || desc.PID == c.notifiedPID {
		return
	}
	if c.notifyHandle != "" {
		_ = c.notify.Unsubscribe(c.notifyHandle)
	}
	handle, err := c.notify.Subscribe(desc.PID)
	if err != nil {
		logging.Warn().Int("pid", desc.PID).Err(err).Msg("core: notification subscribe failed")
		c.notifyHandle = ""
		c.notifiedPID = 0
		return
	}
	c.notifyHandle = handle
	c.notifiedPID = desc.PID
}

// recentreCursor warps the cursor to wid's rectangle's centre, used after
// the reconciler reports a pending focus target.
func (c *Core) recentreCursor(wid registry.WindowID) {
	if c.cursor == nil {
		return
	}
	ws := c.workspace(c.current)
	ref, ok := ws.Locate(wid)
	if !ok {
		return
	}
	view, ok := ws.View(ref)
	if !ok {
		return
	}
	_ = c.cursor.Warp(view.Rect.Center())
}
