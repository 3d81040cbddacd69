// Package bridge is the platform bridge ( C9): the collaborator
// surface the core consults for window observation, geometry changes,
// cursor control, per-application rules, and the border/notification/
// transition side channels. Two implementations are provided: RPCClient,
// which talks to a platform daemon over a unix-domain-socket JSON
// protocol, and Fake, an in-memory stand-in for tests and the CLI's demo
// mode.
package bridge

import (
	"time"

	"github.com/axiswm/tilecore/internal/geometry"
	"github.com/axiswm/tilecore/internal/registry"
)

// WindowObservation is one entry in a platform snapshot (the rule's
// `snapshot() → [WindowObservation]`).
type WindowObservation struct {
	WID   registry.WindowID
	PID   int
	Layer int
	App   string
	Title string
	Rect  geometry.Rect
}

// DisplayInfo describes one physical display and its active workspace.
type DisplayInfo struct {
	ID              string
	Frame           geometry.Rect
	ActiveWorkspace string
}

// RuleEffect is the outcome of consulting the rules engine for a newly
// observed window.
type RuleEffect int

const (
	RuleNone RuleEffect = iota
	RuleIgnore
	RuleFloat
	RuleWorkspaceAssign
)

// RuleResult carries RuleWorkspaceAssign's target workspace id, when set.
type RuleResult struct {
	Effect    RuleEffect
	Workspace string
}

// PlatformBridge is the core's window-management collaborator.
type PlatformBridge interface {
	Snapshot() ([]WindowObservation, error)
	SetRect(wid registry.WindowID, rect geometry.Rect) (geometry.Rect, error)
	Role(wid registry.WindowID) (registry.Role, registry.SubRole, error)
	IsTilable(wid registry.WindowID) (bool, error)
	FocusRef(wid registry.WindowID) error
}

// Cursor is the pointer-control collaborator used by focus-follows-cursor
// and centre-on-focus.
type Cursor interface {
	Position() (geometry.Point, error)
	Warp(p geometry.Point) error
}

// RulesEngine is consulted once per newly observed window.
type RulesEngine interface {
	Apply(w WindowObservation) RuleResult
}

// BorderOverlay is invoked after focus changes to draw the focused/marked
// indicator, or to clear it when the platform refuses focus.
type BorderOverlay interface {
	Update(state string) error // state ∈ {"focused", "marked"}
	Clear(handle string) error
}

// NotificationHub manages the per-focused-application observer
// registration (the "observer registration" handle).
type NotificationHub interface {
	Subscribe(pid int) (handle string, err error)
	Unsubscribe(handle string) error
}

// TransitionSentinel gates all entry points during a platform space
// transition.
type TransitionSentinel interface {
	SpaceTransitionInProgress() bool
	ActiveSpaceManaged() bool
}

// DefaultSocketPath is the unix-domain socket the platform daemon listens
// on.
const DefaultSocketPath = "/tmp/tilecore.sock"

// DefaultTimeout bounds every round trip to the platform daemon.
const DefaultTimeout = 5 * time.Second
