package bridge

import (
	"fmt"

	"github.com/axiswm/tilecore/internal/geometry"
	"github.com/axiswm/tilecore/internal/registry"
)

// Fake is an in-memory PlatformBridge/Cursor/RulesEngine/BorderOverlay/
// NotificationHub/TransitionSentinel, used by tests and the CLI's demo
// mode in place of a running platform daemon.
type Fake struct {
	Windows      map[registry.WindowID]WindowObservation
	Roles        map[registry.WindowID]registry.Role
	SubRoles     map[registry.WindowID]registry.SubRole
	Tilable      map[registry.WindowID]bool
	Rules        map[registry.WindowID]RuleResult
	Cursor       geometry.Point
	Focused      registry.WindowID
	Overlay      string
	Transitioning bool
	SpaceManaged  bool

	subs       map[string]int
	nextHandle int
	SetRectLog []WindowObservation
}

// NewFake returns an empty Fake with SpaceManaged true, matching the
// common case of a single managed space with no transition in flight.
func NewFake() *Fake {
	return &Fake{
		Windows:      make(map[registry.WindowID]WindowObservation),
		Roles:        make(map[registry.WindowID]registry.Role),
		SubRoles:     make(map[registry.WindowID]registry.SubRole),
		Tilable:      make(map[registry.WindowID]bool),
		Rules:        make(map[registry.WindowID]RuleResult),
		subs:         make(map[string]int),
		SpaceManaged: true,
	}
}

// AddWindow registers an observed window with its tilability, returning
// the Fake for chaining in test setup.
func (f *Fake) AddWindow(obs WindowObservation, role registry.Role, subRole registry.SubRole, tilable bool) *Fake {
	f.Windows[obs.WID] = obs
	f.Roles[obs.WID] = role
	f.SubRoles[obs.WID] = subRole
	f.Tilable[obs.WID] = tilable
	return f
}

// Snapshot implements PlatformBridge.
func (f *Fake) Snapshot() ([]WindowObservation, error) {
	out := make([]WindowObservation, 0, len(f.Windows))
	for _, w := range f.Windows {
		out = append(out, w)
	}
	return out, nil
}

// SetRect implements PlatformBridge, recording every call for assertions
// and echoing the rect back as the platform's accepted geometry.
func (f *Fake) SetRect(wid registry.WindowID, rect geometry.Rect) (geometry.Rect, error) {
	obs, ok := f.Windows[wid]
	if !ok {
		return geometry.Rect{}, fmt.Errorf("bridge: unknown window %d", wid)
	}
	obs.Rect = rect
	f.Windows[wid] = obs
	f.SetRectLog = append(f.SetRectLog, obs)
	return rect, nil
}

// Role implements PlatformBridge.
func (f *Fake) Role(wid registry.WindowID) (registry.Role, registry.SubRole, error) {
	role, ok := f.Roles[wid]
	if !ok {
		return "", "", fmt.Errorf("bridge: unknown window %d", wid)
	}
	return role, f.SubRoles[wid], nil
}

// IsTilable implements PlatformBridge.
func (f *Fake) IsTilable(wid registry.WindowID) (bool, error) {
	v, ok := f.Tilable[wid]
	if !ok {
		return false, fmt.Errorf("bridge: unknown window %d", wid)
	}
	return v, nil
}

// FocusRef implements PlatformBridge.
func (f *Fake) FocusRef(wid registry.WindowID) error {
	if _, ok := f.Windows[wid]; !ok {
		return fmt.Errorf("bridge: unknown window %d", wid)
	}
	f.Focused = wid
	return nil
}

// Position implements Cursor.
func (f *Fake) Position() (geometry.Point, error) { return f.Cursor, nil }

// Warp implements Cursor.
func (f *Fake) Warp(p geometry.Point) error {
	f.Cursor = p
	return nil
}

// Apply implements RulesEngine.
func (f *Fake) Apply(w WindowObservation) RuleResult {
	if r, ok := f.Rules[w.WID]; ok {
		return r
	}
	return RuleResult{Effect: RuleNone}
}

// Update implements BorderOverlay.
func (f *Fake) Update(state string) error {
	f.Overlay = state
	return nil
}

// Clear implements BorderOverlay.
func (f *Fake) Clear(handle string) error {
	f.Overlay = ""
	return nil
}

// Subscribe implements NotificationHub.
func (f *Fake) Subscribe(pid int) (string, error) {
	f.nextHandle++
	handle := fmt.Sprintf("sub-%d", f.nextHandle)
	f.subs[handle] = pid
	return handle, nil
}

// Unsubscribe implements NotificationHub.
func (f *Fake) Unsubscribe(handle string) error {
	if _, ok := f.subs[handle]; !ok {
		return fmt.Errorf("bridge: unknown subscription %q", handle)
	}
	delete(f.subs, handle)
	return nil
}

// SpaceTransitionInProgress implements TransitionSentinel.
func (f *Fake) SpaceTransitionInProgress() bool { return f.Transitioning }

// ActiveSpaceManaged implements TransitionSentinel.
func (f *Fake) ActiveSpaceManaged() bool { return f.SpaceManaged }
