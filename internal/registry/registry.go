// Package registry is the window registry ( C2): the index of
// live windows observed from the platform bridge, per-workspace membership,
// and the tilable/floating split. It is fed once per tick by Core.OnSnapshot
// and consumed by the reconciler, the spatial navigator, and the focus
// state machine.
package registry

import "github.com/axiswm/tilecore/internal/geometry"

// WindowID is the stable identity every other component references a
// window by. Window descriptors themselves are owned exclusively by the
// registry; everyone else holds a WindowID.
type WindowID uint32

// Role and SubRole mirror the platform's accessibility role taxonomy, used
// to decide whether a window participates in tiling at all.
type Role string
type SubRole string

const (
	RoleStandardWindow Role    = "window"
	SubRoleStandard    SubRole = "standard"

	// RoleSystemModal marks the sentinel window a platform observer raises
	// while a space transition is in flight (the "fails ... when
	// a sentinel 'system-modal' window is present").
	RoleSystemModal Role = "system-modal"
)

// Descriptor is the value-object window identity (Equal compares the
// (PID, WID, Layer) tuple), plus the last-known metadata.
type Descriptor struct {
	PID     int
	WID     WindowID
	Layer   int
	App     string
	Title   string
	Rect    geometry.Rect
	Role    Role
	SubRole SubRole
}

// Equal compares the identity tuple only, per the rule.
func (d Descriptor) Equal(other Descriptor) bool {
	return d.PID == other.PID && d.WID == other.WID && d.Layer == other.Layer
}

// RoleLookup resolves a window's role/sub-role; backed by the platform
// bridge's Role operation. Cached by the registry so it is not
// re-queried on every reconciliation pass.
type RoleLookup func(WindowID) (Role, SubRole)

// TilableOverride reports whether a per-application rule permits a window
// with a non-standard role/sub-role to be tiled anyway.
type TilableOverride func(Descriptor) bool

// Registry holds the active-window list W, the focus-candidate list F, the
// floating set, and the role cache.
type Registry struct {
	w        []Descriptor
	f        []Descriptor
	floating map[WindowID]bool
	roles    map[WindowID]roleEntry

	isOverlay OverlayPredicate
	roleOf    RoleLookup
	override  TilableOverride
}

type roleEntry struct {
	role    Role
	subRole SubRole
}

// OverlayPredicate reports whether a descriptor belongs to the overlay
// subsystem (e.g. border overlays) and must never be tiled.
type OverlayPredicate func(Descriptor) bool

// New constructs a Registry. isOverlay and roleOf may be nil, in which case
// no window is treated as an overlay and every window is given the standard
// role (useful for tests and the Fake bridge).
func New(isOverlay OverlayPredicate, roleOf RoleLookup) *Registry {
	if isOverlay == nil {
		isOverlay = func(Descriptor) bool { return false }
	}
	if roleOf == nil {
		roleOf = func(WindowID) (Role, SubRole) { return RoleStandardWindow, SubRoleStandard }
	}
	return &Registry{
		floating: make(map[WindowID]bool),
		roles:    make(map[WindowID]roleEntry),
		isOverlay: isOverlay,
		roleOf:    roleOf,
	}
}

// SetOverride installs the per-application tilable override consulted by
// FilterForScreen.
func (r *Registry) SetOverride(o TilableOverride) { r.override = o }

// Refresh replaces W from the platform snapshot. Entries
// belonging to the overlay subsystem are discarded; every surviving entry
// is annotated with its role/sub-role, using the cache where the wid was
// already known and re-querying only for newly observed wids. The cache is
// invalidated for any wid that disappeared from the snapshot.
func (r *Registry) Refresh(observed []Descriptor) {
	seen := make(map[WindowID]bool, len(observed))
	next := make([]Descriptor, 0, len(observed))

	for _, d := range observed {
		if r.isOverlay(d) {
			continue
		}
		seen[d.WID] = true
		if cached, ok := r.roles[d.WID]; ok {
			d.Role, d.SubRole = cached.role, cached.subRole
		} else {
			d.Role, d.SubRole = r.roleOf(d.WID)
			r.roles[d.WID] = roleEntry{role: d.Role, subRole: d.SubRole}
		}
		next = append(next, d)
	}

	for wid := range r.roles {
		if !seen[wid] {
			delete(r.roles, wid)
		}
	}

	r.w = next
	r.f = append([]Descriptor(nil), next...)
}

// FilterForScreen restricts W to windows on the screen's active workspace.
// It fails (returns false, leaving W untouched) when a sentinel
// "system-modal" window is present, signalling a platform transition in
// progress. Windows whose role/sub-role are non-standard are removed unless
// the per-application override allows them.
func (r *Registry) FilterForScreen(onActiveWorkspace func(WindowID) bool, systemModalPresent bool) bool {
	if systemModalPresent {
		return false
	}

	kept := make([]Descriptor, 0, len(r.w))
	for _, d := range r.w {
		if !onActiveWorkspace(d.WID) {
			continue
		}
		if d.Role == RoleStandardWindow && d.SubRole == SubRoleStandard {
			kept = append(kept, d)
			continue
		}
		if r.override != nil && r.override(d) {
			kept = append(kept, d)
		}
	}
	r.w = kept
	r.f = append([]Descriptor(nil), kept...)
	return true
}

// Windows returns the current active-window list W, in observation order.
func (r *Registry) Windows() []Descriptor { return append([]Descriptor(nil), r.w...) }

// FocusCandidates returns the current focus-candidate list F.
func (r *Registry) FocusCandidates() []Descriptor { return append([]Descriptor(nil), r.f...) }

// RestrictFocusCandidates narrows F to the windows satisfying keep, without
// touching W. Used transiently while scanning for focus-follows-cursor
// targets ( "diverges transiently during filtering").
func (r *Registry) RestrictFocusCandidates(keep func(Descriptor) bool) {
	next := make([]Descriptor, 0, len(r.f))
	for _, d := range r.f {
		if keep(d) {
			next = append(next, d)
		}
	}
	r.f = next
}

// ByID performs an exact lookup; ok is false when wid is unknown.
func (r *Registry) ByID(wid WindowID) (Descriptor, bool) {
	for _, d := range r.w {
		if d.WID == wid {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Float adds wid to the floating set. Idempotent.
func (r *Registry) Float(wid WindowID) { r.floating[wid] = true }

// Unfloat removes wid from the floating set. Idempotent.
func (r *Registry) Unfloat(wid WindowID) { delete(r.floating, wid) }

// IsFloating reports whether wid is in the floating set.
func (r *Registry) IsFloating(wid WindowID) bool { return r.floating[wid] }

// FloatingSet returns a snapshot of the floating wids.
func (r *Registry) FloatingSet() map[WindowID]bool {
	out := make(map[WindowID]bool, len(r.floating))
	for k := range r.floating {
		out[k] = true
	}
	return out
}
