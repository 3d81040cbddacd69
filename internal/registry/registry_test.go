package registry

import "testing"

func descs(ids ...WindowID) []Descriptor {
	out := make([]Descriptor, len(ids))
	for i, id := range ids {
		out[i] = Descriptor{PID: int(id), WID: id, Layer: 0}
	}
	return out
}

func TestRefreshDiscardsOverlay(t *testing.T) {
	isOverlay := func(d Descriptor) bool { return d.WID == 99 }
	r := New(isOverlay, nil)

	r.Refresh(append(descs(1, 2), Descriptor{WID: 99}))

	got := r.Windows()
	if len(got) != 2 {
		t.Fatalf("Windows() len = %d, want 2", len(got))
	}
	for _, d := range got {
		if d.WID == 99 {
			t.Fatalf("overlay window 99 survived Refresh")
		}
	}
}

func TestRefreshCachesRole(t *testing.T) {
	calls := 0
	roleOf := func(WindowID) (Role, SubRole) {
		calls++
		return RoleStandardWindow, SubRoleStandard
	}
	r := New(nil, roleOf)

	r.Refresh(descs(1, 2))
	r.Refresh(descs(1, 2))

	if calls != 2 {
		t.Fatalf("roleOf called %d times across two refreshes of the same wids, want 2 (cached after first)", calls)
	}

	// A wid disappearing and reappearing must invalidate its cache entry.
	r.Refresh(descs(1))
	r.Refresh(descs(1, 2))
	if calls != 3 {
		t.Fatalf("roleOf called %d times, want 3 (re-queried after wid 2 disappeared)", calls)
	}
}

func TestFilterForScreenSystemModal(t *testing.T) {
	r := New(nil, nil)
	r.Refresh(descs(1, 2, 3))

	ok := r.FilterForScreen(func(WindowID) bool { return true }, true)
	if ok {
		t.Fatalf("FilterForScreen should fail when a system-modal window is present")
	}
	if len(r.Windows()) != 3 {
		t.Fatalf("W must be left untouched when FilterForScreen fails")
	}
}

func TestFilterForScreenByWorkspace(t *testing.T) {
	r := New(nil, nil)
	r.Refresh(descs(1, 2, 3))

	onActive := func(wid WindowID) bool { return wid != 2 }
	ok := r.FilterForScreen(onActive, false)
	if !ok {
		t.Fatalf("FilterForScreen should succeed")
	}
	got := r.Windows()
	if len(got) != 2 {
		t.Fatalf("Windows() len = %d, want 2", len(got))
	}
	for _, d := range got {
		if d.WID == 2 {
			t.Fatalf("wid 2 should have been filtered out (not on active workspace)")
		}
	}
}

func TestFilterForScreenNonStandardRoleOverride(t *testing.T) {
	roleOf := func(wid WindowID) (Role, SubRole) {
		if wid == 2 {
			return "dialog", "modal"
		}
		return RoleStandardWindow, SubRoleStandard
	}
	r := New(nil, roleOf)
	r.Refresh(descs(1, 2))
	r.SetOverride(func(d Descriptor) bool { return d.WID == 2 })

	ok := r.FilterForScreen(func(WindowID) bool { return true }, false)
	if !ok {
		t.Fatalf("FilterForScreen should succeed")
	}
	if len(r.Windows()) != 2 {
		t.Fatalf("wid 2 should survive via the per-application override, Windows() len = %d", len(r.Windows()))
	}
}

func TestFloatingSetIdempotent(t *testing.T) {
	r := New(nil, nil)
	r.Float(1)
	r.Float(1)
	if !r.IsFloating(1) {
		t.Fatalf("wid 1 should be floating")
	}
	r.Unfloat(1)
	r.Unfloat(1)
	if r.IsFloating(1) {
		t.Fatalf("wid 1 should not be floating after Unfloat")
	}
}

func TestByID(t *testing.T) {
	r := New(nil, nil)
	r.Refresh(descs(5))

	if _, ok := r.ByID(5); !ok {
		t.Fatalf("ByID(5) should be found")
	}
	if _, ok := r.ByID(6); ok {
		t.Fatalf("ByID(6) should be absent")
	}
}
