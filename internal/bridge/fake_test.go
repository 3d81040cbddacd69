package bridge

import (
	"testing"

	"github.com/axiswm/tilecore/internal/geometry"
	"github.com/axiswm/tilecore/internal/registry"
)

func TestFakeSnapshotReturnsRegisteredWindows(t *testing.T) {
	f := NewFake()
	f.AddWindow(WindowObservation{WID: 1, App: "Editor", Rect: geometry.Rect{Width: 100, Height: 100}}, registry.RoleStandardWindow, registry.SubRoleStandard, true)
	f.AddWindow(WindowObservation{WID: 2, App: "Dock", Rect: geometry.Rect{Width: 50, Height: 50}}, registry.RoleStandardWindow, registry.SubRoleStandard, false)

	snap, err := f.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if len(snap) != 2 {
		t.Fatalf("got %d observations, want 2", len(snap))
	}
}

func TestFakeSetRectRecordsCallAndEchoes(t *testing.T) {
	f := NewFake()
	f.AddWindow(WindowObservation{WID: 1}, registry.RoleStandardWindow, registry.SubRoleStandard, true)

	rect := geometry.Rect{X: 10, Y: 20, Width: 300, Height: 400}
	got, err := f.SetRect(1, rect)
	if err != nil {
		t.Fatalf("SetRect: %v", err)
	}
	if got != rect {
		t.Fatalf("got %+v, want %+v", got, rect)
	}
	if len(f.SetRectLog) != 1 || f.SetRectLog[0].Rect != rect {
		t.Fatalf("SetRectLog not updated: %+v", f.SetRectLog)
	}
}

func TestFakeSetRectUnknownWindowErrors(t *testing.T) {
	f := NewFake()
	if _, err := f.SetRect(99, geometry.Rect{}); err == nil {
		t.Fatal("expected error for unknown window")
	}
}

func TestFakeFocusRefTracksFocused(t *testing.T) {
	f := NewFake()
	f.AddWindow(WindowObservation{WID: 7}, registry.RoleStandardWindow, registry.SubRoleStandard, true)
	if err := f.FocusRef(7); err != nil {
		t.Fatalf("FocusRef: %v", err)
	}
	if f.Focused != 7 {
		t.Fatalf("Focused = %d, want 7", f.Focused)
	}
}

func TestFakeCursorWarpUpdatesPosition(t *testing.T) {
	f := NewFake()
	p := geometry.Point{X: 5, Y: 6}
	if err := f.Warp(p); err != nil {
		t.Fatalf("Warp: %v", err)
	}
	got, err := f.Position()
	if err != nil {
		t.Fatalf("Position: %v", err)
	}
	if got != p {
		t.Fatalf("Position = %+v, want %+v", got, p)
	}
}

func TestFakeApplyDefaultsToRuleNone(t *testing.T) {
	f := NewFake()
	result := f.Apply(WindowObservation{WID: 42})
	if result.Effect != RuleNone {
		t.Fatalf("Effect = %v, want RuleNone", result.Effect)
	}
}

func TestFakeApplyReturnsConfiguredRule(t *testing.T) {
	f := NewFake()
	f.Rules[1] = RuleResult{Effect: RuleFloat}
	result := f.Apply(WindowObservation{WID: 1})
	if result.Effect != RuleFloat {
		t.Fatalf("Effect = %v, want RuleFloat", result.Effect)
	}
}

func TestFakeSubscribeUnsubscribeRoundTrip(t *testing.T) {
	f := NewFake()
	handle, err := f.Subscribe(123)
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	if err := f.Unsubscribe(handle); err != nil {
		t.Fatalf("Unsubscribe: %v", err)
	}
	if err := f.Unsubscribe(handle); err == nil {
		t.Fatal("expected error unsubscribing twice")
	}
}

func TestFakeTransitionSentinelDefaults(t *testing.T) {
	f := NewFake()
	if f.SpaceTransitionInProgress() {
		t.Fatal("expected no transition in progress by default")
	}
	if !f.ActiveSpaceManaged() {
		t.Fatal("expected active space managed by default")
	}
}

func TestFakeOverlayUpdateAndClear(t *testing.T) {
	f := NewFake()
	if err := f.Update("focused"); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if f.Overlay != "focused" {
		t.Fatalf("Overlay = %q, want %q", f.Overlay, "focused")
	}
	if err := f.Clear("handle"); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if f.Overlay != "" {
		t.Fatalf("Overlay = %q, want empty", f.Overlay)
	}
}
