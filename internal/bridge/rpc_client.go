package bridge

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/axiswm/tilecore/internal/geometry"
	"github.com/axiswm/tilecore/internal/registry"
)

// RPCClient implements PlatformBridge, Cursor, BorderOverlay,
// NotificationHub, and TransitionSentinel over a JSON-RPC-over-unix-socket
// connection to the platform daemon.
type RPCClient struct {
	conn *connection
	ctx  context.Context
}

// NewRPCClient constructs a client for socketPath. An empty socketPath
// uses DefaultSocketPath.
func NewRPCClient(socketPath string) *RPCClient {
	if socketPath == "" {
		socketPath = DefaultSocketPath
	}
	return &RPCClient{conn: newConnection(socketPath, DefaultTimeout), ctx: context.Background()}
}

// Connect establishes the underlying socket connection.
func (c *RPCClient) Connect() error { return c.conn.connect() }

// Close releases the underlying socket.
func (c *RPCClient) Close() error { return c.conn.close() }

func (c *RPCClient) call(method string, params map[string]interface{}) (map[string]interface{}, error) {
	if !c.conn.connected() {
		if err := c.Connect(); err != nil {
			return nil, err
		}
	}
	req := NewRequest(uuid.New().String(), method, params)
	resp, err := c.conn.call(c.ctx, req)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("bridge: %s: %s", method, resp.ErrorMessage())
	}
	return resp.Result, nil
}

// Snapshot implements PlatformBridge.
func (c *RPCClient) Snapshot() ([]WindowObservation, error) {
	result, err := c.call("snapshot", nil)
	if err != nil {
		return nil, err
	}
	raw, _ := result["windows"].([]interface{})
	out := make([]WindowObservation, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		out = append(out, decodeObservation(m))
	}
	return out, nil
}

func decodeObservation(m map[string]interface{}) WindowObservation {
	return WindowObservation{
		WID:   registry.WindowID(toUint32(m["wid"])),
		PID:   int(toFloat(m["pid"])),
		Layer: int(toFloat(m["layer"])),
		App:   toString(m["app"]),
		Title: toString(m["title"]),
		Rect: geometry.Rect{
			X:      toFloat(m["x"]),
			Y:      toFloat(m["y"]),
			Width:  toFloat(m["width"]),
			Height: toFloat(m["height"]),
		},
	}
}

func toFloat(v interface{}) float64 {
	f, _ := v.(float64)
	return f
}
func toUint32(v interface{}) uint32 { return uint32(toFloat(v)) }
func toString(v interface{}) string {
	s, _ := v.(string)
	return s
}

// SetRect implements PlatformBridge.
func (c *RPCClient) SetRect(wid registry.WindowID, rect geometry.Rect) (geometry.Rect, error) {
	result, err := c.call("setRect", map[string]interface{}{
		"wid": uint32(wid), "x": rect.X, "y": rect.Y, "width": rect.Width, "height": rect.Height,
	})
	if err != nil {
		return geometry.Rect{}, err
	}
	return geometry.Rect{
		X: toFloat(result["x"]), Y: toFloat(result["y"]),
		Width: toFloat(result["width"]), Height: toFloat(result["height"]),
	}, nil
}

// Role implements PlatformBridge.
func (c *RPCClient) Role(wid registry.WindowID) (registry.Role, registry.SubRole, error) {
	result, err := c.call("role", map[string]interface{}{"wid": uint32(wid)})
	if err != nil {
		return "", "", err
	}
	return registry.Role(toString(result["role"])), registry.SubRole(toString(result["subRole"])), nil
}

// IsTilable implements PlatformBridge.
func (c *RPCClient) IsTilable(wid registry.WindowID) (bool, error) {
	result, err := c.call("isTilable", map[string]interface{}{"wid": uint32(wid)})
	if err != nil {
		return false, err
	}
	ok, _ := result["tilable"].(bool)
	return ok, nil
}

// FocusRef implements PlatformBridge.
func (c *RPCClient) FocusRef(wid registry.WindowID) error {
	_, err := c.call("focusRef", map[string]interface{}{"wid": uint32(wid)})
	return err
}

// Position implements Cursor.
func (c *RPCClient) Position() (geometry.Point, error) {
	result, err := c.call("cursorPosition", nil)
	if err != nil {
		return geometry.Point{}, err
	}
	return geometry.Point{X: toFloat(result["x"]), Y: toFloat(result["y"])}, nil
}

// Warp implements Cursor.
func (c *RPCClient) Warp(p geometry.Point) error {
	_, err := c.call("cursorWarp", map[string]interface{}{"x": p.X, "y": p.Y})
	return err
}

// Update implements BorderOverlay.
func (c *RPCClient) Update(state string) error {
	_, err := c.call("overlayUpdate", map[string]interface{}{"state": state})
	return err
}

// Clear implements BorderOverlay.
func (c *RPCClient) Clear(handle string) error {
	_, err := c.call("overlayClear", map[string]interface{}{"handle": handle})
	return err
}

// Subscribe implements NotificationHub.
func (c *RPCClient) Subscribe(pid int) (string, error) {
	result, err := c.call("notificationSubscribe", map[string]interface{}{"pid": pid})
	if err != nil {
		return "", err
	}
	return toString(result["handle"]), nil
}

// Unsubscribe implements NotificationHub.
func (c *RPCClient) Unsubscribe(handle string) error {
	_, err := c.call("notificationUnsubscribe", map[string]interface{}{"handle": handle})
	return err
}

// SpaceTransitionInProgress implements TransitionSentinel. A failed RPC is
// treated as "transitioning" so entry points fail safe rather than mutate
// against a daemon that may be mid-handoff.
func (c *RPCClient) SpaceTransitionInProgress() bool {
	result, err := c.call("spaceTransitionInProgress", nil)
	if err != nil {
		return true
	}
	v, _ := result["transitioning"].(bool)
	return v
}

// ActiveSpaceManaged implements TransitionSentinel.
func (c *RPCClient) ActiveSpaceManaged() bool {
	result, err := c.call("activeSpaceManaged", nil)
	if err != nil {
		return false
	}
	v, _ := result["managed"].(bool)
	return v
}

// Apply implements RulesEngine by delegating the match to the daemon,
// which owns the application-rules configuration (an out-of-scope
// collaborator per the rule).
func (c *RPCClient) Apply(w WindowObservation) RuleResult {
	result, err := c.call("rulesApply", map[string]interface{}{
		"wid": uint32(w.WID), "pid": w.PID, "app": w.App, "title": w.Title,
	})
	if err != nil {
		return RuleResult{Effect: RuleNone}
	}
	effect := RuleNone
	switch toString(result["effect"]) {
	case "ignore":
		effect = RuleIgnore
	case "float":
		effect = RuleFloat
	case "workspaceAssign":
		effect = RuleWorkspaceAssign
	}
	return RuleResult{Effect: effect, Workspace: toString(result["workspace"])}
}
