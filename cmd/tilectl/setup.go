package main

import (
	"fmt"

	"github.com/axiswm/tilecore/internal/bridge"
	"github.com/axiswm/tilecore/internal/config"
	"github.com/axiswm/tilecore/internal/core"
	"github.com/axiswm/tilecore/internal/geometry"
	"github.com/axiswm/tilecore/internal/registry"
)

const mainWorkspace = "main"

// demoDisplay is the fixed screen rectangle every tick lays windows out on,
// against the demo sandbox and a real bridge alike.
var demoDisplay = geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}

// loadSettings resolves the settings file, falling back to built-in
// defaults when none is configured and none exists at the default path.
func loadSettings() (config.Config, error) {
	if configPath != "" {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		return *cfg, nil
	}
	if cfg, err := config.LoadConfig(""); err == nil {
		return *cfg, nil
	}
	return config.Default(), nil
}

// buildCore constructs a Core wired either to the in-memory demo sandbox or
// a real platform bridge daemon, and runs one observation tick so the
// returned Core reflects current window state.
func buildCore() (*core.Core, error) {
	cfg, err := loadSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	opts, err := cfg.Settings.ToOptions()
	if err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	var c *core.Core
	if demoMode {
		f := demoSandbox()
		c = core.New(f, f, f, f, f, f, opts, mainWorkspace)
	} else {
		path := socketPath
		if path == "" {
			path = bridge.DefaultSocketPath
		}
		client := bridge.NewRPCClient(path)
		if err := client.Connect(); err != nil {
			return nil, fmt.Errorf("failed to connect to platform bridge at %s: %w", path, err)
		}
		c = core.New(client, client, client, client, client, client, opts, mainWorkspace)
	}

	if axis, ok, err := cfg.Settings.SplitAxisOverride(); err != nil {
		return nil, err
	} else if ok {
		c.SetSplitAxis(axis)
	}

	if err := c.OnSnapshot(demoDisplay); err != nil {
		return nil, fmt.Errorf("observation tick failed: %w", err)
	}
	return c, nil
}

// demoSandbox seeds a Fake bridge with a handful of windows spread across
// demoDisplay, enough to exercise focus/swap/float/fullscreen commands
// without a running platform daemon.
func demoSandbox() *bridge.Fake {
	f := bridge.NewFake()
	windows := []struct {
		wid registry.WindowID
		app string
		pid int
	}{
		{1, "terminal", 101},
		{2, "browser", 102},
		{3, "editor", 103},
	}
	for _, w := range windows {
		f.AddWindow(bridge.WindowObservation{WID: w.wid, PID: w.pid, App: w.app, Rect: geometry.Rect{}},
			registry.RoleStandardWindow, registry.SubRoleStandard, true)
	}
	return f
}
