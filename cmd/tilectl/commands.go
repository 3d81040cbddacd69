package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/axiswm/tilecore/internal/geometry"
	"github.com/axiswm/tilecore/internal/registry"
	"github.com/axiswm/tilecore/internal/render"
	"github.com/axiswm/tilecore/internal/tree"
)

func renderOptions() render.Options {
	width, height := render.TerminalSize()
	return render.Options{UseUnicode: render.SupportsUnicode(), TermWidth: width, TermHeight: height}
}

func descriptorIndex(descs []registry.Descriptor) map[registry.WindowID]registry.Descriptor {
	out := make(map[registry.WindowID]registry.Descriptor, len(descs))
	for _, d := range descs {
		out[d.WID] = d
	}
	return out
}

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Draw the current workspace's layout tree",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := buildCore()
		if err != nil {
			return err
		}
		descs := descriptorIndex(c.Windows())
		fmt.Print(render.RenderTree(c.Current(), descs, c.FocusedWID(), renderOptions()))
		return nil
	},
}

var windowsCmd = &cobra.Command{
	Use:   "windows",
	Short: "List windows on the current workspace",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := buildCore()
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(c.Windows())
		}
		render.PrintWindowsTable(c.Windows(), c.FocusedWID(), c.MarkedWID(), c.FloatingSet())
		return nil
	},
}

func parseWID(s string) (registry.WindowID, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid window id %q: %w", s, err)
	}
	return registry.WindowID(n), nil
}

func requireDirection(args []string) (geometry.Direction, error) {
	d, ok := geometry.ParseDirection(args[0])
	if !ok {
		return 0, fmt.Errorf("invalid direction %q (want up/right/down/left)", args[0])
	}
	return d, nil
}

var focusCmd = &cobra.Command{
	Use:   "focus <up|right|down|left>",
	Short: "Focus the neighbouring window in a direction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := requireDirection(args)
		if err != nil {
			return err
		}
		c, err := buildCore()
		if err != nil {
			return err
		}
		if err := c.FocusDirection(d); err != nil {
			return err
		}
		printSuccess(fmt.Sprintf("focused neighbour %s", d))
		return nil
	},
}

var shiftCmd = &cobra.Command{
	Use:   "shift <up|right|down|left>",
	Short: "Shift focus in a direction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := requireDirection(args)
		if err != nil {
			return err
		}
		c, err := buildCore()
		if err != nil {
			return err
		}
		if err := c.Shift(d); err != nil {
			return err
		}
		printSuccess(fmt.Sprintf("shifted focus %s", d))
		return nil
	},
}

var swapCmd = &cobra.Command{
	Use:   "swap <up|right|down|left>",
	Short: "Swap the focused window with its neighbour in a direction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := requireDirection(args)
		if err != nil {
			return err
		}
		c, err := buildCore()
		if err != nil {
			return err
		}
		if err := c.SwapDirection(d); err != nil {
			return err
		}
		printSuccess(fmt.Sprintf("swapped with neighbour %s", d))
		return nil
	},
}

var swapMarkCmd = &cobra.Command{
	Use:   "swap-mark",
	Short: "Swap the focused window with the marked window",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := buildCore()
		if err != nil {
			return err
		}
		if err := c.SwapWithMark(); err != nil {
			return err
		}
		printSuccess("swapped with marked window")
		return nil
	},
}

var markCmd = &cobra.Command{
	Use:   "mark <window-id>",
	Short: "Mark a window for a later swap",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		wid, err := parseWID(args[0])
		if err != nil {
			return err
		}
		c, err := buildCore()
		if err != nil {
			return err
		}
		if err := c.Mark(wid); err != nil {
			return err
		}
		printSuccess(fmt.Sprintf("marked window %d", wid))
		return nil
	},
}

var floatCmd = &cobra.Command{
	Use:   "float <window-id>",
	Short: "Toggle a window between tiled and floating",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		wid, err := parseWID(args[0])
		if err != nil {
			return err
		}
		c, err := buildCore()
		if err != nil {
			return err
		}
		if err := c.ToggleFloat(wid); err != nil {
			return err
		}
		printSuccess(fmt.Sprintf("toggled float for window %d", wid))
		return nil
	},
}

var fullscreenCmd = &cobra.Command{
	Use:   "fullscreen",
	Short: "Toggle fullscreen for the focused window",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := buildCore()
		if err != nil {
			return err
		}
		if err := c.ToggleFullscreen(); err != nil {
			return err
		}
		printSuccess("toggled fullscreen")
		return nil
	},
}

var parentCmd = &cobra.Command{
	Use:   "parent",
	Short: "Toggle parent-promotion for the focused window",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := buildCore()
		if err != nil {
			return err
		}
		if err := c.ToggleParent(); err != nil {
			return err
		}
		printSuccess("toggled parent promotion")
		return nil
	},
}

var detachCmd = &cobra.Command{
	Use:   "detach <window-id> <up|right|down|left>",
	Short: "Detach a window and reinsert it near the focused window",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		wid, err := parseWID(args[0])
		if err != nil {
			return err
		}
		d, err := requireDirection(args[1:])
		if err != nil {
			return err
		}
		c, err := buildCore()
		if err != nil {
			return err
		}
		if err := c.DetachReinsert(wid, d); err != nil {
			return err
		}
		printSuccess(fmt.Sprintf("detached and reinserted window %d", wid))
		return nil
	},
}

var modeCmd = &cobra.Command{
	Use:   "mode <bsp|monocle|float>",
	Short: "Switch the current workspace's layout mode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := parseTreeMode(args[0])
		if err != nil {
			return err
		}
		c, err := buildCore()
		if err != nil {
			return err
		}
		if err := c.SetSpaceMode(mode); err != nil {
			return err
		}
		printSuccess(fmt.Sprintf("switched mode to %s", mode))
		return nil
	},
}

func parseTreeMode(s string) (tree.Mode, error) {
	switch s {
	case "bsp":
		return tree.BSP, nil
	case "monocle":
		return tree.Monocle, nil
	case "float":
		return tree.Float, nil
	default:
		return 0, fmt.Errorf("invalid mode %q (want bsp/monocle/float)", s)
	}
}

var splitAxisCmd = &cobra.Command{
	Use:   "split-axis <vertical|horizontal|clear>",
	Short: "Override (or clear) the axis used for the next split",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := buildCore()
		if err != nil {
			return err
		}
		switch args[0] {
		case "vertical":
			c.SetSplitAxis(geometry.Vertical)
		case "horizontal":
			c.SetSplitAxis(geometry.Horizontal)
		case "clear":
			c.ClearSplitAxisOverride()
		default:
			return fmt.Errorf("invalid axis %q (want vertical/horizontal/clear)", args[0])
		}
		printSuccess(fmt.Sprintf("split axis set to %s", args[0]))
		return nil
	},
}
