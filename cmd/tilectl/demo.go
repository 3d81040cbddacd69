package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/axiswm/tilecore/internal/core"
	"github.com/axiswm/tilecore/internal/geometry"
	"github.com/axiswm/tilecore/internal/render"
)

// demoCmd runs a short scripted scenario against the in-memory sandbox:
// show the initial tree, focus a neighbour, then float the focused window
// and show the result. Useful for a quick sanity check with no platform
// daemon and no settings file required.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted scenario against the in-memory sandbox",
	RunE: func(cmd *cobra.Command, args []string) error {
		demoMode = true
		c, err := buildCore()
		if err != nil {
			return err
		}

		infoColor.Println("initial layout:")
		fmt.Print(renderTreeOf(c))

		if err := c.FocusDirection(geometry.Right); err == nil {
			infoColor.Println("\nfocused right neighbour")
		}

		focused := c.FocusedWID()
		if err := c.ToggleFloat(focused); err == nil {
			infoColor.Printf("\nfloated window %d:\n", focused)
			fmt.Print(renderTreeOf(c))
			render.PrintWindowsTable(c.Windows(), c.FocusedWID(), c.MarkedWID(), c.FloatingSet())
		}

		return nil
	},
}

func renderTreeOf(c *core.Core) string {
	descs := descriptorIndex(c.Windows())
	return render.RenderTree(c.Current(), descs, c.FocusedWID(), renderOptions())
}
