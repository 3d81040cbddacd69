package render

import (
	"fmt"
	"os"
	"sort"

	"github.com/olekukonko/tablewriter"

	"github.com/axiswm/tilecore/internal/registry"
)

// PrintWindowsTable prints a workspace's windows, marking the focused row
// and the floating/marked status of each window.
func PrintWindowsTable(windows []registry.Descriptor, focused, marked registry.WindowID, floating map[registry.WindowID]bool) {
	sort.Slice(windows, func(i, j int) bool { return windows[i].WID < windows[j].WID })

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("WID", "App", "Title", "Rect", "State")

	for _, d := range windows {
		state := ""
		switch {
		case d.WID == focused && d.WID == marked:
			state = focusedColor.Sprint("focused") + "," + markedColor.Sprint("marked")
		case d.WID == focused:
			state = focusedColor.Sprint("focused")
		case d.WID == marked:
			state = markedColor.Sprint("marked")
		}
		if floating[d.WID] {
			if state != "" {
				state += ","
			}
			state += floatingColor.Sprint("floating")
		}

		table.Append(
			fmt.Sprintf("%d", d.WID),
			truncate(d.App, 20),
			truncate(d.Title, 30),
			fmt.Sprintf("%.0fx%.0f @ (%.0f,%.0f)", d.Rect.Width, d.Rect.Height, d.Rect.X, d.Rect.Y),
			state,
		)
	}

	table.Render()
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
