package render

import (
	"fmt"

	"github.com/axiswm/tilecore/internal/registry"
	"github.com/axiswm/tilecore/internal/tree"
)

// RenderTree draws ws's leaves as boxes scaled into a termWidth x
// termHeight canvas, one box per non-empty leaf, labelled with the leaf's
// topmost window followed by "[+N]" for a stacked leaf's hidden members.
// The box whose topmost window is focused gets a "*" marker, in the
// focused color, on its top edge.
func RenderTree(ws *tree.Workspace, descs map[registry.WindowID]registry.Descriptor, focused registry.WindowID, opts Options) string {
	if ws.Empty() {
		return "(empty workspace)\n"
	}

	termWidth, termHeight := opts.TermWidth, opts.TermHeight
	if termWidth <= 0 {
		termWidth = 80
	}
	if termHeight <= 0 {
		termHeight = 24
	}

	display := ws.LastDisplayRect()
	sc := newScalingContext(display, termWidth, termHeight)
	cv := newCanvas(termWidth, termHeight, opts.UseUnicode)

	leaves := ws.Leaves()
	for _, ref := range leaves {
		view, ok := ws.View(ref)
		if !ok || len(view.Stack) == 0 {
			continue
		}

		tx, ty := sc.pixelToTerminal(view.Rect.X, view.Rect.Y)
		tw, th := sc.scaleSize(view.Rect.Width, view.Rect.Height)
		tx, ty, tw, th = sc.clampToCanvas(tx, ty, tw, th)

		cv.drawBox(tx, ty, tw, th)

		top := view.Stack[0]
		label := windowLabel(descs[top])
		if len(view.Stack) > 1 {
			label = fmt.Sprintf("%s [+%d]", label, len(view.Stack)-1)
		}
		cv.drawTextCentered(tx+1, ty+th/2, tw-2, label)

		if top == focused {
			cv.drawText(tx+1, ty, focusedColor.Sprint("*"))
		}
	}

	return cv.String()
}

func windowLabel(d registry.Descriptor) string {
	if d.App == "" {
		return fmt.Sprintf("wid:%d", d.WID)
	}
	return d.App
}
