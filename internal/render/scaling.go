package render

import "github.com/axiswm/tilecore/internal/geometry"

// scalingContext converts a workspace's pixel-space display rect into
// terminal character coordinates, scaling a display's pixel bounds down
// to a fixed terminal size — except here the bounding box is always the
// workspace's own single display rect, never a box computed from window
// positions.
type scalingContext struct {
	originX, originY float64
	termWidth        int
	termHeight       int
	scaleX           float64
	scaleY           float64
	// aspectRatio corrects for terminal cells being roughly twice as tall
	// as they are wide.
	aspectRatio float64
}

func newScalingContext(display geometry.Rect, termWidth, termHeight int) *scalingContext {
	availWidth := termWidth - 4
	availHeight := termHeight - 4
	if availWidth < 10 {
		availWidth = 10
	}
	if availHeight < 5 {
		availHeight = 5
	}

	pixelWidth := display.Width
	pixelHeight := display.Height
	if pixelWidth <= 0 {
		pixelWidth = 1920
	}
	if pixelHeight <= 0 {
		pixelHeight = 1080
	}

	return &scalingContext{
		originX:     display.X,
		originY:     display.Y,
		termWidth:   termWidth,
		termHeight:  termHeight,
		scaleX:      float64(availWidth) / pixelWidth,
		scaleY:      float64(availHeight) / pixelHeight,
		aspectRatio: 2.0,
	}
}

func (sc *scalingContext) pixelToTerminal(x, y float64) (int, int) {
	relX := x - sc.originX
	relY := y - sc.originY
	termX := int(relX*sc.scaleX) + 2
	termY := int(relY*sc.scaleY/sc.aspectRatio) + 2
	return termX, termY
}

func (sc *scalingContext) scaleSize(w, h float64) (int, int) {
	termW := int(w * sc.scaleX)
	termH := int(h * sc.scaleY / sc.aspectRatio)
	if termW < 3 {
		termW = 3
	}
	if termH < 2 {
		termH = 2
	}
	return termW, termH
}

// clampToCanvas keeps a box within the terminal's bounds, shrinking it
// rather than letting it draw off the edge.
func (sc *scalingContext) clampToCanvas(x, y, w, h int) (int, int, int, int) {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w >= sc.termWidth {
		w = sc.termWidth - x - 1
	}
	if y+h >= sc.termHeight {
		h = sc.termHeight - y - 1
	}
	if w < 3 {
		w = 3
	}
	if h < 2 {
		h = 2
	}
	return x, y, w, h
}
