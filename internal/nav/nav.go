// Package nav implements spatial navigation ( C6):
// find_closest(origin, direction, wrap), the alignment-biased neighbour
// search used by "focus in direction" and "swap nearest".
package nav

import (
	"math"

	"github.com/axiswm/tilecore/internal/geometry"
	"github.com/axiswm/tilecore/internal/registry"
)

// alignment thresholds and weights from the scoring formula.
const (
	alignXThreshold = 15.0
	alignYThreshold = 10.0
	alignXWeight    = 1.0
	misalignXWeight = 11.0
	alignYWeight    = 1.0
	misalignYWeight = 22.0
)

// Candidate is a navigable window: its stable id, its rectangle, and its
// position in observation order (used for the scoring tie-break).
type Candidate struct {
	WID   registry.WindowID
	Rect  geometry.Rect
	Order int
}

// FindClosest resolves the best neighbour of origin in direction d among
// candidates, applying the wrap transform when wrap is true. ok is false
// when no candidate satisfies the direction predicate.
func FindClosest(origin geometry.Rect, originWID registry.WindowID, candidates []Candidate, d geometry.Direction, wrap bool, screen geometry.Rect) (registry.WindowID, bool) {
	oc := origin.Center()

	var best registry.WindowID
	bestOrder := math.MaxInt64
	bestDistance := math.MaxFloat64
	found := false

	for _, c := range candidates {
		if c.WID == originWID {
			continue
		}
		rect := c.Rect

		if wrap {
			if !overlapsPerpendicular(origin, rect, d) {
				continue
			}
			if isBefore(origin, rect, d) {
				rect = translate(rect, d, screen)
			}
		} else if !strictlyBeyond(origin, rect, d) {
			continue
		}

		cc := rect.Center()
		distance := score(oc, cc)

		if distance < bestDistance || (distance == bestDistance && c.Order < bestOrder) {
			bestDistance = distance
			bestOrder = c.Order
			best = c.WID
			found = true
		}
	}

	return best, found
}

// strictlyBeyond implements the non-wrap direction predicate: c lies beyond
// origin's near edge along d, with no overlap into origin's rectangle. The
// edges may touch exactly (the common zero-gap case), so the comparison is
// inclusive at the boundary.
func strictlyBeyond(origin, c geometry.Rect, d geometry.Direction) bool {
	switch d {
	case geometry.Right:
		return c.X >= origin.X+origin.Width
	case geometry.Left:
		return c.X+c.Width <= origin.X
	case geometry.Down:
		return c.Y >= origin.Y+origin.Height
	case geometry.Up:
		return c.Y+c.Height <= origin.Y
	default:
		return false
	}
}

// overlapsPerpendicular implements the wrap direction predicate: c must
// share interval overlap with origin on the perpendicular axis.
func overlapsPerpendicular(origin, c geometry.Rect, d geometry.Direction) bool {
	switch d {
	case geometry.Up, geometry.Down:
		return math.Max(c.X, origin.X) < math.Min(c.X+c.Width, origin.X+origin.Width)
	case geometry.Left, geometry.Right:
		return math.Max(c.Y, origin.Y) < math.Min(c.Y+c.Height, origin.Y+origin.Height)
	default:
		return false
	}
}

// isBefore reports whether c lies "before" origin along d in screen
// coordinates, i.e. the candidate is on the wrong side for a direct move
// and needs the wrap transform applied.
func isBefore(origin, c geometry.Rect, d geometry.Direction) bool {
	switch d {
	case geometry.Right:
		return c.X <= origin.X
	case geometry.Left:
		return c.X >= origin.X
	case geometry.Down:
		return c.Y <= origin.Y
	case geometry.Up:
		return c.Y >= origin.Y
	default:
		return false
	}
}

// translate shifts rect by one screen width/height in d's direction, the
// wrap transform applied before scoring.
func translate(rect geometry.Rect, d geometry.Direction, screen geometry.Rect) geometry.Rect {
	switch d {
	case geometry.Right:
		rect.X += screen.Width
	case geometry.Left:
		rect.X -= screen.Width
	case geometry.Down:
		rect.Y += screen.Height
	case geometry.Up:
		rect.Y -= screen.Height
	}
	return rect
}

// score computes the alignment-biased distance between window
// centres oc and cc.
func score(oc, cc geometry.Point) float64 {
	dx := oc.X - cc.X
	dy := oc.Y - cc.Y

	scoreX := alignXWeight
	if math.Abs(dx) > alignXThreshold {
		scoreX = misalignXWeight
	}
	scoreY := alignYWeight
	if math.Abs(dy) > alignYThreshold {
		scoreY = misalignYWeight
	}
	weight := scoreX * scoreY

	return math.Sqrt(dx*dx+dy*dy) + weight
}
