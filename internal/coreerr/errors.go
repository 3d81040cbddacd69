// Package coreerr defines the core's error taxonomy. All are
// sentinel errors so callers can distinguish them with errors.Is. Command
// entry points in internal/core leave state unchanged on these errors and
// return them to their caller; they do not absorb them, and the CLI prints
// the returned error.
package coreerr

import "errors"

var (
	// ErrNotFound: a command referenced a wid absent from the registry.
	ErrNotFound = errors.New("window not found")
	// ErrWrongMode: a command meaningful only in one space mode was issued
	// under another (e.g. a BSP-only command under Monocle).
	ErrWrongMode = errors.New("command not valid in current space mode")
	// ErrTransitioning: the platform's space-transition sentinel is set.
	ErrTransitioning = errors.New("space transition in progress")
	// ErrUnfocusable: the platform bridge refused to focus the target.
	ErrUnfocusable = errors.New("platform refused focus")
	// ErrNoNeighbor: spatial navigation found no candidate in the requested
	// direction.
	ErrNoNeighbor = errors.New("no window in that direction")
)

// Invariant panics with a message naming the violated tree invariant.
// Invariant violations are programmer bugs and must never occur if the
// tree's structural invariants hold; the process terminates rather than
// limping on with a corrupt tree.
func Invariant(msg string) {
	panic("tilecore: invariant violation: " + msg)
}
