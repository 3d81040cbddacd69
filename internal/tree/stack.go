package tree

import "github.com/axiswm/tilecore/internal/registry"

// Stack is the ordered, non-empty-when-in-use list of window ids embedded
// in every Leaf. It is expressed as an ordered slice exposing head/tail/
// previous/next as sequence operations, rather than a hand-rolled linked
// list of pointers, since Go's ownership model makes that unnecessary.
type Stack struct {
	ids []registry.WindowID
}

// Len returns the number of windows in the stack.
func (s *Stack) Len() int { return len(s.ids) }

// Head returns the first (topmost) window, if any.
func (s *Stack) Head() (registry.WindowID, bool) {
	if len(s.ids) == 0 {
		return 0, false
	}
	return s.ids[0], true
}

// Tail returns the last window, if any.
func (s *Stack) Tail() (registry.WindowID, bool) {
	if len(s.ids) == 0 {
		return 0, false
	}
	return s.ids[len(s.ids)-1], true
}

// Append adds wid to the tail of the stack.
func (s *Stack) Append(wid registry.WindowID) {
	s.ids = append(s.ids, wid)
}

// IndexOf returns the position of wid in the stack, or -1 if absent.
func (s *Stack) IndexOf(wid registry.WindowID) int {
	for i, id := range s.ids {
		if id == wid {
			return i
		}
	}
	return -1
}

// Remove unlinks wid from the stack. Reports whether wid was present.
func (s *Stack) Remove(wid registry.WindowID) bool {
	idx := s.IndexOf(wid)
	if idx < 0 {
		return false
	}
	s.ids = append(s.ids[:idx], s.ids[idx+1:]...)
	return true
}

// Next returns the successor of wid in the stack (the element that would
// become head if wid were unlinked while at the head).
func (s *Stack) Next(wid registry.WindowID) (registry.WindowID, bool) {
	idx := s.IndexOf(wid)
	if idx < 0 || idx+1 >= len(s.ids) {
		return 0, false
	}
	return s.ids[idx+1], true
}

// Prev returns the predecessor of wid in the stack.
func (s *Stack) Prev(wid registry.WindowID) (registry.WindowID, bool) {
	idx := s.IndexOf(wid)
	if idx <= 0 {
		return 0, false
	}
	return s.ids[idx-1], true
}

// ReplaceAt overwrites the window id at position idx, used by Swap.
func (s *Stack) ReplaceAt(idx int, wid registry.WindowID) {
	if idx < 0 || idx >= len(s.ids) {
		return
	}
	s.ids[idx] = wid
}

// All returns a copy of the stack's contents, head to tail.
func (s *Stack) All() []registry.WindowID {
	return append([]registry.WindowID(nil), s.ids...)
}

// Contains reports whether wid is present in the stack.
func (s *Stack) Contains(wid registry.WindowID) bool { return s.IndexOf(wid) >= 0 }
