// Package history keeps the back-navigation stack of previously exited schemes.
package history

import "github.com/BrandonKowalski/waypoint/pkg/waypoint/scheme"

// History is an ordered stack of schemes. The top entry is the screen or
// scene to return to.
//
// History is not safe for concurrent use; the router serializes access.
type History struct {
	entries  []scheme.Scheme
	capacity int
}

// Option configures a History.
type Option func(*History)

// WithCapacity bounds the stack to n entries. When full, Push evicts the
// oldest entry. n <= 0 means unbounded.
func WithCapacity(n int) Option {
	return func(h *History) {
		if n > 0 {
			h.capacity = n
		}
	}
}

// New creates an empty History.
func New(opts ...Option) *History {
	h := &History{
		entries: make([]scheme.Scheme, 0),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Push appends s to the top of the stack.
// It returns false only when s is the zero Scheme.
func (h *History) Push(s scheme.Scheme) bool {
	if s.IsZero() {
		return false
	}
	if h.capacity > 0 && len(h.entries) >= h.capacity {
		n := copy(h.entries, h.entries[1:])
		h.entries[n] = scheme.Scheme{}
		h.entries = h.entries[:n]
	}
	h.entries = append(h.entries, s)
	return true
}

// Pop removes and returns the top entry.
// Returns false if the stack is empty.
func (h *History) Pop() (scheme.Scheme, bool) {
	if len(h.entries) == 0 {
		return scheme.Scheme{}, false
	}
	top := len(h.entries) - 1
	s := h.entries[top]
	h.entries[top] = scheme.Scheme{}
	h.entries = h.entries[:top]
	return s, true
}

// Peek returns the top entry without removing it.
func (h *History) Peek() (scheme.Scheme, bool) {
	if len(h.entries) == 0 {
		return scheme.Scheme{}, false
	}
	return h.entries[len(h.entries)-1], true
}

// IsEmpty returns true if the stack has no entries.
func (h *History) IsEmpty() bool {
	return len(h.entries) == 0
}

// Len returns the number of entries in the stack.
func (h *History) Len() int {
	return len(h.entries)
}

// Capacity returns the configured bound, or 0 when unbounded.
func (h *History) Capacity() int {
	return h.capacity
}

// Entries returns a copy of the stack, bottom first.
func (h *History) Entries() []scheme.Scheme {
	out := make([]scheme.Scheme, len(h.entries))
	copy(out, h.entries)
	return out
}

// Clear removes all entries from the stack.
func (h *History) Clear() {
	clear(h.entries)
	h.entries = h.entries[:0]
}
