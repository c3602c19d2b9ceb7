package crossing

import "github.com/kamstrup/intmap"

// Handle identifies an arena entry. Handles are never reused, so a handle
// kept across a batch respawn can never address a newer entry.
type Handle uint64

// Arena stores entities densely and removes them by handle in O(1) using
// swap-remove. Iteration order is unspecified after a removal.
type Arena[T any] struct {
	items   []T
	handles []Handle
	slots   *intmap.Map[Handle, int]
	next    Handle
}

// NewArena creates an arena with room for capacity entries.
func NewArena[T any](capacity int) *Arena[T] {
	return &Arena[T]{
		items:   make([]T, 0, capacity),
		handles: make([]Handle, 0, capacity),
		slots:   intmap.New[Handle, int](capacity),
		next:    1,
	}
}

// Insert adds v and returns its handle.
func (a *Arena[T]) Insert(v T) Handle {
	h := a.next
	a.next++
	a.slots.Put(h, len(a.items))
	a.items = append(a.items, v)
	a.handles = append(a.handles, h)
	return h
}

// Get returns the entry for h.
func (a *Arena[T]) Get(h Handle) (T, bool) {
	slot, ok := a.slots.Get(h)
	if !ok {
		var zero T
		return zero, false
	}
	return a.items[slot], true
}

// Remove deletes the entry for h. Stale or unknown handles are ignored.
func (a *Arena[T]) Remove(h Handle) bool {
	slot, ok := a.slots.Get(h)
	if !ok {
		return false
	}
	last := len(a.items) - 1
	if slot != last {
		a.items[slot] = a.items[last]
		a.handles[slot] = a.handles[last]
		a.slots.Put(a.handles[slot], slot)
	}
	var zero T
	a.items[last] = zero
	a.items = a.items[:last]
	a.handles = a.handles[:last]
	a.slots.Del(h)
	return true
}

// Clear removes every entry. Handles issued so far stay invalid forever.
func (a *Arena[T]) Clear() {
	clear(a.items)
	a.items = a.items[:0]
	a.handles = a.handles[:0]
	a.slots.Clear()
}

// Len returns the number of live entries.
func (a *Arena[T]) Len() int {
	return len(a.items)
}

// Items returns the live entries. The slice is only valid until the next
// Insert, Remove or Clear.
func (a *Arena[T]) Items() []T {
	return a.items
}

// Handles returns the handles of the live entries, parallel to Items.
func (a *Arena[T]) Handles() []Handle {
	return a.handles
}
