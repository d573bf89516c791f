// Package breadcrumbs records where a user has navigated: a linear history of
// nodes with a cursor on the current one. Navigating to an earlier node, by
// Goto or Back, discards everything after it; so does pushing a new node.
//
// A Trail is not safe for concurrent use.
package breadcrumbs

// Trail is an ordered navigation history with a cursor.
// The cursor is -1 exactly when the trail is empty.
type Trail[T any] struct {
	items  []T
	cursor int
}

// New returns an empty Trail.
func New[T any]() *Trail[T] {
	return &Trail[T]{cursor: -1}
}

// Push discards any items after the cursor, appends item and moves the
// cursor onto it. It returns item.
func (t *Trail[T]) Push(item T) T {
	t.prune(t.cursor)
	t.items = append(t.items, item)
	t.cursor = len(t.items) - 1
	return item
}

// Goto moves the cursor to index and discards every item after it. If index
// is out of range the trail is unchanged and ok is false.
func (t *Trail[T]) Goto(index int) (item T, ok bool) {
	if index < 0 || index >= len(t.items) {
		return item, false
	}
	t.prune(index)
	t.cursor = index
	return t.items[index], true
}

// Back is Goto(cursor-1). It is a no-op returning false on an empty trail or
// when the cursor is on the first item.
func (t *Trail[T]) Back() (item T, ok bool) {
	if t.cursor <= 0 {
		return item, false
	}
	return t.Goto(t.cursor - 1)
}

// Clear empties the trail.
func (t *Trail[T]) Clear() {
	t.items = nil
	t.cursor = -1
}

// Count returns the number of items retained.
func (t *Trail[T]) Count() int {
	return len(t.items)
}

// Cursor returns the index of the current item, or -1 when empty.
func (t *Trail[T]) Cursor() int {
	return t.cursor
}

// Current returns the item under the cursor.
func (t *Trail[T]) Current() (item T, ok bool) {
	if t.cursor < 0 {
		return item, false
	}
	return t.items[t.cursor], true
}

// CanGoBack reports whether Back would move the cursor.
func (t *Trail[T]) CanGoBack() bool {
	return t.cursor > 0
}

// Items returns a copy of the trail from first to last.
func (t *Trail[T]) Items() []T {
	out := make([]T, len(t.items))
	copy(out, t.items)
	return out
}

// prune drops every item after index. Dropped slots are zeroed so the
// backing array does not keep them reachable.
func (t *Trail[T]) prune(index int) {
	if index >= len(t.items)-1 {
		return
	}
	clear(t.items[index+1:])
	t.items = t.items[:index+1]
}
