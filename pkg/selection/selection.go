// Package selection tracks the set of items a user has currently marked
// in a list view. Membership is by key; each key carries an associated value
// that the caller supplies on selection (true when none is given).
//
// Iteration order of Keys and Items is insertion order. Toggling a key off
// and on again moves it to the end.
//
// A Set is not safe for concurrent use. Callers that share one across
// goroutines must guard every call with their own lock.
package selection

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Selected is the value stored by Toggle when the caller supplies none.
const Selected = true

// Set maps selected keys to their associated values.
type Set[K comparable] struct {
	entries *orderedmap.OrderedMap[K, any]
}

// New returns an empty Set.
func New[K comparable]() *Set[K] {
	return &Set[K]{
		entries: orderedmap.New[K, any](),
	}
}

// Toggle deselects key if it is selected, otherwise selects it with the
// value Selected.
func (s *Set[K]) Toggle(key K) {
	s.ToggleValue(key, Selected)
}

// ToggleValue deselects key if it is selected, otherwise selects it with
// value. Zero values such as 0, "" or nil are stored as given.
func (s *Set[K]) ToggleValue(key K, value any) {
	if _, ok := s.entries.Delete(key); ok {
		return
	}
	s.entries.Set(key, value)
}

// Contains reports whether key is selected.
func (s *Set[K]) Contains(key K) bool {
	_, ok := s.entries.Get(key)
	return ok
}

// Value returns the value stored for key.
func (s *Set[K]) Value(key K) (any, bool) {
	return s.entries.Get(key)
}

// Count returns the number of selected keys.
func (s *Set[K]) Count() int {
	return s.entries.Len()
}

// Clear deselects everything.
func (s *Set[K]) Clear() {
	s.entries = orderedmap.New[K, any]()
}

// Keys returns the selected keys in insertion order.
func (s *Set[K]) Keys() []K {
	keys := make([]K, 0, s.entries.Len())
	for pair := s.entries.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Items returns the values of the selected keys in insertion order.
func (s *Set[K]) Items() []any {
	items := make([]any, 0, s.entries.Len())
	for pair := s.entries.Oldest(); pair != nil; pair = pair.Next() {
		items = append(items, pair.Value)
	}
	return items
}
