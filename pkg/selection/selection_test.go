package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsEmpty(t *testing.T) {
	s := New[string]()

	assert.Equal(t, 0, s.Count())
	assert.Empty(t, s.Keys())
	assert.Empty(t, s.Items())
	assert.False(t, s.Contains("anything"))
}

func TestToggleParity(t *testing.T) {
	for n := 1; n <= 6; n++ {
		s := New[string]()
		for range n {
			s.Toggle("msg-1")
		}
		assert.Equal(t, n%2 == 1, s.Contains("msg-1"), "after %d toggles", n)
	}
}

func TestToggleDefaultValue(t *testing.T) {
	s := New[int]()
	s.Toggle(7)

	v, ok := s.Value(7)
	require.True(t, ok)
	assert.Equal(t, true, v)
	assert.Equal(t, []any{true}, s.Items())
}

func TestToggleValueKeepsZeroValues(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{name: "zero int", value: 0},
		{name: "empty string", value: ""},
		{name: "false", value: false},
		{name: "nil", value: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New[string]()

			s.ToggleValue("k", tt.value)
			require.True(t, s.Contains("k"))
			v, ok := s.Value("k")
			require.True(t, ok)
			assert.Equal(t, tt.value, v)

			s.ToggleValue("k", tt.value)
			assert.False(t, s.Contains("k"), "second toggle must deselect")
		})
	}
}

func TestToggleValueIgnoresValueOnRemoval(t *testing.T) {
	s := New[string]()
	s.ToggleValue("k", "first")
	s.ToggleValue("k", "second")

	assert.False(t, s.Contains("k"))
	assert.Equal(t, 0, s.Count())
}

func TestInsertionOrder(t *testing.T) {
	s := New[string]()
	s.ToggleValue("c", 3)
	s.ToggleValue("a", 1)
	s.ToggleValue("b", 2)

	assert.Equal(t, []string{"c", "a", "b"}, s.Keys())
	assert.Equal(t, []any{3, 1, 2}, s.Items())

	// Reselecting moves the key to the end.
	s.Toggle("c")
	s.ToggleValue("c", 30)
	assert.Equal(t, []string{"a", "b", "c"}, s.Keys())
	assert.Equal(t, []any{1, 2, 30}, s.Items())
}

func TestCountMatchesKeysAndItems(t *testing.T) {
	s := New[string]()
	for _, k := range []string{"a", "b", "a", "c", "d", "b", "e"} {
		s.Toggle(k)
		assert.Equal(t, s.Count(), len(s.Keys()))
		assert.Equal(t, s.Count(), len(s.Items()))
	}
	assert.Equal(t, []string{"c", "d", "e"}, s.Keys())
}

func TestClear(t *testing.T) {
	s := New[string]()
	s.Toggle("a")
	s.Toggle("b")

	s.Clear()
	assert.Equal(t, 0, s.Count())
	assert.Empty(t, s.Keys())
	assert.Empty(t, s.Items())
	assert.False(t, s.Contains("a"))

	// Clearing an empty set is a no-op.
	s.Clear()
	assert.Equal(t, 0, s.Count())

	// The set stays usable after Clear.
	s.Toggle("a")
	assert.True(t, s.Contains("a"))
}

func TestKeysReturnsCopy(t *testing.T) {
	s := New[string]()
	s.Toggle("a")

	keys := s.Keys()
	keys[0] = "mutated"
	assert.Equal(t, []string{"a"}, s.Keys())
}
