// Package clone deep-copies plain structured data: the []any, map[string]any
// and map[any]any trees produced by decoding JSON or YAML into an any.
// yaml.v3 yields map[any]any for any mapping with a non-string key.
//
// Only those three container types are recognised. Every other value,
// including structs, pointers and typed slices or maps, is returned as-is, so
// the copy aliases it. Cyclic input is not detected and recurses until the
// stack is exhausted.
package clone

import "fmt"

// Value returns a deep copy of v. Sequences are checked before mappings.
func Value(v any) any {
	switch t := v.(type) {
	case []any:
		return Slice(t)
	case map[string]any:
		return Map(t)
	case map[any]any:
		return MapAny(t)
	default:
		return v
	}
}

// Slice returns a new slice holding a deep copy of each element of s, in
// order. A nil slice stays nil.
func Slice(s []any) []any {
	if s == nil {
		return nil
	}
	out := make([]any, 0, len(s))
	for _, elem := range s {
		out = append(out, Value(elem))
	}
	return out
}

// Map returns a new map holding a deep copy of each value of m under the
// same key. A nil map stays nil.
func Map(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = Value(v)
	}
	return out
}

// MapAny is Map for mappings whose keys are not all strings. Keys are
// atomic and reused.
func MapAny(m map[any]any) map[any]any {
	if m == nil {
		return nil
	}
	out := make(map[any]any, len(m))
	for k, v := range m {
		out[k] = Value(v)
	}
	return out
}

// StringKeys returns a deep copy of v in which every map[any]any is replaced
// by a map[string]any keyed by the fmt.Sprint form of the original key.
// encoding/json cannot marshal map[any]any, so this is the form to hand it.
// Keys that print the same collapse to one entry; which value survives is
// unspecified.
func StringKeys(v any) any {
	switch t := v.(type) {
	case []any:
		if t == nil {
			return t
		}
		out := make([]any, 0, len(t))
		for _, elem := range t {
			out = append(out, StringKeys(elem))
		}
		return out
	case map[string]any:
		if t == nil {
			return t
		}
		out := make(map[string]any, len(t))
		for k, elem := range t {
			out[k] = StringKeys(elem)
		}
		return out
	case map[any]any:
		if t == nil {
			return map[string]any(nil)
		}
		out := make(map[string]any, len(t))
		for k, elem := range t {
			out[fmt.Sprint(k)] = StringKeys(elem)
		}
		return out
	default:
		return v
	}
}
