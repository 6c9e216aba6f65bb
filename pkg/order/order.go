// Package order repositions entries of an ordered sequence in response to a
// drag from a source entry onto a target entry.
//
// The moved entry lands at the index the target held before the source was
// taken out. Moving down therefore places the source after the target, while
// moving up places it before. Stored orderings depend on this, so it must not
// be "corrected".
package order

import "slices"

// Move returns a copy of s with the element at src removed and reinserted at
// dst, where dst is an index into the original s. Out of range indexes or
// src == dst return an unchanged copy.
func Move[T any](s []T, src, dst int) []T {
	out := slices.Clone(s)
	if src == dst || src < 0 || dst < 0 || src >= len(s) || dst >= len(s) {
		return out
	}
	moved := out[src]
	out = slices.Delete(out, src, src+1)
	return slices.Insert(out, dst, moved)
}

// MoveKey is Move addressed by key. It reports false, with s copied unchanged,
// when src equals dst or either key is absent.
func MoveKey[T any, K comparable](s []T, key func(T) K, src, dst K) ([]T, bool) {
	if src == dst {
		return slices.Clone(s), false
	}
	si, di := -1, -1
	for i, v := range s {
		switch key(v) {
		case src:
			si = i
		case dst:
			di = i
		}
	}
	if si < 0 || di < 0 {
		return slices.Clone(s), false
	}
	return Move(s, si, di), true
}
