// Package bucket defines the user-ordered tags that group snip items.
package bucket

import (
	"errors"
	"strings"
)

// All is the reserved bucket. It is always first, cannot be renamed, moved or
// deleted, and as a filter it matches every item.
const All = "all"

var (
	ErrEmptyName = errors.New("bucket: name required")
	ErrReserved  = errors.New("bucket: \"all\" is reserved")
)

// Defaults returns the bucket sequence of a fresh collection.
func Defaults() []string {
	return []string{All, "work", "personal"}
}

// IsReserved reports whether name refers to the reserved bucket.
func IsReserved(name string) bool {
	return name == All
}

// ValidateName checks a candidate name for a new or renamed bucket.
func ValidateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return ErrEmptyName
	case IsReserved(name):
		return ErrReserved
	}
	return nil
}

// Index returns the position of name in names, or -1.
func Index(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}

// Contains reports whether names holds name.
func Contains(names []string, name string) bool {
	return Index(names, name) >= 0
}

// Normalize drops blank and duplicate names and moves All to the front,
// adding it if missing. The order of the other names is kept.
func Normalize(names []string) []string {
	out := make([]string, 0, len(names)+1)
	out = append(out, All)
	seen := map[string]struct{}{All: {}}
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
