// Package item defines the snippet record stored in a snip collection.
package item

import (
	"encoding/json"
	"strconv"
	"strings"

	"tableflip.dev/snip/pkg/bucket"
	"tableflip.dev/snip/pkg/quota"
)

// ID identifies an item. IDs are millisecond-like integers that only grow.
type ID int64

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ParseID converts user input into an ID.
func ParseID(raw string) (ID, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, err
	}
	return ID(n), nil
}

// Item is a labeled snippet. Tags holds bucket names and always contains bucket.All.
type Item struct {
	ID      ID       `json:"id"`
	Label   string   `json:"label"`
	Content string   `json:"content"`
	Tags    []string `json:"buckets"`
}

// Fields carries a partial update. Nil fields are left untouched.
type Fields struct {
	Label   *string
	Content *string
	Tags    []string
}

// New builds an item with normalized tags.
func New(id ID, label, content string, tags []string) Item {
	return Item{
		ID:      id,
		Label:   label,
		Content: content,
		Tags:    NormalizeTags(tags),
	}
}

// HasTag reports whether the item carries the named bucket.
func (i Item) HasTag(name string) bool {
	for _, t := range i.Tags {
		if t == name {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers never share the tag slice.
func (i Item) Clone() Item {
	cp := i
	cp.Tags = append([]string(nil), i.Tags...)
	return cp
}

// NormalizeTags drops blanks and duplicates and makes sure bucket.All is present.
// The relative order of the remaining tags is kept.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags)+1)
	seen := make(map[string]struct{}, len(tags)+1)
	hasAll := false
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		if t == bucket.All {
			hasAll = true
		}
		out = append(out, t)
	}
	if !hasAll {
		out = append([]string{bucket.All}, out...)
	}
	return out
}

// CloneAll deep copies a slice of items.
func CloneAll(items []Item) []Item {
	out := make([]Item, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}

// UnmarshalList decodes a stored item collection. Records written before buckets
// existed have no tags and are placed in bucket.All.
func UnmarshalList(data []byte) ([]Item, error) {
	if len(data) == 0 {
		return []Item{}, nil
	}
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	out := make([]Item, 0, len(items))
	for _, it := range items {
		it.Tags = NormalizeTags(it.Tags)
		out = append(out, it)
	}
	return out, nil
}

// MarshalList encodes an item collection in its stored form.
func MarshalList(items []Item) ([]byte, error) {
	if items == nil {
		items = []Item{}
	}
	return quota.Marshal(items)
}
