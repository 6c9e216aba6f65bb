// Package view derives read-only projections of a collection for display.
package view

import (
	"tableflip.dev/snip/pkg/bucket"
	"tableflip.dev/snip/pkg/item"
)

// Visible returns the items shown when selected is the active bucket filter.
// bucket.All returns items as is; any other name keeps, in order, the items
// tagged with it.
func Visible(items []item.Item, selected string) []item.Item {
	if selected == bucket.All {
		return items
	}
	out := make([]item.Item, 0, len(items))
	for _, it := range items {
		if it.HasTag(selected) {
			out = append(out, it)
		}
	}
	return out
}

// Count pairs a bucket with the number of items it shows.
type Count struct {
	Bucket string
	Items  int
}

// Counts returns the per-bucket item counts in bucket order.
func Counts(items []item.Item, buckets []string) []Count {
	out := make([]Count, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, Count{Bucket: b, Items: len(Visible(items, b))})
	}
	return out
}

// EmptyTitle is the message shown when the selected bucket has no items.
func EmptyTitle(selected string) string {
	if selected == bucket.All {
		return "Your clipboard is empty"
	}
	return "No items in \"" + selected + "\""
}
