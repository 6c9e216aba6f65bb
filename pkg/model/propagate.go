package model

import (
	"strings"

	"tableflip.dev/snip/pkg/bucket"
	"tableflip.dev/snip/pkg/item"
)

// RenameBucket renames a bucket in place and rewrites every item tag that
// referenced it, keeping the tag's position. The active filter follows the
// rename.
func (c *Collection) RenameBucket(oldName, newName string) error {
	newName = strings.TrimSpace(newName)
	switch {
	case bucket.IsReserved(oldName):
		return ErrReservedBucket
	case newName == "":
		return ErrEmptyBucketName
	case newName == oldName:
		return ErrSameBucketName
	}
	idx := bucket.Index(c.buckets, oldName)
	if idx < 0 {
		return ErrBucketNotFound
	}
	if bucket.Contains(c.buckets, newName) {
		return ErrDuplicateBucket
	}

	nextItems, touched := c.mapTags(func(tags []string) ([]string, bool) {
		j := bucket.Index(tags, oldName)
		if j < 0 {
			return tags, false
		}
		out := append([]string(nil), tags...)
		out[j] = newName
		return item.NormalizeTags(out), true
	})
	if touched {
		if err := c.limits.CheckItems(nextItems); err != nil {
			return err
		}
	}

	nextBuckets := c.Buckets()
	nextBuckets[idx] = newName

	c.buckets = nextBuckets
	c.dirty.Buckets = true
	if touched {
		c.items = nextItems
		c.dirty.Items = true
	}
	if c.selected == oldName {
		c.selected = newName
	}
	return nil
}

// DeleteBucket removes a bucket and strips it from every item. Items keep
// bucket.All, so no tag set becomes empty. A filter on the deleted bucket
// falls back to bucket.All.
func (c *Collection) DeleteBucket(name string) error {
	if bucket.IsReserved(name) {
		return ErrReservedBucket
	}
	idx := bucket.Index(c.buckets, name)
	if idx < 0 {
		return ErrBucketNotFound
	}

	nextItems, touched := c.mapTags(func(tags []string) ([]string, bool) {
		if bucket.Index(tags, name) < 0 {
			return tags, false
		}
		out := make([]string, 0, len(tags)-1)
		for _, t := range tags {
			if t != name {
				out = append(out, t)
			}
		}
		return item.NormalizeTags(out), true
	})

	nextBuckets := make([]string, 0, len(c.buckets)-1)
	nextBuckets = append(nextBuckets, c.buckets[:idx]...)
	nextBuckets = append(nextBuckets, c.buckets[idx+1:]...)

	c.buckets = nextBuckets
	c.dirty.Buckets = true
	if touched {
		c.items = nextItems
		c.dirty.Items = true
	}
	if c.selected == name {
		c.selected = bucket.All
	}
	return nil
}

// mapTags applies fn to each item's tags and returns the new sequence and
// whether any item changed. Unchanged items are shared, changed ones cloned.
func (c *Collection) mapTags(fn func([]string) ([]string, bool)) ([]item.Item, bool) {
	out := make([]item.Item, len(c.items))
	touched := false
	for i, it := range c.items {
		tags, changed := fn(it.Tags)
		if !changed {
			out[i] = it
			continue
		}
		cp := it.Clone()
		cp.Tags = tags
		out[i] = cp
		touched = true
	}
	return out, touched
}
