// Package model holds the in-memory snippet collection: items, the ordered
// buckets that tag them, the active bucket filter and the sidebar flag. It is
// the only place these are mutated. Every mutation validates and checks quota
// before it commits, so a rejected call leaves the collection as it was.
//
// A Collection is not safe for concurrent use; callers serialize access.
package model

import (
	"strings"

	"tableflip.dev/snip/pkg/bucket"
	"tableflip.dev/snip/pkg/item"
	"tableflip.dev/snip/pkg/order"
	"tableflip.dev/snip/pkg/quota"
	"tableflip.dev/snip/pkg/view"
)

// Collection is the live snippet collection.
type Collection struct {
	items         []item.Item
	buckets       []string
	selected      string
	sidebarHidden bool

	limits quota.Limits
	ids    *item.IDGen
	dirty  Dirty
}

// New returns an empty collection with the default buckets.
func New(limits quota.Limits) *Collection {
	return &Collection{
		items:    []item.Item{},
		buckets:  bucket.Defaults(),
		selected: bucket.All,
		limits:   limits,
		ids:      item.NewIDGen(),
	}
}

// Limits returns the quota applied to mutations.
func (c *Collection) Limits() quota.Limits {
	return c.limits
}

// TakeDirty returns the channels changed since the last call and resets them.
func (c *Collection) TakeDirty() Dirty {
	d := c.dirty
	c.dirty = Dirty{}
	return d
}

// Items returns a copy of the item sequence.
func (c *Collection) Items() []item.Item {
	return item.CloneAll(c.items)
}

// Buckets returns a copy of the bucket sequence.
func (c *Collection) Buckets() []string {
	return append([]string(nil), c.buckets...)
}

// Item looks up one item by id.
func (c *Collection) Item(id item.ID) (item.Item, bool) {
	if i := c.indexOf(id); i >= 0 {
		return c.items[i].Clone(), true
	}
	return item.Item{}, false
}

func (c *Collection) indexOf(id item.ID) int {
	for i, it := range c.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// CreateItem prepends a new item. Tags naming buckets that do not exist yet
// create those buckets in the same step.
func (c *Collection) CreateItem(label, content string, tags []string) (item.Item, error) {
	if err := validateText(label, content); err != nil {
		return item.Item{}, err
	}
	tags = item.NormalizeTags(tags)
	nextBuckets, added, err := c.withTagBuckets(tags)
	if err != nil {
		return item.Item{}, err
	}

	it := item.New(c.ids.Next(), label, content, tags)
	next := make([]item.Item, 0, len(c.items)+1)
	next = append(next, it)
	next = append(next, c.items...)
	if err := c.limits.CheckItems(next); err != nil {
		return item.Item{}, err
	}

	c.items = next
	c.dirty.Items = true
	if added {
		c.buckets = nextBuckets
		c.dirty.Buckets = true
	}
	return it.Clone(), nil
}

// UpdateItem edits an item in place; its id and position are kept.
func (c *Collection) UpdateItem(id item.ID, f item.Fields) (item.Item, error) {
	idx := c.indexOf(id)
	if idx < 0 {
		return item.Item{}, ErrItemNotFound
	}
	updated := c.items[idx].Clone()
	if f.Label != nil {
		updated.Label = *f.Label
	}
	if f.Content != nil {
		updated.Content = *f.Content
	}
	if f.Tags != nil {
		updated.Tags = item.NormalizeTags(f.Tags)
	}
	if err := validateText(updated.Label, updated.Content); err != nil {
		return item.Item{}, err
	}
	nextBuckets, added, err := c.withTagBuckets(updated.Tags)
	if err != nil {
		return item.Item{}, err
	}

	next := append([]item.Item(nil), c.items...)
	next[idx] = updated
	if err := c.limits.CheckItems(next); err != nil {
		return item.Item{}, err
	}

	c.items = next
	c.dirty.Items = true
	if added {
		c.buckets = nextBuckets
		c.dirty.Buckets = true
	}
	return updated.Clone(), nil
}

// DeleteItem removes an item.
func (c *Collection) DeleteItem(id item.ID) error {
	idx := c.indexOf(id)
	if idx < 0 {
		return ErrItemNotFound
	}
	next := make([]item.Item, 0, len(c.items)-1)
	next = append(next, c.items[:idx]...)
	next = append(next, c.items[idx+1:]...)
	c.items = next
	c.dirty.Items = true
	return nil
}

// CreateBucket appends a bucket.
func (c *Collection) CreateBucket(name string) error {
	name = strings.TrimSpace(name)
	if err := c.checkNewBucketName(name); err != nil {
		return err
	}
	if err := c.limits.CheckBuckets(len(c.buckets) + 1); err != nil {
		return err
	}
	c.buckets = append(c.Buckets(), name)
	c.dirty.Buckets = true
	return nil
}

func (c *Collection) checkNewBucketName(name string) error {
	if err := bucket.ValidateName(name); err != nil {
		return err
	}
	if bucket.Contains(c.buckets, name) {
		return ErrDuplicateBucket
	}
	return nil
}

// withTagBuckets returns the bucket sequence extended with any tag that is not
// a bucket yet, checked against the bucket cap.
func (c *Collection) withTagBuckets(tags []string) ([]string, bool, error) {
	next := c.Buckets()
	added := false
	for _, t := range tags {
		if bucket.Contains(next, t) {
			continue
		}
		if err := bucket.ValidateName(t); err != nil {
			return nil, false, err
		}
		next = append(next, t)
		added = true
	}
	if added {
		if err := c.limits.CheckBuckets(len(next)); err != nil {
			return nil, false, err
		}
	}
	return next, added, nil
}

// MoveItem repositions src to where target sits. It reports whether the
// order changed.
func (c *Collection) MoveItem(src, target item.ID) bool {
	next, ok := order.MoveKey(c.items, func(it item.Item) item.ID { return it.ID }, src, target)
	if !ok {
		return false
	}
	c.items = next
	c.dirty.Items = true
	return true
}

// MoveBucket repositions bucket src to where target sits. The reserved bucket
// can be neither.
func (c *Collection) MoveBucket(src, target string) bool {
	if bucket.IsReserved(src) || bucket.IsReserved(target) {
		return false
	}
	next, ok := order.MoveKey(c.buckets, func(s string) string { return s }, src, target)
	if !ok {
		return false
	}
	c.buckets = next
	c.dirty.Buckets = true
	return true
}

// Select sets the active bucket filter.
func (c *Collection) Select(name string) error {
	if name != bucket.All && !bucket.Contains(c.buckets, name) {
		return ErrBucketNotFound
	}
	c.selected = name
	return nil
}

// Selected returns the active bucket filter.
func (c *Collection) Selected() string {
	return c.selected
}

// Visible returns the items shown under the active filter.
func (c *Collection) Visible() []item.Item {
	return view.Visible(c.Items(), c.selected)
}

// SidebarHidden reports the persisted sidebar visibility.
func (c *Collection) SidebarHidden() bool {
	return c.sidebarHidden
}

// SetSidebarHidden updates the sidebar flag.
func (c *Collection) SetSidebarHidden(hidden bool) {
	if c.sidebarHidden == hidden {
		return
	}
	c.sidebarHidden = hidden
	c.dirty.Sidebar = true
}

// ToggleSidebar flips the sidebar flag and returns the new value.
func (c *Collection) ToggleSidebar() bool {
	c.SetSidebarHidden(!c.sidebarHidden)
	return c.sidebarHidden
}

// Snapshot returns a detached copy of the persisted state.
func (c *Collection) Snapshot() Snapshot {
	return Snapshot{
		Items:         c.Items(),
		Buckets:       c.Buckets(),
		SidebarHidden: c.sidebarHidden,
	}
}

// Restore replaces the collection with s, as after loading from storage.
// Tags and buckets are normalized and duplicate ids are reassigned; a
// reassignment marks the items dirty so the repair gets written back.
func (c *Collection) Restore(s Snapshot) {
	items := item.CloneAll(s.Items)
	for i := range items {
		items[i].Tags = item.NormalizeTags(items[i].Tags)
		c.ids.Observe(items[i].ID)
	}
	seen := make(map[item.ID]struct{}, len(items))
	repaired := false
	for i := range items {
		if _, dup := seen[items[i].ID]; dup {
			items[i].ID = c.ids.Next()
			repaired = true
		}
		seen[items[i].ID] = struct{}{}
	}

	buckets := bucket.Defaults()
	if len(s.Buckets) > 0 {
		buckets = bucket.Normalize(s.Buckets)
	}

	c.items = items
	c.buckets = buckets
	c.sidebarHidden = s.SidebarHidden
	if !bucket.Contains(c.buckets, c.selected) {
		c.selected = bucket.All
	}
	c.dirty = Dirty{Items: repaired}
}

func validateText(label, content string) error {
	if strings.TrimSpace(label) == "" {
		return ErrEmptyLabel
	}
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}
	return nil
}
