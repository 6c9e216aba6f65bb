package model

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"tableflip.dev/snip/pkg/item"
	"tableflip.dev/snip/pkg/quota"
)

func newCollection(t *testing.T, items ...item.Item) *Collection {
	t.Helper()
	c := New(quota.Default())
	c.Restore(Snapshot{Items: items, Buckets: []string{"all", "work", "personal"}})
	c.TakeDirty()
	return c
}

func strp(s string) *string { return &s }

func ids(items []item.Item) []item.ID {
	out := make([]item.ID, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestCreateItemPrependsWithFreshID(t *testing.T) {
	c := newCollection(t, item.Item{ID: 5, Label: "old", Content: "x", Tags: []string{"all"}})

	a, err := c.CreateItem("first", "one", []string{"work"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	b, err := c.CreateItem("second", "two", nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.ID == b.ID || a.ID <= 5 || b.ID <= a.ID {
		t.Fatalf("expected fresh increasing ids, got %d then %d", a.ID, b.ID)
	}
	if got := ids(c.Items()); !reflect.DeepEqual(got, []item.ID{b.ID, a.ID, 5}) {
		t.Fatalf("expected newest first, got %v", got)
	}
	if !reflect.DeepEqual(a.Tags, []string{"all", "work"}) {
		t.Fatalf("expected all to be added, got %v", a.Tags)
	}
	d := c.TakeDirty()
	if !d.Items || d.Buckets || d.Sidebar {
		t.Fatalf("expected only items dirty, got %+v", d)
	}
}

func TestCreateItemValidation(t *testing.T) {
	c := newCollection(t)
	if _, err := c.CreateItem(" ", "c", nil); !errors.Is(err, ErrEmptyLabel) {
		t.Fatalf("expected ErrEmptyLabel, got %v", err)
	}
	if _, err := c.CreateItem("l", "", nil); !errors.Is(err, ErrEmptyContent) {
		t.Fatalf("expected ErrEmptyContent, got %v", err)
	}
	if len(c.Items()) != 0 || c.TakeDirty().Any() {
		t.Fatal("rejected create must not change the collection")
	}
}

func TestCreateItemWithNewBucket(t *testing.T) {
	c := newCollection(t)
	it, err := c.CreateItem("l", "c", []string{"links"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !it.HasTag("links") {
		t.Fatalf("expected links tag, got %v", it.Tags)
	}
	if got := c.Buckets(); !reflect.DeepEqual(got, []string{"all", "work", "personal", "links"}) {
		t.Fatalf("expected links appended, got %v", got)
	}
	if d := c.TakeDirty(); !d.Items || !d.Buckets {
		t.Fatalf("expected items and buckets dirty, got %+v", d)
	}
}

func TestCreateItemNewBucketOverCap(t *testing.T) {
	c := New(quota.Limits{MaxItemsBytes: quota.DefaultMaxItemsBytes, MaxBuckets: 3})
	c.TakeDirty()
	_, err := c.CreateItem("l", "c", []string{"links"})
	if !errors.Is(err, quota.ErrTooManyBuckets) {
		t.Fatalf("expected ErrTooManyBuckets, got %v", err)
	}
	if len(c.Items()) != 0 || len(c.Buckets()) != 3 {
		t.Fatal("rejected create must not commit the item or the bucket")
	}
}

func TestCreateItemQuotaLeavesModelUntouched(t *testing.T) {
	const newItemOverhead = `,{"id":1700000000000,"label":"new","content":"","buckets":["all"]}`

	base, err := quota.Size([]item.Item{{ID: 1, Label: "big", Tags: []string{"all"}}})
	if err != nil {
		t.Fatalf("size: %v", err)
	}
	big := item.Item{ID: 1, Label: "big", Content: strings.Repeat("x", 79000-base), Tags: []string{"all"}}
	c := newCollection(t, big)
	if n, _ := quota.Size(c.Items()); n != 79000 {
		t.Fatalf("fixture should be 79000 bytes, got %d", n)
	}
	before := c.Snapshot()

	content := strings.Repeat("y", 2000-len(newItemOverhead))
	_, err = c.CreateItem("new", content, nil)
	if !errors.Is(err, quota.ErrStorageFull) {
		t.Fatalf("expected ErrStorageFull, got %v", err)
	}
	if !reflect.DeepEqual(c.Snapshot(), before) {
		t.Fatal("quota rejection changed the collection")
	}
	if c.TakeDirty().Any() {
		t.Fatal("quota rejection marked the collection dirty")
	}
}

func TestUpdateItemKeepsIdentityAndPosition(t *testing.T) {
	c := newCollection(t,
		item.Item{ID: 3, Label: "c", Content: "c", Tags: []string{"all"}},
		item.Item{ID: 2, Label: "b", Content: "b", Tags: []string{"all"}},
		item.Item{ID: 1, Label: "a", Content: "a", Tags: []string{"all"}},
	)
	got, err := c.UpdateItem(2, item.Fields{Label: strp("bee"), Tags: []string{"personal"}})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.ID != 2 || got.Label != "bee" || got.Content != "b" {
		t.Fatalf("unexpected update result %+v", got)
	}
	if order := ids(c.Items()); !reflect.DeepEqual(order, []item.ID{3, 2, 1}) {
		t.Fatalf("update moved the item: %v", order)
	}
	if !reflect.DeepEqual(got.Tags, []string{"all", "personal"}) {
		t.Fatalf("unexpected tags %v", got.Tags)
	}
	if _, err := c.UpdateItem(2, item.Fields{Content: strp("  ")}); !errors.Is(err, ErrEmptyContent) {
		t.Fatalf("expected ErrEmptyContent, got %v", err)
	}
	if _, err := c.UpdateItem(99, item.Fields{}); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestDeleteItem(t *testing.T) {
	c := newCollection(t,
		item.Item{ID: 2, Label: "b", Content: "b", Tags: []string{"all"}},
		item.Item{ID: 1, Label: "a", Content: "a", Tags: []string{"all"}},
	)
	if err := c.DeleteItem(2); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := ids(c.Items()); !reflect.DeepEqual(got, []item.ID{1}) {
		t.Fatalf("unexpected items %v", got)
	}
	if err := c.DeleteItem(2); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestCreateBucket(t *testing.T) {
	c := newCollection(t)
	if err := c.CreateBucket(" links "); err != nil {
		t.Fatalf("create bucket: %v", err)
	}
	if got := c.Buckets(); got[len(got)-1] != "links" {
		t.Fatalf("expected links appended, got %v", got)
	}
	for name, want := range map[string]error{
		"":      ErrEmptyBucketName,
		"all":   ErrReservedBucket,
		"links": ErrDuplicateBucket,
	} {
		if err := c.CreateBucket(name); !errors.Is(err, want) {
			t.Fatalf("create %q: expected %v, got %v", name, want, err)
		}
	}
}

func TestCreateBucketCap(t *testing.T) {
	c := New(quota.Default())
	for i := len(c.Buckets()); i < quota.DefaultMaxBuckets; i++ {
		if err := c.CreateBucket("b" + string(rune('a'+i))); err != nil {
			t.Fatalf("create bucket %d: %v", i, err)
		}
	}
	before := c.Buckets()
	if err := c.CreateBucket("one-too-many"); !errors.Is(err, quota.ErrTooManyBuckets) {
		t.Fatalf("expected ErrTooManyBuckets, got %v", err)
	}
	if !reflect.DeepEqual(c.Buckets(), before) {
		t.Fatal("rejected bucket was committed")
	}
}

func TestMoveItemOriginalIndexRule(t *testing.T) {
	c := newCollection(t,
		item.Item{ID: 1, Label: "A", Content: "a"},
		item.Item{ID: 2, Label: "B", Content: "b"},
		item.Item{ID: 3, Label: "C", Content: "c"},
		item.Item{ID: 4, Label: "D", Content: "d"},
	)
	if !c.MoveItem(1, 3) {
		t.Fatal("expected move")
	}
	if got := ids(c.Items()); !reflect.DeepEqual(got, []item.ID{2, 3, 1, 4}) {
		t.Fatalf("expected [2 3 1 4], got %v", got)
	}
	c.TakeDirty()
	if c.MoveItem(3, 3) {
		t.Fatal("self drop must be a no-op")
	}
	if c.TakeDirty().Any() {
		t.Fatal("no-op move marked the collection dirty")
	}
}

func TestMoveBucketRefusesReserved(t *testing.T) {
	c := newCollection(t)
	if c.MoveBucket("all", "work") || c.MoveBucket("work", "all") {
		t.Fatal("reserved bucket must not move")
	}
	if !c.MoveBucket("personal", "work") {
		t.Fatal("expected move")
	}
	if got := c.Buckets(); !reflect.DeepEqual(got, []string{"all", "personal", "work"}) {
		t.Fatalf("unexpected buckets %v", got)
	}
}

func TestSelectAndVisible(t *testing.T) {
	c := newCollection(t,
		item.Item{ID: 2, Label: "b", Content: "b", Tags: []string{"all", "work"}},
		item.Item{ID: 1, Label: "a", Content: "a", Tags: []string{"all"}},
	)
	if err := c.Select("nope"); !errors.Is(err, ErrBucketNotFound) {
		t.Fatalf("expected ErrBucketNotFound, got %v", err)
	}
	if err := c.Select("work"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if got := ids(c.Visible()); !reflect.DeepEqual(got, []item.ID{2}) {
		t.Fatalf("unexpected visible %v", got)
	}
}

func TestSidebarDirtyOnlyOnChange(t *testing.T) {
	c := newCollection(t)
	c.SetSidebarHidden(false)
	if c.TakeDirty().Sidebar {
		t.Fatal("unchanged flag marked dirty")
	}
	if !c.ToggleSidebar() {
		t.Fatal("expected sidebar hidden")
	}
	if !c.TakeDirty().Sidebar {
		t.Fatal("expected sidebar dirty")
	}
}

func TestRestoreRepairsDuplicateIDs(t *testing.T) {
	c := New(quota.Default())
	c.Restore(Snapshot{Items: []item.Item{
		{ID: 7, Label: "a", Content: "a"},
		{ID: 7, Label: "b", Content: "b"},
	}})
	got := ids(c.Items())
	if got[0] != 7 || got[1] == 7 {
		t.Fatalf("expected second duplicate to be reassigned, got %v", got)
	}
	if !c.TakeDirty().Items {
		t.Fatal("repair must mark items dirty")
	}
	if !reflect.DeepEqual(c.Buckets(), []string{"all", "work", "personal"}) {
		t.Fatalf("empty buckets should restore defaults, got %v", c.Buckets())
	}
	for _, it := range c.Items() {
		if !it.HasTag("all") {
			t.Fatalf("restored item %d lacks all", it.ID)
		}
	}
}
