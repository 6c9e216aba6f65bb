package model

import (
	"errors"
	"reflect"
	"testing"

	"tableflip.dev/snip/pkg/item"
)

func tagsOf(items []item.Item) [][]string {
	out := make([][]string, len(items))
	for i, it := range items {
		out[i] = it.Tags
	}
	return out
}

func TestRenameBucketCascades(t *testing.T) {
	c := newCollection(t,
		item.Item{ID: 2, Label: "w", Content: "w", Tags: []string{"all", "work"}},
		item.Item{ID: 1, Label: "p", Content: "p", Tags: []string{"all", "personal"}},
	)
	if err := c.Select("work"); err != nil {
		t.Fatalf("select: %v", err)
	}

	if err := c.RenameBucket("work", "projects"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	want := [][]string{{"all", "projects"}, {"all", "personal"}}
	if got := tagsOf(c.Items()); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if got := c.Buckets(); !reflect.DeepEqual(got, []string{"all", "projects", "personal"}) {
		t.Fatalf("rename moved the bucket: %v", got)
	}
	if c.Selected() != "projects" {
		t.Fatalf("filter should follow rename, got %q", c.Selected())
	}
	if d := c.TakeDirty(); !d.Items || !d.Buckets {
		t.Fatalf("expected items and buckets dirty, got %+v", d)
	}
}

func TestRenameBucketKeepsTagPosition(t *testing.T) {
	c := newCollection(t,
		item.Item{ID: 1, Label: "x", Content: "x", Tags: []string{"work", "all", "personal"}},
	)
	if err := c.RenameBucket("work", "jobs"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	if got := c.Items()[0].Tags; !reflect.DeepEqual(got, []string{"jobs", "all", "personal"}) {
		t.Fatalf("unexpected tags %v", got)
	}
}

func TestRenameBucketRejections(t *testing.T) {
	c := newCollection(t,
		item.Item{ID: 1, Label: "x", Content: "x", Tags: []string{"all", "work"}},
	)
	before := c.Snapshot()
	tests := []struct {
		oldName, newName string
		want             error
	}{
		{"work", "personal", ErrDuplicateBucket},
		{"work", "all", ErrDuplicateBucket},
		{"work", "work", ErrSameBucketName},
		{"work", " ", ErrEmptyBucketName},
		{"all", "everything", ErrReservedBucket},
		{"missing", "other", ErrBucketNotFound},
	}
	for _, tt := range tests {
		if err := c.RenameBucket(tt.oldName, tt.newName); !errors.Is(err, tt.want) {
			t.Fatalf("rename %q->%q: expected %v, got %v", tt.oldName, tt.newName, tt.want, err)
		}
	}
	if !reflect.DeepEqual(c.Snapshot(), before) {
		t.Fatal("rejected rename changed the collection")
	}
	if c.TakeDirty().Any() {
		t.Fatal("rejected rename marked the collection dirty")
	}
}

func TestDeleteBucketResetsFilter(t *testing.T) {
	c := newCollection(t,
		item.Item{ID: 3, Label: "a", Content: "a", Tags: []string{"all", "personal"}},
		item.Item{ID: 2, Label: "b", Content: "b", Tags: []string{"personal"}},
		item.Item{ID: 1, Label: "c", Content: "c", Tags: []string{"all", "work", "personal"}},
	)
	if err := c.Select("personal"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := c.DeleteBucket("personal"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if c.Selected() != "all" {
		t.Fatalf("expected filter reset to all, got %q", c.Selected())
	}
	for _, it := range c.Items() {
		if it.HasTag("personal") {
			t.Fatalf("item %d still tagged personal", it.ID)
		}
		if len(it.Tags) == 0 || !it.HasTag("all") {
			t.Fatalf("item %d lost all: %v", it.ID, it.Tags)
		}
	}
	want := [][]string{{"all"}, {"all"}, {"all", "work"}}
	if got := tagsOf(c.Items()); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if got := c.Buckets(); !reflect.DeepEqual(got, []string{"all", "work"}) {
		t.Fatalf("unexpected buckets %v", got)
	}
}

func TestDeleteBucketRejections(t *testing.T) {
	c := newCollection(t)
	if err := c.DeleteBucket("all"); !errors.Is(err, ErrReservedBucket) {
		t.Fatalf("expected ErrReservedBucket, got %v", err)
	}
	if err := c.DeleteBucket("nope"); !errors.Is(err, ErrBucketNotFound) {
		t.Fatalf("expected ErrBucketNotFound, got %v", err)
	}
}

func TestDeleteBucketWithoutTaggedItems(t *testing.T) {
	c := newCollection(t, item.Item{ID: 1, Label: "a", Content: "a", Tags: []string{"all"}})
	if err := c.DeleteBucket("work"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	d := c.TakeDirty()
	if d.Items || !d.Buckets {
		t.Fatalf("expected only buckets dirty, got %+v", d)
	}
}
