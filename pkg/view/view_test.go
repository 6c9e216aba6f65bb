package view

import (
	"reflect"
	"testing"

	"pgregory.net/rapid"

	"tableflip.dev/snip/pkg/item"
)

func fixture() []item.Item {
	return []item.Item{
		{ID: 3, Label: "c", Tags: []string{"all", "work"}},
		{ID: 2, Label: "b", Tags: []string{"all", "personal"}},
		{ID: 1, Label: "a", Tags: []string{"all", "work", "personal"}},
	}
}

func TestVisibleAllIsIdentity(t *testing.T) {
	items := fixture()
	if got := Visible(items, "all"); !reflect.DeepEqual(got, items) {
		t.Fatalf("expected full sequence, got %v", got)
	}
}

func TestVisibleFiltersInOrder(t *testing.T) {
	got := Visible(fixture(), "work")
	if len(got) != 2 || got[0].ID != 3 || got[1].ID != 1 {
		t.Fatalf("expected items 3,1 got %v", got)
	}
	if got := Visible(fixture(), "missing"); len(got) != 0 {
		t.Fatalf("expected no items, got %v", got)
	}
}

func TestCounts(t *testing.T) {
	got := Counts(fixture(), []string{"all", "work", "personal", "empty"})
	want := []Count{{"all", 3}, {"work", 2}, {"personal", 2}, {"empty", 0}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestEmptyTitle(t *testing.T) {
	if got := EmptyTitle("all"); got != "Your clipboard is empty" {
		t.Fatalf("unexpected title %q", got)
	}
	if got := EmptyTitle("work"); got != `No items in "work"` {
		t.Fatalf("unexpected title %q", got)
	}
}

func TestVisibleOnlyReturnsTaggedItems(t *testing.T) {
	names := []string{"all", "work", "personal", "links"}
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 20).Draw(t, "n")
		items := make([]item.Item, 0, n)
		for i := 0; i < n; i++ {
			tags := rapid.SliceOfN(rapid.SampledFrom(names), 0, 4).Draw(t, "tags")
			items = append(items, item.New(item.ID(i+1), "l", "c", tags))
		}
		selected := rapid.SampledFrom(names).Draw(t, "selected")

		got := Visible(items, selected)
		for _, it := range got {
			if !it.HasTag(selected) {
				t.Fatalf("item %d shown for %q without the tag", it.ID, selected)
			}
		}
		// Order preserved: ids appear in the same relative order as the input.
		pos := 0
		for _, it := range got {
			for pos < len(items) && items[pos].ID != it.ID {
				pos++
			}
			if pos == len(items) {
				t.Fatalf("projection reordered items")
			}
			pos++
		}
	})
}
