package commands

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
)

func TestCommandTree(t *testing.T) {
	root := New()
	for _, path := range [][]string{
		{"ui"}, {"key"}, {"add"}, {"edit"}, {"rm"}, {"ls"}, {"get"}, {"copy"}, {"open"},
		{"move"}, {"tag"}, {"untag"}, {"buckets", "rename"}, {"buckets", "mv"},
		{"sidebar"}, {"recover"}, {"watch"}, {"info"}, {"completion"}, {"upgrade"}, {"version"},
	} {
		cmd, _, err := root.Find(path)
		if err != nil || cmd == root {
			t.Errorf("expected a %v command, got %v", path, err)
		}
	}
}

func useTempStore(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("SNIP_CONFIG_PATH", dir)
	t.Setenv("SNIP_PATH", filepath.Join(dir, "data"))
	return dir
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	root := New()
	root.SetArgs(args)
	root.SilenceErrors = true
	return root.Execute()
}

func TestAddTagAndRenameThroughTheStore(t *testing.T) {
	useTempStore(t)

	if err := execute(t, "add", "greeting", "hello", "there", "--bucket", "work"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := execute(t, "buckets", "rename", "work", "jobs"); err != nil {
		t.Fatalf("rename: %v", err)
	}

	ctx := context.Background()
	s, err := openSession(ctx, true)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = s.Close(ctx) }()

	items := s.svc.Items()
	if len(items) != 1 {
		t.Fatalf("expected one item, got %d", len(items))
	}
	if items[0].Label != "greeting" || items[0].Content != "hello there" {
		t.Fatalf("unexpected item %+v", items[0])
	}
	if !reflect.DeepEqual(items[0].Tags, []string{"all", "jobs"}) {
		t.Fatalf("expected the rename to reach the item, got %v", items[0].Tags)
	}
	if got := s.svc.Buckets(); !reflect.DeepEqual(got, []string{"all", "jobs", "personal"}) {
		t.Fatalf("unexpected buckets %v", got)
	}
}

func TestSidebarRejectsUnknownArg(t *testing.T) {
	useTempStore(t)
	if err := execute(t, "sidebar", "sideways"); err == nil {
		t.Fatal("expected an invalid argument error")
	}
}

func TestEditNeedsAChange(t *testing.T) {
	useTempStore(t)
	if err := execute(t, "edit", "1"); err == nil {
		t.Fatal("expected an error without any field to change")
	}
}
