package printers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/snip/pkg/item"
	"tableflip.dev/snip/pkg/view"
)

func init() {
	color.NoColor = true
}

func TestPreview(t *testing.T) {
	short := "hello\nworld"
	if got := Preview(short); got != "hello world" {
		t.Fatalf("expected flattened content, got %q", got)
	}
	long := strings.Repeat("a", 61)
	got := Preview(long)
	if got != strings.Repeat("a", 60)+"..." {
		t.Fatalf("expected 60 chars and an ellipsis, got %q", got)
	}
	exact := strings.Repeat("b", 60)
	if Preview(exact) != exact {
		t.Fatal("content at the limit should not be elided")
	}
}

func TestItemsEmptyState(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Items("work")
	if !strings.Contains(buf.String(), `No items in "work"`) {
		t.Fatalf("unexpected output %q", buf.String())
	}
	buf.Reset()
	pp.Items("all")
	if !strings.Contains(buf.String(), "Your clipboard is empty") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestItemsShowsIDsAndTags(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf, ShowID: true}
	pp.Items("all", item.New(42, "docs", "https://go.dev", []string{"links"}))
	out := buf.String()
	for _, want := range []string{"42", "docs", "https://go.dev", "links"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
	if strings.Contains(out, "all,") {
		t.Fatalf("reserved bucket should not be listed: %q", out)
	}
}

func TestBucketsMarksSelected(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Buckets([]view.Count{{Bucket: "all", Items: 2}, {Bucket: "work", Items: 1}}, "work")
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and two rows, got %q", buf.String())
	}
	if !strings.HasPrefix(lines[2], ">") {
		t.Fatalf("expected selected marker on work, got %q", lines[2])
	}
}

func TestMeter(t *testing.T) {
	if got := Meter(10, 20); got != strings.Repeat("#", 10)+strings.Repeat(".", 10) {
		t.Fatalf("unexpected meter %q", got)
	}
	if got := Meter(50, 20); got != strings.Repeat("#", 20) {
		t.Fatalf("meter should clamp, got %q", got)
	}
}
