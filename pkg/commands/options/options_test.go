package options

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/snip/pkg/item"
)

func TestWrap(t *testing.T) {
	got := Wrap("one two three four", 9)
	if got != "one two\nthree\nfour" {
		t.Fatalf("unexpected wrap %q", got)
	}
	if Wrap("   ", 10) != "   " {
		t.Fatal("blank text should pass through")
	}
}

func TestLabelAndContent(t *testing.T) {
	o := &ItemOptions{}
	label, content, err := o.LabelAndContent([]string{"greeting", "hello", "world"})
	if err != nil || label != "greeting" || content != "hello world" {
		t.Fatalf("unexpected %q %q %v", label, content, err)
	}

	o = &ItemOptions{Label: "flag"}
	label, content, err = o.LabelAndContent([]string{"from", "args"})
	if err != nil || label != "flag" || content != "from args" {
		t.Fatalf("unexpected %q %q %v", label, content, err)
	}

	if _, _, err := (&ItemOptions{}).LabelAndContent(nil); err == nil {
		t.Fatal("expected missing label error")
	}
}

func TestTags(t *testing.T) {
	o := &ItemOptions{Buckets: []string{"work"}, NewBuckets: []string{"fresh"}}
	if got := o.Tags(); !reflect.DeepEqual(got, []string{"work", "fresh"}) {
		t.Fatalf("unexpected tags %v", got)
	}
}

func TestParseIDs(t *testing.T) {
	ids, err := ParseIDs([]string{"1", "1700000000000"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !reflect.DeepEqual(ids, []item.ID{1, 1700000000000}) {
		t.Fatalf("unexpected ids %v", ids)
	}
	if _, err := ParseIDs([]string{"x"}); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestReadContentFromStdin(t *testing.T) {
	o := &InputOptions{Stdin: true}
	got, err := o.ReadContent(strings.NewReader("piped\n"), "")
	if err != nil || got != "piped" {
		t.Fatalf("unexpected %q %v", got, err)
	}
}

func TestHandleErrorJSON(t *testing.T) {
	var buf bytes.Buffer
	prev := color.Output
	color.Output = &buf
	defer func() { color.Output = prev }()

	o := &OutputOptions{JSON: true}
	if err := o.HandleError(errors.New("boom")); err != nil {
		t.Fatalf("json mode should swallow the error, got %v", err)
	}
	if strings.TrimSpace(buf.String()) != `{"error":"boom"}` {
		t.Fatalf("unexpected output %q", buf.String())
	}
	if err := (&OutputOptions{}).HandleError(errors.New("boom")); err == nil {
		t.Fatal("plain mode should return the error")
	}
}

func TestEmit(t *testing.T) {
	var buf bytes.Buffer
	prev := color.Output
	color.Output = &buf
	defer func() { color.Output = prev }()

	called := false
	if err := (&OutputOptions{}).Emit(1, func() { called = true }); err != nil || !called {
		t.Fatalf("plain mode should call the printer, err=%v", err)
	}
	if err := (&OutputOptions{JSON: true}).Emit([]int{1, 2}, nil); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if strings.TrimSpace(buf.String()) != `[1,2]` {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
