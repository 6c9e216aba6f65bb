package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/snip/pkg/bucket"
	"tableflip.dev/snip/pkg/item"
	"tableflip.dev/snip/pkg/view"
)

// PreviewWidth is how much content a listing shows before eliding.
const PreviewWidth = 60

type PrettyPrint struct {
	ShowID bool
	// Out defaults to color.Output.
	Out io.Writer
}

var (
	spacing = strings.Repeat(" ", len("1700000000000  "))
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " item")
	default:
		_, _ = c.Fprintln(pp.out(), " items")
	}
}

// Items prints one line per item: label, a content preview, and the buckets
// other than "all". An empty list prints the empty-state title for selected.
func (pp *PrettyPrint) Items(selected string, items ...item.Item) {
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Fprint(pp.out(), spacing)
		}
		_, _ = f.Fprintf(pp.out(), " %s\n\n", view.EmptyTitle(selected))
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	b := color.New(color.Bold)
	f := color.New(color.Faint)
	c := color.New(color.FgCyan)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, it := range items {
		row := []interface{}{}
		if pp.ShowID {
			row = append(row, y.Sprint(it.ID.String()))
		}
		row = append(row, b.Sprint(it.Label), f.Sprint(Preview(it.Content)))
		if tags := userTags(it.Tags); len(tags) > 0 {
			row = append(row, c.Sprint(strings.Join(tags, ", ")))
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Buckets prints the bucket sidebar with item counts; selected is marked.
func (pp *PrettyPrint) Buckets(counts []view.Count, selected string) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("", bold.Sprint("Bucket"), bold.Sprint("Items"))
	for _, c := range counts {
		mark := " "
		name := c.Bucket
		if c.Bucket == selected {
			mark = ">"
			name = bold.Sprint(name)
		}
		if bucket.IsReserved(c.Bucket) {
			name = faint.Sprint(c.Bucket)
		}
		tbl.AddRow(mark, name, c.Items)
	}
	tbl.RightAlign(2)
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// JSON writes v as indented JSON.
func (pp *PrettyPrint) JSON(v any) error {
	enc := json.NewEncoder(pp.out())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Preview flattens content to a single line and elides it past PreviewWidth.
func Preview(content string) string {
	flat := strings.Join(strings.Fields(content), " ")
	if len([]rune(flat)) <= PreviewWidth {
		return flat
	}
	return truncate.StringWithTail(flat, PreviewWidth+3, "...")
}

func userTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if !bucket.IsReserved(t) {
			out = append(out, t)
		}
	}
	return out
}
