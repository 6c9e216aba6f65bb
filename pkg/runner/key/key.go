// Package key prints the key bindings of the interactive UI.
package key

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
)

// Binding is one key of the interactive UI.
type Binding struct {
	Keys    string
	Meaning string
}

// Bindings lists the interactive UI keys in display order.
func Bindings() []Binding {
	return []Binding{
		{"j / down", "next item or bucket"},
		{"k / up", "previous item or bucket"},
		{"tab", "switch between sidebar and items"},
		{"enter", "copy the item, or filter by the bucket"},
		{"o", "open the item as a link"},
		{"m", "pick up, then drop onto another entry"},
		{"esc", "cancel a move or a prompt"},
		{"d", "delete (asks y/n)"},
		{"s", "show or hide the sidebar"},
		{"R", "run recovery after a failed load"},
		{"q", "quit, saving pending changes"},
	}
}

// Key prints the legend.
type Key struct {
	Out io.Writer
}

// Do renders the bindings table.
func (k *Key) Do(ctx context.Context) error {
	out := k.Out
	if out == nil {
		out = color.Output
	}
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Key"), bold.Sprint("Meaning"))
	for _, b := range Bindings() {
		tbl.AddRow(b.Keys, b.Meaning)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(out, "")
	_, _ = fmt.Fprintln(out, tbl)
	_, _ = fmt.Fprintln(out, "")
	return nil
}
