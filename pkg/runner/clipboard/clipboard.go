package clipboard

import (
	"context"
	"errors"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/snip/pkg/app"
	"tableflip.dev/snip/pkg/item"
)

// Copy puts an item's content on the clipboard.
type Copy struct {
	ID    item.ID
	Quiet bool

	Service *app.Service
	Out     io.Writer
}

func (n *Copy) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not copy, no service")
	}
	if err := n.Service.Copy(n.ID); err != nil {
		return err
	}
	if n.Quiet {
		return nil
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	it, _ := n.Service.Item(n.ID)
	_, _ = color.New(color.FgGreen).Fprintf(out, "copied %q\n", it.Label)
	return nil
}
