package open

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/snip/pkg/app"
	"tableflip.dev/snip/pkg/item"
)

// Open opens an item's content in the browser.
type Open struct {
	ID    item.ID
	Force bool

	Service *app.Service
	Out     io.Writer
}

func (n *Open) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not open, no service")
	}
	url, err := n.Service.OpenLink(n.ID, n.Force)
	if errors.Is(err, app.ErrNotALink) {
		return fmt.Errorf("%w (use --force to open it anyway)", err)
	}
	if err != nil {
		return err
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	_, _ = fmt.Fprintf(out, "opened %s\n", url)
	return nil
}
