package remove

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/snip/pkg/app"
	"tableflip.dev/snip/pkg/item"
)

// Remove deletes items by id. Every id is attempted; the first failure is
// returned after the rest have been tried.
type Remove struct {
	IDs []item.ID

	Service *app.Service
	Out     io.Writer
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no service")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	var errs []error
	for _, id := range n.IDs {
		if err := n.Service.DeleteItem(id); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", id, err))
			continue
		}
		_, _ = fmt.Fprintf(out, "removed %s\n", id)
	}
	return errors.Join(errs...)
}
