package move

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/snip/pkg/app"
	"tableflip.dev/snip/pkg/bucket"
	"tableflip.dev/snip/pkg/item"
	"tableflip.dev/snip/pkg/printers"
)

// Move drops one item onto another: the source takes the position the
// target held before the move.
type Move struct {
	Source item.ID
	Target item.ID
	ShowID bool

	Service *app.Service
	Out     io.Writer
}

func (n *Move) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not move, no service")
	}
	if n.Service.Blocked() {
		return app.ErrBlocked
	}
	if _, err := n.Service.Item(n.Source); err != nil {
		return fmt.Errorf("source %s: %w", n.Source, err)
	}
	if _, err := n.Service.Item(n.Target); err != nil {
		return fmt.Errorf("target %s: %w", n.Target, err)
	}
	n.Service.MoveItem(n.Source, n.Target)

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	pp.NewLine()
	pp.Items(bucket.All, n.Service.Items()...)
	return nil
}
