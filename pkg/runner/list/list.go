package list

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/snip/pkg/app"
	"tableflip.dev/snip/pkg/printers"
)

// List prints the items visible under a bucket filter.
type List struct {
	ShowID bool
	Bucket string
	JSON   bool

	Service *app.Service
	Out     io.Writer
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list, no service")
	}
	if n.Bucket != "" {
		if err := n.Service.Select(n.Bucket); err != nil {
			return err
		}
	}
	visible := n.Service.Visible()

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	if n.JSON {
		return pp.JSON(visible)
	}
	pp.NewLine()
	pp.TitleWithCount(n.Service.Selected(), len(visible))
	pp.Items(n.Service.Selected(), visible...)
	return nil
}
