package add

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/snip/pkg/app"
	"tableflip.dev/snip/pkg/bucket"
	"tableflip.dev/snip/pkg/printers"
)

// Add creates one item at the top of the collection.
type Add struct {
	Label   string
	Content string
	Tags    []string
	JSON    bool

	Service *app.Service
	Out     io.Writer
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}
	it, err := n.Service.AddItem(n.Label, n.Content, n.Tags)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true, Out: n.Out}
	if n.JSON {
		return pp.JSON(it)
	}
	pp.NewLine()
	pp.Title("Added")
	pp.Items(bucket.All, it)
	return nil
}
