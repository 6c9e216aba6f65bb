package edit

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/snip/pkg/app"
	"tableflip.dev/snip/pkg/bucket"
	"tableflip.dev/snip/pkg/item"
	"tableflip.dev/snip/pkg/printers"
)

// Edit changes the label, content or buckets of one item. Nil fields are
// left alone.
type Edit struct {
	ID      item.ID
	Label   *string
	Content *string
	Tags    []string
	JSON    bool

	Service *app.Service
	Out     io.Writer
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no service")
	}
	if n.Label == nil && n.Content == nil && n.Tags == nil {
		return errors.New("nothing to change")
	}
	it, err := n.Service.EditItem(n.ID, item.Fields{Label: n.Label, Content: n.Content, Tags: n.Tags})
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true, Out: n.Out}
	if n.JSON {
		return pp.JSON(it)
	}
	pp.NewLine()
	pp.Title("Updated")
	pp.Items(bucket.All, it)
	return nil
}
