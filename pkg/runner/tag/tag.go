package tag

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/snip/pkg/app"
	"tableflip.dev/snip/pkg/bucket"
	"tableflip.dev/snip/pkg/item"
	"tableflip.dev/snip/pkg/printers"
)

// Tag adds buckets to an item, or removes them when Remove is set.
type Tag struct {
	ID      item.ID
	Buckets []string
	Remove  bool

	Service *app.Service
	Out     io.Writer
}

func (t *Tag) Do(ctx context.Context) error {
	if t.Service == nil {
		return errors.New("can not tag, no service")
	}
	if len(t.Buckets) == 0 {
		return errors.New("at least one bucket is required")
	}
	var (
		it  item.Item
		err error
	)
	if t.Remove {
		it, err = t.Service.Untag(t.ID, t.Buckets...)
	} else {
		it, err = t.Service.Tag(t.ID, t.Buckets...)
	}
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: true, Out: t.Out}
	pp.Items(bucket.All, it)
	return nil
}
