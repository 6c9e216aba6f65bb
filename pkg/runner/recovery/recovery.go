package recovery

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/snip/pkg/app"
	"tableflip.dev/snip/pkg/persist"
)

// Recover clears the store and rewrites it from what is in memory.
type Recover struct {
	Service *app.Service
	Out     io.Writer
}

func (r *Recover) Do(ctx context.Context) error {
	if r.Service == nil {
		return errors.New("can not recover, no service")
	}
	res, err := r.Service.Recover(ctx)
	out := r.Out
	if out == nil {
		out = color.Output
	}
	switch res.Outcome {
	case persist.Restored:
		_, _ = color.New(color.FgGreen).Fprintf(out, "restored %d items and %d buckets\n",
			len(res.Snapshot.Items), len(res.Snapshot.Buckets))
	case persist.Defaulted:
		_, _ = color.New(color.FgYellow).Fprintln(out, "could not restore, reset to the default buckets")
	}
	if err != nil {
		return fmt.Errorf("writing defaults: %w", err)
	}
	return nil
}
