// Package buckets contains runners for bucket management commands.
package buckets

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/snip/pkg/app"
	"tableflip.dev/snip/pkg/printers"
)

var errNoService = errors.New("no service")

// List prints every bucket with its item count.
type List struct {
	JSON bool

	Service *app.Service
	Out     io.Writer
}

func (l *List) Do(ctx context.Context) error {
	if l.Service == nil {
		return errNoService
	}
	counts := l.Service.Counts()
	pp := printers.PrettyPrint{Out: l.Out}
	if l.JSON {
		return pp.JSON(counts)
	}
	pp.NewLine()
	pp.Buckets(counts, l.Service.Selected())
	return nil
}

// Add appends a bucket.
type Add struct {
	Name string

	Service *app.Service
	Out     io.Writer
}

func (a *Add) Do(ctx context.Context) error {
	if a.Service == nil {
		return errNoService
	}
	if err := a.Service.AddBucket(a.Name); err != nil {
		return err
	}
	report(a.Out, "added bucket %q", a.Name)
	return nil
}

// Rename renames a bucket in place and retags its items.
type Rename struct {
	From string
	To   string

	Service *app.Service
	Out     io.Writer
}

func (r *Rename) Do(ctx context.Context) error {
	if r.Service == nil {
		return errNoService
	}
	if err := r.Service.RenameBucket(r.From, r.To); err != nil {
		return err
	}
	report(r.Out, "renamed bucket %q to %q", r.From, r.To)
	return nil
}

// Remove deletes a bucket. Its items stay, minus the tag.
type Remove struct {
	Name string

	Service *app.Service
	Out     io.Writer
}

func (r *Remove) Do(ctx context.Context) error {
	if r.Service == nil {
		return errNoService
	}
	if err := r.Service.DeleteBucket(r.Name); err != nil {
		return err
	}
	report(r.Out, "removed bucket %q", r.Name)
	return nil
}

// Move drops one bucket onto another.
type Move struct {
	Source string
	Target string

	Service *app.Service
	Out     io.Writer
}

func (m *Move) Do(ctx context.Context) error {
	if m.Service == nil {
		return errNoService
	}
	if m.Service.Blocked() {
		return app.ErrBlocked
	}
	if !m.Service.MoveBucket(m.Source, m.Target) {
		return fmt.Errorf("can not move %q onto %q", m.Source, m.Target)
	}
	pp := printers.PrettyPrint{Out: m.Out}
	pp.Buckets(m.Service.Counts(), m.Service.Selected())
	return nil
}

func report(w io.Writer, format string, args ...any) {
	if w == nil {
		w = color.Output
	}
	_, _ = color.New(color.FgGreen).Fprintf(w, format+"\n", args...)
}
