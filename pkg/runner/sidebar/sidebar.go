package sidebar

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/snip/pkg/app"
)

// Sidebar shows, sets or toggles the persisted sidebar flag.
type Sidebar struct {
	// Hidden sets the flag when non-nil.
	Hidden *bool
	Toggle bool

	Service *app.Service
	Out     io.Writer
}

func (s *Sidebar) Do(ctx context.Context) error {
	if s.Service == nil {
		return errors.New("can not change sidebar, no service")
	}
	var err error
	switch {
	case s.Toggle:
		_, err = s.Service.ToggleSidebar()
	case s.Hidden != nil:
		err = s.Service.SetSidebarHidden(*s.Hidden)
	}
	if err != nil {
		return err
	}
	out := s.Out
	if out == nil {
		out = color.Output
	}
	state := "shown"
	if s.Service.SidebarHidden() {
		state = "hidden"
	}
	_, _ = fmt.Fprintf(out, "sidebar %s\n", state)
	return nil
}
