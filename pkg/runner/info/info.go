package info

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/snip/pkg/app"
	"tableflip.dev/snip/pkg/printers"
	"tableflip.dev/snip/pkg/store"
)

// Info prints where snip keeps its data and how full the store is.
type Info struct {
	Config  store.Config
	Service *app.Service
	JSON    bool
	Out     io.Writer
}

type report struct {
	ConfigPath string      `json:"configPath,omitempty"`
	Path       string      `json:"path"`
	Backend    string      `json:"backend"`
	Summary    app.Summary `json:"summary"`
	Blocked    bool        `json:"blocked"`
}

func (n *Info) Do(ctx context.Context) error {
	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}
	if n.Service == nil {
		return errors.New("failed to create service")
	}
	sum, err := n.Service.Summary()
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out}
	r := report{
		ConfigPath: os.Getenv("SNIP_CONFIG_PATH"),
		Path:       n.Config.BasePath(),
		Backend:    n.Config.Backend(),
		Summary:    sum,
		Blocked:    n.Service.Blocked(),
	}
	if n.JSON {
		return pp.JSON(r)
	}

	out := n.Out
	if out == nil {
		out = color.Output
	}
	if r.ConfigPath != "" {
		_, _ = fmt.Fprintln(out, "SNIP_CONFIG_PATH found on env, using", r.ConfigPath)
	} else {
		_, _ = fmt.Fprintln(out, "SNIP_CONFIG_PATH env var not set")
	}
	_, _ = fmt.Fprintln(out, "Config.path:", r.Path)
	_, _ = fmt.Fprintln(out, "Config.backend:", r.Backend)
	if r.Blocked {
		_, _ = color.New(color.FgRed).Fprintln(out, "Stored data failed to load; run `snip recover`.")
	}
	pp.NewLine()
	pp.Usage(
		printers.UsageRow{Name: "items", Used: sum.ItemsBytes, Max: sum.Limits.MaxItemsBytes},
		printers.UsageRow{Name: "buckets", Used: len(sum.Buckets), Max: sum.Limits.MaxBuckets},
	)
	pp.NewLine()
	pp.Buckets(sum.Buckets, "")
	return nil
}
