package options

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// OutputOptions
type OutputOptions struct {
	JSON bool
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Output as JSON.")
}

// Emit writes v as JSON with --json, otherwise calls human.
func (o *OutputOptions) Emit(v any, human func()) error {
	if !o.JSON {
		human()
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(color.Output, string(b))
	return nil
}

// HandleError reports err as a JSON error object with --json and swallows
// it; without --json the error is returned for cobra to print.
func (o *OutputOptions) HandleError(err error) error {
	if !o.JSON || err == nil {
		return err
	}
	return o.Emit(map[string]string{"error": err.Error()}, nil)
}
