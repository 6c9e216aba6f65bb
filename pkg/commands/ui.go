package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/snip/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
snip ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			// A collection that failed to load still opens; the ui offers recovery.
			return withSession(false, func(ctx context.Context, s *session) error {
				i := ui.UI{Service: s.svc}
				return i.Do(ctx)
			})
		},
	}

	topLevel.AddCommand(cmd)
}
