package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/snip/pkg/commands/options"
	"tableflip.dev/snip/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the snippets, the limits and where they are stored.",
		Example: `
snip info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return withSession(false, func(ctx context.Context, s *session) error {
				i := info.Info{
					Config:  s.cfg,
					Service: s.svc,
					JSON:    output.JSON,
				}
				return i.Do(ctx)
			})
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
