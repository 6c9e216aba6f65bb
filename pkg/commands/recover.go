package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/snip/pkg/commands/options"
	"tableflip.dev/snip/pkg/runner/recovery"
)

func addRecover(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "recover",
		Short: "Reset storage and write back what could be loaded",
		Long: options.Wrap80("Clear the store and rewrite the snippets and buckets that could still be " +
			"read. If that fails too, the store is reset to an empty collection with the default buckets."),
		Example: `
snip recover
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return withSession(false, func(ctx context.Context, s *session) error {
				r := recovery.Recover{Service: s.svc}
				return r.Do(ctx)
			})
		},
	}

	topLevel.AddCommand(cmd)
}
