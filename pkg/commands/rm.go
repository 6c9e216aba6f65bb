package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/snip/pkg/commands/options"
	"tableflip.dev/snip/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "rm <id>...",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete snippets",
		Example: `
snip rm 1700000000000
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ids, err := options.ParseIDs(args)
			if err != nil {
				return output.HandleError(err)
			}
			return withSession(true, func(ctx context.Context, s *session) error {
				r := remove.Remove{IDs: ids, Service: s.svc}
				return r.Do(ctx)
			})
		},
	}

	topLevel.AddCommand(cmd)
}
