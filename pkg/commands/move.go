package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/snip/pkg/commands/options"
	"tableflip.dev/snip/pkg/runner/move"
)

func addMove(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "move <id> <onto-id>",
		Aliases: []string{"mv"},
		Short:   "Move a snippet to where another one sits",
		Example: `
snip move 1700000000003 1700000000001
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ids, err := options.ParseIDs(args)
			if err != nil {
				return output.HandleError(err)
			}
			return withSession(true, func(ctx context.Context, s *session) error {
				m := move.Move{Source: ids[0], Target: ids[1], ShowID: io.ShowID, Service: s.svc}
				return m.Do(ctx)
			})
		},
	}

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
