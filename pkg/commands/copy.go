package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/snip/pkg/commands/options"
	"tableflip.dev/snip/pkg/runner/clipboard"
)

func addCopy(topLevel *cobra.Command) {
	quiet := false

	cmd := &cobra.Command{
		Use:     "copy <id>",
		Aliases: []string{"cp"},
		Short:   "Copy a snippet's content to the clipboard",
		Example: `
snip copy 1700000000000
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ids, err := options.ParseIDs(args)
			if err != nil {
				return output.HandleError(err)
			}
			return withSession(true, func(ctx context.Context, s *session) error {
				c := clipboard.Copy{ID: ids[0], Quiet: quiet, Service: s.svc}
				return c.Do(ctx)
			})
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not confirm the copy.")

	topLevel.AddCommand(cmd)
}
