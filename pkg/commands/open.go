package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/snip/pkg/commands/options"
	"tableflip.dev/snip/pkg/runner/open"
)

func addOpen(topLevel *cobra.Command) {
	force := false

	cmd := &cobra.Command{
		Use:   "open <id>",
		Short: "Open a snippet's content as a link",
		Long: options.Wrap80("Open a snippet in the browser. Content without a scheme gets https:// " +
			"prepended. Content that does not look like a link is refused unless --force is set."),
		Example: `
snip open 1700000000000
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ids, err := options.ParseIDs(args)
			if err != nil {
				return output.HandleError(err)
			}
			return withSession(true, func(ctx context.Context, s *session) error {
				o := open.Open{ID: ids[0], Force: force, Service: s.svc}
				return o.Do(ctx)
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Open even if the content does not look like a link.")

	topLevel.AddCommand(cmd)
}
