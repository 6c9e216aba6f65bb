package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/snip/pkg/commands/options"
	"tableflip.dev/snip/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	bo := &options.BucketOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list", "get"},
		Short:   "List snippets, optionally only one bucket",
		Example: `
snip ls
snip ls --bucket work --show-id
snip ls --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return withSession(true, func(ctx context.Context, s *session) error {
				l := list.List{
					ShowID:  io.ShowID,
					Bucket:  bo.Bucket,
					JSON:    output.JSON,
					Service: s.svc,
				}
				return l.Do(ctx)
			})
		},
	}

	options.AddBucketArgs(cmd, bo)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)
	registerBucketCompletion(cmd, "bucket")

	topLevel.AddCommand(cmd)
}
