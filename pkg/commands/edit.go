package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/snip/pkg/commands/options"
	"tableflip.dev/snip/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	io := &options.ItemOptions{}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a snippet's label, content or buckets",
		Example: `
snip edit 1700000000000 --label "new label"
snip edit 1700000000000 --bucket work --bucket links
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ids, err := options.ParseIDs(args)
			if err != nil {
				return output.HandleError(err)
			}
			e := edit.Edit{ID: ids[0], JSON: output.JSON}
			if cmd.Flags().Changed("label") {
				e.Label = &io.Label
			}
			if cmd.Flags().Changed("content") {
				e.Content = &io.Content
			}
			if cmd.Flags().Changed("bucket") || cmd.Flags().Changed("new-bucket") {
				e.Tags = io.Tags()
			}
			if e.Label == nil && e.Content == nil && e.Tags == nil {
				return output.HandleError(errors.New("nothing to change; set --label, --content or --bucket"))
			}
			return withSession(true, func(ctx context.Context, s *session) error {
				e.Service = s.svc
				return e.Do(ctx)
			})
		},
	}

	options.AddItemArgs(cmd, io)
	options.AddOutputArg(cmd, output)
	registerBucketCompletion(cmd, "bucket")

	topLevel.AddCommand(cmd)
}
