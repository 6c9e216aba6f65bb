package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/snip/pkg/commands/options"
	"tableflip.dev/snip/pkg/runner/tag"
)

func addTag(topLevel *cobra.Command) {
	for _, remove := range []bool{false, true} {
		use, short := "tag <id> <bucket>...", "Put a snippet into buckets, creating missing ones"
		if remove {
			use, short = "untag <id> <bucket>...", "Take a snippet out of buckets"
		}
		cmd := &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				cmd.SilenceUsage = true
				ids, err := options.ParseIDs(args[:1])
				if err != nil {
					return output.HandleError(err)
				}
				return withSession(true, func(ctx context.Context, s *session) error {
					t := tag.Tag{ID: ids[0], Buckets: args[1:], Remove: remove, Service: s.svc}
					return t.Do(ctx)
				})
			},
			ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
				if len(args) == 0 {
					return nil, cobra.ShellCompDirectiveNoFileComp
				}
				return bucketCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
			},
		}
		topLevel.AddCommand(cmd)
	}
}
