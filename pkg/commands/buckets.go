package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/snip/pkg/commands/options"
	"tableflip.dev/snip/pkg/runner/buckets"
)

func addBuckets(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "buckets",
		Aliases: []string{"bucket", "b"},
		Short:   "List and manage buckets",
		Example: `
snip buckets
snip buckets add links
snip buckets rename links bookmarks
snip buckets move bookmarks work
snip buckets rm bookmarks
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return listBuckets()
		},
	}
	complete := bucketArgs{}

	ls := &cobra.Command{
		Use:   "ls",
		Short: "List buckets with their item counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return listBuckets()
		},
	}

	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Append a bucket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return withSession(true, func(ctx context.Context, s *session) error {
				a := buckets.Add{Name: args[0], Service: s.svc}
				return a.Do(ctx)
			})
		},
	}

	rename := &cobra.Command{
		Use:               "rename <old> <new>",
		Short:             "Rename a bucket and every tag that names it",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: complete.first,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return withSession(true, func(ctx context.Context, s *session) error {
				r := buckets.Rename{From: args[0], To: args[1], Service: s.svc}
				return r.Do(ctx)
			})
		},
	}

	rm := &cobra.Command{
		Use:               "rm <name>",
		Aliases:           []string{"remove", "delete"},
		Short:             "Delete a bucket and strip it from every item",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: complete.first,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return withSession(true, func(ctx context.Context, s *session) error {
				r := buckets.Remove{Name: args[0], Service: s.svc}
				return r.Do(ctx)
			})
		},
	}

	move := &cobra.Command{
		Use:               "move <name> <onto>",
		Aliases:           []string{"mv"},
		Short:             "Move a bucket to where another one sits",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: complete.both,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return withSession(true, func(ctx context.Context, s *session) error {
				m := buckets.Move{Source: args[0], Target: args[1], Service: s.svc}
				return m.Do(ctx)
			})
		},
	}

	cmd.AddCommand(ls, add, rename, rm, move)
	options.AddOutputArg(cmd, output)
	options.AddOutputArg(ls, output)

	topLevel.AddCommand(cmd)
}

func listBuckets() error {
	return withSession(true, func(ctx context.Context, s *session) error {
		l := buckets.List{JSON: output.JSON, Service: s.svc}
		return l.Do(ctx)
	})
}

// bucketArgs completes bucket names for positional arguments.
type bucketArgs struct{}

func (bucketArgs) first(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return bucketCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
}

func (bucketArgs) both(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 1 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return bucketCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
}
