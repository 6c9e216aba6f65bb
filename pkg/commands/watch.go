package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"tableflip.dev/snip/pkg/app"
	"tableflip.dev/snip/pkg/commands/options"
	"tableflip.dev/snip/pkg/runner/watch"
	"tableflip.dev/snip/pkg/store"
)

func addWatch(topLevel *cobra.Command) {
	bo := &options.BucketOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "List snippets and refresh whenever the store changes",
		Example: `
snip watch --bucket work
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			cfg, err := store.LoadConfig()
			if err != nil {
				return output.HandleError(err)
			}
			w := watch.Watch{
				BasePath: cfg.BasePath(),
				Bucket:   bo.Bucket,
				ShowID:   io.ShowID,
				Load: func(ctx context.Context) (*app.Service, func(), error) {
					s, err := openSession(ctx, true)
					if err != nil {
						return nil, nil, err
					}
					return s.svc, func() { _ = s.Close(ctx) }, nil
				},
			}
			err = w.Do(ctx)
			return output.HandleError(err)
		},
	}

	options.AddBucketArgs(cmd, bo)
	options.AddShowIDArgs(cmd, io)
	registerBucketCompletion(cmd, "bucket")

	topLevel.AddCommand(cmd)
}
