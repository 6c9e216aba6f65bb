package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/snip/pkg/commands/options"
	"tableflip.dev/snip/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	io := &options.ItemOptions{}
	in := &options.InputOptions{}

	cmd := &cobra.Command{
		Use:   "add <label> [content...]",
		Short: "Add a snippet",
		Example: `
snip add greeting "hello there"
snip add docs https://go.dev --bucket work
snip add token --new-bucket secrets < token.txt
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			label, content, err := io.LabelAndContent(args)
			if err != nil {
				return output.HandleError(err)
			}
			content, err = in.ReadContent(os.Stdin, content)
			if err != nil {
				return output.HandleError(err)
			}
			return withSession(true, func(ctx context.Context, s *session) error {
				a := add.Add{
					Label:   label,
					Content: content,
					Tags:    io.Tags(),
					JSON:    output.JSON,
					Service: s.svc,
				}
				return a.Do(ctx)
			})
		},
	}

	options.AddItemArgs(cmd, io)
	options.AddInputArgs(cmd, in)
	options.AddOutputArg(cmd, output)
	registerBucketCompletion(cmd, "bucket")

	topLevel.AddCommand(cmd)
}
