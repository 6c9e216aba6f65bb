package commands

import (
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(snip completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(snip completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

func registerBucketCompletion(cmd *cobra.Command, flag string) {
	_ = cmd.RegisterFlagCompletionFunc(flag, func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return bucketCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
}

// bucketCompletions lists bucket names starting with toComplete. Completion
// never writes, so a store that fails to load just yields nothing.
func bucketCompletions(toComplete string) []string {
	ctx := context.Background()
	s, err := openSession(ctx, true)
	if err != nil {
		return nil
	}
	defer func() { _ = s.Close(ctx) }()

	var bs []string
	for _, b := range s.svc.Buckets() {
		if strings.HasPrefix(b, toComplete) {
			bs = append(bs, b)
		}
	}
	for i := range bs {
		if strings.ContainsAny(bs[i], " \t\"'") {
			bs[i] = strconv.Quote(bs[i])
		}
	}
	return bs
}
