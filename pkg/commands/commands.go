package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/snip/pkg/commands/options"
)

var (
	output  = &options.OutputOptions{}
	logging = &options.LogOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "snip",
		Short: options.Wrap80("Keep labeled snippets in buckets and copy them to the clipboard."),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			slog.SetDefault(logging.Logger(os.Stderr))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	options.AddLogArgs(cmd, logging)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addKey(topLevel)
	addAdd(topLevel)
	addEdit(topLevel)
	addRemove(topLevel)
	addList(topLevel)
	addCopy(topLevel)
	addOpen(topLevel)
	addMove(topLevel)
	addTag(topLevel)
	addBuckets(topLevel)
	addSidebar(topLevel)
	addRecover(topLevel)
	addWatch(topLevel)
	addInfo(topLevel)
	addCompletions(topLevel)
	addUpgrade(topLevel)
	addVersion(topLevel)
}
