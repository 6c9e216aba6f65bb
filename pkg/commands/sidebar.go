package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/snip/pkg/runner/sidebar"
)

func addSidebar(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:       "sidebar [show|hide|toggle]",
		Short:     "Show or change whether the ui starts with the bucket sidebar hidden",
		ValidArgs: []string{"show", "hide", "toggle"},
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		Example: `
snip sidebar
snip sidebar hide
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s := sidebar.Sidebar{}
			if len(args) == 1 {
				switch args[0] {
				case "show":
					hidden := false
					s.Hidden = &hidden
				case "hide":
					hidden := true
					s.Hidden = &hidden
				case "toggle":
					s.Toggle = true
				}
			}
			return withSession(true, func(ctx context.Context, sess *session) error {
				s.Service = sess.svc
				return s.Do(ctx)
			})
		},
	}

	topLevel.AddCommand(cmd)
}
