package options

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/snip/pkg/item"
)

// IDOptions
type IDOptions struct {
	ShowID bool
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the ID of each item.")
}

// ParseIDs parses item ids given as arguments.
func ParseIDs(args []string) ([]item.ID, error) {
	ids := make([]item.ID, 0, len(args))
	for _, a := range args {
		id, err := item.ParseID(a)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", a, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
