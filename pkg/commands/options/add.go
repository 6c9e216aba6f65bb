package options

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
)

// ItemOptions holds the fields of an item being added or edited.
type ItemOptions struct {
	Label      string
	Content    string
	Buckets    []string
	NewBuckets []string
}

func AddItemArgs(cmd *cobra.Command, o *ItemOptions) {
	cmd.Flags().StringVarP(&o.Label, "label", "l", "",
		"Label shown for the item.")
	cmd.Flags().StringVarP(&o.Content, "content", "c", "",
		"Content copied to the clipboard.")
	cmd.Flags().StringSliceVarP(&o.Buckets, "bucket", "b", nil,
		Wrap80("Bucket to tag the item with, repeatable. The item is always in \"all\"."))
	cmd.Flags().StringSliceVar(&o.NewBuckets, "new-bucket", nil,
		Wrap80("Create a bucket and tag the item with it in one step."))
}

// Tags is every bucket requested, existing and new.
func (o *ItemOptions) Tags() []string {
	out := make([]string, 0, len(o.Buckets)+len(o.NewBuckets))
	out = append(out, o.Buckets...)
	out = append(out, o.NewBuckets...)
	return out
}

// LabelAndContent resolves positional args: `label content...` unless the
// flags already carry them.
func (o *ItemOptions) LabelAndContent(args []string) (string, string, error) {
	label, content := o.Label, o.Content
	if label == "" && len(args) > 0 {
		label, args = args[0], args[1:]
	}
	if content == "" && len(args) > 0 {
		content = strings.Join(args, " ")
	}
	if label == "" {
		return "", "", errors.New("a label is required")
	}
	return label, content, nil
}
