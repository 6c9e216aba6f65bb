package options

import (
	"github.com/spf13/cobra"
)

// BucketOptions selects the bucket a listing is filtered to.
type BucketOptions struct {
	Bucket string
}

// AddBucketArgs wires the bucket filter flag on the provided command.
func AddBucketArgs(cmd *cobra.Command, o *BucketOptions) {
	cmd.Flags().StringVarP(&o.Bucket, "bucket", "b", "all",
		"Only show items in this bucket.")
}
