package model

import (
	"errors"

	"tableflip.dev/snip/pkg/bucket"
)

// Validation errors. A mutation that returns one of these leaves the
// collection untouched.
var (
	ErrEmptyLabel      = errors.New("model: label required")
	ErrEmptyContent    = errors.New("model: content required")
	ErrItemNotFound    = errors.New("model: item not found")
	ErrBucketNotFound  = errors.New("model: bucket not found")
	ErrDuplicateBucket = errors.New("model: bucket already exists")
	ErrSameBucketName  = errors.New("model: new bucket name equals the old one")
	ErrEmptyBucketName = bucket.ErrEmptyName
	ErrReservedBucket  = bucket.ErrReserved
)
