package app

import (
	"tableflip.dev/snip/pkg/quota"
	"tableflip.dev/snip/pkg/view"
)

// Summary describes the collection and how close it is to its limits.
type Summary struct {
	Items         int
	Buckets       []view.Count
	ItemsBytes    int
	Limits        quota.Limits
	SidebarHidden bool
}

// BytesLeft is how much the item collection may still grow.
func (r Summary) BytesLeft() int {
	if r.Limits.MaxItemsBytes <= 0 {
		return -1
	}
	return r.Limits.MaxItemsBytes - r.ItemsBytes
}

// BucketsLeft is how many buckets may still be added.
func (r Summary) BucketsLeft() int {
	if r.Limits.MaxBuckets <= 0 {
		return -1
	}
	return r.Limits.MaxBuckets - len(r.Buckets)
}

// Summary reports item and bucket counts against the quota.
func (s *Service) Summary() (Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.model.Items()
	size, err := quota.Size(items)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		Items:         len(items),
		Buckets:       view.Counts(items, s.model.Buckets()),
		ItemsBytes:    size,
		Limits:        s.model.Limits(),
		SidebarHidden: s.model.SidebarHidden(),
	}, nil
}
