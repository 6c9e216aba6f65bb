package app

import (
	"slices"

	"tableflip.dev/snip/pkg/bucket"
	"tableflip.dev/snip/pkg/item"
	"tableflip.dev/snip/pkg/model"
)

// Tag adds buckets to an item, creating buckets that do not exist yet.
func (s *Service) Tag(id item.ID, names ...string) (item.Item, error) {
	return s.retag(id, func(tags []string) []string {
		return append(tags, names...)
	})
}

// Untag removes buckets from an item. The reserved bucket always stays.
func (s *Service) Untag(id item.ID, names ...string) (item.Item, error) {
	return s.retag(id, func(tags []string) []string {
		return slices.DeleteFunc(tags, func(t string) bool {
			return !bucket.IsReserved(t) && slices.Contains(names, t)
		})
	})
}

func (s *Service) retag(id item.ID, fn func([]string) []string) (item.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mutable(); err != nil {
		return item.Item{}, err
	}
	current, ok := s.model.Item(id)
	if !ok {
		return item.Item{}, model.ErrItemNotFound
	}
	it, err := s.model.UpdateItem(id, item.Fields{Tags: fn(current.Tags)})
	if err != nil {
		return item.Item{}, s.reject(err)
	}
	s.commit()
	return it, nil
}
