package model

import (
	"tableflip.dev/snip/pkg/bucket"
	"tableflip.dev/snip/pkg/item"
)

// Snapshot is a detached copy of everything that gets persisted.
type Snapshot struct {
	Items         []item.Item
	Buckets       []string
	SidebarHidden bool
}

// DefaultSnapshot is the state of a collection that was never saved.
func DefaultSnapshot() Snapshot {
	return Snapshot{Items: []item.Item{}, Buckets: bucket.Defaults()}
}

// Clone deep copies the snapshot.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		Items:         item.CloneAll(s.Items),
		Buckets:       append([]string(nil), s.Buckets...),
		SidebarHidden: s.SidebarHidden,
	}
}

// Dirty records which persisted channels a mutation touched.
type Dirty struct {
	Items   bool
	Buckets bool
	Sidebar bool
}

// Any reports whether anything changed.
func (d Dirty) Any() bool {
	return d.Items || d.Buckets || d.Sidebar
}
