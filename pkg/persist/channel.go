package persist

import (
	"encoding/json"
	"fmt"

	"tableflip.dev/snip/pkg/bucket"
	"tableflip.dev/snip/pkg/item"
)

// Channel is one independently debounced persisted value.
type Channel int

const (
	Items Channel = iota
	Buckets
	Sidebar
)

// Channels lists every channel in hydration order.
var Channels = []Channel{Items, Buckets, Sidebar}

const (
	ItemsKey   = "clipboardItems"
	BucketsKey = "clipboardBuckets"
	SidebarKey = "sidebarHidden"
)

// Key is the store key the channel is written under.
func (c Channel) Key() string {
	switch c {
	case Items:
		return ItemsKey
	case Buckets:
		return BucketsKey
	case Sidebar:
		return SidebarKey
	}
	return ""
}

func (c Channel) String() string {
	switch c {
	case Items:
		return "items"
	case Buckets:
		return "buckets"
	case Sidebar:
		return "sidebar"
	}
	return fmt.Sprintf("channel(%d)", int(c))
}

// State is the lifecycle of one channel.
type State int

const (
	Uninitialized State = iota
	Hydrating
	Ready
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Hydrating:
		return "hydrating"
	case Ready:
		return "ready"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// encode serializes v for ch. The result never aliases v.
func encode(ch Channel, v any) ([]byte, error) {
	switch ch {
	case Items:
		items, ok := v.([]item.Item)
		if !ok {
			return nil, fmt.Errorf("persist: items channel wants []item.Item, got %T", v)
		}
		return item.MarshalList(items)
	case Buckets:
		names, ok := v.([]string)
		if !ok {
			return nil, fmt.Errorf("persist: buckets channel wants []string, got %T", v)
		}
		return bucket.MarshalList(names)
	case Sidebar:
		hidden, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("persist: sidebar channel wants bool, got %T", v)
		}
		return json.Marshal(hidden)
	}
	return nil, fmt.Errorf("persist: unknown %s", ch)
}

func decodeSidebar(data []byte) (bool, error) {
	var hidden bool
	if err := json.Unmarshal(data, &hidden); err != nil {
		return false, err
	}
	return hidden, nil
}
