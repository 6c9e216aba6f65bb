package bucket

import (
	"encoding/json"

	"tableflip.dev/snip/pkg/quota"
)

// legacyMeta is the object form some older stores used for bucket entries.
type legacyMeta struct {
	Name string `json:"name"`
}

// MarshalList serialises the ordered bucket names.
func MarshalList(names []string) ([]byte, error) {
	if names == nil {
		names = []string{}
	}
	return quota.Marshal(names)
}

// UnmarshalList deserialises bucket names and upgrades the legacy object form.
// The result is normalized.
func UnmarshalList(data []byte) ([]string, error) {
	if len(data) == 0 {
		return Defaults(), nil
	}
	var names []string
	if err := json.Unmarshal(data, &names); err == nil {
		return Normalize(names), nil
	}
	var metas []legacyMeta
	if err := json.Unmarshal(data, &metas); err != nil {
		return nil, err
	}
	names = make([]string, 0, len(metas))
	for _, m := range metas {
		names = append(names, m.Name)
	}
	return Normalize(names), nil
}
