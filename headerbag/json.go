package headerbag

import (
	json "github.com/json-iterator/go"
)

// MarshalJSON encodes the bag as an object of canonical keys mapped to value
// arrays. Mostly useful for debugging and request dumps.
func (b *Bag) MarshalJSON() ([]byte, error) {
	m := make(map[string][]string, b.storage.Len())

	for key, value := range b.storage.Pairs() {
		m[key] = append(m[key], value)
	}

	return json.ConfigDefault.Marshal(m)
}
