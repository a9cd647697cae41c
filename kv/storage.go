package kv

import (
	"iter"
	"slices"

	"github.com/indigo-web/utils/strcomp"
)

type Pair struct {
	Key, Value string
}

// Storage is an associative structure for (string, string) pairs. It acts as a
// multimap, but uses linear search over a flat slice instead of hashing, which
// proves to be more efficient on the relatively low amount of entries
// header-like collections tend to hold. Key comparison is case-insensitive.
type Storage struct {
	pairs []Pair
}

func New() *Storage {
	return new(Storage)
}

// NewPreAlloc returns an instance of Storage with pre-allocated underlying storage.
func NewPreAlloc(n int) *Storage {
	return &Storage{
		pairs: make([]Pair, 0, n),
	}
}

// NewFromMap returns a new instance with the map's entries already inserted.
// Note: as maps are unordered, the resulting pair order is unordered, too.
func NewFromMap(m map[string][]string) *Storage {
	// the preallocation counts keys, not values, so a multi-valued key still
	// grows the slice. Happens once per collection, so not worth being smarter
	s := NewPreAlloc(len(m))

	for key, values := range m {
		for _, value := range values {
			s.Add(key, value)
		}
	}

	return s
}

// Add adds a new pair, keeping any pairs already stored under the key.
func (s *Storage) Add(key, value string) *Storage {
	s.pairs = append(s.pairs, Pair{
		Key:   key,
		Value: value,
	})
	return s
}

// Set replaces all pairs stored under the key with a single one. The new pair
// takes the position of the first replaced one; a previously unseen key is
// appended at the end.
func (s *Storage) Set(key, value string) *Storage {
	kept := s.pairs[:0]
	replaced := false

	for _, pair := range s.pairs {
		if strcomp.EqualFold(key, pair.Key) {
			if !replaced {
				kept = append(kept, Pair{Key: key, Value: value})
				replaced = true
			}

			continue
		}

		kept = append(kept, pair)
	}

	if !replaced {
		kept = append(kept, Pair{Key: key, Value: value})
	}

	s.pairs = kept
	return s
}

// Delete removes all pairs stored under the key. Absent keys are a no-op.
func (s *Storage) Delete(key string) *Storage {
	kept := s.pairs[:0]

	for _, pair := range s.pairs {
		if !strcomp.EqualFold(key, pair.Key) {
			kept = append(kept, pair)
		}
	}

	s.pairs = kept
	return s
}

// Get returns the first value corresponding to the key and a bool, indicating
// whether the value was found. If it wasn't, the value is an empty string.
func (s *Storage) Get(key string) (value string, found bool) {
	for _, pair := range s.pairs {
		if strcomp.EqualFold(key, pair.Key) {
			return pair.Value, true
		}
	}

	return "", false
}

// Value returns the first value corresponding to the key. Otherwise, an empty
// string is returned.
func (s *Storage) Value(key string) string {
	return s.ValueOr(key, "")
}

// ValueOr returns either the first value corresponding to the key or the
// custom value, defined via the second parameter.
func (s *Storage) ValueOr(key, or string) string {
	value, found := s.Get(key)
	if !found {
		return or
	}

	return value
}

// Values returns an iterator over all values stored under the key, in
// insertion order.
func (s *Storage) Values(key string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, pair := range s.pairs {
			if strcomp.EqualFold(key, pair.Key) && !yield(pair.Value) {
				return
			}
		}
	}
}

// Keys returns an iterator over all unique keys, in first-appearance order.
func (s *Storage) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for i, pair := range s.pairs {
			if contains(s.pairs[:i], pair.Key) {
				continue
			}

			if !yield(pair.Key) {
				return
			}
		}
	}
}

// Pairs returns an iterator over all stored pairs, in insertion order.
func (s *Storage) Pairs() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, pair := range s.pairs {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Has indicates, whether there's an entry of the key.
func (s *Storage) Has(key string) bool {
	_, found := s.Get(key)
	return found
}

// Len returns a number of stored pairs.
func (s *Storage) Len() int {
	return len(s.pairs)
}

func (s *Storage) Empty() bool {
	return s.Len() == 0
}

// Clone creates a deep copy, which may be stored somewhere safely, at cost of
// an allocation.
func (s *Storage) Clone() *Storage {
	return &Storage{pairs: slices.Clone(s.pairs)}
}

// Expose exposes the underlying pairs slice.
func (s *Storage) Expose() []Pair {
	return s.pairs
}

// Clear all the entries. The allocated space is kept for further re-use.
func (s *Storage) Clear() *Storage {
	s.pairs = s.pairs[:0]
	return s
}

func contains(pairs []Pair, key string) bool {
	for _, pair := range pairs {
		if strcomp.EqualFold(pair.Key, key) {
			return true
		}
	}

	return false
}
