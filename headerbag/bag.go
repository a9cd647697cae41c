package headerbag

import (
	"iter"

	"github.com/sable-web/sable/kv"
)

// Bag is a collection of header values, keyed by the canonical form of their
// names. Every access normalizes the key first, so "x-foo", "X_FOO" and
// "X-Foo" all address the same entry. The bag stores references only and is
// meant for single-owner use; concurrent access must be synchronized by the
// caller.
type Bag struct {
	storage *kv.Storage
}

func New() *Bag {
	return &Bag{storage: kv.New()}
}

// NewPreAlloc returns a Bag with pre-allocated underlying storage.
func NewPreAlloc(n int) *Bag {
	return &Bag{storage: kv.NewPreAlloc(n)}
}

// NewFromMap returns a Bag with the map's entries already inserted under
// their canonical keys. Map keys sharing a canonical form are merged.
func NewFromMap(m map[string][]string) *Bag {
	bag := NewPreAlloc(len(m))

	for key, values := range m {
		for _, value := range values {
			bag.Add(key, value)
		}
	}

	return bag
}

// Set replaces whatever is stored under the key with the given values.
func (b *Bag) Set(key string, values ...string) *Bag {
	canonical := Canonicalize(key)
	b.storage.Delete(canonical)

	for _, value := range values {
		b.storage.Add(canonical, value)
	}

	return b
}

// Add appends the value to the sequence already stored under the key,
// starting a new one if the key is absent.
func (b *Bag) Add(key, value string) *Bag {
	b.storage.Add(Canonicalize(key), value)
	return b
}

// Values returns all values stored under the key in insertion order, or nil
// if the key is absent.
func (b *Bag) Values(key string) []string {
	return b.ValuesOr(key, nil)
}

// ValuesOr returns all values stored under the key, or the caller-supplied
// default if the key is absent.
func (b *Bag) ValuesOr(key string, or []string) []string {
	var values []string

	for value := range b.storage.Values(Canonicalize(key)) {
		values = append(values, value)
	}

	if values == nil {
		return or
	}

	return values
}

// Value returns the first value stored under the key, or an empty string.
func (b *Bag) Value(key string) string {
	return b.storage.Value(Canonicalize(key))
}

// ValueOr returns the first value stored under the key, or the
// caller-supplied default if the key is absent.
func (b *Bag) ValueOr(key, or string) string {
	return b.storage.ValueOr(Canonicalize(key), or)
}

// Has indicates, whether there's an entry of the key.
func (b *Bag) Has(key string) bool {
	return b.storage.Has(Canonicalize(key))
}

// Delete removes the entry if present, otherwise it's a no-op.
func (b *Bag) Delete(key string) *Bag {
	b.storage.Delete(Canonicalize(key))
	return b
}

// Keys returns an iterator over all canonical keys, in first-appearance order.
func (b *Bag) Keys() iter.Seq[string] {
	return b.storage.Keys()
}

// Pairs returns an iterator over all (key, value) pairs, in insertion order.
// Multi-valued keys appear once per value.
func (b *Bag) Pairs() iter.Seq2[string, string] {
	return b.storage.Pairs()
}

// Len returns a number of stored pairs, counting every value separately.
func (b *Bag) Len() int {
	return b.storage.Len()
}

func (b *Bag) Empty() bool {
	return b.storage.Empty()
}

// Clear all the entries. The allocated space is kept for further re-use.
func (b *Bag) Clear() *Bag {
	b.storage.Clear()
	return b
}

// Clone creates a deep copy.
func (b *Bag) Clone() *Bag {
	return &Bag{storage: b.storage.Clone()}
}

// Expose exposes the underlying storage.
func (b *Bag) Expose() *kv.Storage {
	return b.storage
}
