package collision

import (
	"fmt"
	"iter"
	"sort"
)

// Record is the behavior a Collection needs from its elements. HasField must
// not dereference its receiver: Filter calls it on the zero value to
// validate criteria against an empty collection.
type Record interface {
	HasField(name string) bool
	Get(name string) (any, error)
	Serialize() (map[string]any, error)
}

// Collection is an ordered, append-only sequence of records. Order is
// insertion order; nothing is deduplicated or sorted. A Collection owns its
// backing slice; it is not safe for concurrent mutation.
type Collection[T Record] struct {
	items []T
}

// NewCollection returns a Collection holding a copy of items.
func NewCollection[T Record](items ...T) *Collection[T] {
	c := &Collection[T]{items: make([]T, 0, len(items))}
	c.items = append(c.items, items...)
	return c
}

// Len returns the number of records.
func (c *Collection[T]) Len() int { return len(c.items) }

// At returns the i-th record. It panics when i is out of range, like a slice.
func (c *Collection[T]) At(i int) T { return c.items[i] }

// Append adds records to the end.
func (c *Collection[T]) Append(items ...T) { c.items = append(c.items, items...) }

// Extend appends every record of other, in order.
func (c *Collection[T]) Extend(other *Collection[T]) {
	if other == nil {
		return
	}
	c.items = append(c.items, other.items...)
}

// All iterates over the records with their index.
func (c *Collection[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, it := range c.items {
			if !yield(i, it) {
				return
			}
		}
	}
}

// Items returns a copy of the backing slice.
func (c *Collection[T]) Items() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Serialize serializes every record, in order. The first failure aborts.
func (c *Collection[T]) Serialize() ([]map[string]any, error) {
	out := make([]map[string]any, 0, len(c.items))
	for i, it := range c.items {
		m, err := it.Serialize()
		if err != nil {
			return nil, fmt.Errorf("serialize record %d: %w", i, err)
		}
		out = append(out, m)
	}
	return out, nil
}

// Filter returns a new Collection with the records whose value for every key
// of criteria equals the required value. Keys must name fields of T; an
// unknown key fails with *MissingFieldError even when c is empty. The
// receiver is left untouched.
func (c *Collection[T]) Filter(criteria map[string]any) (*Collection[T], error) {
	keys := make([]string, 0, len(criteria))
	for k := range criteria {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var zero T
	for _, k := range keys {
		if !zero.HasField(k) {
			return nil, missingField(k)
		}
	}

	Debug.Printf("filter: from=%d criteria=%d", len(c.items), len(keys))

	out := &Collection[T]{}
	for _, it := range c.items {
		ok, err := matches(it, keys, criteria)
		if err != nil {
			return nil, err
		}
		if ok {
			out.items = append(out.items, it)
		}
	}
	return out, nil
}

func matches[T Record](rec T, keys []string, criteria map[string]any) (bool, error) {
	for _, k := range keys {
		v, err := rec.Get(k)
		if err != nil {
			return false, err
		}
		if !Equal(v, criteria[k]) {
			return false, nil
		}
	}
	return true, nil
}
