// Package records defines the raw row shape shared by the parser, the raw
// normalizer and the record model. A Record is one decoded tabular row keyed by
// column name; values are nil, int64, float64 or string.
package records

import "sort"

// Record is a single decoded row.
type Record map[string]any

// Clone returns a shallow copy of r. Values are scalars, so a shallow copy is
// a full copy in practice.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Keys returns the column names of r in sorted order.
func (r Record) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
