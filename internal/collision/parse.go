package collision

import (
	"fmt"

	"collisions/internal/rawcollision"
	"collisions/pkg/records"
)

// RawKey names the nested container that marks a mapping as a freshly
// decoded source row rather than a serialized collision.
const RawKey = "data"

// serializedAliases maps interchange keys back onto canonical fields. The
// year entry only serves input without accident_year.
var serializedAliases = [...]struct{ from, to string }{
	{AttrID, "accident_index"},
	{"lat", "latitude"},
	{"lng", "longitude"},
	{AttrYear, "accident_year"},
}

// Parse builds a Collision from input.
//
//   - *Collision is returned as is.
//   - A mapping holding a RawKey sub-mapping is a source row: the sub-mapping
//     is normalized by rawcollision and then validated.
//   - Any other mapping is treated as canonical or serialized form.
//
// Other shapes fail with ErrUnsupportedInput.
func Parse(input any) (*Collision, error) {
	switch v := input.(type) {
	case *Collision:
		if v == nil {
			return nil, fmt.Errorf("parse collision: nil record: %w", ErrUnsupportedInput)
		}
		return v, nil
	case records.Record:
		return parseMap(v)
	case map[string]any:
		return parseMap(v)
	default:
		return nil, fmt.Errorf("parse collision: %T: %w", input, ErrUnsupportedInput)
	}
}

// FromRaw builds a Collision from one decoded source row.
func FromRaw(raw records.Record) (*Collision, error) {
	return NewCollision(rawcollision.Normalize(raw))
}

func parseMap(m map[string]any) (*Collision, error) {
	if inner, ok := m[RawKey]; ok {
		switch raw := inner.(type) {
		case records.Record:
			return FromRaw(raw)
		case map[string]any:
			return FromRaw(raw)
		}
	}
	return NewCollision(fromSerialized(m))
}

// fromSerialized copies m and fills canonical keys from their interchange
// aliases when the canonical key is absent.
func fromSerialized(m map[string]any) map[string]any {
	out := make(map[string]any, len(m)+len(serializedAliases))
	for k, v := range m {
		out[k] = v
	}
	for _, a := range serializedAliases {
		if _, ok := out[a.to]; ok {
			continue
		}
		if v, ok := m[a.from]; ok {
			out[a.to] = v
		}
	}
	return out
}
