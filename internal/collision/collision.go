// Package collision models UK road-collision observations: the Collision
// record with its derived attributes, the Vehicle record, the ordered
// Collection that holds either, and exact-match filtering over it.
//
// Records use a fixed schema. Every canonical field must be present in the
// mapping a record is built from (a nil value is allowed), so a missing
// column is reported once at construction rather than on first access.
package collision

import (
	"encoding/binary"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/zeebo/xxh3"
)

// TimestampLayout is the layout of "date time" in the source data, e.g.
// "31/12/2020 23:45". Hours use the 24-hour clock.
const TimestampLayout = "2/1/2006 15:04"

// Debug receives debug-level log lines from this package. It discards
// output until a caller points it somewhere.
var Debug = log.New(io.Discard, "", log.LstdFlags)

// Collision is one normalized collision observation. It is immutable after
// construction.
type Collision struct {
	vals [numFields]any
}

// NewCollision builds a Collision from a mapping keyed by canonical field
// name. Every canonical field must be present; extra keys are ignored.
func NewCollision(m map[string]any) (*Collision, error) {
	c := &Collision{}
	for i, name := range fieldNames {
		v, ok := m[name]
		if !ok {
			return nil, missingField(name)
		}
		c.vals[i] = normalize(v)
	}
	return c, nil
}

// ID returns the accident_index value.
func (c *Collision) ID() any { return c.vals[FieldAccidentIndex] }

// Value returns the stored value of f.
func (c *Collision) Value(f Field) any {
	if f < 0 || f >= numFields {
		return nil
	}
	return c.vals[f]
}

// Geo returns [latitude, longitude].
func (c *Collision) Geo() [2]any {
	return [2]any{c.vals[FieldLatitude], c.vals[FieldLongitude]}
}

// Timestamp combines date and time using TimestampLayout. It is recomputed
// on every call.
func (c *Collision) Timestamp() (time.Time, error) {
	d, t := c.vals[FieldDate], c.vals[FieldTime]
	ds, ok1 := d.(string)
	ts, ok2 := t.(string)
	if !ok1 || !ok2 {
		return time.Time{}, &TimestampError{Date: d, Time: t}
	}
	ts2, err := time.Parse(TimestampLayout, ds+" "+ts)
	if err != nil {
		return time.Time{}, &TimestampError{Date: d, Time: t, Err: err}
	}
	return ts2, nil
}

// Year returns the calendar year of Timestamp.
func (c *Collision) Year() (int, error) {
	ts, err := c.Timestamp()
	if err != nil {
		return 0, err
	}
	return ts.Year(), nil
}

// HasField reports whether name is a canonical field or a derived attribute
// accepted by Get. It does not touch the receiver and is safe on a nil
// *Collision.
func (*Collision) HasField(name string) bool {
	switch name {
	case AttrID, AttrYear, AttrGeo, AttrTimestamp:
		return true
	}
	_, ok := fieldByName[name]
	return ok
}

// Get returns the value of a canonical field or derived attribute by name.
// Unknown names fail with *MissingFieldError; derived attributes propagate
// their own errors.
func (c *Collision) Get(name string) (any, error) {
	switch name {
	case AttrID:
		return c.ID(), nil
	case AttrGeo:
		return c.Geo(), nil
	case AttrTimestamp:
		return c.Timestamp()
	case AttrYear:
		y, err := c.Year()
		if err != nil {
			return nil, err
		}
		return int64(y), nil
	}
	f, err := LookupField(name)
	if err != nil {
		return nil, err
	}
	return c.vals[f], nil
}

// Serialize returns the flat interchange form: id, lat, lng, the derived
// year and every remaining canonical field, accident_year included. Parse accepts the result and rebuilds an equal
// Collision.
func (c *Collision) Serialize() (map[string]any, error) {
	year, err := c.Year()
	if err != nil {
		return nil, fmt.Errorf("serialize %v: %w", c.ID(), err)
	}
	geo := c.Geo()
	out := make(map[string]any, 4+len(serializedFields))
	out[AttrID] = c.ID()
	out["lat"] = geo[0]
	out["lng"] = geo[1]
	out[AttrYear] = int64(year)
	for _, f := range serializedFields {
		out[f.String()] = c.vals[f]
	}
	return out, nil
}

// Row returns the serialized values in SerializedKeys order.
func (c *Collision) Row() ([]any, error) {
	m, err := c.Serialize()
	if err != nil {
		return nil, err
	}
	keys := SerializedKeys()
	row := make([]any, len(keys))
	for i, k := range keys {
		row[i] = m[k]
	}
	return row, nil
}

// Vehicle projects the vehicle attributes of this collision row.
func (c *Collision) Vehicle() *Vehicle {
	v := &Vehicle{}
	for i, f := range vehicleSource {
		v.vals[i] = c.vals[f]
	}
	return v
}

// Fingerprint hashes every stored value, in field order, with xxh3. Two
// collisions with equal values have equal fingerprints.
func (c *Collision) Fingerprint() uint64 {
	h := xxh3.New()
	for _, v := range c.vals {
		writeValue(h, v)
	}
	return h.Sum64()
}

// writeValue writes a type tag, the textual value and a separator so that
// nil, "" and 0 hash differently.
func writeValue(h *xxh3.Hasher, v any) {
	var tag byte
	switch v.(type) {
	case nil:
		tag = 'n'
	case int64:
		tag = 'i'
	case float64:
		tag = 'f'
	case string:
		tag = 's'
	default:
		tag = 'o'
	}
	_, _ = h.Write([]byte{tag})
	_, _ = h.Write([]byte(formatValue(v)))
	_, _ = h.Write([]byte{0x1f})
}

// CollectionFingerprint folds the fingerprints of every collision in order.
// It changes when any value or the element order changes.
func CollectionFingerprint(c *Collection[*Collision]) uint64 {
	h := xxh3.New()
	var buf [8]byte
	for _, rec := range c.All() {
		binary.LittleEndian.PutUint64(buf[:], rec.Fingerprint())
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}
