/*
Package hstore – the PostgreSQL hstore container type, its wire codec, and
a typed expression catalog for the hstore operators and functions.

An Hstore holds one column value: unique text keys mapped to text values,
where any value may be SQL NULL. Values are pgtype.Text so NULL survives a
round trip through the codec; the map[string]string views drop NULL
entries and are explicit opt-ins.
*/
package hstore

import (
	"maps"
	"slices"

	"github.com/jackc/pgx/v5/pgtype"
)

// Hstore is one hstore column value. Key order carries no meaning;
// consumers must not rely on iteration order.
type Hstore map[string]pgtype.Text

// New returns an empty Hstore.
func New() Hstore { return Hstore{} }

// NewWithCapacity returns an empty Hstore sized for n entries.
// The hint is a performance knob only.
func NewWithCapacity(n int) Hstore { return make(Hstore, n) }

// FromMap builds an Hstore in which every value is present (non-NULL).
func FromMap(m map[string]string) Hstore {
	h := make(Hstore, len(m))
	for k, v := range m {
		h[k] = pgtype.Text{String: v, Valid: true}
	}
	return h
}

// Get returns the value stored under k and whether the key is present.
// A present key may still hold a NULL value (Valid == false).
func (h Hstore) Get(k string) (pgtype.Text, bool) {
	v, ok := h[k]
	return v, ok
}

// GetString returns the value under k only when the key is present and its
// value is non-NULL.
func (h Hstore) GetString(k string) (string, bool) {
	v, ok := h[k]
	if !ok || !v.Valid {
		return "", false
	}
	return v.String, true
}

// Set stores a present value under k.
func (h Hstore) Set(k, v string) {
	h[k] = pgtype.Text{String: v, Valid: true}
}

// SetNull stores an explicit NULL under k. The key remains present.
func (h Hstore) SetNull(k string) {
	h[k] = pgtype.Text{}
}

// Delete removes k entirely.
func (h Hstore) Delete(k string) {
	delete(h, k)
}

// Has reports whether k is present, regardless of its value.
func (h Hstore) Has(k string) bool {
	_, ok := h[k]
	return ok
}

// Len returns the number of entries, NULL-valued ones included.
func (h Hstore) Len() int { return len(h) }

// Keys returns the keys in sorted order.
func (h Hstore) Keys() []string {
	return slices.Sorted(maps.Keys(h))
}

// Clone returns an independent copy.
func (h Hstore) Clone() Hstore {
	if h == nil {
		return nil
	}
	return maps.Clone(h)
}

// Equal reports pairwise equality, order-independent. NULL values compare
// equal only to NULL values.
func (h Hstore) Equal(other Hstore) bool {
	if len(h) != len(other) {
		return false
	}
	for k, v := range h {
		if ov, ok := other[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

// StringMap returns a plain-map view. Entries holding NULL are dropped;
// use the Hstore itself when NULL must be preserved.
func (h Hstore) StringMap() map[string]string {
	m := make(map[string]string, len(h))
	for k, v := range h {
		if v.Valid {
			m[k] = v.String
		}
	}
	return m
}
