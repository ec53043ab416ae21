package attribute

import "fmt"

// Store maps every attribute to its current value.
//
// Invariant: a Store built by NewStore holds exactly one value for each of
// the ten attributes for its entire lifetime. Value is therefore total in
// the public contract even though the backing storage is a general map.
type Store struct {
	values map[Attribute]int
}

// NewStore returns a Store seeded with Defaults().
//
// Postcondition: Value(a) succeeds for every a in All.
func NewStore() *Store {
	return &Store{values: Defaults()}
}

// NewStoreFrom returns a Store holding the given values. The builder enforces
// the ten-attribute invariant up front: values must contain every known
// attribute and nothing else.
//
// Postcondition: on success, Value(a) succeeds for every a in All.
func NewStoreFrom(values map[Attribute]int) (*Store, error) {
	if len(values) != len(All) {
		return nil, fmt.Errorf("attribute: store requires exactly %d values, got %d", len(All), len(values))
	}
	out := make(map[Attribute]int, len(All))
	for _, a := range All {
		v, ok := values[a]
		if !ok {
			return nil, fmt.Errorf("attribute: missing value for %s", a)
		}
		out[a] = v
	}
	return &Store{values: out}, nil
}

// Value returns the current value of a.
//
// Precondition: the Store was built by NewStore. A missing attribute means
// the ten-attribute invariant was broken elsewhere; this is an internal
// defect, so Value panics with "attribute: <name> missing from store".
func (s *Store) Value(a Attribute) int {
	v, ok := s.values[a]
	if !ok {
		panic(fmt.Sprintf("attribute: %s missing from store", a))
	}
	return v
}

// Set overwrites the value of a. No bounds are enforced; negative values
// are legal.
//
// Postcondition: Value(a) == v.
func (s *Store) Set(a Attribute, v int) {
	if s.values == nil {
		panic(fmt.Sprintf("attribute: Set(%s) on uninitialised store", a))
	}
	s.values[a] = v
}

// Snapshot returns a copy of all current values.
//
// Postcondition: mutating the returned map does not affect the Store.
func (s *Store) Snapshot() map[Attribute]int {
	out := make(map[Attribute]int, len(s.values))
	for a, v := range s.values {
		out[a] = v
	}
	return out
}
