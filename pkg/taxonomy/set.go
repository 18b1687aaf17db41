package taxonomy

import (
	"maps"
	"slices"
)

// Set is a set of synset ids.
type Set map[string]struct{}

// NewSet creates a set containing the given ids.
func NewSet(ids ...string) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Add inserts id into the set. Adding an already-present id is a no-op.
func (s Set) Add(id string) { s[id] = struct{}{} }

// Delete removes id from the set if present.
func (s Set) Delete(id string) { delete(s, id) }

// Has reports whether id is in the set.
func (s Set) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of ids in the set.
func (s Set) Len() int { return len(s) }

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	return maps.Clone(s)
}

// Union returns a new set with every id from s and o.
func (s Set) Union(o Set) Set {
	u := make(Set, len(s)+len(o))
	maps.Copy(u, s)
	maps.Copy(u, o)
	return u
}

// Intersect returns a new set with the ids present in both s and o.
func (s Set) Intersect(o Set) Set {
	small, large := s, o
	if len(o) < len(s) {
		small, large = o, s
	}
	i := make(Set)
	for id := range small {
		if large.Has(id) {
			i.Add(id)
		}
	}
	return i
}

// SortedIDs returns the ids in ascending order.
// Use this wherever iteration order must be reproducible.
func (s Set) SortedIDs() []string {
	return slices.Sorted(maps.Keys(s))
}
