package core

import "sort"

// EntitySet is the set of candidate names recovered from the most recent
// qualifying assistant turn. Uniqueness is enforced; iteration order is not
// defined, use Names for a stable ordering.
type EntitySet map[string]struct{}

// NewEntitySet builds a set from the given names.
func NewEntitySet(names ...string) EntitySet {
	set := make(EntitySet, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

// Add inserts a name into the set.
func (s EntitySet) Add(name string) { s[name] = struct{}{} }

// Contains reports whether the name is a member.
func (s EntitySet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Names returns the members in sorted order so query literals built from the
// set are deterministic for identical inputs.
func (s EntitySet) Names() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
