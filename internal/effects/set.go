package effects

import "hash/fnv"

// Set is an unordered collection of effect names. The zero value is not
// usable; construct with NewSet.
type Set map[string]struct{}

// NewSet creates a set containing the given effects.
func NewSet(names ...string) Set {
	s := make(Set, len(names)+8)
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Contains reports whether the effect is in the set.
func (s Set) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Add inserts the effect if absent.
func (s Set) Add(name string) {
	s[name] = struct{}{}
}

// Remove deletes the effect if present.
func (s Set) Remove(name string) {
	delete(s, name)
}

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	c := make(Set, len(s)+8)
	for n := range s {
		c[n] = struct{}{}
	}
	return c
}

// Names returns the effects as a slice in unspecified order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	return names
}

// Signature returns an order-independent 64-bit fingerprint of the set,
// built by XOR-combining per-effect FNV-1a hashes. Equal sets always
// produce the same signature.
func (s Set) Signature() uint64 {
	var sig uint64
	for n := range s {
		h := fnv.New64a()
		_, _ = h.Write([]byte(n))
		sig ^= h.Sum64()
	}
	return sig
}
