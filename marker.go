package autoresolve

import "slices"

//go:generate go tool stringer -type=Marker -trimprefix=Marker -output=marker_string.go

// Marker is a capability tag carried by an implementation type.
// Three markers select a lifetime; MarkerAsSelf is an independent modifier
// that forces self-registration.
type Marker int

const (
	_ Marker = iota // zero value is not a marker

	MarkerScoped
	MarkerTransient
	MarkerSingleton
	MarkerAsSelf
)

// MarkerSet is the fixed marker configuration shared by a Classifier and a Builder.
// It is immutable once built; accessors hand out copies.
type MarkerSet struct {
	lifetimes []Marker
	table     map[Marker]Lifetime
	self      Marker
}

// DefaultMarkers returns the standard configuration: Scoped, Transient and Singleton
// (in that scan order) mapped 1:1 onto their lifetimes, and AsSelf as the modifier.
func DefaultMarkers() MarkerSet {
	return newMarkerSet(
		[]Marker{MarkerScoped, MarkerTransient, MarkerSingleton},
		map[Marker]Lifetime{
			MarkerScoped:    LifetimeScoped,
			MarkerTransient: LifetimeTransient,
			MarkerSingleton: LifetimeSingleton,
		},
		MarkerAsSelf,
	)
}

func newMarkerSet(lifetimes []Marker, table map[Marker]Lifetime, self Marker) MarkerSet {
	t := make(map[Marker]Lifetime, len(table))
	for m, l := range table {
		t[m] = l
	}
	return MarkerSet{
		lifetimes: slices.Clone(lifetimes),
		table:     t,
		self:      self,
	}
}

// Empty reports whether the set is the zero value.
func (s MarkerSet) Empty() bool {
	return len(s.lifetimes) == 0
}

// Lifetimes returns the lifetime markers in scan order.
func (s MarkerSet) Lifetimes() []Marker {
	return slices.Clone(s.lifetimes)
}

// SelfMarker returns the self-registration modifier.
func (s MarkerSet) SelfMarker() Marker {
	return s.self
}

// LifetimeOf maps a lifetime marker to its Lifetime.
func (s MarkerSet) LifetimeOf(m Marker) (Lifetime, bool) {
	l, ok := s.table[m]
	return l, ok
}

// IsMarker reports whether a is one of the set's lifetime markers or its modifier.
// Such abstractions are never chosen as a service type.
func (s MarkerSet) IsMarker(a Abstraction) bool {
	m, ok := a.Marker()
	if !ok {
		return false
	}
	return m == s.self || slices.Contains(s.lifetimes, m)
}
