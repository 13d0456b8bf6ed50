package autoresolve

import "reflect"

// Builder turns a classified type into registration entries.
// It never touches a container and is safe for concurrent use.
type Builder struct {
	markers MarkerSet
}

// NewBuilder creates a Builder over the given marker configuration.
func NewBuilder(markers MarkerSet) *Builder {
	return &Builder{markers: markers}
}

// ServiceType selects the type info is registered under: the first declared
// abstraction that is not a marker, or the implementation type itself when
// there is none or the type carries the self modifier.
func (b *Builder) ServiceType(info TypeInfo) reflect.Type {
	if info.HasCapability(b.markers.self) {
		return info.typ
	}
	for _, a := range info.abstractions {
		if b.markers.IsMarker(a) || a.typ == nil {
			continue
		}
		return a.typ
	}
	return info.typ
}

// Build emits one entry per matched marker, in the order given.
// A marker without a lifetime mapping yields a *ContractViolationError and no entries.
func (b *Builder) Build(info TypeInfo, matched []Marker) ([]Entry, error) {
	if len(matched) == 0 {
		return nil, nil
	}

	serviceType := b.ServiceType(info)
	entries := make([]Entry, 0, len(matched))
	for _, m := range matched {
		lifetime, ok := b.markers.LifetimeOf(m)
		if !ok {
			return nil, &ContractViolationError{Type: info.typ, Marker: m}
		}
		entries = append(entries, Entry{
			ServiceType:        serviceType,
			ImplementationType: info.typ,
			Lifetime:           lifetime,
		})
	}
	return entries, nil
}
