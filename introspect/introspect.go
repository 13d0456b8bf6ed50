// Package introspect derives declared abstractions from Go types with reflection.
//
// Go types do not declare the interfaces they implement, so an Introspector is
// given the ordered list of service interfaces an application exposes. A type
// declares every listed interface it implements, in list order, followed by the
// marker tags it embeds (Scoped, Transient, Singleton, AsSelf):
//
//	type Widget struct {
//	    introspect.Singleton
//	}
//
//	func (w *Widget) Spin() {}
//
//	in, err := introspect.New(reflect.TypeFor[Spinner]())
//	src := in.Source(reflect.TypeFor[*Widget]())
//	entries, err := autoresolve.New().Resolve(src)
//	// entries: Spinner -> *Widget (singleton)
package introspect

import (
	"fmt"
	"reflect"
	"slices"

	autoresolve "github.com/toutaio/toutago-nasc-autoresolve"
)

// Introspector answers capability queries for implementation types.
// Results are cached per type; an Introspector is safe for concurrent use.
type Introspector struct {
	services []reflect.Type
	cache    *abstractionCache
}

// New creates an Introspector over the given service interfaces.
// Returns an error if a service is nil, not an interface, or has no methods
// (every type would implement it).
func New(services ...reflect.Type) (*Introspector, error) {
	for i, svc := range services {
		if svc == nil {
			return nil, fmt.Errorf("service %d is nil", i)
		}
		if svc.Kind() != reflect.Interface {
			return nil, fmt.Errorf("service %v must be an interface, got %v", svc, svc.Kind())
		}
		if svc.NumMethod() == 0 {
			return nil, fmt.Errorf("service %v has no methods", svc)
		}
	}

	return &Introspector{
		services: slices.Clone(services),
		cache:    newAbstractionCache(),
	}, nil
}

// DeclaredAbstractions returns the abstractions t declares: implemented service
// interfaces in the order given to New, then embedded marker tags.
func (in *Introspector) DeclaredAbstractions(t reflect.Type) []autoresolve.Abstraction {
	if t == nil {
		return nil
	}
	return slices.Clone(in.cache.getOrCompute(t, in.compute))
}

// HasCapability reports whether t embeds the tag for marker m.
func (in *Introspector) HasCapability(t reflect.Type, m autoresolve.Marker) bool {
	if t == nil {
		return false
	}
	return slices.Contains(in.cache.getOrCompute(t, in.compute), m.Abstraction())
}

// Describe returns the TypeInfo for t.
func (in *Introspector) Describe(t reflect.Type) autoresolve.TypeInfo {
	if t == nil {
		return autoresolve.DescribeType(nil)
	}
	return autoresolve.DescribeType(t, in.cache.getOrCompute(t, in.compute)...)
}

// Source returns a Source describing types in the given order.
func (in *Introspector) Source(types ...reflect.Type) autoresolve.Source {
	types = slices.Clone(types)
	return autoresolve.SourceFunc(func() ([]autoresolve.TypeInfo, error) {
		infos := make([]autoresolve.TypeInfo, 0, len(types))
		for i, t := range types {
			if t == nil {
				return nil, fmt.Errorf("type %d is nil", i)
			}
			infos = append(infos, in.Describe(t))
		}
		return infos, nil
	})
}

func (in *Introspector) compute(t reflect.Type) []autoresolve.Abstraction {
	var abstractions []autoresolve.Abstraction
	for _, svc := range in.services {
		if svc != t && t.Implements(svc) {
			abstractions = append(abstractions, autoresolve.TypeOf(svc))
		}
	}
	for _, tag := range markerTags {
		if t.Implements(tag.iface) {
			abstractions = append(abstractions, tag.marker.Abstraction())
		}
	}
	return abstractions
}
