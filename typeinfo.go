package autoresolve

import (
	"fmt"
	"reflect"
	"slices"
)

// Abstraction identifies one type declared as implemented by an implementation
// type. It is either a Go type or a capability marker. Abstractions are
// comparable; two abstractions are the same when they are ==.
type Abstraction struct {
	typ    reflect.Type
	marker Marker
}

// Marker tags, as they appear in a type's declared abstractions.
var (
	ResolveAsScoped    = MarkerScoped.Abstraction()
	ResolveAsTransient = MarkerTransient.Abstraction()
	ResolveAsSingleton = MarkerSingleton.Abstraction()
	ResolveAsSelf      = MarkerAsSelf.Abstraction()
)

var markerTagNames = map[Marker]string{
	MarkerScoped:    "ResolveAsScoped",
	MarkerTransient: "ResolveAsTransient",
	MarkerSingleton: "ResolveAsSingleton",
	MarkerAsSelf:    "ResolveAsSelf",
}

// Abstraction returns the marker as a declarable abstraction.
func (m Marker) Abstraction() Abstraction {
	return Abstraction{marker: m}
}

// Interface returns the abstraction for the type parameter, usually an interface:
//
//	autoresolve.Interface[Logger]()
func Interface[T any]() Abstraction {
	return Abstraction{typ: reflect.TypeOf((*T)(nil)).Elem()}
}

// TypeOf returns the abstraction for t.
func TypeOf(t reflect.Type) Abstraction {
	return Abstraction{typ: t}
}

// Type returns the Go type, or nil for a marker.
func (a Abstraction) Type() reflect.Type {
	return a.typ
}

// Marker returns the marker and true when a is a marker tag.
func (a Abstraction) Marker() (Marker, bool) {
	return a.marker, a.marker != 0
}

func (a Abstraction) String() string {
	if a.marker != 0 {
		if name, ok := markerTagNames[a.marker]; ok {
			return name
		}
		return "ResolveAs" + a.marker.String()
	}
	if a.typ == nil {
		return "<nil>"
	}
	return a.typ.String()
}

// TypeInfo is the static metadata of one implementation type: whether it is
// concrete and which abstractions it declares, in declaration order.
// A TypeInfo is read-only once built.
type TypeInfo struct {
	typ          reflect.Type
	concrete     bool
	abstractions []Abstraction
}

// Describe builds the TypeInfo for T from an explicit declaration list:
//
//	autoresolve.Describe[*Widget](autoresolve.Interface[IWidget](), autoresolve.ResolveAsSingleton)
func Describe[T any](declared ...Abstraction) TypeInfo {
	return DescribeType(reflect.TypeOf((*T)(nil)).Elem(), declared...)
}

// DescribeType builds the TypeInfo for t. Interface types are recorded as non-concrete
// and are never registration candidates.
func DescribeType(t reflect.Type, declared ...Abstraction) TypeInfo {
	return TypeInfo{
		typ:          t,
		concrete:     t != nil && t.Kind() != reflect.Interface,
		abstractions: slices.Clone(declared),
	}
}

// Type returns the implementation type.
func (ti TypeInfo) Type() reflect.Type {
	return ti.typ
}

// IsConcrete reports whether the type can be instantiated.
func (ti TypeInfo) IsConcrete() bool {
	return ti.concrete
}

// Abstractions returns the declared abstractions in declaration order.
func (ti TypeInfo) Abstractions() []Abstraction {
	return slices.Clone(ti.abstractions)
}

// Declares reports whether a is among the declared abstractions.
func (ti TypeInfo) Declares(a Abstraction) bool {
	return slices.Contains(ti.abstractions, a)
}

// HasCapability reports whether the type carries marker m.
func (ti TypeInfo) HasCapability(m Marker) bool {
	return ti.Declares(m.Abstraction())
}

func (ti TypeInfo) String() string {
	if ti.typ == nil {
		return "<nil>"
	}
	return ti.typ.String()
}

// Entry is one registration handed to the container: the service type the
// implementation is registered under and the lifetime it is registered with.
type Entry struct {
	ServiceType        reflect.Type
	ImplementationType reflect.Type
	Lifetime           Lifetime
}

func (e Entry) String() string {
	return fmt.Sprintf("%v -> %v (%s)", e.ServiceType, e.ImplementationType, e.Lifetime)
}
