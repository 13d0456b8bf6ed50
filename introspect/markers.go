package introspect

import (
	"reflect"

	autoresolve "github.com/toutaio/toutago-nasc-autoresolve"
)

// Scoped marks an implementation type for registration with the scoped lifetime.
// Embed it in the implementation struct:
//
//	type RequestLog struct {
//	    introspect.Scoped
//	}
type Scoped struct{}

// Transient marks an implementation type for registration with the transient lifetime.
type Transient struct{}

// Singleton marks an implementation type for registration with the singleton lifetime.
type Singleton struct{}

// AsSelf forces registration under the implementation type itself.
type AsSelf struct{}

func (Scoped) resolveAsScoped()       {}
func (Transient) resolveAsTransient() {}
func (Singleton) resolveAsSingleton() {}
func (AsSelf) resolveAsSelf()         {}

// Tag interfaces. Their methods are unexported, so only types embedding the
// structs above implement them.
type (
	scopedTag    interface{ resolveAsScoped() }
	transientTag interface{ resolveAsTransient() }
	singletonTag interface{ resolveAsSingleton() }
	selfTag      interface{ resolveAsSelf() }
)

type markerTag struct {
	marker autoresolve.Marker
	iface  reflect.Type
}

// markerTags lists the tags in the order they are reported.
var markerTags = []markerTag{
	{autoresolve.MarkerScoped, reflect.TypeOf((*scopedTag)(nil)).Elem()},
	{autoresolve.MarkerTransient, reflect.TypeOf((*transientTag)(nil)).Elem()},
	{autoresolve.MarkerSingleton, reflect.TypeOf((*singletonTag)(nil)).Elem()},
	{autoresolve.MarkerAsSelf, reflect.TypeOf((*selfTag)(nil)).Elem()},
}
