// Package autoresolve decides, by convention, how implementation types are
// registered with a dependency injection container.
//
// Each implementation type declares abstractions: the service interfaces it
// provides and capability markers. A lifetime marker (Scoped, Transient,
// Singleton) makes the type a registration candidate; the AsSelf modifier
// forces registration under the implementation type itself. The resolver
// produces registration entries and leaves construction to the container.
//
// # Declaring types
//
// Describe a type with its declared abstractions, in declaration order:
//
//	src := autoresolve.Types{
//	    autoresolve.Describe[*Widget](autoresolve.Interface[IWidget](), autoresolve.ResolveAsSingleton),
//	    autoresolve.Describe[*Gadget](autoresolve.Interface[IGadget](), autoresolve.ResolveAsSingleton, autoresolve.ResolveAsSelf),
//	}
//
// The introspect subpackage derives the same information with reflection from
// types that embed introspect.Scoped, introspect.Transient, introspect.Singleton
// or introspect.AsSelf.
//
// # Service type selection
//
// A candidate is registered under the first declared abstraction that is not a
// marker. When there is none, or when the type carries AsSelf, it is registered
// under its own type.
//
// # Lifetimes
//
// Every lifetime marker a type carries produces one entry:
//
//	Scoped    -> LifetimeScoped
//	Transient -> LifetimeTransient
//	Singleton -> LifetimeSingleton
//
// A type carrying both Scoped and Transient is registered twice.
//
// # Resolving
//
//	entries, err := autoresolve.New().Resolve(src)
//
// or straight into a container:
//
//	reg := registry.New()
//	err := autoresolve.New().AutoResolve(autoresolve.RegistryRegistrar(reg), src)
//
// # Error Handling
//
// Any error aborts the whole scan and no entries are returned:
//
//   - *InvalidInputError: a nil source or registrar
//   - *DiscoveryError: the source failed to enumerate types
//   - *ContractViolationError: a matched marker has no lifetime
//
// # Thread Safety
//
// Resolvers, classifiers and builders are immutable after construction and can
// be used concurrently.
package autoresolve
