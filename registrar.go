package autoresolve

import (
	"github.com/toutaio/toutago-nasc-autoresolve/registry"
)

// Registrar is the container side of a scan: it accepts entries in scan order and
// must support the three lifetimes as container concepts.
type Registrar interface {
	Register(entry Entry) error
}

// RegistrarFunc adapts a function to a Registrar.
type RegistrarFunc func(entry Entry) error

// Register calls f.
func (f RegistrarFunc) Register(entry Entry) error {
	return f(entry)
}

// RegistryRegistrar stores entries in a registry.Registry.
//
// Example:
//
//	reg := registry.New()
//	err := autoresolve.New().AutoResolve(autoresolve.RegistryRegistrar(reg), src)
func RegistryRegistrar(reg *registry.Registry) Registrar {
	return RegistrarFunc(func(entry Entry) error {
		if reg == nil {
			return &InvalidInputError{Argument: "registry"}
		}
		return reg.Add(&registry.Binding{
			ServiceType:        entry.ServiceType,
			ImplementationType: entry.ImplementationType,
			Lifetime:           entry.Lifetime.String(),
		})
	})
}
