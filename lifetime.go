package autoresolve

// Lifetime represents how long the container reuses one constructed instance.
type Lifetime string

const (
	// LifetimeScoped shares one instance per container scope (typically a request).
	LifetimeScoped Lifetime = "scoped"

	// LifetimeTransient creates a new instance on every resolution.
	LifetimeTransient Lifetime = "transient"

	// LifetimeSingleton creates a single instance that is reused for the life of the process.
	LifetimeSingleton Lifetime = "singleton"
)

// String returns the string representation of the lifetime.
func (l Lifetime) String() string {
	return string(l)
}

// Valid reports whether l is one of the three lifetimes a container must support.
func (l Lifetime) Valid() bool {
	switch l {
	case LifetimeScoped, LifetimeTransient, LifetimeSingleton:
		return true
	default:
		return false
	}
}
