package autoresolve

import (
	"fmt"
	"log/slog"
)

// Option is a function that configures a Resolver.
type Option func(*Resolver) error

// WithLogger sets the structured logger used for scan diagnostics.
// A nil logger selects slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// WithMarkers sets the marker configuration shared by the classifier and builder.
// The marker set is closed: DefaultMarkers is the only non-empty MarkerSet callers
// can build, so this option passes that configuration in explicitly and is mainly
// useful for sharing one value between a Resolver and standalone classifiers.
// The zero MarkerSet is rejected.
func WithMarkers(markers MarkerSet) Option {
	return func(r *Resolver) error {
		if markers.Empty() {
			return fmt.Errorf("marker set cannot be empty")
		}
		r.markers = markers
		return nil
	}
}
