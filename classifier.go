package autoresolve

// Classifier decides which lifetime markers an implementation type carries.
// It is a pure predicate over the type's declared abstractions and is safe
// for concurrent use.
type Classifier struct {
	markers MarkerSet
}

// NewClassifier creates a Classifier over the given marker configuration.
func NewClassifier(markers MarkerSet) *Classifier {
	return &Classifier{markers: markers}
}

// Classify returns the lifetime markers info declares, in the marker set's scan order.
// A type declaring none returns nil.
func (c *Classifier) Classify(info TypeInfo) []Marker {
	var matched []Marker
	for _, m := range c.markers.lifetimes {
		if info.HasCapability(m) {
			matched = append(matched, m)
		}
	}
	return matched
}

// IsCandidate reports whether info is a concrete type carrying at least one lifetime marker.
func (c *Classifier) IsCandidate(info TypeInfo) bool {
	return info.IsConcrete() && len(c.Classify(info)) > 0
}
