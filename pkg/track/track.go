// Package track derives a controller's travel distance from the size of the
// container the moving element lives in.
package track

// Track describes an element sliding along a container.
type Track struct {
	// ElementSize is the extent of the moving element along the track.
	ElementSize float64
	// EdgePadding is the gap kept at both ends of the container.
	EdgePadding float64
}

// DefaultTrack is a 24px ball with 4px of padding at each end.
var DefaultTrack = Track{ElementSize: 24, EdgePadding: 4}

// TravelDistance returns how far the element can move inside a container
// of the given size. The result is ≤ 0 when the element does not fit, which
// keeps a controller idle.
func (t Track) TravelDistance(container float64) float64 {
	return container - t.ElementSize - 2*t.EdgePadding
}

// Offset maps a controller position to the element's leading edge inside the
// container. Overshooting positions map outside the padded travel range.
func (t Track) Offset(position float64) float64 {
	return t.EdgePadding + position
}

// Fits reports whether the element has room to move in container.
func (t Track) Fits(container float64) bool {
	return t.TravelDistance(container) > 0
}
