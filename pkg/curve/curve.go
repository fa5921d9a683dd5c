// Package curve discretizes easing functions into drawable polylines.
//
// [Sample] evaluates an easing at resolution+1 evenly spaced times and maps
// each (t, f(t)) pair into a plot rectangle described by a [Domain]. Progress
// increases upward, so the vertical axis is flipped:
//
//	x = PaddingX + t·plotWidth
//	y = Height − (PaddingY + f(t)·plotHeight)
//
// Sampling is pure: it touches no shared state and may run concurrently for
// any number of functions. Use [Cache] to memoize results per easing.
package curve

import (
	"math"

	"github.com/go-drift/easelab/pkg/easing"
	"github.com/go-drift/easelab/pkg/errors"
)

// DefaultResolution is the number of intervals used by hosts that do not
// choose one.
const DefaultResolution = 100

// DefaultDomain is a 400×200 plot with 20px padding on every side.
var DefaultDomain = Domain{Width: 400, Height: 200, PaddingX: 20, PaddingY: 20}

// Domain is the output coordinate rectangle for a sampled curve.
type Domain struct {
	Width    float64
	Height   float64
	PaddingX float64
	PaddingY float64
}

// PlotWidth returns the horizontal extent of the t axis.
func (d Domain) PlotWidth() float64 {
	return d.Width - 2*d.PaddingX
}

// PlotHeight returns the vertical extent between progress 0 and progress 1.
func (d Domain) PlotHeight() float64 {
	return d.Height - 2*d.PaddingY
}

// Map converts a (t, value) pair into drawable coordinates.
func (d Domain) Map(t, value float64) (x, y float64) {
	x = d.PaddingX + t*d.PlotWidth()
	y = d.Height - (d.PaddingY + value*d.PlotHeight())
	return x, y
}

// Validate reports whether the domain has a drawable area.
func (d Domain) Validate() error {
	if !(d.PlotWidth() > 0) || !(d.PlotHeight() > 0) || d.PaddingX < 0 || d.PaddingY < 0 {
		return errors.New("curve.Domain", errors.KindInvalidResolution, errors.ErrInvalidDomain,
			"%gx%g with padding %g,%g leaves no plot area", d.Width, d.Height, d.PaddingX, d.PaddingY)
	}
	return nil
}

// Point is one sample of a curve.
type Point struct {
	// T is the normalized time in [0, 1].
	T float64
	// Value is f(T), possibly outside [0, 1] for overshooting easings.
	Value float64
	// X and Y are the drawable coordinates of the sample.
	X, Y float64
}

// SampledCurve is an immutable polyline approximation of one easing.
type SampledCurve struct {
	// ID is the easing's registry ID, empty for anonymous functions.
	ID         string
	Resolution int
	Domain     Domain
	// Points holds Resolution+1 samples in strictly increasing T.
	Points []Point
}

// First returns the sample at t = 0.
func (c SampledCurve) First() Point {
	return c.Points[0]
}

// Last returns the sample at t = 1.
func (c SampledCurve) Last() Point {
	return c.Points[len(c.Points)-1]
}

// Sample discretizes e into resolution intervals inside d.
func Sample(e easing.Easing, resolution int, d Domain) (SampledCurve, error) {
	c, err := sample(e.Fn, resolution, d)
	if err != nil {
		if ee, ok := err.(*errors.EaseError); ok {
			ee.ID = e.ID
		}
		return SampledCurve{}, err
	}
	c.ID = e.ID
	return c, nil
}

// SampleFunc discretizes an unregistered function.
func SampleFunc(fn easing.Func, resolution int, d Domain) (SampledCurve, error) {
	return sample(fn, resolution, d)
}

func sample(fn easing.Func, resolution int, d Domain) (SampledCurve, error) {
	if resolution <= 0 {
		return SampledCurve{}, errors.New("curve.Sample", errors.KindInvalidResolution, errors.ErrInvalidResolution,
			"%d intervals cannot form a path", resolution)
	}
	if err := d.Validate(); err != nil {
		return SampledCurve{}, err
	}

	points := make([]Point, resolution+1)
	for i := range points {
		t := float64(i) / float64(resolution)
		// Pin the last sample so rounding in i/resolution cannot miss 1.
		if i == resolution {
			t = 1
		}
		v := easing.Evaluate(fn, t)
		x, y := d.Map(t, v)
		points[i] = Point{T: t, Value: v, X: x, Y: y}
	}
	return SampledCurve{Resolution: resolution, Domain: d, Points: points}, nil
}

// Bounds returns the smallest and largest sampled progress values.
func Bounds(c SampledCurve) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, p := range c.Points {
		lo = math.Min(lo, p.Value)
		hi = math.Max(hi, p.Value)
	}
	return lo, hi
}

// Overshoots reports whether any sample leaves [0, 1].
func Overshoots(c SampledCurve) bool {
	lo, hi := Bounds(c)
	return lo < 0 || hi > 1
}
