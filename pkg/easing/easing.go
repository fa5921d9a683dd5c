// Package easing provides the registry of normalized easing functions.
//
// An easing function maps an elapsed-time fraction t in [0, 1] to a motion
// progress fraction. Every registered function satisfies f(0) == 0 and
// f(1) == 1 exactly; the back family overshoots [0, 1] at interior t and that
// overshoot is part of the curve, never clamped.
//
// Behavior for t outside [0, 1] is undefined. Callers clamp before calling
// [Evaluate]; the animation controller does so on every tick.
package easing

import "math"

// Func is a pure easing function over [0, 1].
type Func func(t float64) float64

// Easing is a registered easing function and its metadata.
type Easing struct {
	// ID is the stable lookup key (e.g. "backOut").
	ID string
	// Name is a human-readable label for menus.
	Name string
	// Fn is the curve itself.
	Fn Func
	// Overshoots reports whether Fn leaves [0, 1] for some interior t.
	Overshoots bool
}

// Evaluate applies e at t. t must already be clamped to [0, 1].
func (e Easing) Evaluate(t float64) float64 {
	return Evaluate(e.Fn, t)
}

// Evaluate applies fn at t. t must already be clamped to [0, 1]; a nil fn is
// treated as linear.
func Evaluate(fn Func, t float64) float64 {
	if fn == nil {
		return t
	}
	return fn(t)
}

// Back-family constants.
const (
	c1 = 1.70158
	c3 = c1 + 1
)

// Linear returns t unchanged.
func Linear(t float64) float64 {
	return t
}

// QuadIn accelerates from rest.
func QuadIn(t float64) float64 {
	return t * t
}

// QuadOut decelerates to rest.
func QuadOut(t float64) float64 {
	return t * (2 - t)
}

// QuadInOut blends QuadIn and QuadOut at t = 0.5.
func QuadInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// CircIn follows a quarter circle, slow at first.
func CircIn(t float64) float64 {
	return 1 - math.Sqrt(1-t*t)
}

// CircOut follows a quarter circle, fast at first.
func CircOut(t float64) float64 {
	u := t - 1
	return math.Sqrt(1 - u*u)
}

// BackIn pulls below zero before accelerating toward 1.
//
// Equal to c3·t³ − c1·t², arranged so f(1) is exactly 1.
func BackIn(t float64) float64 {
	return t*t*t + c1*t*t*(t-1)
}

// BackOut overshoots past 1 before settling.
//
// Equal to 1 + c3·(t−1)³ + c1·(t−1)², arranged so f(0) is exactly 0.
func BackOut(t float64) float64 {
	u := t - 1
	return 1 + u*u*u + c1*u*u*t
}

// Anticipate is cubic on both halves, joined at t = 0.5.
func Anticipate(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := 2*t - 2
	return (t-1)*u*u + 1
}
