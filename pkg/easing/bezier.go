package easing

import "math"

// CSS-compatible curves registered under their CSS names.
var (
	// CSSEase is equivalent to CSS ease.
	CSSEase = CubicBezier(0.25, 0.1, 0.25, 1.0)
	// CSSEaseInOut is equivalent to CSS ease-in-out.
	CSSEaseInOut = CubicBezier(0.42, 0.0, 0.58, 1.0)
)

// CubicBezier returns a cubic-bezier easing function matching CSS cubic-bezier().
// The parameters define the two control points (x1,y1) and (x2,y2) of the curve.
// The curve starts at (0,0) and ends at (1,1); y values outside [0,1] overshoot.
func CubicBezier(x1, y1, x2, y2 float64) Func {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		// Newton-Raphson converges quickly for most values.
		for iter := 0; iter < 8; iter++ {
			x := bezierAt(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return bezierAt(y1, y2, clampUnit(u))
			}
			dx := bezierSlope(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// Bisection keeps the parameter inside [0,1] when Newton stalls.
		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for iter := 0; iter < 12; iter++ {
			x := bezierAt(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}

		return bezierAt(y1, y2, u)
	}
}

// bezierAt evaluates one axis of the curve with endpoints fixed at 0 and 1.
func bezierAt(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func bezierSlope(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
