package animation

// Tween interpolates between Begin and End values based on eased progress.
//
// The controller uses a float64 tween to place its two endpoints; swapping
// Begin and End reverses the motion without negating progress, so overshoot
// stays an overshoot in either direction.
type Tween[T any] struct {
	// Begin is the value at progress 0.
	Begin T
	// End is the value at progress 1.
	End T
	// Lerp interpolates between Begin and End. Progress may leave [0, 1].
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at t.
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// Transform returns the tween's value at the controller's eased progress.
func (tw *Tween[T]) Transform(c *Controller) T {
	_, eased := c.Progress()
	return tw.Evaluate(eased)
}

// Reversed returns a tween running from End to Begin.
func (tw *Tween[T]) Reversed() *Tween[T] {
	return &Tween[T]{Begin: tw.End, End: tw.Begin, Lerp: tw.Lerp}
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// TweenFloat64 creates a tween for float64 values.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{
		Begin: begin,
		End:   end,
		Lerp:  LerpFloat64,
	}
}
