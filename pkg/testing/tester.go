package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/easelab/pkg/animation"
)

// DefaultFrame is the frame interval used by PumpAndSettle.
const DefaultFrame = 16 * time.Millisecond

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: motion did not settle")

// Frame is one published position.
type Frame struct {
	Elapsed   time.Duration
	Position  float64
	Phase     animation.Phase
	Direction animation.Direction
}

// MotionTester drives a controller through the package ticker registry
// with a fake clock, recording the position published on every frame.
type MotionTester struct {
	controller *animation.Controller
	ticker     *animation.Ticker
	clock      *FakeClock
	prevClock  animation.Clock
	start      time.Time
	frames     []Frame
}

// NewMotionTester installs a fake clock and starts a ticker for c.
// Call Cleanup() when done, or use NewMotionTesterWithT() instead.
func NewMotionTester(c *animation.Controller) *MotionTester {
	clk := NewFakeClock()
	t := &MotionTester{
		controller: c,
		clock:      clk,
		start:      clk.Now(),
	}
	t.prevClock = animation.SetClock(clk)
	t.ticker = animation.TickerFor(c, t.record)
	t.ticker.Start()
	return t
}

// NewMotionTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewMotionTesterWithT(t *testing.T, c *animation.Controller) *MotionTester {
	tester := NewMotionTester(c)
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup stops the ticker and restores the animation clock. Must be called
// if not using NewMotionTesterWithT.
func (t *MotionTester) Cleanup() {
	t.ticker.Stop()
	animation.SetClock(t.prevClock)
}

func (t *MotionTester) record(pos float64) {
	t.frames = append(t.frames, Frame{
		Elapsed:   t.clock.Now().Sub(t.start),
		Position:  pos,
		Phase:     t.controller.Phase(),
		Direction: t.controller.Direction(),
	})
}

// Clock returns the fake clock driving this tester.
func (t *MotionTester) Clock() *FakeClock {
	return t.clock
}

// Controller returns the controller under test.
func (t *MotionTester) Controller() *animation.Controller {
	return t.controller
}

// Pump runs one frame at the current clock time and returns it.
func (t *MotionTester) Pump() Frame {
	animation.StepTickers()
	return t.Last()
}

// Advance moves the clock forward by d and pumps one frame.
func (t *MotionTester) Advance(d time.Duration) Frame {
	t.clock.Advance(d)
	return t.Pump()
}

// PumpFrames pumps n frames spaced interval apart, starting with a frame
// at the current time, and returns them.
func (t *MotionTester) PumpFrames(n int, interval time.Duration) []Frame {
	out := make([]Frame, 0, n)
	for i := 0; i < n; i++ {
		if i > 0 {
			t.clock.Advance(interval)
		}
		out = append(out, t.Pump())
	}
	return out
}

// PumpAndSettle runs frames until the controller stops animating or the
// timeout is reached. Each frame advances the fake clock by DefaultFrame.
// Returns ErrSettleTimeout for motions that never end.
func (t *MotionTester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed <= timeout {
		t.Pump()
		if !t.controller.IsAnimating() {
			return nil
		}
		t.clock.Advance(DefaultFrame)
		elapsed += DefaultFrame
	}
	return ErrSettleTimeout
}

// Frames returns every frame recorded so far.
func (t *MotionTester) Frames() []Frame {
	return append([]Frame(nil), t.frames...)
}

// Last returns the most recent frame, or the zero Frame before the first pump.
func (t *MotionTester) Last() Frame {
	if len(t.frames) == 0 {
		return Frame{}
	}
	return t.frames[len(t.frames)-1]
}
