package animation

import (
	"math"
	"time"

	"github.com/go-drift/easelab/pkg/errors"
)

// RepeatForever makes a policy repeat without limit.
const RepeatForever = -1

// TimingPolicy configures how a [Controller] plays its cycles.
type TimingPolicy struct {
	// Duration is the length of one cycle. Must be positive.
	Duration time.Duration
	// Repeat is the number of cycles played after the first one:
	// 0 plays once, RepeatForever never stops.
	Repeat int
	// ReverseOnRepeat flips the direction at the start of every repeat.
	ReverseOnRepeat bool
	// RepeatDelay is the pause between cycles. Must not be negative.
	RepeatDelay time.Duration
}

// DefaultPolicy ping-pongs forever: 1.5s cycles with a 0.5s pause between them.
func DefaultPolicy() TimingPolicy {
	return TimingPolicy{
		Duration:        1500 * time.Millisecond,
		Repeat:          RepeatForever,
		ReverseOnRepeat: true,
		RepeatDelay:     500 * time.Millisecond,
	}
}

// PolicyFromSeconds builds a policy from second-based values as hosts
// usually expose them. The result is not validated.
func PolicyFromSeconds(duration float64, repeat int, reverse bool, delay float64) TimingPolicy {
	return TimingPolicy{
		Duration:        secondsToDuration(duration),
		Repeat:          repeat,
		ReverseOnRepeat: reverse,
		RepeatDelay:     secondsToDuration(delay),
	}
}

func secondsToDuration(s float64) time.Duration {
	if math.IsNaN(s) {
		return 0
	}
	return time.Duration(math.Round(s * float64(time.Second)))
}

// Validate rejects policies that have no sensible motion.
func (p TimingPolicy) Validate() error {
	const op = "animation.TimingPolicy"
	switch {
	case p.Duration <= 0:
		return errors.New(op, errors.KindInvalidPolicy, errors.ErrInvalidPolicy, "duration %v must be positive", p.Duration)
	case p.RepeatDelay < 0:
		return errors.New(op, errors.KindInvalidPolicy, errors.ErrInvalidPolicy, "repeat delay %v must not be negative", p.RepeatDelay)
	case p.Repeat < RepeatForever:
		return errors.New(op, errors.KindInvalidPolicy, errors.ErrInvalidPolicy, "repeat count %d is out of range", p.Repeat)
	}
	return nil
}

// Repeats reports whether more than one cycle will play.
func (p TimingPolicy) Repeats() bool {
	return p.Repeat != 0
}

// exhausted reports whether no cycle remains after completed cycles.
func (p TimingPolicy) exhausted(completed int) bool {
	return p.Repeat != RepeatForever && completed > p.Repeat
}
