package animation

import (
	"fmt"
	"time"

	"github.com/go-drift/easelab/pkg/easing"
)

// Phase is the controller's position in its state machine.
//
//	           target > 0                 rawT reaches 1
//	  Idle ───────────────► Running ─────────────────────► Stopped
//	   ▲                     │    ▲      (repeats exhausted)
//	   │ target ≤ 0          │    │ delay elapsed
//	   │ (from any phase)    ▼    │
//	   └────────────────── Delayed
//
// With a zero RepeatDelay a finished cycle goes straight back to Running.
type Phase int

const (
	// PhaseIdle means no usable target distance; the position is 0.
	PhaseIdle Phase = iota
	// PhaseDelayed means waiting out the repeat delay between cycles.
	PhaseDelayed
	// PhaseRunning means a cycle is being interpolated.
	PhaseRunning
	// PhaseStopped means the last cycle finished; the final position is held.
	PhaseStopped
)

// String returns a human-readable representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDelayed:
		return "delayed"
	case PhaseRunning:
		return "running"
	case PhaseStopped:
		return "stopped"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Direction is the travel direction of the current cycle.
type Direction int

const (
	// Forward travels from 0 to the target distance.
	Forward Direction = iota
	// Backward travels from the target distance to 0.
	Backward
)

// String returns a human-readable representation of the direction.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

func (d Direction) flipped() Direction {
	if d == Forward {
		return Backward
	}
	return Forward
}

// maxCatchUp bounds how many cycle boundaries one late tick replays before
// the schedule is re-anchored at the tick time.
const maxCatchUp = 64

// State is a snapshot of a controller's timing state.
type State struct {
	Phase          Phase
	Direction      Direction
	CycleStart     time.Time
	DelayStart     time.Time
	TargetDistance float64
	// CyclesCompleted counts finished cycles since leaving Idle.
	CyclesCompleted int
	RawT            float64
	Eased           float64
	Position        float64
}

// Controller maps frame times to an eased position in [0, target distance].
//
// A Controller is driven entirely by its caller: Tick advances it to a frame
// time and returns the position to publish. It starts no goroutines and holds
// no timers, so it can be dropped between any two ticks. It is not safe for
// concurrent use; one owner must serialize Tick and the setters.
//
// Cycle boundaries are scheduled from the previous boundary, not from the
// tick that observed them, so irregular frame times never accumulate drift.
type Controller struct {
	policy TimingPolicy
	easing easing.Easing
	target float64

	phase      Phase
	direction  Direction
	cycleStart time.Time
	delayStart time.Time
	cycles     int
	restart    bool
	rawT       float64
	eased      float64
	position   float64

	listeners      map[int]func()
	phaseListeners map[int]func(Phase)
	nextListenerID int
}

// NewController creates an idle controller. Invalid policies fail with an
// error matching errors.ErrInvalidPolicy.
func NewController(policy TimingPolicy, e easing.Easing) (*Controller, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	return &Controller{
		policy:         policy,
		easing:         e,
		listeners:      make(map[int]func()),
		phaseListeners: make(map[int]func(Phase)),
	}, nil
}

// Configure replaces the timing policy. An invalid policy is rejected and
// the previous one stays in effect. A changed Duration restarts a running
// cycle from the beginning at the next tick; other fields apply from the
// next cycle boundary.
func (c *Controller) Configure(policy TimingPolicy) error {
	if err := policy.Validate(); err != nil {
		return err
	}
	if policy.Duration != c.policy.Duration && c.phase == PhaseRunning {
		c.restart = true
	}
	c.policy = policy
	return nil
}

// Policy returns the active timing policy.
func (c *Controller) Policy() TimingPolicy {
	return c.policy
}

// SetEasing switches the easing function. A running cycle restarts from
// rawT = 0 at the next tick so two functions never meet within one motion.
func (c *Controller) SetEasing(e easing.Easing) {
	c.easing = e
	if c.phase == PhaseRunning {
		c.restart = true
	}
}

// SelectEasing looks up id, falling back to easing.DefaultID, and switches
// to it. It returns the easing actually selected.
func (c *Controller) SelectEasing(id string) easing.Easing {
	e := easing.LookupOrDefault(id)
	c.SetEasing(e)
	return e
}

// Easing returns the active easing.
func (c *Controller) Easing() easing.Easing {
	return c.easing
}

// SetTargetDistance updates the travel distance. A running cycle is not
// restarted; the position is rescaled immediately. A distance ≤ 0 (or NaN)
// sends the controller to Idle at position 0.
func (c *Controller) SetTargetDistance(d float64) {
	c.target = d
	if !(d > 0) {
		c.enterIdle()
		c.setPosition(0)
		return
	}
	if c.phase != PhaseIdle {
		c.setPosition(c.positionAt())
	}
}

// TargetDistance returns the current travel distance.
func (c *Controller) TargetDistance() float64 {
	return c.target
}

// Tick advances the controller to now and returns the position to publish.
func (c *Controller) Tick(now time.Time) float64 {
	if !(c.target > 0) {
		c.enterIdle()
		c.setPosition(0)
		return 0
	}

	settled := false
	for iter := 0; iter < maxCatchUp; iter++ {
		if !c.step(now) {
			settled = true
			break
		}
	}
	if !settled {
		c.reanchor(now)
	}

	c.setPosition(c.positionAt())
	return c.position
}

// step applies at most one transition for now and reports whether it did,
// in which case the caller steps again.
func (c *Controller) step(now time.Time) bool {
	switch c.phase {
	case PhaseIdle:
		c.cycleStart = now
		c.direction = Forward
		c.cycles = 0
		c.restart = false
		c.setPhase(PhaseRunning)
		return true

	case PhaseDelayed:
		if now.Sub(c.delayStart) < c.policy.RepeatDelay {
			return false
		}
		c.cycleStart = c.delayStart.Add(c.policy.RepeatDelay)
		if c.policy.ReverseOnRepeat {
			c.direction = c.direction.flipped()
		}
		c.setPhase(PhaseRunning)
		return true

	case PhaseRunning:
		if c.restart {
			c.cycleStart = now
			c.restart = false
		}
		c.rawT = clampUnit(float64(now.Sub(c.cycleStart)) / float64(c.policy.Duration))
		c.eased = c.easing.Evaluate(c.rawT)
		if c.rawT < 1 {
			return false
		}

		c.cycles++
		cycleEnd := c.cycleStart.Add(c.policy.Duration)
		if c.policy.exhausted(c.cycles) {
			c.setPhase(PhaseStopped)
			return false
		}
		if c.policy.RepeatDelay == 0 {
			c.cycleStart = cycleEnd
			if c.policy.ReverseOnRepeat {
				c.direction = c.direction.flipped()
			}
			return true
		}
		c.delayStart = cycleEnd
		c.setPhase(PhaseDelayed)
		return true
	}
	return false
}

// reanchor abandons the missed schedule and resumes from now.
func (c *Controller) reanchor(now time.Time) {
	switch c.phase {
	case PhaseDelayed:
		c.delayStart = now
	case PhaseRunning:
		c.restart = true
	}
	c.step(now)
}

// positionAt places the eased progress between the cycle's endpoints.
func (c *Controller) positionAt() float64 {
	if c.phase == PhaseIdle || !(c.target > 0) {
		return 0
	}
	tw := TweenFloat64(0, c.target)
	if c.direction == Backward {
		tw = tw.Reversed()
	}
	return tw.Evaluate(c.eased)
}

func (c *Controller) enterIdle() {
	c.direction = Forward
	c.cycles = 0
	c.restart = false
	c.rawT = 0
	c.eased = 0
	c.setPhase(PhaseIdle)
}

// Reset returns the controller to Idle, keeping its policy, easing and
// target distance. The next tick starts a fresh forward cycle.
func (c *Controller) Reset() {
	c.enterIdle()
	c.setPosition(0)
}

// Position returns the position computed by the most recent tick or update.
func (c *Controller) Position() float64 {
	return c.position
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Direction returns the direction of the current or last cycle.
func (c *Controller) Direction() Direction {
	return c.direction
}

// Progress returns the clamped time fraction and eased progress of the
// current cycle.
func (c *Controller) Progress() (rawT, eased float64) {
	return c.rawT, c.eased
}

// IsAnimating reports whether a cycle is running or pending.
func (c *Controller) IsAnimating() bool {
	return c.phase == PhaseRunning || c.phase == PhaseDelayed
}

// State returns a snapshot of the timing state.
func (c *Controller) State() State {
	return State{
		Phase:           c.phase,
		Direction:       c.direction,
		CycleStart:      c.cycleStart,
		DelayStart:      c.delayStart,
		TargetDistance:  c.target,
		CyclesCompleted: c.cycles,
		RawT:            c.rawT,
		Eased:           c.eased,
		Position:        c.position,
	}
}

// AddListener adds a callback that fires whenever the position changes.
// Returns an unsubscribe function.
func (c *Controller) AddListener(fn func()) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

// AddPhaseListener adds a callback that fires whenever the phase changes.
// Returns an unsubscribe function.
func (c *Controller) AddPhaseListener(fn func(Phase)) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.phaseListeners[id] = fn
	return func() {
		delete(c.phaseListeners, id)
	}
}

func (c *Controller) setPhase(p Phase) {
	if c.phase == p {
		return
	}
	c.phase = p
	for _, listener := range c.phaseListeners {
		listener(p)
	}
}

func (c *Controller) setPosition(pos float64) {
	if c.position == pos {
		return
	}
	c.position = pos
	for _, listener := range c.listeners {
		listener()
	}
}

// Dispose drops all listeners and returns the controller to Idle.
func (c *Controller) Dispose() {
	c.listeners = make(map[int]func())
	c.phaseListeners = make(map[int]func(Phase))
	c.enterIdle()
	c.position = 0
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
