package cmd

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-drift/easelab/pkg/animation"
	"github.com/go-drift/easelab/pkg/easing"
	"github.com/go-drift/easelab/pkg/track"
)

func init() {
	RegisterCommand(&Command{
		Name:  "play",
		Short: "Play an easing as motion along a track",
		Long: `Drive a ball along a track with the given easing and print one line
per frame. Press Ctrl+C to stop.

Timing defaults come from easelab.yaml (or 1.5s cycles repeating forever,
reversing each time, with a 0.5s pause).

Flags:
  --duration S   Cycle length in seconds
  --delay S      Pause between cycles in seconds
  --width W      Container width in pixels
  --frames N     Stop after N frames (0 runs until stopped)
  --fps F        Frames per second (default 30)
  --no-repeat    Play a single cycle
  --no-reverse   Restart from the beginning instead of reversing`,
		Usage: "easelab play [id] [--duration S] [--width W] [--frames N] [--fps F] [--no-repeat] [--no-reverse] [--delay S]",
		Run:   runPlay,
	})
}

const defaultFPS = 30

type playOptions struct {
	id        string
	duration  float64
	delay     float64
	hasDelay  bool
	width     float64
	frames    int
	fps       float64
	noRepeat  bool
	noReverse bool
}

func parsePlayArgs(args []string) (playOptions, error) {
	opts := playOptions{fps: defaultFPS}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, inline, hasInline, isFlag := splitFlag(arg)
		if !isFlag {
			if opts.id != "" {
				return opts, fmt.Errorf("unexpected argument %q", arg)
			}
			opts.id = arg
			continue
		}
		var err error
		switch name {
		case "--duration":
			opts.duration, err = floatFlag(args, &i, name, inline, hasInline)
			if err == nil && !(opts.duration > 0) {
				err = fmt.Errorf("--duration must be positive")
			}
		case "--delay":
			opts.delay, err = floatFlag(args, &i, name, inline, hasInline)
			opts.hasDelay = true
			if err == nil && opts.delay < 0 {
				err = fmt.Errorf("--delay must not be negative")
			}
		case "--width":
			opts.width, err = floatFlag(args, &i, name, inline, hasInline)
		case "--frames":
			opts.frames, err = intFlag(args, &i, name, inline, hasInline)
			if err == nil && opts.frames < 0 {
				err = fmt.Errorf("--frames must not be negative")
			}
		case "--fps":
			opts.fps, err = floatFlag(args, &i, name, inline, hasInline)
			if err == nil && !(opts.fps > 0 && opts.fps <= 240) {
				err = fmt.Errorf("--fps must be in (0, 240]")
			}
		case "--no-repeat":
			opts.noRepeat = true
		case "--no-reverse":
			opts.noReverse = true
		default:
			err = fmt.Errorf("unknown flag %s", name)
		}
		if err != nil {
			return opts, err
		}
	}
	return opts, nil
}

func runPlay(args []string) error {
	opts, err := parsePlayArgs(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	e := cfg.Easing
	if opts.id != "" {
		e = easing.LookupOrDefault(opts.id)
	}

	policy := cfg.Policy
	if opts.duration > 0 {
		policy.Duration = time.Duration(math.Round(opts.duration * float64(time.Second)))
	}
	if opts.hasDelay {
		policy.RepeatDelay = time.Duration(math.Round(opts.delay * float64(time.Second)))
	}
	if opts.noRepeat {
		policy.Repeat = 0
	}
	if opts.noReverse {
		policy.ReverseOnRepeat = false
	}

	width := cfg.TrackWidth
	if opts.width != 0 {
		width = opts.width
	}

	ctrl, err := animation.NewController(policy, e)
	if err != nil {
		return err
	}
	defer ctrl.Dispose()
	ctrl.SetTargetDistance(cfg.Track.TravelDistance(width))
	if !cfg.Track.Fits(width) {
		fmt.Fprintf(os.Stderr, "Warning: a %gpx element does not fit a %gpx track; the ball stays put\n",
			cfg.Track.ElementSize, width)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	interval := time.Duration(float64(time.Second) / opts.fps)
	fmt.Fprintf(stdout, "%s  %gs cycles, track %gpx\n", e.Name, policy.Duration.Seconds(), width)
	return play(ctx, ctrl, newTrackLine(cfg.Track, width), opts.frames, interval)
}

// play ticks ctrl on a wall-clock frame loop until ctx is cancelled, the
// frame budget is used up, or the motion stops.
func play(ctx context.Context, ctrl *animation.Controller, line trackLine, frames int, interval time.Duration) error {
	var n int
	ticker := animation.TickerFor(ctrl, func(pos float64) {
		n++
		fmt.Fprintln(stdout, line.render(pos, ctrl.Phase(), ctrl.Direction()))
	})
	ticker.Start()
	defer ticker.Stop()

	frameClock := time.NewTicker(interval)
	defer frameClock.Stop()

	animation.StepTickers()
	for {
		if frames > 0 && n >= frames {
			return nil
		}
		if ctrl.Phase() == animation.PhaseStopped {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		case <-frameClock.C:
			animation.StepTickers()
		}
	}
}

// pxPerCell is how many track pixels one terminal column covers.
const pxPerCell = 8

// trackLine draws a track as one line of text.
type trackLine struct {
	track track.Track
	width float64
	cells int
}

func newTrackLine(t track.Track, width float64) trackLine {
	cells := int(math.Round(width / pxPerCell))
	return trackLine{track: t, width: width, cells: max(cells, 4)}
}

// cell returns the column holding the element's center. Positions outside
// the track are clipped to its ends.
func (l trackLine) cell(position float64) int {
	if !(l.width > 0) {
		return 0
	}
	center := l.track.Offset(position) + l.track.ElementSize/2
	c := int(center / l.width * float64(l.cells))
	return min(max(c, 0), l.cells-1)
}

func (l trackLine) render(position float64, phase animation.Phase, dir animation.Direction) string {
	row := []byte(strings.Repeat("-", l.cells))
	row[l.cell(position)] = 'o'
	return fmt.Sprintf("|%s| %7.1f %-8s %s", row, position, phase, dir)
}
