package animation

import (
	"sync"
	"time"

	"github.com/go-drift/easelab/pkg/errors"
)

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
)

// Ticker calls a callback on each frame while active.
//
// Tickers are driven by the host's frame source via [StepTickers]; nothing in
// this package starts a goroutine or a timer.
type Ticker struct {
	callback func(now time.Time)
	isActive bool
	start    time.Time
}

// NewTicker creates a new ticker with the given callback.
func NewTicker(callback func(now time.Time)) *Ticker {
	return &Ticker{
		callback: callback,
	}
}

// TickerFor returns a ticker that advances c every frame and hands the new
// position to publish. publish may be nil.
func TickerFor(c *Controller, publish func(position float64)) *Ticker {
	return NewTicker(func(now time.Time) {
		pos := c.Tick(now)
		if publish != nil {
			publish(pos)
		}
	})
}

// Start activates the ticker.
func (t *Ticker) Start() {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = Now()
	activeTickers[t] = struct{}{}
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	if !t.isActive {
		return
	}
	t.isActive = false
	delete(activeTickers, t)
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	if !t.isActive {
		return 0
	}
	return Now().Sub(t.start)
}

// StepTickers advances all active tickers with the current clock time.
// This should be called once per frame by the host.
//
// A panicking callback is reported to the errors handler and does not
// prevent the remaining tickers from running.
func StepTickers() {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	// Copy so callbacks can start or stop tickers.
	tickers := make([]*Ticker, 0, len(activeTickers))
	for ticker := range activeTickers {
		tickers = append(tickers, ticker)
	}
	tickerMu.Unlock()

	now := Now()
	for _, ticker := range tickers {
		if ticker.IsActive() && ticker.callback != nil {
			runTicker(ticker, now)
		}
	}
}

func runTicker(t *Ticker, now time.Time) {
	defer errors.Recover("animation.StepTickers")
	t.callback(now)
}

// HasActiveTickers returns true if any tickers are active.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}
