// Package loop drives the simulation in real time: a cancellable repeating
// task that performs one update and one render per firing while active.
package loop

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultInterval is one frame at 60 frames per second.
const DefaultInterval = time.Second / 60

// Frame performs one update followed by one render. dt is the wall time
// elapsed since the previous frame or since activation.
type Frame func(dt time.Duration)

// Option configures a Driver.
type Option func(*Driver)

// WithClock replaces the system clock, typically with a MockClock in tests.
func WithClock(c Clock) Option {
	return func(d *Driver) { d.clock = c }
}

// WithInterval sets the frame interval.
func WithInterval(interval time.Duration) Option {
	return func(d *Driver) {
		if interval > 0 {
			d.interval = interval
		}
	}
}

// WithActivateHook sets a function run on every inactive-to-active edge,
// before the first frame.
func WithActivateHook(fn func()) Option {
	return func(d *Driver) { d.onActivate = fn }
}

// WithLogger sets the logger used for lifecycle messages.
func WithLogger(l *log.Logger) Option {
	return func(d *Driver) { d.logger = l }
}

// Driver repeatedly calls a Frame while active.
//
// Frames and posted intents share one lock, so the simulation they touch
// is never entered concurrently. Deactivate must not be called from inside a
// frame or a posted function.
type Driver struct {
	clock      Clock
	interval   time.Duration
	frame      Frame
	onActivate func()
	logger     *log.Logger

	step sync.Mutex // serializes frames and posted intents
	last time.Time  // guarded by step

	state  sync.Mutex // guards cancel and done
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates an inactive driver.
func New(frame Frame, opts ...Option) *Driver {
	d := &Driver{
		clock:    SystemClock{},
		interval: DefaultInterval,
		frame:    frame,
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Interval returns the frame interval.
func (d *Driver) Interval() time.Duration {
	return d.interval
}

// Active reports whether the repeating task is running.
func (d *Driver) Active() bool {
	d.state.Lock()
	defer d.state.Unlock()
	return d.activeLocked()
}

func (d *Driver) activeLocked() bool {
	if d.done == nil {
		return false
	}
	select {
	case <-d.done:
		return false
	default:
		return true
	}
}

// Activate starts the repeating task. Calling it while active is a no-op.
// On the activation edge the activate hook runs and the elapsed-time baseline
// is reset, so the first frame never sees the inactive period as dt.
// Cancelling ctx stops the task like Deactivate.
func (d *Driver) Activate(ctx context.Context) {
	d.state.Lock()
	defer d.state.Unlock()
	if d.activeLocked() {
		return
	}

	d.step.Lock()
	if d.onActivate != nil {
		d.onActivate()
	}
	d.last = d.clock.Now()
	d.step.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	ticker := d.clock.NewTicker(d.interval)
	d.cancel, d.done = cancel, done

	d.logger.Debug("loop activated", "interval", d.interval)
	go d.run(ctx, ticker, done)
}

// Deactivate cancels the repeating task and waits for it to exit. A frame in
// progress completes first; no frame starts after Deactivate returns.
// Calling it while inactive is a no-op.
func (d *Driver) Deactivate() {
	d.state.Lock()
	cancel, done := d.cancel, d.done
	d.cancel, d.done = nil, nil
	d.state.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	d.logger.Debug("loop deactivated")
}

// Post runs fn between frames, never concurrently with one. It works whether
// or not the driver is active.
func (d *Driver) Post(fn func()) {
	d.step.Lock()
	defer d.step.Unlock()
	fn()
}

func (d *Driver) run(ctx context.Context, ticker Ticker, done chan struct{}) {
	defer close(done)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			if !d.tick(ctx) {
				return
			}
		}
	}
}

// tick runs one frame unless the task was cancelled while waiting for the lock.
func (d *Driver) tick(ctx context.Context) bool {
	d.step.Lock()
	defer d.step.Unlock()
	if ctx.Err() != nil {
		return false
	}
	now := d.clock.Now()
	dt := now.Sub(d.last)
	d.last = now
	d.frame(dt)
	return true
}
