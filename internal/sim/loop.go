package sim

import (
	"sync"
	"time"
)

// Loop drives a Session from a timer. Exactly one callback is scheduled at a
// time and it only reschedules itself while the session is running, so
// stopping lets an in-flight tick finish and then ends the loop. Ticks and
// user actions share one mutex and never overlap.
type Loop struct {
	mu       sync.Mutex
	s        *Session
	interval time.Duration
	timer    *time.Timer
	epoch    uint64
	onTick   func(View)
}

// NewLoop wraps s. Non-positive intervals default to one millisecond.
func NewLoop(s *Session, interval time.Duration) *Loop {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return &Loop{s: s, interval: interval}
}

// OnTick registers fn to receive the state after every timer-driven step.
// fn runs outside the loop's lock.
func (l *Loop) OnTick(fn func(View)) {
	l.mu.Lock()
	l.onTick = fn
	l.mu.Unlock()
}

// Start begins the tick loop. Starting a running loop is a no-op.
func (l *Loop) Start() { l.Do(func(s *Session) { s.Start() }) }

// Stop halts the tick loop.
func (l *Loop) Stop() { l.Do(func(s *Session) { s.Stop() }) }

// Toggle starts a stopped loop or stops a running one.
func (l *Loop) Toggle() { l.Do(func(s *Session) { s.Toggle() }) }

// Running reports whether the loop is scheduled to tick.
func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s.Running()
}

// View returns the current session state.
func (l *Loop) View() View {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s.View()
}

// Do runs fn against the session on the same serialized path as ticks and
// returns the resulting state. If fn starts or stops the session the timer
// is scheduled or cancelled to match.
func (l *Loop) Do(fn func(*Session)) View {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.s)
	l.sync()
	return l.s.View()
}

// Close stops the loop and releases the timer.
func (l *Loop) Close() { l.Stop() }

// sync aligns the scheduled callback with the session's running flag.
// Callers hold l.mu.
func (l *Loop) sync() {
	switch {
	case l.s.Running() && l.timer == nil:
		l.epoch++
		l.schedule()
	case !l.s.Running() && l.timer != nil:
		l.timer.Stop()
		l.timer = nil
		l.epoch++
	}
}

func (l *Loop) schedule() {
	epoch := l.epoch
	l.timer = time.AfterFunc(l.interval, func() { l.tick(epoch) })
}

func (l *Loop) tick(epoch uint64) {
	l.mu.Lock()
	if epoch != l.epoch || !l.s.Tick() {
		l.mu.Unlock()
		return
	}
	view := l.s.View()
	l.schedule()
	hook := l.onTick
	l.mu.Unlock()

	if hook != nil {
		hook(view)
	}
}
