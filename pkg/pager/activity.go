package pager

import "sync"

// Activity counts outstanding fetches for one screen. It announces
// Started when the count leaves zero and Finished when it returns to zero.
// Several cursors may share one Activity.
//
// Hooks run in the order the transitions happened and must not call Begin
// or End themselves.
type Activity struct {
	mu    sync.Mutex
	emit  sync.Mutex
	count int
	hooks activityHooks
}

// NewActivity creates an idle Activity.
func NewActivity() *Activity {
	return &Activity{}
}

// OnStarted registers a callback for the idle to loading transition.
func (a *Activity) OnStarted(fn func()) {
	a.hooks.add(&a.hooks.started, fn)
}

// OnFinished registers a callback for the loading to idle transition.
func (a *Activity) OnFinished(fn func()) {
	a.hooks.add(&a.hooks.finished, fn)
}

// Begin records one more outstanding fetch.
func (a *Activity) Begin() {
	a.mu.Lock()
	a.count++
	fire := a.count == 1
	a.emit.Lock()
	a.mu.Unlock()
	defer a.emit.Unlock()

	if fire {
		a.hooks.trigger(a.hooks.snapshot(&a.hooks.started))
	}
}

// End records that an outstanding fetch completed, failed or was dropped.
func (a *Activity) End() {
	a.mu.Lock()
	if a.count == 0 {
		a.mu.Unlock()
		return
	}
	a.count--
	fire := a.count == 0
	a.emit.Lock()
	a.mu.Unlock()
	defer a.emit.Unlock()

	if fire {
		a.hooks.trigger(a.hooks.snapshot(&a.hooks.finished))
	}
}

// Count returns the number of outstanding fetches.
func (a *Activity) Count() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.count
}

// Loading reports whether any fetch is outstanding.
func (a *Activity) Loading() bool {
	return a.Count() > 0
}

// Track runs fn between Begin and End.
func (a *Activity) Track(fn func() error) error {
	a.Begin()
	defer a.End()
	return fn()
}
