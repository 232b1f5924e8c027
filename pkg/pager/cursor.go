// Package pager implements the per-screen pagination cursor.
//
// A Cursor walks a paged listing one page at a time, accumulating results.
// At most one fetch is in flight per cursor. Reload and Close bump a
// generation counter; a fetch that completes under an older generation is
// dropped without touching state. The underlying request is not aborted.
package pager

import (
	"context"
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/rmbrowse/pkg/constants"
	"github.com/agentstation/rmbrowse/pkg/entities"
	"github.com/agentstation/rmbrowse/pkg/logging"
)

// FetchFunc loads one page of a listing.
type FetchFunc[T any] func(ctx context.Context, page int) (entities.Page[T], error)

// State is a snapshot of a cursor.
type State[T any] struct {
	Page       int   // Next page to fetch
	HasMore    bool  // False once a page without a next link arrived
	Items      []T   // Accumulated results in response order
	Fetching   bool  // A fetch for Page is outstanding
	Err        error // Error from the most recent fetch, cleared on success and reload
	Generation uint64
}

// Cursor is the pagination state machine for one listing.
type Cursor[T any] struct {
	fetch    FetchFunc[T]
	activity *Activity
	logger   zerolog.Logger
	hooks    hooks[T]

	// emit serializes hook delivery so an older generation never reaches
	// a hook after a newer one.
	emit sync.Mutex

	mu       sync.Mutex
	idle     *sync.Cond // signalled when running drops to zero
	running  int
	gen      uint64
	page     int
	hasMore  bool
	items    []T
	inFlight bool
	closed   bool
	err      error
}

// Option configures a Cursor.
type Option func(*options)

type options struct {
	activity *Activity
	logger   zerolog.Logger
}

// WithActivity makes the cursor count its fetches on a.
func WithActivity(a *Activity) Option {
	return func(o *options) {
		o.activity = a
	}
}

// WithLogger sets the cursor logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// New creates an idle cursor positioned at the first page.
func New[T any](fetch FetchFunc[T], opts ...Option) *Cursor[T] {
	o := options{logger: logging.Nop}
	for _, opt := range opts {
		opt(&o)
	}
	if o.activity == nil {
		o.activity = NewActivity()
	}
	c := &Cursor[T]{
		fetch:    fetch,
		activity: o.activity,
		logger:   logging.Component(o.logger, "pager"),
		page:     constants.FirstPage,
		hasMore:  true,
	}
	c.idle = sync.NewCond(&c.mu)
	return c
}

// OnItems registers a callback for appended items. Hooks run one delivery
// at a time and are skipped once Reload or Close made the delivery stale.
// A hook may call FetchNext or Reload but must not call Next or Wait.
func (c *Cursor[T]) OnItems(fn ItemsHook[T]) { c.hooks.OnItems(fn) }

// OnError registers a callback for failed fetches.
func (c *Cursor[T]) OnError(fn ErrorHook) { c.hooks.OnError(fn) }

// Activity returns the loading counter the cursor reports to.
func (c *Cursor[T]) Activity() *Activity { return c.activity }

// FetchNext starts fetching the next page in the background and reports
// whether it did. It does nothing when the listing is exhausted, a fetch is
// already outstanding or the cursor is closed.
func (c *Cursor[T]) FetchNext(ctx context.Context) bool {
	c.mu.Lock()
	if c.closed || !c.hasMore || c.inFlight {
		c.mu.Unlock()
		return false
	}
	c.inFlight = true
	c.running++
	gen, page := c.gen, c.page
	c.mu.Unlock()

	c.activity.Begin()
	go c.run(ctx, gen, page)
	return true
}

func (c *Cursor[T]) run(ctx context.Context, gen uint64, page int) {
	defer c.done()
	defer c.activity.End()

	result, err := c.fetch(ctx, page)

	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		c.logger.Debug().Int("page", page).Uint64("generation", gen).Msg("dropped stale page")
		return
	}
	c.inFlight = false
	if err != nil {
		c.err = err
		c.mu.Unlock()
		c.logger.Debug().Err(err).Int("page", page).Msg("page fetch failed")
		c.deliver(func() { c.hooks.triggerError(err, c.live(gen)) })
		return
	}
	c.err = nil
	c.page++
	c.hasMore = result.HasNext()
	c.items = append(c.items, result.Results...)
	c.mu.Unlock()

	items := slices.Clone(result.Results)
	c.deliver(func() { c.hooks.triggerItems(items, page, c.live(gen)) })
}

// deliver runs fn under the emit lock. fn re-checks gen before each hook.
func (c *Cursor[T]) deliver(fn func()) {
	c.emit.Lock()
	defer c.emit.Unlock()
	fn()
}

// live returns a check reporting whether gen is still the current generation.
func (c *Cursor[T]) live(gen uint64) func() bool {
	return func() bool {
		c.mu.Lock()
		defer c.mu.Unlock()
		return gen == c.gen
	}
}

func (c *Cursor[T]) done() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.running--
	if c.running == 0 {
		c.idle.Broadcast()
	}
}

// Reload drops any outstanding fetch, resets to the first page with no
// items, and starts fetching it.
func (c *Cursor[T]) Reload(ctx context.Context) bool {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return false
	}
	c.gen++
	c.page = constants.FirstPage
	c.hasMore = true
	c.items = nil
	c.inFlight = false
	c.err = nil
	c.mu.Unlock()

	return c.FetchNext(ctx)
}

// Close stops the cursor. An outstanding fetch still runs to completion
// but its result is discarded.
func (c *Cursor[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.gen++
	c.inFlight = false
}

// Closed reports whether Close has been called.
func (c *Cursor[T]) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// Wait blocks until no fetch started by this cursor is running.
func (c *Cursor[T]) Wait() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for c.running > 0 {
		c.idle.Wait()
	}
}

// Next fetches the next page and waits for it. It returns false with a nil
// error when there was nothing to fetch.
func (c *Cursor[T]) Next(ctx context.Context) (bool, error) {
	if !c.FetchNext(ctx) {
		return false, nil
	}
	c.Wait()
	st := c.State()
	return st.Err == nil, st.Err
}

// State returns a snapshot of the cursor.
func (c *Cursor[T]) State() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State[T]{
		Page:       c.page,
		HasMore:    c.hasMore,
		Items:      slices.Clone(c.items),
		Fetching:   c.inFlight,
		Err:        c.err,
		Generation: c.gen,
	}
}

// Items returns the accumulated items.
func (c *Cursor[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.items)
}

// HasMore reports whether another page can be fetched.
func (c *Cursor[T]) HasMore() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hasMore
}
