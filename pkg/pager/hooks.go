package pager

import "sync"

// Hook function types for cursor events
type (
	// ItemsHook is called with the items a successful fetch appended and
	// the page they came from.
	ItemsHook[T any] func(items []T, page int)

	// ErrorHook is called when a fetch fails. The cursor state is unchanged.
	ErrorHook func(err error)
)

// hooks manages event callbacks for a cursor
type hooks[T any] struct {
	mu      sync.RWMutex
	onItems []ItemsHook[T]
	onError []ErrorHook
}

// OnItems registers a callback for appended items
func (h *hooks[T]) OnItems(fn ItemsHook[T]) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onItems = append(h.onItems, fn)
}

// OnError registers a callback for failed fetches
func (h *hooks[T]) OnError(fn ErrorHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onError = append(h.onError, fn)
}

// triggerItems calls each items hook while live still reports true.
func (h *hooks[T]) triggerItems(items []T, page int, live func() bool) {
	h.mu.RLock()
	fns := append([]ItemsHook[T](nil), h.onItems...)
	h.mu.RUnlock()
	for _, fn := range fns {
		if !live() {
			return
		}
		fn(items, page)
	}
}

// triggerError calls each error hook while live still reports true.
func (h *hooks[T]) triggerError(err error, live func() bool) {
	h.mu.RLock()
	fns := append([]ErrorHook(nil), h.onError...)
	h.mu.RUnlock()
	for _, fn := range fns {
		if !live() {
			return
		}
		fn(err)
	}
}

// activityHooks manages loading transition callbacks
type activityHooks struct {
	mu       sync.RWMutex
	started  []func()
	finished []func()
}

func (h *activityHooks) add(list *[]func(), fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	*list = append(*list, fn)
}

func (h *activityHooks) snapshot(list *[]func()) []func() {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]func(){}, *list...)
}

func (h *activityHooks) trigger(fns []func()) {
	for _, fn := range fns {
		fn()
	}
}
