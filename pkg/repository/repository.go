// Package repository is the single source of truth for entity pages.
//
// A repository answers page requests from its cache when it can and from
// its remote source otherwise, storing every successful page under a key
// such as "CharactersPage3". Concurrent requests for the same uncached page
// share one network call. By-id and filtered fetches always go to the
// source and are never cached. Errors are returned as the source produced
// them; nothing is retried and failed fetches leave the cache untouched.
//
// Construct one repository per kind at startup and share it.
package repository

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/agentstation/rmbrowse/pkg/cache"
	"github.com/agentstation/rmbrowse/pkg/entities"
	"github.com/agentstation/rmbrowse/pkg/errors"
	"github.com/agentstation/rmbrowse/pkg/logging"
)

// Option configures a repository.
type Option func(*options)

type options struct {
	logger zerolog.Logger
}

// WithLogger sets the repository logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func applyOptions(opts []Option) options {
	o := options{logger: logging.Nop}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// pages is the cache-first page store shared by every kind.
type pages[T any] struct {
	kind   entities.Kind
	cache  *cache.Cache[entities.Page[T]]
	group  singleflight.Group
	logger zerolog.Logger
	base   zerolog.Logger // untagged, carried on the fetch context
	fetch  func(ctx context.Context, page int) (entities.Page[T], error)
}

func newPages[T any](kind entities.Kind, o options, fetch func(context.Context, int) (entities.Page[T], error)) *pages[T] {
	return &pages[T]{
		kind:   kind,
		cache:  cache.New[entities.Page[T]](),
		logger: logging.Component(o.logger, "repository").With().Str("kind", kind.String()).Logger(),
		base:   o.logger,
		fetch:  fetch,
	}
}

// get returns page n from the cache or, on a miss, from the source.
// The shared fetch runs detached from any single caller's cancellation;
// a caller whose ctx ends stops waiting and gets ctx.Err().
func (p *pages[T]) get(ctx context.Context, n int) (entities.Page[T], error) {
	if err := validatePage(n); err != nil {
		return entities.Page[T]{}, err
	}

	key := p.kind.PageKey(n)
	if cached, ok := p.cache.Get(key); ok {
		p.logger.Debug().Int("page", n).Msg("cache hit")
		return cached.Clone(), nil
	}

	shared := logging.WithLogger(context.WithoutCancel(ctx), &p.base)
	shared = logging.WithOperation(logging.WithPage(logging.WithKind(shared, p.kind.String()), n), "fetch_page")
	ch := p.group.DoChan(key, func() (any, error) {
		if cached, ok := p.cache.Get(key); ok {
			return cached, nil
		}
		p.logger.Debug().Int("page", n).Msg("cache miss")

		page, err := p.fetch(shared, n)
		if err != nil {
			return nil, err
		}
		p.cache.Set(key, page)
		return page, nil
	})

	select {
	case <-ctx.Done():
		return entities.Page[T]{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return entities.Page[T]{}, res.Err
		}
		if res.Shared {
			p.logger.Trace().Int("page", n).Msg("joined in-flight fetch")
		}
		return res.Val.(entities.Page[T]).Clone(), nil
	}
}

// cached reports whether page n is in the cache.
func (p *pages[T]) cached(n int) bool {
	_, ok := p.cache.Get(p.kind.PageKey(n))
	return ok
}

func (p *pages[T]) stats() cache.Stats {
	return p.cache.GetStats()
}

func validatePage(page int) error {
	if page < 1 {
		return errors.NewValidationError("page", page, "must be a positive integer")
	}
	return nil
}

func validateIDs(ids []int) error {
	for _, id := range ids {
		if id < 1 {
			return errors.NewValidationError("ids", id, "must be positive integers")
		}
	}
	return nil
}
