package repository

import (
	"context"

	"github.com/agentstation/rmbrowse/pkg/cache"
	"github.com/agentstation/rmbrowse/pkg/entities"
)

// LocationSource is the remote side of the location repository.
type LocationSource interface {
	FetchPage(ctx context.Context, filter entities.LocationFilter) (entities.Page[entities.Location], error)
}

// Locations serves location pages.
type Locations struct {
	src   LocationSource
	pages *pages[entities.Location]
}

// NewLocations creates the location repository over src.
func NewLocations(src LocationSource, opts ...Option) *Locations {
	r := &Locations{src: src}
	r.pages = newPages(entities.KindLocations, applyOptions(opts), func(ctx context.Context, n int) (entities.Page[entities.Location], error) {
		return src.FetchPage(ctx, entities.LocationFilter{Page: &n})
	})
	return r
}

// FetchPage returns page n of the unfiltered listing, cached after the first success.
func (r *Locations) FetchPage(ctx context.Context, page int) (entities.Page[entities.Location], error) {
	return r.pages.get(ctx, page)
}

// FetchFiltered returns a page of locations matching filter. It is never cached.
func (r *Locations) FetchFiltered(ctx context.Context, filter entities.LocationFilter) (entities.Page[entities.Location], error) {
	if err := filter.Validate(); err != nil {
		return entities.Page[entities.Location]{}, err
	}
	return r.src.FetchPage(ctx, filter)
}

// IsCached reports whether page n is already cached.
func (r *Locations) IsCached(page int) bool { return r.pages.cached(page) }

// Stats returns cache statistics.
func (r *Locations) Stats() cache.Stats { return r.pages.stats() }
