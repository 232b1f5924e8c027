package repository

import (
	"context"

	"github.com/agentstation/rmbrowse/pkg/cache"
	"github.com/agentstation/rmbrowse/pkg/entities"
)

// EpisodeSource is the remote side of the episode repository.
type EpisodeSource interface {
	FetchPage(ctx context.Context, filter entities.EpisodeFilter) (entities.Page[entities.Episode], error)
	FetchByIDs(ctx context.Context, ids []int) ([]entities.Episode, error)
}

// Episodes serves episode pages.
type Episodes struct {
	src   EpisodeSource
	pages *pages[entities.Episode]
}

// NewEpisodes creates the episode repository over src.
func NewEpisodes(src EpisodeSource, opts ...Option) *Episodes {
	r := &Episodes{src: src}
	r.pages = newPages(entities.KindEpisodes, applyOptions(opts), func(ctx context.Context, n int) (entities.Page[entities.Episode], error) {
		return src.FetchPage(ctx, entities.EpisodeFilter{Page: &n})
	})
	return r
}

// FetchPage returns page n of the unfiltered listing, cached after the first success.
func (r *Episodes) FetchPage(ctx context.Context, page int) (entities.Page[entities.Episode], error) {
	return r.pages.get(ctx, page)
}

// FetchByIDs returns the episodes with the given ids. It is never cached.
func (r *Episodes) FetchByIDs(ctx context.Context, ids []int) ([]entities.Episode, error) {
	if err := validateIDs(ids); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []entities.Episode{}, nil
	}
	return r.src.FetchByIDs(ctx, ids)
}

// FetchFiltered returns the episodes whose code matches season, e.g. "s01",
// with no page parameter. A nil season sends no filter. It is never cached.
func (r *Episodes) FetchFiltered(ctx context.Context, season *string) (entities.Page[entities.Episode], error) {
	return r.src.FetchPage(ctx, entities.EpisodeFilter{Episode: season})
}

// FetchFilteredPage is FetchFiltered with the full episode filter.
func (r *Episodes) FetchFilteredPage(ctx context.Context, filter entities.EpisodeFilter) (entities.Page[entities.Episode], error) {
	if err := filter.Validate(); err != nil {
		return entities.Page[entities.Episode]{}, err
	}
	return r.src.FetchPage(ctx, filter)
}

// IsCached reports whether page n is already cached.
func (r *Episodes) IsCached(page int) bool { return r.pages.cached(page) }

// Stats returns cache statistics.
func (r *Episodes) Stats() cache.Stats { return r.pages.stats() }
