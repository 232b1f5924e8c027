package repository

import (
	"context"

	"github.com/agentstation/rmbrowse/pkg/cache"
	"github.com/agentstation/rmbrowse/pkg/entities"
)

// CharacterSource is the remote side of the character repository.
type CharacterSource interface {
	FetchPage(ctx context.Context, filter entities.CharacterFilter) (entities.Page[entities.Character], error)
	FetchByIDs(ctx context.Context, ids []int) ([]entities.Character, error)
}

// Characters serves character pages.
type Characters struct {
	src   CharacterSource
	pages *pages[entities.Character]
}

// NewCharacters creates the character repository over src.
func NewCharacters(src CharacterSource, opts ...Option) *Characters {
	r := &Characters{src: src}
	r.pages = newPages(entities.KindCharacters, applyOptions(opts), func(ctx context.Context, n int) (entities.Page[entities.Character], error) {
		return src.FetchPage(ctx, entities.CharacterFilter{Page: &n})
	})
	return r
}

// FetchPage returns page n of the unfiltered listing, cached after the first success.
func (r *Characters) FetchPage(ctx context.Context, page int) (entities.Page[entities.Character], error) {
	return r.pages.get(ctx, page)
}

// FetchByIDs returns the characters with the given ids. It is never cached.
func (r *Characters) FetchByIDs(ctx context.Context, ids []int) ([]entities.Character, error) {
	if err := validateIDs(ids); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []entities.Character{}, nil
	}
	return r.src.FetchByIDs(ctx, ids)
}

// FetchFiltered returns a page of characters matching filter. It is never cached.
func (r *Characters) FetchFiltered(ctx context.Context, filter entities.CharacterFilter) (entities.Page[entities.Character], error) {
	if err := filter.Validate(); err != nil {
		return entities.Page[entities.Character]{}, err
	}
	return r.src.FetchPage(ctx, filter)
}

// IsCached reports whether page n is already cached.
func (r *Characters) IsCached(page int) bool { return r.pages.cached(page) }

// Stats returns cache statistics.
func (r *Characters) Stats() cache.Stats { return r.pages.stats() }
