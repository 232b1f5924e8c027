package browse_test

import (
	"context"
	"fmt"
	"sync"

	"github.com/agentstation/rmbrowse/pkg/entities"
)

func pageInfo(page, pages, size int) entities.Info {
	info := entities.Info{Count: pages * size, Pages: pages}
	if page < pages {
		next := fmt.Sprintf("?page=%d", page+1)
		info.Next = &next
	}
	return info
}

type characterRepo struct {
	mu       sync.Mutex
	pages    int
	size     int
	err      error
	requests []int
	filters  []entities.CharacterFilter
	byIDs    [][]int
}

func (r *characterRepo) FetchPage(_ context.Context, page int) (entities.Page[entities.Character], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, page)
	if r.err != nil {
		return entities.Page[entities.Character]{}, r.err
	}
	results := make([]entities.Character, r.size)
	for i := range results {
		results[i] = entities.Character{ID: (page-1)*r.size + i + 1}
	}
	return entities.Page[entities.Character]{Info: pageInfo(page, r.pages, r.size), Results: results}, nil
}

func (r *characterRepo) FetchByIDs(_ context.Context, ids []int) ([]entities.Character, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byIDs = append(r.byIDs, ids)
	out := make([]entities.Character, len(ids))
	for i, id := range ids {
		out[i] = entities.Character{
			ID:      id,
			Episode: []string{"https://rickandmortyapi.com/api/episode/1", "https://rickandmortyapi.com/api/episode/2"},
		}
	}
	return out, nil
}

func (r *characterRepo) FetchFiltered(_ context.Context, filter entities.CharacterFilter) (entities.Page[entities.Character], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.filters = append(r.filters, filter)
	page := *filter.Page
	return entities.Page[entities.Character]{
		Info:    pageInfo(page, 2, 1),
		Results: []entities.Character{{ID: page}},
	}, nil
}

type episodeRepo struct {
	mu       sync.Mutex
	pages    int
	size     int
	err      error
	requests []int
	seasons  []*string
	gate     chan struct{}
}

func (r *episodeRepo) FetchPage(_ context.Context, page int) (entities.Page[entities.Episode], error) {
	r.mu.Lock()
	r.requests = append(r.requests, page)
	gate := r.gate
	r.mu.Unlock()
	if gate != nil {
		<-gate
	}
	if r.err != nil {
		return entities.Page[entities.Episode]{}, r.err
	}
	results := make([]entities.Episode, r.size)
	for i := range results {
		results[i] = entities.Episode{
			ID:         (page-1)*r.size + i + 1,
			Characters: []string{"https://rickandmortyapi.com/api/character/1"},
		}
	}
	return entities.Page[entities.Episode]{Info: pageInfo(page, r.pages, r.size), Results: results}, nil
}

func (r *episodeRepo) FetchByIDs(_ context.Context, ids []int) ([]entities.Episode, error) {
	out := make([]entities.Episode, len(ids))
	for i, id := range ids {
		out[i] = entities.Episode{ID: id, Characters: []string{
			"https://rickandmortyapi.com/api/character/1",
			"https://rickandmortyapi.com/api/character/2",
			"https://rickandmortyapi.com/api/character/x",
		}}
	}
	return out, nil
}

func (r *episodeRepo) FetchFiltered(_ context.Context, season *string) (entities.Page[entities.Episode], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seasons = append(r.seasons, season)
	next := "?page=2"
	return entities.Page[entities.Episode]{
		Info:    entities.Info{Count: 11, Pages: 1, Next: &next},
		Results: []entities.Episode{{ID: 100, Code: "S01E01"}, {ID: 101, Code: "S01E02"}},
	}, nil
}

func (r *episodeRepo) pageRequests() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.requests...)
}

type locationRepo struct {
	mu       sync.Mutex
	pages    int
	size     int
	err      error
	requests []int
	filters  []entities.LocationFilter
}

func (r *locationRepo) FetchPage(_ context.Context, page int) (entities.Page[entities.Location], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, page)
	if r.err != nil {
		return entities.Page[entities.Location]{}, r.err
	}
	results := make([]entities.Location, r.size)
	for i := range results {
		results[i] = entities.Location{ID: (page-1)*r.size + i + 1}
	}
	return entities.Page[entities.Location]{Info: pageInfo(page, r.pages, r.size), Results: results}, nil
}

func (r *locationRepo) FetchFiltered(_ context.Context, filter entities.LocationFilter) (entities.Page[entities.Location], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.filters = append(r.filters, filter)
	return entities.Page[entities.Location]{
		Info:    entities.Info{Count: 1, Pages: 1},
		Results: []entities.Location{{ID: 9}},
	}, nil
}
