package repository_test

import (
	"context"
	"fmt"
	"sync"

	"github.com/agentstation/rmbrowse/pkg/entities"
	"github.com/agentstation/rmbrowse/pkg/logging"
)

// fakeCharacters serves 20 characters per page over `pages` pages.
type fakeCharacters struct {
	mu       sync.Mutex
	pages    int
	err      error
	gate     chan struct{}
	pageHits map[int]int
	filters  []entities.CharacterFilter
	idCalls  [][]int
}

func newFakeCharacters(pages int) *fakeCharacters {
	return &fakeCharacters{pages: pages, pageHits: map[int]int{}}
}

func (f *fakeCharacters) FetchPage(ctx context.Context, filter entities.CharacterFilter) (entities.Page[entities.Character], error) {
	f.mu.Lock()
	page := 1
	if filter.Page != nil {
		page = *filter.Page
	}
	f.pageHits[page]++
	f.filters = append(f.filters, filter)
	err, gate := f.err, f.gate
	f.mu.Unlock()

	if l, ok := logging.Lookup(ctx); ok {
		l.Debug().Msg("source fetch")
	}
	if gate != nil {
		<-gate
	}
	if err != nil {
		return entities.Page[entities.Character]{}, err
	}
	return characterPage(page, f.pages), nil
}

func (f *fakeCharacters) FetchByIDs(_ context.Context, ids []int) ([]entities.Character, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.idCalls = append(f.idCalls, ids)
	if f.err != nil {
		return nil, f.err
	}
	out := make([]entities.Character, len(ids))
	for i, id := range ids {
		out[i] = entities.Character{ID: id}
	}
	return out, nil
}

func (f *fakeCharacters) hits(page int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pageHits[page]
}

func characterPage(page, total int) entities.Page[entities.Character] {
	results := make([]entities.Character, 20)
	for i := range results {
		results[i] = entities.Character{ID: (page-1)*20 + i + 1, Name: fmt.Sprintf("c%d", i)}
	}
	info := entities.Info{Count: total * 20, Pages: total}
	if page < total {
		next := fmt.Sprintf("https://rickandmortyapi.com/api/character?page=%d", page+1)
		info.Next = &next
	}
	return entities.Page[entities.Character]{Info: info, Results: results}
}

type fakeEpisodes struct {
	mu      sync.Mutex
	filters []entities.EpisodeFilter
}

func (f *fakeEpisodes) FetchPage(_ context.Context, filter entities.EpisodeFilter) (entities.Page[entities.Episode], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filters = append(f.filters, filter)
	return entities.Page[entities.Episode]{
		Info:    entities.Info{Count: 1, Pages: 1},
		Results: []entities.Episode{{ID: len(f.filters), Code: "S01E01"}},
	}, nil
}

func (f *fakeEpisodes) FetchByIDs(_ context.Context, ids []int) ([]entities.Episode, error) {
	out := make([]entities.Episode, len(ids))
	for i, id := range ids {
		out[i] = entities.Episode{ID: id}
	}
	return out, nil
}

type fakeLocations struct {
	mu      sync.Mutex
	filters []entities.LocationFilter
}

func (f *fakeLocations) FetchPage(_ context.Context, filter entities.LocationFilter) (entities.Page[entities.Location], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filters = append(f.filters, filter)
	return entities.Page[entities.Location]{
		Info:    entities.Info{Count: 1, Pages: 1},
		Results: []entities.Location{{ID: 1}},
	}, nil
}
