package browse

import (
	"context"
	"sync"

	"github.com/agentstation/rmbrowse/pkg/entities"
	"github.com/agentstation/rmbrowse/pkg/pager"
)

// EpisodeList is the episode screen: the paginated listing, or the
// episodes of one season when a season is selected. A season listing is
// a single page.
type EpisodeList struct {
	repo   EpisodeRepository
	cursor *pager.Cursor[entities.Episode]

	mu     sync.RWMutex
	season *entities.Season
}

// NewEpisodeList creates the episode screen with no season selected.
func NewEpisodeList(repo EpisodeRepository, opts ...Option) *EpisodeList {
	l := &EpisodeList{repo: repo}
	l.cursor = pager.New(l.fetch, applyOptions(opts).cursorOptions()...)
	return l
}

func (l *EpisodeList) fetch(ctx context.Context, page int) (entities.Page[entities.Episode], error) {
	season, filtered := l.Season()
	if !filtered {
		return l.repo.FetchPage(ctx, page)
	}

	token := season.String()
	result, err := l.repo.FetchFiltered(ctx, &token)
	if err != nil {
		return result, err
	}
	result.Info.Next = nil
	return result, nil
}

// Cursor returns the cursor driving the list.
func (l *EpisodeList) Cursor() *pager.Cursor[entities.Episode] {
	return l.cursor
}

// Season returns the selected season, if any.
func (l *EpisodeList) Season() (entities.Season, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.season == nil {
		return "", false
	}
	return *l.season, true
}

// SetSeason selects s and reloads. Selecting the current season, or any
// season once the cursor is closed, does nothing.
func (l *EpisodeList) SetSeason(ctx context.Context, s entities.Season) bool {
	l.mu.Lock()
	if l.cursor.Closed() || (l.season != nil && *l.season == s) {
		l.mu.Unlock()
		return false
	}
	l.season = &s
	l.mu.Unlock()

	return l.cursor.Reload(ctx)
}

// ClearSeason returns to the unfiltered listing and reloads.
// It does nothing when no season is selected or the cursor is closed.
func (l *EpisodeList) ClearSeason(ctx context.Context) bool {
	l.mu.Lock()
	if l.season == nil || l.cursor.Closed() {
		l.mu.Unlock()
		return false
	}
	l.season = nil
	l.mu.Unlock()

	return l.cursor.Reload(ctx)
}
