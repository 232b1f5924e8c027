package remote

import (
	"context"

	"github.com/agentstation/rmbrowse/internal/transport"
	"github.com/agentstation/rmbrowse/pkg/constants"
	"github.com/agentstation/rmbrowse/pkg/entities"
)

// Episodes reads the /episode endpoints.
type Episodes struct {
	base
}

// NewEpisodes creates an episode source over g.
func NewEpisodes(g transport.Getter, opts ...Option) *Episodes {
	return &Episodes{base: newBase(g, opts)}
}

// FetchPage fetches a page of episodes matching filter.
func (s *Episodes) FetchPage(ctx context.Context, filter entities.EpisodeFilter) (entities.Page[entities.Episode], error) {
	return fetchPage[entities.Episode](ctx, s.base, constants.EpisodePath, "episode", filter.Values())
}

// FetchByIDs fetches episodes by identifier.
func (s *Episodes) FetchByIDs(ctx context.Context, ids []int) ([]entities.Episode, error) {
	return fetchByIDs[entities.Episode](ctx, s.base, constants.EpisodePath, "episode", ids)
}
