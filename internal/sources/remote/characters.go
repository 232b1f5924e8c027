package remote

import (
	"context"

	"github.com/agentstation/rmbrowse/internal/transport"
	"github.com/agentstation/rmbrowse/pkg/constants"
	"github.com/agentstation/rmbrowse/pkg/entities"
)

// Characters reads the /character endpoints.
type Characters struct {
	base
}

// NewCharacters creates a character source over g.
func NewCharacters(g transport.Getter, opts ...Option) *Characters {
	return &Characters{base: newBase(g, opts)}
}

// FetchPage fetches a page of characters matching filter.
func (s *Characters) FetchPage(ctx context.Context, filter entities.CharacterFilter) (entities.Page[entities.Character], error) {
	return fetchPage[entities.Character](ctx, s.base, constants.CharacterPath, "character", filter.Values())
}

// FetchByIDs fetches characters by identifier.
func (s *Characters) FetchByIDs(ctx context.Context, ids []int) ([]entities.Character, error) {
	return fetchByIDs[entities.Character](ctx, s.base, constants.CharacterPath, "character", ids)
}
