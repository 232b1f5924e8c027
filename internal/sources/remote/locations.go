package remote

import (
	"context"

	"github.com/agentstation/rmbrowse/internal/transport"
	"github.com/agentstation/rmbrowse/pkg/constants"
	"github.com/agentstation/rmbrowse/pkg/entities"
)

// Locations reads the /location list endpoint.
type Locations struct {
	base
}

// NewLocations creates a location source over g.
func NewLocations(g transport.Getter, opts ...Option) *Locations {
	return &Locations{base: newBase(g, opts)}
}

// FetchPage fetches a page of locations matching filter.
func (s *Locations) FetchPage(ctx context.Context, filter entities.LocationFilter) (entities.Page[entities.Location], error) {
	return fetchPage[entities.Location](ctx, s.base, constants.LocationPath, "location", filter.Values())
}
