// Package browse assembles the screens of the browser on top of the
// repositories: paginated lists, the season-filtered episode list,
// Discover and the detail relations. Each screen reports its outstanding
// fetches on one pager.Activity.
package browse

import (
	"context"
	"math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/agentstation/rmbrowse/pkg/entities"
	"github.com/agentstation/rmbrowse/pkg/logging"
	"github.com/agentstation/rmbrowse/pkg/pager"
)

// CharacterRepository is the character data a screen needs.
type CharacterRepository interface {
	FetchPage(ctx context.Context, page int) (entities.Page[entities.Character], error)
	FetchByIDs(ctx context.Context, ids []int) ([]entities.Character, error)
	FetchFiltered(ctx context.Context, filter entities.CharacterFilter) (entities.Page[entities.Character], error)
}

// EpisodeRepository is the episode data a screen needs.
type EpisodeRepository interface {
	FetchPage(ctx context.Context, page int) (entities.Page[entities.Episode], error)
	FetchByIDs(ctx context.Context, ids []int) ([]entities.Episode, error)
	FetchFiltered(ctx context.Context, season *string) (entities.Page[entities.Episode], error)
}

// LocationRepository is the location data a screen needs.
type LocationRepository interface {
	FetchPage(ctx context.Context, page int) (entities.Page[entities.Location], error)
	FetchFiltered(ctx context.Context, filter entities.LocationFilter) (entities.Page[entities.Location], error)
}

// Option configures a screen.
type Option func(*options)

type options struct {
	activity *pager.Activity
	logger   zerolog.Logger
	rand     *rand.Rand
}

// WithActivity reports the screen's fetches on a.
func WithActivity(a *pager.Activity) Option {
	return func(o *options) {
		o.activity = a
	}
}

// WithLogger sets the screen logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithRand sets the random source Discover samples with.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rand = r
	}
}

func applyOptions(opts []Option) options {
	o := options{logger: logging.Nop}
	for _, opt := range opts {
		opt(&o)
	}
	if o.activity == nil {
		o.activity = pager.NewActivity()
	}
	if o.rand == nil {
		o.rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return o
}

func (o options) cursorOptions() []pager.Option {
	return []pager.Option{pager.WithActivity(o.activity), pager.WithLogger(o.logger)}
}
