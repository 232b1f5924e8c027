package browse

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/agentstation/rmbrowse/pkg/constants"
	"github.com/agentstation/rmbrowse/pkg/entities"
	"github.com/agentstation/rmbrowse/pkg/logging"
	"github.com/agentstation/rmbrowse/pkg/pager"
)

// Discovery is what the Discover screen shows.
type Discovery struct {
	Characters []entities.Character `json:"characters" yaml:"characters"` // Random characters from a random page
	Episodes   []entities.Episode   `json:"episodes" yaml:"episodes"`     // Latest episodes, newest first
	Locations  []entities.Location  `json:"locations" yaml:"locations"`   // Random locations from a random page
}

// Discover samples each collection for the Discover screen.
type Discover struct {
	characters CharacterRepository
	episodes   EpisodeRepository
	locations  LocationRepository
	activity   *pager.Activity
	logger     zerolog.Logger

	randMu sync.Mutex
	rand   *rand.Rand
}

// NewDiscover creates the Discover screen.
func NewDiscover(characters CharacterRepository, episodes EpisodeRepository, locations LocationRepository, opts ...Option) *Discover {
	o := applyOptions(opts)
	return &Discover{
		characters: characters,
		episodes:   episodes,
		locations:  locations,
		activity:   o.activity,
		logger:     logging.Component(o.logger, "discover"),
		rand:       o.rand,
	}
}

// Activity returns the loading counter of the screen.
func (d *Discover) Activity() *pager.Activity { return d.activity }

// Load fetches the three sections concurrently. A failing section leaves
// its slice nil; the others are still returned alongside the joined error.
func (d *Discover) Load(ctx context.Context) (Discovery, error) {
	var (
		out                    Discovery
		g                      errgroup.Group
		charErr, epErr, locErr error
	)

	g.Go(func() error {
		out.Characters, charErr = d.loadCharacters(ctx)
		return charErr
	})
	g.Go(func() error {
		out.Episodes, epErr = d.loadEpisodes(ctx)
		return epErr
	})
	g.Go(func() error {
		out.Locations, locErr = d.loadLocations(ctx)
		return locErr
	})
	_ = g.Wait()

	err := errors.Join(
		sectionErr("characters", charErr),
		sectionErr("episodes", epErr),
		sectionErr("locations", locErr),
	)
	if err != nil {
		d.logger.Warn().Err(err).Msg("discover loaded partially")
	}
	return out, err
}

func (d *Discover) loadCharacters(ctx context.Context) ([]entities.Character, error) {
	page, err := randomPage(ctx, d, d.characters.FetchPage)
	if err != nil {
		return nil, err
	}
	items := slices.Clone(page.Results)
	d.shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
	return items[:min(constants.DiscoverCharacters, len(items))], nil
}

func (d *Discover) loadEpisodes(ctx context.Context) ([]entities.Episode, error) {
	first, err := track(d.activity, func() (entities.Page[entities.Episode], error) {
		return d.episodes.FetchPage(ctx, constants.FirstPage)
	})
	if err != nil {
		return nil, err
	}
	if first.Info.Pages < 1 {
		return []entities.Episode{}, nil
	}

	last, err := track(d.activity, func() (entities.Page[entities.Episode], error) {
		return d.episodes.FetchPage(ctx, first.Info.Pages)
	})
	if err != nil {
		return nil, err
	}
	items := slices.Clone(last.Results)
	slices.Reverse(items)
	return items[:min(constants.DiscoverEpisodes, len(items))], nil
}

func (d *Discover) loadLocations(ctx context.Context) ([]entities.Location, error) {
	page, err := randomPage(ctx, d, d.locations.FetchPage)
	if err != nil {
		return nil, err
	}
	items := slices.Clone(page.Results)
	d.shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
	return items[:min(constants.DiscoverLocations, len(items))], nil
}

// randomPage reads the first page for the page count and then fetches a
// page picked uniformly from 1..pages.
func randomPage[T any](ctx context.Context, d *Discover, fetch pager.FetchFunc[T]) (entities.Page[T], error) {
	first, err := track(d.activity, func() (entities.Page[T], error) {
		return fetch(ctx, constants.FirstPage)
	})
	if err != nil {
		return first, err
	}
	if first.Info.Pages < 1 {
		return first, nil
	}

	n := d.intN(first.Info.Pages) + 1
	d.logger.Debug().Int("page", n).Int("pages", first.Info.Pages).Msg("picked random page")
	return track(d.activity, func() (entities.Page[T], error) {
		return fetch(ctx, n)
	})
}

func (d *Discover) intN(n int) int {
	d.randMu.Lock()
	defer d.randMu.Unlock()
	return d.rand.IntN(n)
}

func (d *Discover) shuffle(n int, swap func(i, j int)) {
	d.randMu.Lock()
	defer d.randMu.Unlock()
	d.rand.Shuffle(n, swap)
}

// track runs fn under a.Track and hands back its value.
func track[V any](a *pager.Activity, fn func() (V, error)) (V, error) {
	var v V
	err := a.Track(func() error {
		var err error
		v, err = fn()
		return err
	})
	return v, err
}

func sectionErr(section string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", section, err)
}
