package browse

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/agentstation/rmbrowse/pkg/entities"
	"github.com/agentstation/rmbrowse/pkg/errors"
	"github.com/agentstation/rmbrowse/pkg/logging"
	"github.com/agentstation/rmbrowse/pkg/pager"
)

// Details resolves the relations shown on the detail screens.
type Details struct {
	characters CharacterRepository
	episodes   EpisodeRepository
	activity   *pager.Activity
	logger     zerolog.Logger
}

// NewDetails creates the detail screen helper.
func NewDetails(characters CharacterRepository, episodes EpisodeRepository, opts ...Option) *Details {
	o := applyOptions(opts)
	return &Details{
		characters: characters,
		episodes:   episodes,
		activity:   o.activity,
		logger:     logging.Component(o.logger, "details"),
	}
}

// Activity returns the loading counter of the screen.
func (d *Details) Activity() *pager.Activity { return d.activity }

// CharacterEpisodes returns the episodes c appears in.
func (d *Details) CharacterEpisodes(ctx context.Context, c entities.Character) ([]entities.Episode, error) {
	return track(d.activity, func() ([]entities.Episode, error) {
		return d.episodes.FetchByIDs(ctx, c.EpisodeIDs())
	})
}

// EpisodeCharacters returns the characters appearing in e.
func (d *Details) EpisodeCharacters(ctx context.Context, e entities.Episode) ([]entities.Character, error) {
	return track(d.activity, func() ([]entities.Character, error) {
		return d.characters.FetchByIDs(ctx, e.CharacterIDs())
	})
}

// LocationResidents returns the characters last seen at l.
func (d *Details) LocationResidents(ctx context.Context, l entities.Location) ([]entities.Character, error) {
	return track(d.activity, func() ([]entities.Character, error) {
		return d.characters.FetchByIDs(ctx, l.ResidentIDs())
	})
}

// Character fetches one character and the episodes it appears in.
func (d *Details) Character(ctx context.Context, id int) (entities.Character, []entities.Episode, error) {
	items, err := track(d.activity, func() ([]entities.Character, error) {
		return d.characters.FetchByIDs(ctx, []int{id})
	})
	if err != nil {
		return entities.Character{}, nil, err
	}
	if len(items) == 0 {
		return entities.Character{}, nil, errors.NewValidationError("id", id, "no character with this id")
	}
	episodes, err := d.CharacterEpisodes(ctx, items[0])
	return items[0], episodes, err
}

// Episode fetches one episode and the characters appearing in it.
func (d *Details) Episode(ctx context.Context, id int) (entities.Episode, []entities.Character, error) {
	items, err := track(d.activity, func() ([]entities.Episode, error) {
		return d.episodes.FetchByIDs(ctx, []int{id})
	})
	if err != nil {
		return entities.Episode{}, nil, err
	}
	if len(items) == 0 {
		return entities.Episode{}, nil, errors.NewValidationError("id", id, "no episode with this id")
	}
	characters, err := d.EpisodeCharacters(ctx, items[0])
	return items[0], characters, err
}
