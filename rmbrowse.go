// Package rmbrowse is a browsing client for the Rick and Morty API.
//
// A Client is built once at startup and owns one repository per entity
// kind. Every screen built from it shares those repositories and their
// page caches.
//
//	client, err := rmbrowse.New(rmbrowse.WithTimeout(10 * time.Second))
//	if err != nil {
//		return err
//	}
//	list := client.CharacterList()
//	ok, err := list.Next(ctx)
package rmbrowse

import (
	"fmt"

	"github.com/agentstation/rmbrowse/internal/sources/remote"
	"github.com/agentstation/rmbrowse/internal/transport"
	"github.com/agentstation/rmbrowse/pkg/browse"
	"github.com/agentstation/rmbrowse/pkg/entities"
	"github.com/agentstation/rmbrowse/pkg/pager"
	"github.com/agentstation/rmbrowse/pkg/repository"
)

// Client gives access to the repositories and screens of the browser.
type Client interface {
	// Characters returns the shared character repository
	Characters() *repository.Characters

	// Episodes returns the shared episode repository
	Episodes() *repository.Episodes

	// Locations returns the shared location repository
	Locations() *repository.Locations

	// CharacterList returns a new cursor over all characters
	CharacterList(opts ...browse.Option) *pager.Cursor[entities.Character]

	// EpisodeList returns a new episode screen with season filtering
	EpisodeList(opts ...browse.Option) *browse.EpisodeList

	// LocationList returns a new cursor over all locations
	LocationList(opts ...browse.Option) *pager.Cursor[entities.Location]

	// Discover returns a new Discover screen
	Discover(opts ...browse.Option) *browse.Discover

	// Details returns a new detail screen helper
	Details(opts ...browse.Option) *browse.Details
}

// client is the internal implementation of the Client interface
type client struct {
	config     *config
	characters *repository.Characters
	episodes   *repository.Episodes
	locations  *repository.Locations
}

// New creates a Client with the given options.
func New(opts ...Option) (Client, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("applying options: %w", err)
		}
	}

	tOpts := []transport.Option{
		transport.WithUserAgent(cfg.userAgent),
		transport.WithLogger(cfg.logger),
	}
	if cfg.httpClient != nil {
		tOpts = append(tOpts, transport.WithHTTPClient(cfg.httpClient))
	} else {
		tOpts = append(tOpts, transport.WithTimeout(cfg.timeout))
	}
	getter := transport.New(cfg.baseURL, tOpts...)

	srcOpts := []remote.Option{remote.WithLogger(cfg.logger)}
	repoOpts := []repository.Option{repository.WithLogger(cfg.logger)}

	return &client{
		config:     cfg,
		characters: repository.NewCharacters(remote.NewCharacters(getter, srcOpts...), repoOpts...),
		episodes:   repository.NewEpisodes(remote.NewEpisodes(getter, srcOpts...), repoOpts...),
		locations:  repository.NewLocations(remote.NewLocations(getter, srcOpts...), repoOpts...),
	}, nil
}

func (c *client) Characters() *repository.Characters { return c.characters }

func (c *client) Episodes() *repository.Episodes { return c.episodes }

func (c *client) Locations() *repository.Locations { return c.locations }

func (c *client) CharacterList(opts ...browse.Option) *pager.Cursor[entities.Character] {
	return browse.CharacterList(c.characters, c.screenOptions(opts)...)
}

func (c *client) EpisodeList(opts ...browse.Option) *browse.EpisodeList {
	return browse.NewEpisodeList(c.episodes, c.screenOptions(opts)...)
}

func (c *client) LocationList(opts ...browse.Option) *pager.Cursor[entities.Location] {
	return browse.LocationList(c.locations, c.screenOptions(opts)...)
}

func (c *client) Discover(opts ...browse.Option) *browse.Discover {
	return browse.NewDiscover(c.characters, c.episodes, c.locations, c.screenOptions(opts)...)
}

func (c *client) Details(opts ...browse.Option) *browse.Details {
	return browse.NewDetails(c.characters, c.episodes, c.screenOptions(opts)...)
}

// screenOptions puts the client logger first so callers can override it.
func (c *client) screenOptions(opts []browse.Option) []browse.Option {
	return append([]browse.Option{browse.WithLogger(c.config.logger)}, opts...)
}
