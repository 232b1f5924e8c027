// Package constants provides shared constants used throughout the rmbrowse codebase.
// This includes the upstream endpoint family, timeouts and sizes that
// should be consistent across the library and the CLI.
package constants

import "time"

// API constants describe the upstream REST API.
const (
	// DefaultBaseURL is the host and path prefix every endpoint hangs off.
	DefaultBaseURL = "https://rickandmortyapi.com/api"

	// CharacterPath lists characters and, suffixed with ids, fetches them by id.
	CharacterPath = "/character"

	// EpisodePath lists episodes and, suffixed with ids, fetches them by id.
	EpisodePath = "/episode"

	// LocationPath lists locations.
	LocationPath = "/location"

	// PageSize is the fixed number of results the API returns per page.
	PageSize = 20

	// FirstPage is the index of the first page; pages are 1-based.
	FirstPage = 1
)

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for HTTP requests to the API
	DefaultHTTPTimeout = 30 * time.Second

	// CommandTimeout is the default timeout for CLI commands
	CommandTimeout = 2 * time.Minute

	// ShutdownTimeout bounds graceful shutdown after an error
	ShutdownTimeout = 5 * time.Second
)

// Discover sample sizes.
const (
	DiscoverCharacters = 6
	DiscoverEpisodes   = 6
	DiscoverLocations  = 3
)

// DefaultUserAgent identifies the client to the API.
const DefaultUserAgent = "rmbrowse"

// FilePermissions is the default permission for created files (rw-r--r--)
const FilePermissions = 0644
