// Package appcontext provides the shared application context interface
// used by all commands, so command packages depend on one definition
// instead of the concrete App type.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/rmbrowse"
)

// Interface defines the application context that commands need.
// The App struct from cmd/rmbrowse/app implements it.
type Interface interface {
	// Client returns the shared API client, creating it lazily if needed.
	// The same instance is returned on every call so its page caches are shared.
	Client() (rmbrowse.Client, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table, wide).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
