// Package list implements the list command and its per-kind subcommands.
package list

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/rmbrowse/internal/appcontext"
)

// NewCommand creates the list command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List characters, episodes or locations page by page",
		Long: `List walks the paginated listings of the API.

Pages are cached for the lifetime of the process, so walking the same
listing twice only fetches each page once.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(NewCharactersCommand(app))
	cmd.AddCommand(NewEpisodesCommand(app))
	cmd.AddCommand(NewLocationsCommand(app))

	return cmd
}
