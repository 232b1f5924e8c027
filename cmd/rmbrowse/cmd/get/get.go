// Package get implements the get command, which fetches entities by id.
package get

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/agentstation/rmbrowse/internal/appcontext"
	"github.com/agentstation/rmbrowse/internal/cmd/globals"
	"github.com/agentstation/rmbrowse/internal/cmd/output"
	"github.com/agentstation/rmbrowse/internal/cmd/table"
	"github.com/agentstation/rmbrowse/pkg/constants"
)

// NewCommand creates the get command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Fetch characters or episodes by id",
		Long: `Get fetches entities by id in a single request.

Ids may be passed as separate arguments or comma separated. Results
are never cached.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newCharactersCommand(app))
	cmd.AddCommand(newEpisodesCommand(app))

	return cmd
}

func newCharactersCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "characters <id>...",
		Aliases: []string{"character", "chars"},
		Short:   "Fetch characters by id",
		Args:    cobra.MinimumNArgs(1),
		Example: `  rmbrowse get characters 1,2,3
  rmbrowse get characters 1 2 3 -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := globals.ParseIDs(args)
			if err != nil {
				return err
			}
			client, err := app.Client()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), constants.CommandTimeout)
			defer cancel()

			items, err := client.Characters().FetchByIDs(ctx, ids)
			if err != nil {
				return err
			}
			return output.Write(cmd.OutOrStdout(), output.DetectFormat(app.OutputFormat()), func(wide bool) any {
				return table.CharactersToTableData(items, wide)
			}, items)
		},
	}
}

func newEpisodesCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "episodes <id>...",
		Aliases: []string{"episode", "eps"},
		Short:   "Fetch episodes by id",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := globals.ParseIDs(args)
			if err != nil {
				return err
			}
			client, err := app.Client()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), constants.CommandTimeout)
			defer cancel()

			items, err := client.Episodes().FetchByIDs(ctx, ids)
			if err != nil {
				return err
			}
			return output.Write(cmd.OutOrStdout(), output.DetectFormat(app.OutputFormat()), func(wide bool) any {
				return table.EpisodesToTableData(items, wide)
			}, items)
		},
	}
}

