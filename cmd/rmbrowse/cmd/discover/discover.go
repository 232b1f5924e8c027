// Package discover implements the discover command, a random sample of
// characters, the latest episodes and a few locations.
package discover

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/agentstation/rmbrowse/internal/appcontext"
	"github.com/agentstation/rmbrowse/internal/cmd/output"
	"github.com/agentstation/rmbrowse/internal/cmd/table"
	"github.com/agentstation/rmbrowse/pkg/constants"
)

// NewCommand creates the discover command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "discover",
		Short: "Show random characters, the latest episodes and random locations",
		Long: `Discover loads three sections concurrently: characters from a random
page, the newest episodes, and locations from a random page.

Sections that fail are reported; the ones that loaded are still printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), constants.CommandTimeout)
			defer cancel()

			d, loadErr := client.Discover().Load(ctx)

			err = output.Write(cmd.OutOrStdout(), output.DetectFormat(app.OutputFormat()), func(wide bool) any {
				return []output.Section{
					{Title: "characters", Data: table.CharactersToTableData(d.Characters, wide)},
					{Title: "latest episodes", Data: table.EpisodesToTableData(d.Episodes, wide)},
					{Title: "locations", Data: table.LocationsToTableData(d.Locations, wide)},
				}
			}, d)
			if err != nil {
				return err
			}
			return loadErr
		},
	}
}
