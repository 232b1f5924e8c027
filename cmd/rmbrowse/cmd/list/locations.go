package list

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/rmbrowse/internal/appcontext"
	"github.com/agentstation/rmbrowse/internal/cmd/globals"
	"github.com/agentstation/rmbrowse/internal/cmd/table"
	"github.com/agentstation/rmbrowse/pkg/browse"
	"github.com/agentstation/rmbrowse/pkg/entities"
)

// NewLocationsCommand creates the list locations subcommand.
func NewLocationsCommand(app appcontext.Interface) *cobra.Command {
	var pages *globals.PageFlags

	cmd := &cobra.Command{
		Use:     "locations",
		Short:   "List locations",
		Aliases: []string{"location", "locs"},
		Args:    cobra.NoArgs,
		Example: `  rmbrowse list locations
  rmbrowse list locations --type planet --pages 2`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := pages.Validate(); err != nil {
				return err
			}
			filter := entities.LocationFilter{
				Name:      globals.OptionalString(cmd, "name"),
				Type:      globals.OptionalString(cmd, "type"),
				Dimension: globals.OptionalString(cmd, "dimension"),
			}

			client, err := app.Client()
			if err != nil {
				return err
			}
			ctx, cancel := commandContext(cmd)
			defer cancel()

			filtered := filter != entities.LocationFilter{}
			repo := client.Locations()

			var items []entities.Location
			switch {
			case pages.Page > 0 && filtered:
				filter.Page = &pages.Page
				page, err := repo.FetchFiltered(ctx, filter)
				if err != nil {
					return err
				}
				items = page.Results
			case pages.Page > 0:
				page, err := repo.FetchPage(ctx, pages.Page)
				if err != nil {
					return err
				}
				items = page.Results
			case filtered:
				items, err = walk(ctx, browse.FilteredLocationList(repo, filter), pages.Pages)
			default:
				items, err = walk(ctx, client.LocationList(), pages.Pages)
			}
			if err != nil {
				return err
			}

			return render(cmd, app, len(items), "locations", func(wide bool) any {
				return table.LocationsToTableData(items, wide)
			}, items)
		},
	}

	pages = globals.AddPageFlags(cmd)
	cmd.Flags().String("name", "", "Filter by name")
	cmd.Flags().String("type", "", "Filter by type")
	cmd.Flags().String("dimension", "", "Filter by dimension")

	return cmd
}
