package list

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/rmbrowse/internal/appcontext"
	"github.com/agentstation/rmbrowse/internal/cmd/globals"
	"github.com/agentstation/rmbrowse/internal/cmd/table"
	"github.com/agentstation/rmbrowse/pkg/entities"
)

// NewEpisodesCommand creates the list episodes subcommand.
func NewEpisodesCommand(app appcontext.Interface) *cobra.Command {
	var (
		pages  *globals.PageFlags
		season string
	)

	cmd := &cobra.Command{
		Use:     "episodes",
		Short:   "List episodes, optionally for one season",
		Aliases: []string{"episode", "eps"},
		Args:    cobra.NoArgs,
		Example: `  rmbrowse list episodes --pages 3
  rmbrowse list episodes --season s02       # Whole season in one page`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := pages.Validate(); err != nil {
				return err
			}

			client, err := app.Client()
			if err != nil {
				return err
			}
			ctx, cancel := commandContext(cmd)
			defer cancel()

			var items []entities.Episode
			switch {
			case season != "":
				s, err := entities.ParseSeason(season)
				if err != nil {
					return err
				}
				list := client.EpisodeList()
				c := list.Cursor()
				defer c.Close()
				list.SetSeason(ctx, s)
				c.Wait()
				st := c.State()
				if st.Err != nil {
					return st.Err
				}
				items = st.Items
			case pages.Page > 0:
				page, err := client.Episodes().FetchPage(ctx, pages.Page)
				if err != nil {
					return err
				}
				items = page.Results
			default:
				items, err = walk(ctx, client.EpisodeList().Cursor(), pages.Pages)
				if err != nil {
					return err
				}
			}

			return render(cmd, app, len(items), "episodes", func(wide bool) any {
				return table.EpisodesToTableData(items, wide)
			}, items)
		},
	}

	pages = globals.AddPageFlags(cmd)
	cmd.Flags().StringVarP(&season, "season", "s", "", "Season to list: s01..s05")

	return cmd
}
