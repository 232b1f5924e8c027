package list

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/rmbrowse/internal/appcontext"
	"github.com/agentstation/rmbrowse/internal/cmd/globals"
	"github.com/agentstation/rmbrowse/internal/cmd/table"
	"github.com/agentstation/rmbrowse/pkg/browse"
	"github.com/agentstation/rmbrowse/pkg/entities"
)

// NewCharactersCommand creates the list characters subcommand.
func NewCharactersCommand(app appcontext.Interface) *cobra.Command {
	var pages *globals.PageFlags

	cmd := &cobra.Command{
		Use:     "characters",
		Short:   "List characters",
		Aliases: []string{"character", "chars"},
		Args:    cobra.NoArgs,
		Example: `  rmbrowse list characters                  # First page
  rmbrowse list characters --pages 3        # First three pages
  rmbrowse list characters --status alive --name rick`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := pages.Validate(); err != nil {
				return err
			}
			filter := entities.CharacterFilter{
				Name:    globals.OptionalString(cmd, "name"),
				Status:  globals.OptionalString(cmd, "status"),
				Species: globals.OptionalString(cmd, "species"),
				Type:    globals.OptionalString(cmd, "type"),
				Gender:  globals.OptionalString(cmd, "gender"),
			}
			if err := filter.Validate(); err != nil {
				return err
			}

			items, err := listCharacters(cmd, app, filter, pages)
			if err != nil {
				return err
			}
			return render(cmd, app, len(items), "characters", func(wide bool) any {
				return table.CharactersToTableData(items, wide)
			}, items)
		},
	}

	pages = globals.AddPageFlags(cmd)
	cmd.Flags().String("name", "", "Filter by name (substring match)")
	cmd.Flags().String("status", "", "Filter by status: alive, dead, unknown")
	cmd.Flags().String("species", "", "Filter by species")
	cmd.Flags().String("type", "", "Filter by type")
	cmd.Flags().String("gender", "", "Filter by gender: female, male, genderless, unknown")

	return cmd
}

func listCharacters(cmd *cobra.Command, app appcontext.Interface, filter entities.CharacterFilter, pages *globals.PageFlags) ([]entities.Character, error) {
	client, err := app.Client()
	if err != nil {
		return nil, err
	}
	ctx, cancel := commandContext(cmd)
	defer cancel()

	filtered := filter != entities.CharacterFilter{}
	repo := client.Characters()

	if pages.Page > 0 {
		var page entities.Page[entities.Character]
		if filtered {
			filter.Page = &pages.Page
			page, err = repo.FetchFiltered(ctx, filter)
		} else {
			page, err = repo.FetchPage(ctx, pages.Page)
		}
		if err != nil {
			return nil, err
		}
		return page.Results, nil
	}

	cursor := client.CharacterList()
	if filtered {
		cursor = browse.FilteredCharacterList(repo, filter)
	}
	return walk(ctx, cursor, pages.Pages)
}
