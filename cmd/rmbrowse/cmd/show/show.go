// Package show implements the show command, a detail view of one entity
// together with its related entities.
package show

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/agentstation/rmbrowse/internal/appcontext"
	"github.com/agentstation/rmbrowse/internal/cmd/output"
	"github.com/agentstation/rmbrowse/internal/cmd/table"
	"github.com/agentstation/rmbrowse/pkg/constants"
	"github.com/agentstation/rmbrowse/pkg/entities"
	"github.com/agentstation/rmbrowse/pkg/errors"
)

// CharacterView is the structured output of show character.
type CharacterView struct {
	Character entities.Character `json:"character" yaml:"character"`
	Episodes  []entities.Episode `json:"episodes" yaml:"episodes"`
}

// EpisodeView is the structured output of show episode.
type EpisodeView struct {
	Episode    entities.Episode     `json:"episode" yaml:"episode"`
	Characters []entities.Character `json:"characters" yaml:"characters"`
}

// NewCommand creates the show command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show one character or episode with its related entities",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newCharacterCommand(app))
	cmd.AddCommand(newEpisodeCommand(app))

	return cmd
}

func newCharacterCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "character <id>",
		Aliases: []string{"char"},
		Short:   "Show a character and the episodes it appears in",
		Args:    cobra.ExactArgs(1),
		Example: `  rmbrowse show character 1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			client, err := app.Client()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), constants.CommandTimeout)
			defer cancel()

			c, episodes, err := client.Details().Character(ctx, id)
			if err != nil {
				return err
			}

			view := CharacterView{Character: c, Episodes: episodes}
			return output.Write(cmd.OutOrStdout(), output.DetectFormat(app.OutputFormat()), func(wide bool) any {
				return []output.Section{
					{Title: "character", Data: table.CharacterDetail(c)},
					{Title: "episodes", Data: table.EpisodesToTableData(episodes, wide)},
				}
			}, view)
		},
	}
}

func newEpisodeCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "episode <id>",
		Aliases: []string{"ep"},
		Short:   "Show an episode and the characters appearing in it",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			client, err := app.Client()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), constants.CommandTimeout)
			defer cancel()

			e, characters, err := client.Details().Episode(ctx, id)
			if err != nil {
				return err
			}

			view := EpisodeView{Episode: e, Characters: characters}
			return output.Write(cmd.OutOrStdout(), output.DetectFormat(app.OutputFormat()), func(wide bool) any {
				return []output.Section{
					{Title: "episode", Data: table.EpisodeDetail(e)},
					{Title: "characters", Data: table.CharactersToTableData(characters, wide)},
				}
			}, view)
		},
	}
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		return 0, errors.NewValidationError("id", arg, "must be a positive integer")
	}
	return id, nil
}
