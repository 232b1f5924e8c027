// Package table converts entities into rows for CLI table output.
package table

import (
	"strconv"
	"strings"
	"time"

	"github.com/agentstation/rmbrowse/pkg/entities"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// CharactersToTableData converts characters to table format.
func CharactersToTableData(characters []entities.Character, wide bool) Data {
	headers := []string{"ID", "Name", "Status", "Species", "Gender"}
	align := []Align{AlignRight, AlignLeft, AlignLeft, AlignLeft, AlignLeft}
	if wide {
		headers = append(headers, "Origin", "Location", "Episodes")
		align = append(align, AlignLeft, AlignLeft, AlignRight)
	}

	rows := make([][]string, 0, len(characters))
	for _, c := range characters {
		row := []string{
			strconv.Itoa(c.ID),
			c.Name,
			c.Status.Title(),
			species(c),
			c.Gender.Title(),
		}
		if wide {
			row = append(row, c.Origin.Name, c.Location.Name, strconv.Itoa(len(c.Episode)))
		}
		rows = append(rows, row)
	}

	return Data{Headers: headers, Rows: rows, ColumnAlignment: align}
}

// EpisodesToTableData converts episodes to table format.
func EpisodesToTableData(episodes []entities.Episode, wide bool) Data {
	headers := []string{"ID", "Code", "Name", "Air Date"}
	align := []Align{AlignRight, AlignLeft, AlignLeft, AlignLeft}
	if wide {
		headers = append(headers, "Characters")
		align = append(align, AlignRight)
	}

	rows := make([][]string, 0, len(episodes))
	for _, e := range episodes {
		row := []string{strconv.Itoa(e.ID), e.Code, e.Name, e.AirDate}
		if wide {
			row = append(row, strconv.Itoa(len(e.Characters)))
		}
		rows = append(rows, row)
	}

	return Data{Headers: headers, Rows: rows, ColumnAlignment: align}
}

// LocationsToTableData converts locations to table format.
func LocationsToTableData(locations []entities.Location, wide bool) Data {
	headers := []string{"ID", "Name", "Type", "Dimension"}
	align := []Align{AlignRight, AlignLeft, AlignLeft, AlignLeft}
	if wide {
		headers = append(headers, "Residents")
		align = append(align, AlignRight)
	}

	rows := make([][]string, 0, len(locations))
	for _, l := range locations {
		row := []string{strconv.Itoa(l.ID), l.Name, orDash(l.Type), orDash(l.Dimension)}
		if wide {
			row = append(row, strconv.Itoa(len(l.Residents)))
		}
		rows = append(rows, row)
	}

	return Data{Headers: headers, Rows: rows, ColumnAlignment: align}
}

// CharacterDetail converts one character into a property/value table.
func CharacterDetail(c entities.Character) Data {
	return Data{
		Headers: []string{"Property", "Value"},
		Rows: [][]string{
			{"ID", strconv.Itoa(c.ID)},
			{"Name", c.Name},
			{"Status", c.Status.Title()},
			{"Species", species(c)},
			{"Gender", c.Gender.Title()},
			{"Origin", c.Origin.Name},
			{"Location", c.Location.Name},
			{"Image", orDash(c.ImageURL())},
			{"Episodes", strconv.Itoa(len(c.Episode))},
			{"Created", formatTime(c.Created)},
		},
	}
}

// EpisodeDetail converts one episode into a property/value table.
func EpisodeDetail(e entities.Episode) Data {
	season := "-"
	if s, ok := e.Season(); ok {
		season = s.Title()
	}
	return Data{
		Headers: []string{"Property", "Value"},
		Rows: [][]string{
			{"ID", strconv.Itoa(e.ID)},
			{"Code", e.Code},
			{"Name", e.Name},
			{"Season", season},
			{"Air Date", e.AirDate},
			{"Characters", strconv.Itoa(len(e.Characters))},
			{"Created", formatTime(e.Created)},
		},
	}
}

func species(c entities.Character) string {
	if c.Type == "" {
		return c.Species
	}
	return c.Species + " (" + c.Type + ")"
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(time.RFC3339)
}
