package table

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/rmbrowse/pkg/entities"
)

func TestCharactersToTableData(t *testing.T) {
	chars := []entities.Character{{
		ID:      1,
		Name:    "Rick Sanchez",
		Status:  entities.StatusAlive,
		Species: "Human",
		Gender:  entities.GenderMale,
		Origin:  entities.Place{Name: "Earth (C-137)"},
		Episode: []string{"a", "b"},
	}, {
		ID:      7,
		Name:    "Abradolf Lincler",
		Status:  entities.StatusUnknown,
		Species: "Human",
		Type:    "Genetic experiment",
		Gender:  entities.GenderMale,
	}}

	data := CharactersToTableData(chars, false)
	assert.Equal(t, []string{"ID", "Name", "Status", "Species", "Gender"}, data.Headers)
	assert.Equal(t, []string{"1", "Rick Sanchez", "Alive", "Human", "Male"}, data.Rows[0])
	assert.Equal(t, "Human (Genetic experiment)", data.Rows[1][3])
	assert.Len(t, data.ColumnAlignment, len(data.Headers))

	wide := CharactersToTableData(chars, true)
	assert.Len(t, wide.Headers, 8)
	assert.Equal(t, "2", wide.Rows[0][7])
	assert.Len(t, wide.ColumnAlignment, len(wide.Headers))
}

func TestEpisodesToTableData(t *testing.T) {
	data := EpisodesToTableData([]entities.Episode{{ID: 1, Code: "S01E01", Name: "Pilot", AirDate: "December 2, 2013"}}, true)
	assert.Equal(t, []string{"1", "S01E01", "Pilot", "December 2, 2013", "0"}, data.Rows[0])
}

func TestLocationsToTableData(t *testing.T) {
	data := LocationsToTableData([]entities.Location{{ID: 3, Name: "Citadel of Ricks", Type: "Space station"}}, false)
	assert.Equal(t, []string{"3", "Citadel of Ricks", "Space station", "-"}, data.Rows[0])
}

func TestDetails(t *testing.T) {
	c := CharacterDetail(entities.Character{ID: 2, Created: time.Date(2017, 11, 4, 18, 50, 21, 0, time.UTC)})
	assert.Contains(t, c.Rows, []string{"Created", "2017-11-04T18:50:21Z"})
	assert.Contains(t, c.Rows, []string{"Image", "-"})

	e := EpisodeDetail(entities.Episode{ID: 28, Code: "S03E07"})
	assert.Contains(t, e.Rows, []string{"Season", "Season 3"})
	assert.Contains(t, e.Rows, []string{"Created", "-"})
}
