package entities

import "time"

// Episode is a single episode of the show.
type Episode struct {
	ID         int       `json:"id" yaml:"id"`                 // API-assigned identifier
	Name       string    `json:"name" yaml:"name"`             // Episode title
	AirDate    string    `json:"air_date" yaml:"air_date"`     // Air date as published, e.g. "December 2, 2013"
	Code       string    `json:"episode" yaml:"episode"`       // Episode code, e.g. "S01E01"
	Characters []string  `json:"characters" yaml:"characters"` // Character resource URLs
	URL        string    `json:"url" yaml:"url"`               // Resource URL
	Created    time.Time `json:"created" yaml:"created"`       // Creation time in the API database
}

// Identifier returns the episode ID.
func (e Episode) Identifier() int { return e.ID }

// Equal reports whether e and other are the same episode.
func (e Episode) Equal(other Episode) bool { return e.ID == other.ID }

// CharacterIDs returns the identifiers of the characters appearing in the episode.
func (e Episode) CharacterIDs() []int {
	return idsFromURLs(e.Characters)
}

// Season returns the season the episode code belongs to, if it parses.
func (e Episode) Season() (Season, bool) {
	if len(e.Code) < 3 {
		return "", false
	}
	s, err := ParseSeason(e.Code[:3])
	if err != nil {
		return "", false
	}
	return s, true
}
