package entities

import "time"

// Character is a person, creature or thing appearing in the show.
type Character struct {
	ID       int       `json:"id" yaml:"id"`             // API-assigned identifier
	Name     string    `json:"name" yaml:"name"`         // Display name
	Status   Status    `json:"status" yaml:"status"`     // alive, dead or unknown
	Species  string    `json:"species" yaml:"species"`   // e.g. Human, Alien
	Type     string    `json:"type" yaml:"type"`         // Subspecies, often empty
	Gender   Gender    `json:"gender" yaml:"gender"`     // female, male, genderless or unknown
	Origin   Place     `json:"origin" yaml:"origin"`     // Where the character comes from
	Location Place     `json:"location" yaml:"location"` // Last known location
	Image    string    `json:"image" yaml:"image"`       // Avatar URL (300x300)
	Episode  []string  `json:"episode" yaml:"episode"`   // Episode resource URLs
	URL      string    `json:"url" yaml:"url"`           // Resource URL
	Created  time.Time `json:"created" yaml:"created"`   // Creation time in the API database
}

// Place is a named link to a location resource. URL is empty for "unknown".
type Place struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

// LocationID returns the identifier of the linked location, if it has one.
func (p Place) LocationID() (int, bool) {
	ids := idsFromURLs([]string{p.URL})
	if len(ids) == 0 {
		return 0, false
	}
	return ids[0], true
}

// Identifier returns the character ID.
func (c Character) Identifier() int { return c.ID }

// Equal reports whether c and other are the same character.
func (c Character) Equal(other Character) bool { return c.ID == other.ID }

// EpisodeIDs returns the identifiers of the episodes the character appears in.
func (c Character) EpisodeIDs() []int {
	return idsFromURLs(c.Episode)
}

// ImageURL returns the avatar URL.
func (c Character) ImageURL() string { return c.Image }
