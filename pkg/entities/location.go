package entities

import "time"

// Location is a place in the show's multiverse.
type Location struct {
	ID        int       `json:"id" yaml:"id"`               // API-assigned identifier
	Name      string    `json:"name" yaml:"name"`           // Display name
	Type      string    `json:"type" yaml:"type"`           // e.g. Planet, Space station
	Dimension string    `json:"dimension" yaml:"dimension"` // Dimension the location is in
	Residents []string  `json:"residents" yaml:"residents"` // Character resource URLs
	URL       string    `json:"url" yaml:"url"`             // Resource URL
	Created   time.Time `json:"created" yaml:"created"`     // Creation time in the API database
}

// Identifier returns the location ID.
func (l Location) Identifier() int { return l.ID }

// Equal reports whether l and other are the same location.
func (l Location) Equal(other Location) bool { return l.ID == other.ID }

// ResidentIDs returns the identifiers of the characters last seen here.
func (l Location) ResidentIDs() []int {
	return idsFromURLs(l.Residents)
}
