package entities

import (
	"net/url"
	"strconv"

	"github.com/agentstation/rmbrowse/pkg/errors"
)

// CharacterFilter narrows the character listing. Nil fields are not sent.
type CharacterFilter struct {
	Page    *int
	Name    *string
	Status  *string
	Species *string
	Type    *string
	Gender  *string
}

// Validate checks the closed vocabularies and the page number.
func (f CharacterFilter) Validate() error {
	if err := validatePage(f.Page); err != nil {
		return err
	}
	if f.Status != nil {
		if _, err := ParseStatus(*f.Status); err != nil {
			return err
		}
	}
	if f.Gender != nil {
		if _, err := ParseGender(*f.Gender); err != nil {
			return err
		}
	}
	return nil
}

// Values returns the query parameters for the set fields.
func (f CharacterFilter) Values() url.Values {
	q := url.Values{}
	setPage(q, f.Page)
	set(q, "name", f.Name)
	set(q, "status", f.Status)
	set(q, "species", f.Species)
	set(q, "type", f.Type)
	set(q, "gender", f.Gender)
	return q
}

// EpisodeFilter narrows the episode listing. Episode is a season token
// such as "s01" and matches every episode code containing it.
type EpisodeFilter struct {
	Page    *int
	Name    *string
	Episode *string
}

// Validate checks the page number.
func (f EpisodeFilter) Validate() error {
	return validatePage(f.Page)
}

// Values returns the query parameters for the set fields.
func (f EpisodeFilter) Values() url.Values {
	q := url.Values{}
	setPage(q, f.Page)
	set(q, "name", f.Name)
	set(q, "episode", f.Episode)
	return q
}

// LocationFilter narrows the location listing.
type LocationFilter struct {
	Page      *int
	Name      *string
	Type      *string
	Dimension *string
}

// Validate checks the page number.
func (f LocationFilter) Validate() error {
	return validatePage(f.Page)
}

// Values returns the query parameters for the set fields.
func (f LocationFilter) Values() url.Values {
	q := url.Values{}
	setPage(q, f.Page)
	set(q, "name", f.Name)
	set(q, "type", f.Type)
	set(q, "dimension", f.Dimension)
	return q
}

func set(q url.Values, key string, v *string) {
	if v != nil {
		q.Set(key, *v)
	}
}

func setPage(q url.Values, page *int) {
	if page != nil {
		q.Set("page", strconv.Itoa(*page))
	}
}

func validatePage(page *int) error {
	if page != nil && *page < 1 {
		return errors.NewValidationError("page", *page, "must be a positive integer")
	}
	return nil
}

// Ptr returns a pointer to v, for filling optional filter fields.
func Ptr[T any](v T) *T {
	return &v
}
