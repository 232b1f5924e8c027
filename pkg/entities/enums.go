package entities

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentstation/rmbrowse/pkg/errors"
)

var titleCaser = cases.Title(language.English)

// Status is the life status of a character.
type Status string

// Character statuses.
const (
	StatusAlive   Status = "alive"
	StatusDead    Status = "dead"
	StatusUnknown Status = "unknown"
)

// Statuses lists every valid Status.
var Statuses = []Status{StatusAlive, StatusDead, StatusUnknown}

// ParseStatus parses s case-insensitively.
func ParseStatus(s string) (Status, error) {
	for _, v := range Statuses {
		if strings.EqualFold(s, string(v)) {
			return v, nil
		}
	}
	return "", errors.NewValidationError("status", s, "must be one of alive, dead, unknown")
}

// String returns the string representation of a Status.
func (s Status) String() string { return string(s) }

// Title returns the status for display, e.g. "Alive".
func (s Status) Title() string { return titleCaser.String(string(s)) }

// UnmarshalJSON accepts any casing and rejects unknown values.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v, err := ParseStatus(raw)
	if err != nil {
		return fmt.Errorf("invalid status %q", raw)
	}
	*s = v
	return nil
}

// Gender is the gender of a character.
type Gender string

// Character genders.
const (
	GenderFemale     Gender = "female"
	GenderMale       Gender = "male"
	GenderGenderless Gender = "genderless"
	GenderUnknown    Gender = "unknown"
)

// Genders lists every valid Gender.
var Genders = []Gender{GenderFemale, GenderMale, GenderGenderless, GenderUnknown}

// ParseGender parses s case-insensitively.
func ParseGender(s string) (Gender, error) {
	for _, v := range Genders {
		if strings.EqualFold(s, string(v)) {
			return v, nil
		}
	}
	return "", errors.NewValidationError("gender", s, "must be one of female, male, genderless, unknown")
}

// String returns the string representation of a Gender.
func (g Gender) String() string { return string(g) }

// Title returns the gender for display, e.g. "Genderless".
func (g Gender) Title() string { return titleCaser.String(string(g)) }

// UnmarshalJSON accepts any casing and rejects unknown values.
func (g *Gender) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v, err := ParseGender(raw)
	if err != nil {
		return fmt.Errorf("invalid gender %q", raw)
	}
	*g = v
	return nil
}
