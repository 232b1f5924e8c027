package entities

import (
	"strconv"
	"strings"

	"github.com/agentstation/rmbrowse/pkg/errors"
)

// Season is the token the episode endpoint filters on, e.g. "s01".
type Season string

// Seasons aired so far.
const (
	Season1 Season = "s01"
	Season2 Season = "s02"
	Season3 Season = "s03"
	Season4 Season = "s04"
	Season5 Season = "s05"
)

// Seasons lists every known Season in order.
var Seasons = []Season{Season1, Season2, Season3, Season4, Season5}

// ParseSeason accepts "s01", "S01" or a bare season number such as "1".
func ParseSeason(s string) (Season, error) {
	token := strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(token); err == nil {
		token = "s" + pad2(n)
	}
	for _, v := range Seasons {
		if token == string(v) {
			return v, nil
		}
	}
	return "", errors.NewValidationError("season", s, "must be one of s01..s05")
}

// Number returns the season number, 1 for s01.
func (s Season) Number() int {
	n, _ := strconv.Atoi(strings.TrimPrefix(string(s), "s"))
	return n
}

// Title returns the season for display, e.g. "Season 1".
func (s Season) Title() string {
	return "Season " + strconv.Itoa(s.Number())
}

// String returns the query token.
func (s Season) String() string { return string(s) }

func pad2(n int) string {
	if n >= 0 && n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
