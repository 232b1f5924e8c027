package entities

import (
	"net/url"
	"path"
	"strconv"
)

// Entity is implemented by every record the API serves.
type Entity interface {
	Character | Episode | Location
	Identifier() int
}

// Kind names an entity collection. It prefixes cache keys and log fields.
type Kind string

// Entity kinds.
const (
	KindCharacters Kind = "Characters"
	KindEpisodes   Kind = "Episodes"
	KindLocations  Kind = "Locations"
)

// String returns the string representation of a Kind.
func (k Kind) String() string {
	return string(k)
}

// PageKey returns the cache key for one page of this kind, e.g. "CharactersPage3".
func (k Kind) PageKey(page int) string {
	return string(k) + "Page" + strconv.Itoa(page)
}

// Dedupe returns items with later duplicates (same ID) removed, keeping order.
func Dedupe[T Entity](items []T) []T {
	seen := make(map[int]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		id := item.Identifier()
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, item)
	}
	return out
}

// IDs returns the identifiers of items in order.
func IDs[T Entity](items []T) []int {
	ids := make([]int, len(items))
	for i, item := range items {
		ids[i] = item.Identifier()
	}
	return ids
}

// idsFromURLs parses the trailing path segment of each URL as an integer.
// Entries that are not URLs or do not end in a number are skipped.
func idsFromURLs(urls []string) []int {
	ids := make([]int, 0, len(urls))
	for _, raw := range urls {
		u, err := url.Parse(raw)
		if err != nil {
			continue
		}
		id, err := strconv.Atoi(path.Base(u.Path))
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
