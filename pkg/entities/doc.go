// Package entities defines the value records served by the Rick and Morty
// API: characters, episodes, locations and the paged envelope that wraps
// list responses.
//
// Entities compare by ID only. Relation fields hold the raw resource URLs
// returned by the API; the *IDs accessors turn them into numeric identifiers
// that can be handed back to a by-id fetch.
package entities
