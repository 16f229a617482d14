// Package track holds the track point store: an immutable, time-sorted
// collection of GPS samples assembled once per run from all available
// track sources.
//
// # Construction
//
// NewStore validates, sorts, and deduplicates the input. Coordinates
// outside the valid latitude/longitude ranges fail construction with a
// *ValidationError; nothing is clamped. All timestamps are normalized
// to UTC. Duplicate timestamps are resolved last-write-wins: among
// points with equal timestamps, the one appearing latest in the input
// is kept.
//
// # Lookup
//
// Bracket performs a binary search for the two samples surrounding a
// query timestamp. Each call is independent; no cursor state is shared
// between queries, so concurrent lookups against a constructed Store
// are safe.
//
// # Caching
//
// A built store can be serialized to disk with gob encoding (see
// SerializeStore and friends) to avoid re-parsing large track trees on
// every run. Deserialization rebuilds the store through NewStore, so
// cached data passes the same validation as fresh data.
package track
