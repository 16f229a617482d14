// Package gpx reads and writes GPX 1.1 track files and the per-day
// track tree.
//
// # Tree layout
//
// Imported timelines are stored one file per civil day:
//
//	<base>/2024/01/15.gpx
//
// The civil day is taken in each point's own UTC offset, so an evening
// point recorded at +02:00 stays on its local date. ReadTree walks the
// whole tree (any *.gpx below the base directory) and returns the
// union; overlapping or duplicated days are handled downstream by the
// track store's merge rules.
//
// # Documents
//
// Written documents carry one trk/trkseg holding all points of the day
// in input order, with optional ele and RFC 3339 time children per
// trkpt. Reading flattens all tracks and segments of a document and
// skips points without a parseable time.
package gpx
