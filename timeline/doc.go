// Package timeline decodes Google Timeline JSON exports into track
// points.
//
// The export's semanticSegments carry timelinePath entries of the form
//
//	{"point": "50.0755°, 14.4378°", "time": "2024-01-15T14:30:00.000+01:00"}
//
// Degree signs are stripped and the coordinate pair parsed; the
// timestamp keeps its original UTC offset. Entries that fail to parse
// are skipped rather than failing the whole export.
package timeline
