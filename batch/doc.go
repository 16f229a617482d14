// Package batch drives geotagging runs over sets of target files.
//
// The coordinator resolves each file's capture timestamp against the
// track store and writes the resulting position through the file's
// metadata adapter. Every target ends in exactly one report outcome:
// applied, skipped with a reason, or failed with an error. A failing
// file never aborts the run.
package batch
