// Package formatter renders batch reports and resolution results.
//
// This package is organized into:
// - report.go: plain text rendering for terminal output
// - json.go: JSON serialization of batch reports
package formatter
