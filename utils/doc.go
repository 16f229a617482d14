// Package utils provides internal utility functions for geotag.
// This package is not intended to be imported by external code.
//
// It contains:
//   - Timestamp parsing and formatting utilities
//   - Geographic distance calculation
package utils
