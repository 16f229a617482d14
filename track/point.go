package track

import (
	"fmt"
	"time"
)

// Coordinate bounds for a valid sample.
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// Point is a single timestamped GPS sample. Points are values; once a
// Store is built they are never mutated.
type Point struct {
	Timestamp time.Time
	Lat       float64
	Lon       float64
	Elevation *float64
}

// ValidationError reports a malformed point rejected during store
// construction.
type ValidationError struct {
	Index int
	Point Point
	Cause string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("track point %d (lat=%g lon=%g at %s): %s",
		e.Index, e.Point.Lat, e.Point.Lon,
		e.Point.Timestamp.UTC().Format(time.RFC3339), e.Cause)
}

// validatePoint checks coordinate ranges. The negated comparisons also
// reject NaN.
func validatePoint(i int, p Point) *ValidationError {
	if !(p.Lat >= MinLatitude && p.Lat <= MaxLatitude) {
		return &ValidationError{Index: i, Point: p, Cause: "latitude out of range"}
	}
	if !(p.Lon >= MinLongitude && p.Lon <= MaxLongitude) {
		return &ValidationError{Index: i, Point: p, Cause: "longitude out of range"}
	}
	return nil
}
