package match

import (
	"time"

	"github.com/trailstamp/geotag/track"
)

// Status discriminates the variants of a Result.
type Status int

const (
	StatusNoFix Status = iota
	StatusExactFix
	StatusInterpolated
)

func (s Status) String() string {
	switch s {
	case StatusExactFix:
		return "exact"
	case StatusInterpolated:
		return "interpolated"
	default:
		return "no_fix"
	}
}

// Reason explains a NoFix result.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonOutOfRange
	ReasonGapTooLarge
	ReasonEmptyStore
)

func (r Reason) String() string {
	switch r {
	case ReasonOutOfRange:
		return "out_of_range"
	case ReasonGapTooLarge:
		return "gap_too_large"
	case ReasonEmptyStore:
		return "empty_store"
	default:
		return "none"
	}
}

// Fix is a resolved geographic position.
type Fix struct {
	Lat       float64
	Lon       float64
	Elevation *float64
}

// Query asks for the position at a timestamp, tolerating at most MaxGap
// between the timestamp and each bracketing sample.
type Query struct {
	Timestamp time.Time
	MaxGap    time.Duration
}

// Result is the typed outcome of resolving one Query.
type Result struct {
	Status Status

	// Fix is the resolved position; nil when Status is StatusNoFix.
	Fix *Fix

	// Sample is the matched track point, set for StatusExactFix.
	Sample *track.Point

	// Reason is set for StatusNoFix.
	Reason Reason

	// Gaps between the query timestamp and the bracketing samples, set
	// for StatusInterpolated.
	BeforeGap time.Duration
	AfterGap  time.Duration
}

// HasFix reports whether the result carries a usable position
func (r Result) HasFix() bool {
	return r.Status != StatusNoFix
}
