package match

import (
	"time"

	"github.com/trailstamp/geotag/track"
)

// ExactHitEpsilon is the maximum distance between a query timestamp and
// a stored sample for the query to count as an exact hit.
const ExactHitEpsilon = time.Second

// Engine resolves query timestamps against a track store. It carries no
// mutable state; one Engine may serve any number of stores and queries.
type Engine struct {
	epsilon time.Duration
}

// NewEngine creates an Engine with the standard exact-hit epsilon
func NewEngine() *Engine {
	return &Engine{epsilon: ExactHitEpsilon}
}

// Resolve determines the position for q against store.
//
// The decision order: empty store, coverage (a query outside the span
// of the track is never extrapolated), exact hit within epsilon, gap
// tolerance, linear interpolation.
func (e *Engine) Resolve(store *track.Store, q Query) Result {
	if store.IsEmpty() {
		return Result{Status: StatusNoFix, Reason: ReasonEmptyStore}
	}

	before, after := store.Bracket(q.Timestamp)

	// One-sided bracket: the query lies outside track coverage.
	if before == nil || after == nil {
		return Result{Status: StatusNoFix, Reason: ReasonOutOfRange}
	}

	beforeGap := q.Timestamp.Sub(before.Timestamp)
	afterGap := after.Timestamp.Sub(q.Timestamp)

	if beforeGap <= e.epsilon || afterGap <= e.epsilon {
		if beforeGap <= afterGap {
			return exactFix(before)
		}
		return exactFix(after)
	}

	if beforeGap > q.MaxGap || afterGap > q.MaxGap {
		return Result{Status: StatusNoFix, Reason: ReasonGapTooLarge}
	}

	fraction := float64(beforeGap) / float64(beforeGap+afterGap)
	fix := &Fix{
		Lat: lerp(before.Lat, after.Lat, fraction),
		Lon: lerp(before.Lon, after.Lon, fraction),
	}
	if before.Elevation != nil && after.Elevation != nil {
		elevation := lerp(*before.Elevation, *after.Elevation, fraction)
		fix.Elevation = &elevation
	}

	return Result{
		Status:    StatusInterpolated,
		Fix:       fix,
		BeforeGap: beforeGap,
		AfterGap:  afterGap,
	}
}

func exactFix(p *track.Point) Result {
	fix := &Fix{Lat: p.Lat, Lon: p.Lon}
	if p.Elevation != nil {
		elevation := *p.Elevation
		fix.Elevation = &elevation
	}
	sample := *p
	return Result{Status: StatusExactFix, Fix: fix, Sample: &sample}
}

// lerp interpolates linearly between a and b at fraction f in [0, 1]
func lerp(a, b, f float64) float64 {
	return a + f*(b-a)
}
