package track

import (
	"sort"
	"time"
)

// Store owns an ordered, timestamp-deduplicated sequence of track
// points. It is built once before matching begins and is read-only for
// the rest of the run.
type Store struct {
	points []Point
}

// NewStore builds a Store from points gathered across any number of
// track sources. The input is validated (latitude in [-90,90],
// longitude in [-180,180]), normalized to UTC, and sorted by timestamp
// ascending. Points sharing a timestamp are resolved last-write-wins:
// the occurrence latest in the input order is kept. Construction fails
// with a *ValidationError on the first malformed point.
func NewStore(points []Point) (*Store, error) {
	for i, p := range points {
		if err := validatePoint(i, p); err != nil {
			return nil, err
		}
	}

	sorted := make([]Point, len(points))
	copy(sorted, points)
	for i := range sorted {
		sorted[i].Timestamp = sorted[i].Timestamp.UTC()
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	// The stable sort keeps input order within a run of equal timestamps,
	// so keeping each run's final point implements last-write-wins.
	deduped := make([]Point, 0, len(sorted))
	for i, p := range sorted {
		if i+1 < len(sorted) && sorted[i+1].Timestamp.Equal(p.Timestamp) {
			continue
		}
		deduped = append(deduped, p)
	}

	return &Store{points: deduped}, nil
}

// Size returns the number of stored points
func (s *Store) Size() int {
	return len(s.points)
}

// IsEmpty reports whether the store holds no points
func (s *Store) IsEmpty() bool {
	return len(s.points) == 0
}

// At returns the point at index i in timestamp order
func (s *Store) At(i int) Point {
	return s.points[i]
}

// Points returns a copy of the stored points in timestamp order
func (s *Store) Points() []Point {
	out := make([]Point, len(s.points))
	copy(out, s.points)
	return out
}

// Span returns the first and last stored timestamps. ok is false for an
// empty store.
func (s *Store) Span() (start, end time.Time, ok bool) {
	if len(s.points) == 0 {
		return time.Time{}, time.Time{}, false
	}
	return s.points[0].Timestamp, s.points[len(s.points)-1].Timestamp, true
}
