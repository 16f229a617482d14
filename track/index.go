package track

import (
	"sort"
	"time"
)

// Bracket returns the stored samples surrounding t, found by binary
// search over the sorted sequence:
//
//   - t before the first sample: (nil, &first)
//   - t after the last sample: (&last, nil)
//   - t exactly on a sample: both results reference that sample
//   - otherwise: the adjacent pair with before.Timestamp < t < after.Timestamp
//
// An empty store returns (nil, nil). The returned points are copies;
// each query is stateless and independent of any other.
func (s *Store) Bracket(t time.Time) (before, after *Point) {
	n := len(s.points)
	if n == 0 {
		return nil, nil
	}

	// First index with timestamp >= t.
	i := sort.Search(n, func(i int) bool {
		return !s.points[i].Timestamp.Before(t)
	})

	switch {
	case i == n:
		p := s.points[n-1]
		return &p, nil
	case s.points[i].Timestamp.Equal(t):
		b, a := s.points[i], s.points[i]
		return &b, &a
	case i == 0:
		p := s.points[0]
		return nil, &p
	default:
		b, a := s.points[i-1], s.points[i]
		return &b, &a
	}
}
