package track

import (
	"time"

	"github.com/trailstamp/geotag/utils"
)

// Stats summarizes a point sequence for logging and reports.
type Stats struct {
	Count      int
	Start      time.Time
	End        time.Time
	DistanceKM float64
}

// Summarize computes stats over points in the given order. Distance is
// the sum of great-circle legs between consecutive points.
func Summarize(points []Point) Stats {
	st := Stats{Count: len(points)}
	if len(points) == 0 {
		return st
	}
	st.Start = points[0].Timestamp
	st.End = points[len(points)-1].Timestamp
	for i := 1; i < len(points); i++ {
		st.DistanceKM += utils.HaversineKM(
			points[i-1].Lat, points[i-1].Lon,
			points[i].Lat, points[i].Lon)
	}
	return st
}

// Stats summarizes the stored points in timestamp order
func (s *Store) Stats() Stats {
	return Summarize(s.points)
}
