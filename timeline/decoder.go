package timeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/trailstamp/geotag/track"
	"github.com/trailstamp/geotag/utils"
)

type export struct {
	SemanticSegments []segment `json:"semanticSegments"`
}

type segment struct {
	TimelinePath []pathPoint `json:"timelinePath"`
}

type pathPoint struct {
	Point string `json:"point"`
	Time  string `json:"time"`
}

// Decode reads a Google Timeline JSON export and returns its track
// points in document order. Entries with an unparseable coordinate pair
// or timestamp are skipped.
func Decode(r io.Reader) ([]track.Point, error) {
	var doc export
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode timeline export: %w", err)
	}

	var points []track.Point
	for _, seg := range doc.SemanticSegments {
		for _, pp := range seg.TimelinePath {
			lat, lon, err := parseCoordinatePair(pp.Point)
			if err != nil {
				continue
			}
			ts, ok := utils.ParseTime(pp.Time)
			if !ok {
				continue
			}
			points = append(points, track.Point{Timestamp: ts, Lat: lat, Lon: lon})
		}
	}
	return points, nil
}

// DecodeFile decodes the timeline export at path
func DecodeFile(path string) ([]track.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open timeline export: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Decode(f)
}

// parseCoordinatePair parses a timeline coordinate string such as
// "50.0755°, 14.4378°" into latitude and longitude.
func parseCoordinatePair(s string) (lat, lon float64, err error) {
	raw := strings.TrimSpace(strings.ReplaceAll(s, "°", ""))
	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed coordinate pair %q", s)
	}
	lat, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed latitude in %q: %w", s, err)
	}
	lon, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed longitude in %q: %w", s, err)
	}
	return lat, lon, nil
}
