package gpx

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/trailstamp/geotag/track"
	"github.com/trailstamp/geotag/utils"
)

type gpxPoint struct {
	Lat       float64  `xml:"lat,attr"`
	Lon       float64  `xml:"lon,attr"`
	Elevation *float64 `xml:"ele"`
	Time      string   `xml:"time"`
}

type gpxSegment struct {
	Points []gpxPoint `xml:"trkpt"`
}

type gpxTrack struct {
	Name     string       `xml:"name"`
	Segments []gpxSegment `xml:"trkseg"`
}

type gpxDocument struct {
	XMLName xml.Name   `xml:"gpx"`
	Creator string     `xml:"creator,attr"`
	Version string     `xml:"version,attr"`
	Tracks  []gpxTrack `xml:"trk"`
}

// Read decodes a GPX document and flattens every track and segment into
// a single point slice, in document order. Points without a parseable
// time element are skipped; coordinate validation is left to the track
// store.
func Read(r io.Reader) ([]track.Point, error) {
	var doc gpxDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode GPX document: %w", err)
	}

	var points []track.Point
	for _, trk := range doc.Tracks {
		for _, seg := range trk.Segments {
			for _, pt := range seg.Points {
				ts, ok := utils.ParseTime(pt.Time)
				if !ok {
					continue
				}
				p := track.Point{
					Timestamp: ts,
					Lat:       pt.Lat,
					Lon:       pt.Lon,
				}
				if pt.Elevation != nil {
					ele := *pt.Elevation
					p.Elevation = &ele
				}
				points = append(points, p)
			}
		}
	}
	return points, nil
}

// ReadFile reads a single GPX file from disk.
func ReadFile(path string) ([]track.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open GPX file %s: %w", path, err)
	}
	defer f.Close()

	points, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read GPX file %s: %w", path, err)
	}
	return points, nil
}
