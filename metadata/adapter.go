package metadata

import "time"

// Coordinate is a GPS position as written to photo metadata.
type Coordinate struct {
	Lat       float64
	Lon       float64
	Elevation *float64
}

// Adapter reads and writes geotagging metadata for one family of
// target files.
//
// ReadTimestamp and ReadCoordinate report absence with ok=false and a
// nil error; an error means the file could not be accessed at all.
// Timestamps are returned in UTC.
type Adapter interface {
	ReadTimestamp(path string) (ts time.Time, ok bool, err error)
	ReadCoordinate(path string) (c Coordinate, ok bool, err error)
	WriteCoordinate(path string, c Coordinate) error
}
