package metadata

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"

	"github.com/trailstamp/geotag/utils"
)

// EXIFAdapter handles files with an embedded EXIF block. Reads decode
// the block directly; writes go through exiftool.
type EXIFAdapter struct {
	loc  *time.Location
	tool *Exiftool
}

// NewEXIFAdapter returns an adapter that interprets the zoneless EXIF
// capture timestamps in loc (UTC when nil).
func NewEXIFAdapter(loc *time.Location, tool *Exiftool) *EXIFAdapter {
	if loc == nil {
		loc = time.UTC
	}
	return &EXIFAdapter{loc: loc, tool: tool}
}

func (a *EXIFAdapter) ReadTimestamp(path string) (time.Time, bool, error) {
	x, err := decodeEXIF(path)
	if err != nil {
		return time.Time{}, false, err
	}
	if x == nil {
		return time.Time{}, false, nil
	}

	for _, name := range []exif.FieldName{exif.DateTimeOriginal, exif.DateTime} {
		tag, err := x.Get(name)
		if err != nil {
			continue
		}
		raw, err := tag.StringVal()
		if err != nil {
			continue
		}
		if ts, ok := utils.ParseTimeIn(raw, a.loc); ok {
			return ts.UTC(), true, nil
		}
	}
	return time.Time{}, false, nil
}

func (a *EXIFAdapter) ReadCoordinate(path string) (Coordinate, bool, error) {
	x, err := decodeEXIF(path)
	if err != nil {
		return Coordinate{}, false, err
	}
	if x == nil {
		return Coordinate{}, false, nil
	}

	lat, lon, err := x.LatLong()
	if err != nil {
		return Coordinate{}, false, nil
	}
	c := Coordinate{Lat: lat, Lon: lon}

	if tag, err := x.Get(exif.GPSAltitude); err == nil {
		if num, den, err := tag.Rat2(0); err == nil && den != 0 {
			alt := float64(num) / float64(den)
			if ref, err := x.Get(exif.GPSAltitudeRef); err == nil {
				if v, err := ref.Int(0); err == nil && v == 1 {
					alt = -alt
				}
			}
			c.Elevation = &alt
		}
	}
	return c, true, nil
}

func (a *EXIFAdapter) WriteCoordinate(path string, c Coordinate) error {
	if a.tool == nil {
		return errors.New("no exiftool configured for EXIF writes")
	}
	return a.tool.WriteCoordinate(path, c)
}

// decodeEXIF returns (nil, nil) for files that carry no usable EXIF
// block; only I/O failures surface as errors.
func decodeEXIF(path string) (*exif.Exif, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return nil, nil
	}
	return x, nil
}
