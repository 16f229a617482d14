package fitfile

import (
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tormoder/fit"

	"github.com/trailstamp/geotag/track"
)

// ReadFile decodes a FIT activity file into track points. Records
// without a valid position or timestamp are skipped; FIT altitude is
// carried over as elevation when the device recorded one.
func ReadFile(path string) ([]track.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open FIT file %s: %w", path, err)
	}
	defer f.Close()

	decoded, err := fit.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode FIT file %s: %w", path, err)
	}
	activity, err := decoded.Activity()
	if err != nil {
		return nil, fmt.Errorf("FIT file %s is not an activity: %w", path, err)
	}

	points := make([]track.Point, 0, len(activity.Records))
	for _, rec := range activity.Records {
		p, ok := recordPoint(rec)
		if !ok {
			continue
		}
		points = append(points, p)
	}
	return points, nil
}

// ReadDir reads every *.fit file under dir (case-insensitive, any
// depth) and returns the concatenated points.
func ReadDir(dir string) ([]track.Point, error) {
	var points []track.Point
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.ToLower(filepath.Ext(path)) != ".fit" {
			return nil
		}
		filePoints, err := ReadFile(path)
		if err != nil {
			return err
		}
		points = append(points, filePoints...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read FIT directory %s: %w", dir, err)
	}
	return points, nil
}

// DirModTime reports the newest modification time among the *.fit
// files under dir. ok is false when the directory has no readable FIT
// files.
func DirModTime(dir string) (newest time.Time, ok bool) {
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip entries we cannot read
		}
		if d.IsDir() {
			return nil
		}
		if strings.ToLower(filepath.Ext(path)) != ".fit" {
			return nil
		}
		info, statErr := d.Info()
		if statErr != nil {
			return nil
		}
		if info.ModTime().After(newest) {
			newest = info.ModTime()
			ok = true
		}
		return nil
	})
	return newest, ok
}

// recordPoint converts one FIT record message. Semicircle coordinates
// come back as NaN degrees when the device wrote the invalid sentinel,
// which is how records without a GPS fix are filtered out.
func recordPoint(rec *fit.RecordMsg) (track.Point, bool) {
	if rec == nil || rec.Timestamp.IsZero() {
		return track.Point{}, false
	}
	lat := rec.PositionLat.Degrees()
	lon := rec.PositionLong.Degrees()
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return track.Point{}, false
	}

	p := track.Point{
		Timestamp: rec.Timestamp,
		Lat:       lat,
		Lon:       lon,
	}
	if ele := rec.GetEnhancedAltitudeScaled(); !math.IsNaN(ele) {
		p.Elevation = &ele
	} else if ele := rec.GetAltitudeScaled(); !math.IsNaN(ele) {
		p.Elevation = &ele
	}
	return p, true
}
