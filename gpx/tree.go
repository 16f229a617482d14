package gpx

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/trailstamp/geotag/track"
	"github.com/trailstamp/geotag/utils"
)

// GroupByDay splits points by the civil date of their timestamp,
// evaluated in each point's own UTC offset. Keys use the "2006-01-02"
// form and each group is sorted chronologically.
func GroupByDay(points []track.Point) map[string][]track.Point {
	groups := make(map[string][]track.Point)
	for _, p := range points {
		day := utils.DayKey(p.Timestamp)
		groups[day] = append(groups[day], p)
	}
	for _, group := range groups {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Timestamp.Before(group[j].Timestamp)
		})
	}
	return groups
}

// Days returns the group keys in chronological order.
func Days(groups map[string][]track.Point) []string {
	days := make([]string, 0, len(groups))
	for day := range groups {
		days = append(days, day)
	}
	sort.Strings(days)
	return days
}

// DayPath maps a "2006-01-02" day key to its file under the tree root,
// e.g. base/2024/01/15.gpx.
func DayPath(base, day string) (string, error) {
	t, err := time.Parse("2006-01-02", day)
	if err != nil {
		return "", fmt.Errorf("invalid day key %q: %w", day, err)
	}
	return filepath.Join(base, t.Format("2006"), t.Format("01"), t.Format("02")+".gpx"), nil
}

// WriteTree writes one GPX file per civil day under base and returns
// the written paths in day order. Existing day files are replaced
// wholesale.
func WriteTree(base string, points []track.Point) ([]string, error) {
	groups := GroupByDay(points)
	paths := make([]string, 0, len(groups))
	for _, day := range Days(groups) {
		path, err := DayPath(base, day)
		if err != nil {
			return paths, err
		}
		if err := WriteFile(path, groups[day]); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// ReadTree reads every *.gpx file under dir (case-insensitive, any
// depth) and returns the concatenated points. A file that fails to
// parse aborts the read; track sources should not be silently partial.
func ReadTree(dir string) ([]track.Point, error) {
	var points []track.Point
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.ToLower(filepath.Ext(path)) != ".gpx" {
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
		return nil, fmt.Errorf("failed to read GPX tree %s: %w", dir, err)
	}
	return points, nil
}

// TreeModTime reports the newest modification time among the *.gpx
// files under dir. ok is false when the tree has no readable GPX
// files.
func TreeModTime(dir string) (newest time.Time, ok bool) {
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip entries we cannot read
		}
		if d.IsDir() {
			return nil
		}
		if strings.ToLower(filepath.Ext(path)) != ".gpx" {
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
