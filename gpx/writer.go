package gpx

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/trailstamp/geotag/track"
)

// Creator is written into the creator attribute of generated documents.
const Creator = "geotag"

// Marshal renders points as a GPX 1.1 document with a single track
// segment. Timestamps are written in RFC 3339 keeping whatever UTC
// offset each point carries, so a written file reads back to the same
// instants.
func Marshal(points []track.Point) []byte {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	b.WriteString("<gpx version=\"1.1\" creator=\"")
	b.WriteString(Creator)
	b.WriteString("\" xmlns=\"http://www.topografix.com/GPX/1/1\">\n")
	b.WriteString("  <trk>\n")
	b.WriteString("    <trkseg>\n")
	for _, p := range points {
		b.WriteString("      <trkpt lat=\"")
		b.WriteString(formatCoord(p.Lat))
		b.WriteString("\" lon=\"")
		b.WriteString(formatCoord(p.Lon))
		b.WriteString("\">\n")
		if p.Elevation != nil {
			b.WriteString("        <ele>")
			b.WriteString(formatCoord(*p.Elevation))
			b.WriteString("</ele>\n")
		}
		b.WriteString("        <time>")
		b.WriteString(p.Timestamp.Format(time.RFC3339))
		b.WriteString("</time>\n")
		b.WriteString("      </trkpt>\n")
	}
	b.WriteString("    </trkseg>\n")
	b.WriteString("  </trk>\n")
	b.WriteString("</gpx>\n")
	return []byte(b.String())
}

// WriteFile writes points to path as a GPX document, creating parent
// directories as needed. An existing file is replaced.
func WriteFile(path string, points []track.Point) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, Marshal(points), 0o644); err != nil {
		return fmt.Errorf("failed to write GPX file %s: %w", path, err)
	}
	return nil
}

// formatCoord keeps the shortest decimal form that round-trips the
// float64 exactly.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
