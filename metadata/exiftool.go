package metadata

import (
	"context"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultExiftoolPath resolves through $PATH.
	DefaultExiftoolPath = "exiftool"
	// DefaultExiftoolTimeout bounds one subprocess invocation.
	DefaultExiftoolTimeout = 20 * time.Second
)

// Exiftool runs the external exiftool binary to write GPS tags into
// files with embedded metadata.
type Exiftool struct {
	path    string
	timeout time.Duration
}

func NewExiftool(path string, timeout time.Duration) *Exiftool {
	if path == "" {
		path = DefaultExiftoolPath
	}
	if timeout <= 0 {
		timeout = DefaultExiftoolTimeout
	}
	return &Exiftool{path: path, timeout: timeout}
}

// WriteCoordinate invokes exiftool once for the given file. The call
// is bounded by the configured timeout; tool output is surfaced in the
// error on failure.
func (e *Exiftool) WriteCoordinate(path string, c Coordinate) error {
	ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
	defer cancel()

	args := append(coordinateArgs(c), "-overwrite_original", path)
	cmd := exec.CommandContext(ctx, e.path, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("exiftool failed for %s: %w: %s", path, err, msg)
		}
		return fmt.Errorf("exiftool failed for %s: %w", path, err)
	}
	return nil
}

// coordinateArgs builds the tag assignments for one write. Values are
// absolute; the hemisphere and sea-level reference tags carry the
// sign.
func coordinateArgs(c Coordinate) []string {
	latRef, lonRef := "N", "E"
	if c.Lat < 0 {
		latRef = "S"
	}
	if c.Lon < 0 {
		lonRef = "W"
	}
	args := []string{
		"-GPSLatitude=" + formatDegrees(math.Abs(c.Lat)),
		"-GPSLatitudeRef=" + latRef,
		"-GPSLongitude=" + formatDegrees(math.Abs(c.Lon)),
		"-GPSLongitudeRef=" + lonRef,
	}
	if c.Elevation != nil {
		alt, altRef := *c.Elevation, "0"
		if alt < 0 {
			alt, altRef = -alt, "1"
		}
		args = append(args,
			"-GPSAltitude="+formatDegrees(alt),
			"-GPSAltitudeRef="+altRef,
		)
	}
	return args
}

func formatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
