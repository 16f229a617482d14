package metadata

import (
	"bytes"
	"os"
	"time"
)

// DarktableAdapter handles sidecars owned by darktable. Reads are the
// generic XMP reads; writes only patch an existing document so the
// darktable edit history survives, and a missing sidecar is never
// created.
type DarktableAdapter struct {
	loc *time.Location
}

func NewDarktableAdapter(loc *time.Location) *DarktableAdapter {
	if loc == nil {
		loc = time.UTC
	}
	return &DarktableAdapter{loc: loc}
}

func (a *DarktableAdapter) ReadTimestamp(path string) (time.Time, bool, error) {
	return sidecarTimestamp(path, a.loc)
}

func (a *DarktableAdapter) ReadCoordinate(path string) (Coordinate, bool, error) {
	return sidecarCoordinate(path)
}

func (a *DarktableAdapter) WriteCoordinate(path string, c Coordinate) error {
	return writeSidecarCoordinate(path, c, false)
}

// IsDarktableSidecar reports whether path is an existing sidecar
// declaring the darktable namespace.
func IsDarktableSidecar(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return bytes.Contains(data, []byte("xmlns:darktable="))
}
