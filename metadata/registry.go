package metadata

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// embeddedExts carry their metadata in the file itself.
var embeddedExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".tif":  true,
	".tiff": true,
}

// rawExts are camera raw formats addressed through an XMP sidecar.
var rawExts = map[string]bool{
	".arw": true,
	".cr2": true,
	".cr3": true,
	".dng": true,
	".nef": true,
	".orf": true,
	".pef": true,
	".raf": true,
	".raw": true,
	".rw2": true,
	".srw": true,
	".x3f": true,
}

// Registry selects the adapter family for target files.
type Registry struct {
	loc  *time.Location
	tool *Exiftool
}

// NewRegistry returns a registry whose adapters interpret zoneless
// timestamps in loc (UTC when nil) and write embedded metadata through
// tool.
func NewRegistry(loc *time.Location, tool *Exiftool) *Registry {
	if loc == nil {
		loc = time.UTC
	}
	return &Registry{loc: loc, tool: tool}
}

// ForFile picks the adapter for a target file and returns the path the
// adapter operates on. RAW files are addressed through their
// <file>.<ext>.xmp sidecar; existing sidecars declaring the darktable
// namespace get the history-preserving adapter.
func (r *Registry) ForFile(path string) (Adapter, string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case embeddedExts[ext]:
		return NewEXIFAdapter(r.loc, r.tool), path, nil
	case ext == ".xmp":
		return r.sidecarAdapter(path), path, nil
	case rawExts[ext]:
		sidecar := path + ".xmp"
		return r.sidecarAdapter(sidecar), sidecar, nil
	}
	return nil, "", fmt.Errorf("unsupported file type %s", path)
}

func (r *Registry) sidecarAdapter(path string) Adapter {
	if IsDarktableSidecar(path) {
		return NewDarktableAdapter(r.loc)
	}
	return NewXMPAdapter(r.loc)
}
