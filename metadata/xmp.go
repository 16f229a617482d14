package metadata

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/trailstamp/geotag/utils"
)

// XMPAdapter handles generic XMP sidecars. A missing sidecar is
// created on write with a minimal document.
type XMPAdapter struct {
	loc *time.Location
}

// NewXMPAdapter returns an adapter that interprets zoneless sidecar
// timestamps in loc (UTC when nil).
func NewXMPAdapter(loc *time.Location) *XMPAdapter {
	if loc == nil {
		loc = time.UTC
	}
	return &XMPAdapter{loc: loc}
}

func (a *XMPAdapter) ReadTimestamp(path string) (time.Time, bool, error) {
	return sidecarTimestamp(path, a.loc)
}

func (a *XMPAdapter) ReadCoordinate(path string) (Coordinate, bool, error) {
	return sidecarCoordinate(path)
}

func (a *XMPAdapter) WriteCoordinate(path string, c Coordinate) error {
	return writeSidecarCoordinate(path, c, true)
}

// sidecarFields are the XMP property local names the adapters care
// about, in attribute or element form.
var sidecarFields = map[string]bool{
	"DateTimeOriginal": true,
	"CreateDate":       true,
	"DateCreated":      true,
	"GPSLatitude":      true,
	"GPSLongitude":     true,
	"GPSAltitude":      true,
	"GPSAltitudeRef":   true,
}

// timestampFields in preference order.
var timestampFields = []string{"DateTimeOriginal", "CreateDate", "DateCreated"}

// readSidecarFields extracts the interesting properties of a sidecar.
// ok is false when the file does not exist or is not parseable XML.
func readSidecarFields(path string) (map[string]string, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to open sidecar %s: %w", path, err)
	}
	defer f.Close()

	fields, err := parseSidecar(f)
	if err != nil {
		return nil, false, nil
	}
	return fields, true, nil
}

// parseSidecar walks the XML token stream collecting the managed
// properties. Writers spread properties over one or more
// rdf:Description blocks, in attribute or element form; the first
// attribute occurrence wins, elements fill remaining gaps.
func parseSidecar(r io.Reader) (map[string]string, error) {
	dec := xml.NewDecoder(r)
	attrs := make(map[string]string)
	elems := make(map[string]string)
	var open string

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "Description" {
				for _, a := range t.Attr {
					if sidecarFields[a.Name.Local] {
						if _, seen := attrs[a.Name.Local]; !seen {
							attrs[a.Name.Local] = a.Value
						}
					}
				}
			} else if sidecarFields[t.Name.Local] {
				open = t.Name.Local
			}
		case xml.CharData:
			if open != "" {
				elems[open] += string(t)
			}
		case xml.EndElement:
			if t.Name.Local == open {
				open = ""
			}
		}
	}

	for name, value := range elems {
		if _, ok := attrs[name]; !ok {
			attrs[name] = strings.TrimSpace(value)
		}
	}
	return attrs, nil
}

func sidecarTimestamp(path string, loc *time.Location) (time.Time, bool, error) {
	fields, ok, err := readSidecarFields(path)
	if err != nil || !ok {
		return time.Time{}, false, err
	}
	for _, name := range timestampFields {
		raw, ok := fields[name]
		if !ok {
			continue
		}
		if ts, ok := utils.ParseTimeIn(raw, loc); ok {
			return ts.UTC(), true, nil
		}
	}
	return time.Time{}, false, nil
}

func sidecarCoordinate(path string) (Coordinate, bool, error) {
	fields, ok, err := readSidecarFields(path)
	if err != nil || !ok {
		return Coordinate{}, false, err
	}
	latRaw, okLat := fields["GPSLatitude"]
	lonRaw, okLon := fields["GPSLongitude"]
	if !okLat || !okLon {
		return Coordinate{}, false, nil
	}
	lat, errLat := ParseGPSCoordinate(latRaw)
	lon, errLon := ParseGPSCoordinate(lonRaw)
	if errLat != nil || errLon != nil {
		return Coordinate{}, false, nil
	}

	c := Coordinate{Lat: lat, Lon: lon}
	if altRaw, ok := fields["GPSAltitude"]; ok {
		if alt, err := ParseAltitude(altRaw, fields["GPSAltitudeRef"]); err == nil {
			c.Elevation = &alt
		}
	}
	return c, true, nil
}

func writeSidecarCoordinate(path string, c Coordinate, allowCreate bool) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if !allowCreate {
			return fmt.Errorf("sidecar %s does not exist", path)
		}
		if writeErr := os.WriteFile(path, minimalSidecar(c), 0o644); writeErr != nil {
			return fmt.Errorf("failed to create sidecar %s: %w", path, writeErr)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read sidecar %s: %w", path, err)
	}

	patched, err := injectDescriptionAttrs(data, coordinateAttrs(c))
	if err != nil {
		return fmt.Errorf("failed to update sidecar %s: %w", path, err)
	}
	if err := os.WriteFile(path, patched, 0o644); err != nil {
		return fmt.Errorf("failed to write sidecar %s: %w", path, err)
	}
	return nil
}

type xmpAttr struct {
	name  string
	value string
}

func coordinateAttrs(c Coordinate) []xmpAttr {
	attrs := []xmpAttr{
		{"exif:GPSVersionID", "2.2.0.0"},
		{"exif:GPSLatitude", FormatLatitude(c.Lat)},
		{"exif:GPSLongitude", FormatLongitude(c.Lon)},
	}
	if c.Elevation != nil {
		value, ref := FormatAltitude(*c.Elevation)
		attrs = append(attrs,
			xmpAttr{"exif:GPSAltitude", value},
			xmpAttr{"exif:GPSAltitudeRef", ref},
		)
	}
	return attrs
}

const descriptionTag = "<rdf:Description"

// injectDescriptionAttrs patches the managed attributes into the first
// rdf:Description open tag and leaves every other byte of the document
// untouched.
func injectDescriptionAttrs(data []byte, attrs []xmpAttr) ([]byte, error) {
	tagStart, err := findDescriptionStart(data)
	if err != nil {
		return nil, err
	}
	nameEnd := tagStart + len(descriptionTag)

	gt := scanTagEnd(data, nameEnd)
	if gt == -1 {
		return nil, errors.New("unterminated rdf:Description tag")
	}
	segEnd := gt
	if data[gt-1] == '/' {
		segEnd = gt - 1
	}

	seg := string(data[nameEnd:segEnd])
	if !bytes.Contains(data, []byte("xmlns:exif=")) {
		seg = ` xmlns:exif="http://ns.adobe.com/exif/1.0/"` + seg
	}
	for _, a := range attrs {
		if updated, ok := replaceAttr(seg, a.name, a.value); ok {
			seg = updated
			continue
		}
		seg += ` ` + a.name + `="` + a.value + `"`
	}

	var buf bytes.Buffer
	buf.Grow(len(data) + len(seg))
	buf.Write(data[:nameEnd])
	buf.WriteString(seg)
	buf.Write(data[segEnd:])
	return buf.Bytes(), nil
}

func findDescriptionStart(data []byte) (int, error) {
	from := 0
	for {
		i := bytes.Index(data[from:], []byte(descriptionTag))
		if i == -1 {
			return 0, errors.New("no rdf:Description element")
		}
		i += from
		next := i + len(descriptionTag)
		if next < len(data) {
			switch data[next] {
			case ' ', '\t', '\n', '\r', '>', '/':
				return i, nil
			}
		}
		from = next
	}
}

// scanTagEnd finds the '>' closing the tag that starts before from,
// skipping over quoted attribute values.
func scanTagEnd(data []byte, from int) int {
	var quote byte
	for i := from; i < len(data); i++ {
		b := data[i]
		switch {
		case quote != 0:
			if b == quote {
				quote = 0
			}
		case b == '"' || b == '\'':
			quote = b
		case b == '>':
			return i
		}
	}
	return -1
}

// replaceAttr swaps the value of an existing attribute inside an open
// tag segment, matching either quote style.
func replaceAttr(seg, name, value string) (string, bool) {
	for _, quote := range []string{`"`, `'`} {
		pat := name + "=" + quote
		from := 0
		for {
			i := strings.Index(seg[from:], pat)
			if i == -1 {
				break
			}
			i += from
			if i == 0 || !isXMLSpace(seg[i-1]) {
				from = i + 1
				continue
			}
			start := i + len(pat)
			end := strings.Index(seg[start:], quote)
			if end == -1 {
				return seg, false
			}
			return seg[:start] + value + seg[start+end:], true
		}
	}
	return seg, false
}

func isXMLSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// minimalSidecar renders a fresh sidecar carrying only the position.
func minimalSidecar(c Coordinate) []byte {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	b.WriteString("<x:xmpmeta xmlns:x=\"adobe:ns:meta/\" x:xmptk=\"geotag\">\n")
	b.WriteString(" <rdf:RDF xmlns:rdf=\"http://www.w3.org/1999/02/22-rdf-syntax-ns#\">\n")
	b.WriteString("  <rdf:Description rdf:about=\"\"\n")
	b.WriteString("    xmlns:exif=\"http://ns.adobe.com/exif/1.0/\"")
	for _, a := range coordinateAttrs(c) {
		b.WriteString("\n   ")
		b.WriteString(a.name)
		b.WriteString("=\"")
		b.WriteString(a.value)
		b.WriteString("\"")
	}
	b.WriteString("/>\n")
	b.WriteString(" </rdf:RDF>\n")
	b.WriteString("</x:xmpmeta>\n")
	return []byte(b.String())
}
