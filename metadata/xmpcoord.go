package metadata

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// XMP stores GPS positions in the GPSCoordinate text form
// "DDD,MM.mmmmk" (degrees, decimal minutes, hemisphere letter), with
// "DDD,MM,SSk" as a legacy variant. Altitude is an unsigned rational
// plus a 0/1 sea-level reference.

// FormatLatitude renders decimal degrees as an XMP GPSCoordinate,
// e.g. 50.0755 -> "50,4.530000N".
func FormatLatitude(v float64) string {
	return formatCoordinate(v, 'N', 'S')
}

// FormatLongitude renders decimal degrees as an XMP GPSCoordinate,
// e.g. -0.1278 -> "0,7.668000W".
func FormatLongitude(v float64) string {
	return formatCoordinate(v, 'E', 'W')
}

func formatCoordinate(v float64, pos, neg byte) string {
	hemi := pos
	if v < 0 {
		hemi = neg
		v = -v
	}
	deg := int(v)
	min := (v - float64(deg)) * 60
	// keep minutes below 60 after rounding to six decimals
	if min >= 59.9999995 {
		deg++
		min = 0
	}
	return fmt.Sprintf("%d,%.6f%c", deg, min, hemi)
}

// ParseGPSCoordinate reads both GPSCoordinate forms and, for leniency
// with non-conforming writers, plain signed decimal degrees.
func ParseGPSCoordinate(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty GPS coordinate")
	}

	sign := 1.0
	hasHemisphere := true
	switch s[len(s)-1] {
	case 'N', 'n', 'E', 'e':
		s = s[:len(s)-1]
	case 'S', 's', 'W', 'w':
		sign = -1
		s = s[:len(s)-1]
	default:
		hasHemisphere = false
	}

	parts := strings.Split(s, ",")
	if len(parts) == 1 && !hasHemisphere {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid GPS coordinate %q", s)
		}
		return v, nil
	}
	if len(parts) > 3 {
		return 0, fmt.Errorf("invalid GPS coordinate %q", s)
	}

	divisors := []float64{1, 60, 3600}
	v := 0.0
	for i, part := range parts {
		n, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid GPS coordinate component %q", part)
		}
		v += n / divisors[i]
	}
	return sign * v, nil
}

// FormatAltitude renders elevation in meters as the XMP rational value
// and its sea-level reference ("0" above, "1" below).
func FormatAltitude(m float64) (value, ref string) {
	ref = "0"
	if m < 0 {
		ref = "1"
		m = -m
	}
	return fmt.Sprintf("%d/100", int64(math.Round(m*100))), ref
}

// ParseAltitude reads the rational (or plain decimal) altitude value,
// applying the sea-level reference.
func ParseAltitude(value, ref string) (float64, error) {
	value = strings.TrimSpace(value)
	var m float64
	if num, den, found := strings.Cut(value, "/"); found {
		n, errN := strconv.ParseFloat(strings.TrimSpace(num), 64)
		d, errD := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if errN != nil || errD != nil || d == 0 {
			return 0, fmt.Errorf("invalid GPS altitude %q", value)
		}
		m = n / d
	} else {
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid GPS altitude %q", value)
		}
		m = v
	}
	if strings.TrimSpace(ref) == "1" {
		m = -m
	}
	return m, nil
}
