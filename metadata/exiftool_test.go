package metadata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinateArgs(t *testing.T) {
	ele := -12.25
	tests := []struct {
		name string
		c    Coordinate
		want []string
	}{
		{
			name: "northeast",
			c:    Coordinate{Lat: 50.0755, Lon: 14.4378},
			want: []string{
				"-GPSLatitude=50.0755",
				"-GPSLatitudeRef=N",
				"-GPSLongitude=14.4378",
				"-GPSLongitudeRef=E",
			},
		},
		{
			name: "southwest",
			c:    Coordinate{Lat: -33.8688, Lon: -70.6693},
			want: []string{
				"-GPSLatitude=33.8688",
				"-GPSLatitudeRef=S",
				"-GPSLongitude=70.6693",
				"-GPSLongitudeRef=W",
			},
		},
		{
			name: "below sea level",
			c:    Coordinate{Lat: 31.5, Lon: 35.47, Elevation: &ele},
			want: []string{
				"-GPSLatitude=31.5",
				"-GPSLatitudeRef=N",
				"-GPSLongitude=35.47",
				"-GPSLongitudeRef=E",
				"-GPSAltitude=12.25",
				"-GPSAltitudeRef=1",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, coordinateArgs(tt.c))
		})
	}
}

func TestNewExiftoolDefaults(t *testing.T) {
	tool := NewExiftool("", 0)
	assert.Equal(t, DefaultExiftoolPath, tool.path)
	assert.Equal(t, DefaultExiftoolTimeout, tool.timeout)

	tool = NewExiftool("/opt/exiftool", 5*time.Second)
	assert.Equal(t, "/opt/exiftool", tool.path)
	assert.Equal(t, 5*time.Second, tool.timeout)
}

func TestWriteCoordinateMissingBinary(t *testing.T) {
	tool := NewExiftool("geotag-no-such-exiftool-binary", time.Second)

	err := tool.WriteCoordinate("photo.jpg", Coordinate{Lat: 1, Lon: 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exiftool failed")
}
