package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCoordinates(t *testing.T) {
	assert.Equal(t, "50,4.530000N", FormatLatitude(50.0755))
	assert.Equal(t, "33,52.128000S", FormatLatitude(-33.8688))
	assert.Equal(t, "14,26.268000E", FormatLongitude(14.4378))
	assert.Equal(t, "0,7.668000W", FormatLongitude(-0.1278))

	// minute rounding must not print 60.000000
	assert.Equal(t, "50,0.000000N", FormatLatitude(49.99999999999))
}

func TestParseGPSCoordinate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
		ok    bool
	}{
		{name: "degrees decimal minutes north", input: "50,4.530000N", want: 50.0755, ok: true},
		{name: "degrees decimal minutes south", input: "33,52.128000S", want: -33.8688, ok: true},
		{name: "degrees decimal minutes west", input: "0,7.668000W", want: -0.1278, ok: true},
		{name: "lowercase hemisphere", input: "14,26.268000e", want: 14.4378, ok: true},
		{name: "three part form", input: "50,27,3.6N", want: 50.451, ok: true},
		{name: "plain decimal", input: "14.4378", want: 14.4378, ok: true},
		{name: "plain negative decimal", input: "-0.1278", want: -0.1278, ok: true},
		{name: "decimal with hemisphere", input: "50.0755N", want: 50.0755, ok: true},
		{name: "surrounding space", input: " 50,4.530000N ", want: 50.0755, ok: true},
		{name: "empty", input: "", ok: false},
		{name: "garbage", input: "somewhere north", ok: false},
		{name: "too many parts", input: "1,2,3,4N", ok: false},
		{name: "bad component", input: "50,xxN", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGPSCoordinate(tt.input)
			if !tt.ok {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestGPSCoordinateRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 50.0755, -33.8688, 89.999999, -179.999999, 0.0001} {
		got, err := ParseGPSCoordinate(FormatLongitude(v))
		require.NoError(t, err)
		assert.InDelta(t, v, got, 1e-7)
	}
}

func TestAltitude(t *testing.T) {
	value, ref := FormatAltitude(340.5)
	assert.Equal(t, "34050/100", value)
	assert.Equal(t, "0", ref)

	value, ref = FormatAltitude(-12.25)
	assert.Equal(t, "1225/100", value)
	assert.Equal(t, "1", ref)

	m, err := ParseAltitude("34050/100", "0")
	require.NoError(t, err)
	assert.InDelta(t, 340.5, m, 1e-9)

	m, err = ParseAltitude("1225/100", "1")
	require.NoError(t, err)
	assert.InDelta(t, -12.25, m, 1e-9)

	m, err = ParseAltitude("340.5", "")
	require.NoError(t, err)
	assert.InDelta(t, 340.5, m, 1e-9)

	_, err = ParseAltitude("x/y", "0")
	assert.Error(t, err)
	_, err = ParseAltitude("5/0", "0")
	assert.Error(t, err)
}
