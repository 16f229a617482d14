package track

import (
	"bytes"
	"encoding/gob"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func elev(v float64) *float64 { return &v }

func TestStoreCacheRoundTrip(t *testing.T) {
	original, err := NewStore([]Point{
		{Timestamp: t0, Lat: 10.0, Lon: 20.0, Elevation: elev(340.5)},
		{Timestamp: t0.Add(10 * time.Minute), Lat: 10.1, Lon: 20.2},
	})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "track.gob")
	require.NoError(t, SerializeStoreToFile(original, path))

	restored, err := DeserializeStoreFromFile(path)
	require.NoError(t, err)

	if diff := cmp.Diff(original.Points(), restored.Points()); diff != "" {
		t.Errorf("restored store differs (-want +got):\n%s", diff)
	}
}

func TestStoreCacheWriterReader(t *testing.T) {
	original, err := NewStore([]Point{{Timestamp: t0, Lat: 1, Lon: 2}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, SerializeStoreToWriter(original, &buf))

	restored, err := DeserializeStoreFromReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, original.Points(), restored.Points())
}

func TestDeserializeStoreRejectsGarbage(t *testing.T) {
	_, err := DeserializeStore([]byte("not a gob stream"))
	assert.Error(t, err)
}

func TestDeserializeStoreRevalidates(t *testing.T) {
	// A cache that somehow holds malformed points must be rejected the
	// same way fresh input would be.
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode([]Point{{Timestamp: t0, Lat: 91, Lon: 0}})
	require.NoError(t, err)

	_, err = DeserializeStore(buf.Bytes())
	require.Error(t, err)

	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestDeserializeStoreFromMissingFile(t *testing.T) {
	_, err := DeserializeStoreFromFile(filepath.Join(t.TempDir(), "absent.gob"))
	assert.Error(t, err)
}
