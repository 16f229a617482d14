package track

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
	"os"
)

// SerializeStore encodes a Store's points to bytes using gob encoding.
// This is useful for disk-based caching to avoid re-parsing a large
// track tree on every run.
//
// Example:
//
//	store, _ := track.NewStore(points)
//	data, err := track.SerializeStore(store)
//	if err != nil {
//	    // handle error
//	}
//	os.WriteFile("/path/to/cache/track.gob", data, 0644)
func SerializeStore(s *Store) ([]byte, error) {
	var buf bytes.Buffer
	encoder := gob.NewEncoder(&buf)
	if err := encoder.Encode(s.points); err != nil {
		return nil, fmt.Errorf("failed to encode track store: %w", err)
	}
	return buf.Bytes(), nil
}

// DeserializeStore decodes a Store from bytes produced by
// SerializeStore. The points pass through NewStore again, so a cache
// holding malformed data is rejected the same way fresh data would be.
//
// Example:
//
//	data, _ := os.ReadFile("/path/to/cache/track.gob")
//	store, err := track.DeserializeStore(data)
//	if err != nil {
//	    // Cache is corrupted or stale, rebuild from track sources
//	}
func DeserializeStore(data []byte) (*Store, error) {
	buf := bytes.NewReader(data)
	decoder := gob.NewDecoder(buf)
	var points []Point
	if err := decoder.Decode(&points); err != nil {
		return nil, fmt.Errorf("failed to decode track store: %w", err)
	}
	return NewStore(points)
}

// SerializeStoreToFile writes a Store to a file using gob encoding.
// Convenience wrapper around SerializeStore for direct file I/O.
func SerializeStoreToFile(s *Store, filepath string) error {
	data, err := SerializeStore(s)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}

// DeserializeStoreFromFile reads a Store from a file written by
// SerializeStoreToFile.
func DeserializeStoreFromFile(filepath string) (*Store, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}
	return DeserializeStore(data)
}

// SerializeStoreToWriter writes a Store to an io.Writer using gob
// encoding, for callers with their own storage backends.
func SerializeStoreToWriter(s *Store, w io.Writer) error {
	encoder := gob.NewEncoder(w)
	if err := encoder.Encode(s.points); err != nil {
		return fmt.Errorf("failed to encode track store: %w", err)
	}
	return nil
}

// DeserializeStoreFromReader reads a Store from an io.Reader.
func DeserializeStoreFromReader(r io.Reader) (*Store, error) {
	decoder := gob.NewDecoder(r)
	var points []Point
	if err := decoder.Decode(&points); err != nil {
		return nil, fmt.Errorf("failed to decode track store: %w", err)
	}
	return NewStore(points)
}
