package metadata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryForFile(t *testing.T) {
	dir := t.TempDir()
	reg := NewRegistry(nil, NewExiftool("", 0))

	t.Run("embedded exif", func(t *testing.T) {
		for _, name := range []string{"a.jpg", "b.JPEG", "c.tif", "d.TIFF"} {
			adapter, target, err := reg.ForFile(filepath.Join(dir, name))
			require.NoError(t, err)
			assert.IsType(t, &EXIFAdapter{}, adapter)
			assert.Equal(t, filepath.Join(dir, name), target)
		}
	})

	t.Run("generic sidecar", func(t *testing.T) {
		path := filepath.Join(dir, "plain.xmp")
		require.NoError(t, os.WriteFile(path, []byte(`<x:xmpmeta xmlns:x="adobe:ns:meta/"/>`), 0o644))

		adapter, target, err := reg.ForFile(path)
		require.NoError(t, err)
		assert.IsType(t, &XMPAdapter{}, adapter)
		assert.Equal(t, path, target)
	})

	t.Run("missing sidecar is generic", func(t *testing.T) {
		path := filepath.Join(dir, "new.xmp")

		adapter, _, err := reg.ForFile(path)
		require.NoError(t, err)
		assert.IsType(t, &XMPAdapter{}, adapter)
	})

	t.Run("darktable sidecar", func(t *testing.T) {
		path := filepath.Join(dir, "edited.xmp")
		require.NoError(t, os.WriteFile(path, []byte(darktableSidecar), 0o644))

		adapter, _, err := reg.ForFile(path)
		require.NoError(t, err)
		assert.IsType(t, &DarktableAdapter{}, adapter)
	})

	t.Run("raw addressed through sidecar", func(t *testing.T) {
		raw := filepath.Join(dir, "IMG_0010.NEF")

		adapter, target, err := reg.ForFile(raw)
		require.NoError(t, err)
		assert.IsType(t, &XMPAdapter{}, adapter)
		assert.Equal(t, raw+".xmp", target)
	})

	t.Run("raw with darktable sidecar", func(t *testing.T) {
		raw := filepath.Join(dir, "IMG_0011.nef")
		require.NoError(t, os.WriteFile(raw+".xmp", []byte(darktableSidecar), 0o644))

		adapter, target, err := reg.ForFile(raw)
		require.NoError(t, err)
		assert.IsType(t, &DarktableAdapter{}, adapter)
		assert.Equal(t, raw+".xmp", target)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, _, err := reg.ForFile(filepath.Join(dir, "notes.txt"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported file type")
	})
}
