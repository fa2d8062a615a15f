package mcporter_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/fwojciec/context7/mcporter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscover(t *testing.T) {
	t.Parallel()

	t.Run("follows pattern priority", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			".mcporter/mcporter.json": {Data: []byte("{}")},
			"config/mcporter.jsonc":   {Data: []byte("{}")},
		}
		got, err := mcporter.Discover(fsys, mcporter.DefaultConfigPatterns)
		require.NoError(t, err)
		assert.Equal(t, "config/mcporter.jsonc", got)
	})

	t.Run("prefers json over jsonc within a pattern", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"config/mcporter.jsonc": {Data: []byte("{}")},
			"config/mcporter.json":  {Data: []byte("{}")},
		}
		got, err := mcporter.Discover(fsys, mcporter.DefaultConfigPatterns)
		require.NoError(t, err)
		assert.Equal(t, "config/mcporter.json", got)
	})

	t.Run("finds the openclaw workspace config", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			".openclaw/workspace/config/mcporter.json": {Data: []byte("{}")},
		}
		got, err := mcporter.Discover(fsys, mcporter.DefaultConfigPatterns)
		require.NoError(t, err)
		assert.Equal(t, ".openclaw/workspace/config/mcporter.json", got)
	})

	t.Run("ignores directories", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"config/mcporter.json/nested": {Data: []byte("{}")},
		}
		got, err := mcporter.Discover(fsys, mcporter.DefaultConfigPatterns)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("supports recursive patterns", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"a/b/c/mcporter.json": {Data: []byte("{}")},
		}
		got, err := mcporter.Discover(fsys, []string{"**/mcporter.json"})
		require.NoError(t, err)
		assert.Equal(t, "a/b/c/mcporter.json", got)
	})

	t.Run("returns empty when nothing matches", func(t *testing.T) {
		t.Parallel()
		got, err := mcporter.Discover(fstest.MapFS{}, mcporter.DefaultConfigPatterns)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("rejects invalid patterns", func(t *testing.T) {
		t.Parallel()
		_, err := mcporter.Discover(fstest.MapFS{}, []string{"config/[mcporter.json"})
		assert.Error(t, err)
	})
}

func TestDiscoverIn(t *testing.T) {
	t.Parallel()

	t.Run("returns an absolute path under dir", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, ".mcporter"), 0o755))
		path := filepath.Join(dir, ".mcporter", "mcporter.json")
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

		got, err := mcporter.DiscoverIn(dir)
		require.NoError(t, err)
		assert.Equal(t, path, got)
	})

	t.Run("missing dir is not an error", func(t *testing.T) {
		t.Parallel()
		got, err := mcporter.DiscoverIn(filepath.Join(t.TempDir(), "nope"))
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("empty dir argument", func(t *testing.T) {
		t.Parallel()
		got, err := mcporter.DiscoverIn("")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
