package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokinpui/blocnote/model"
)

func TestNew_DefaultPath(t *testing.T) {
	assert.Equal(t, DefaultPath, New("").Path())
	assert.Equal(t, "/x/y.json", New("/x/y.json").Path())
}

func TestStore_WritesExpectedKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	m := New(path)

	require.NoError(t, m.Store(model.NewSettings(model.Geometry{Width: 120, Height: 40}, "/tmp/a.txt")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, float64(120), raw["width"])
	assert.Equal(t, float64(40), raw["height"])
	assert.Equal(t, "/tmp/a.txt", raw["last_file"])
}

func TestStore_UntitledWritesNull(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	m := New(path)

	require.NoError(t, m.Store(model.NewSettings(model.Geometry{Width: 80, Height: 24}, "")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"width":80,"height":24,"last_file":null}`, string(data))
}

func TestStore_OverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"garbage": true, "more": [1,2,3]}`), 0644))

	m := New(path)
	require.NoError(t, m.Store(model.NewSettings(model.Geometry{Width: 1, Height: 2}, "")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"width":1,"height":2,"last_file":null}`, string(data))
}

func TestStore_UnwritablePath(t *testing.T) {
	m := New(filepath.Join(t.TempDir(), "missing-dir", "config.json"))
	assert.Error(t, m.Store(model.Settings{}))
}

func TestLoad(t *testing.T) {
	t.Run("missing file yields zero settings", func(t *testing.T) {
		settings, err := New(filepath.Join(t.TempDir(), "config.json")).Load()
		require.NoError(t, err)
		assert.Equal(t, model.Settings{}, settings)
	})

	t.Run("round trip", func(t *testing.T) {
		m := New(filepath.Join(t.TempDir(), "config.json"))
		require.NoError(t, m.Store(model.NewSettings(model.Geometry{Width: 100, Height: 30}, "notes.txt")))

		settings, err := m.Load()
		require.NoError(t, err)
		assert.Equal(t, 100, settings.Width)
		assert.Equal(t, 30, settings.Height)
		assert.Equal(t, "notes.txt", settings.LastFilePath())
	})

	t.Run("corrupt file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

		_, err := New(path).Load()
		assert.Error(t, err)
	})
}
