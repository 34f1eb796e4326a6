package level

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTable = `
[[level]]
size = 7
ghosts = 1
ghost_speed = 0.5
power_pellets = 0
dots = 4

[[level]]
size = 11
ghosts = 2
ghost_speed = 1.25
power_pellets = 2
dots = 20
`

func TestParse(t *testing.T) {
	tbl, err := Parse([]byte(sampleTable))
	require.NoError(t, err)
	require.Equal(t, 2, tbl.Max())

	assert.Equal(t, Settings{MazeSize: 7, GhostCount: 1, GhostSpeed: 0.5, PowerPellets: 0, Dots: 4}, tbl.Settings(1))
	assert.Equal(t, Settings{MazeSize: 11, GhostCount: 2, GhostSpeed: 1.25, PowerPellets: 2, Dots: 20}, tbl.Settings(2))
	assert.Equal(t, tbl.Settings(2), tbl.Settings(3), "beyond max clamps to last entry")
}

func TestParse_Errors(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := Parse([]byte(""))
		assert.ErrorIs(t, err, ErrEmptyTable)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := Parse([]byte("[[level]]\nsize = 9\nghost_speed = 1.0\nwalls = 3\n"))
		assert.ErrorIs(t, err, ErrUnknownKey)
		assert.Contains(t, err.Error(), "walls")
	})

	t.Run("invalid entry", func(t *testing.T) {
		_, err := Parse([]byte("[[level]]\nsize = 9\nghost_speed = 0.0\n"))
		assert.ErrorIs(t, err, ErrInvalidSettings)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := Parse([]byte("[[level]\nsize = "))
		assert.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "levels.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleTable), 0o644))

	tbl, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Max())

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
