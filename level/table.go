// Package level maps level numbers to difficulty settings.
package level

import (
	"github.com/pkg/errors"

	"github.com/dsillydude/pacmon-game-sub000/parameter"
)

var (
	ErrEmptyTable      = errors.New("level table has no entries")
	ErrInvalidSettings = errors.New("invalid level settings")
)

// Settings is the difficulty record for one level
type Settings struct {
	MazeSize     int     `toml:"size"`
	GhostCount   int     `toml:"ghosts"`
	GhostSpeed   float64 `toml:"ghost_speed"` // Game loop multiplier, unused by generation
	PowerPellets int     `toml:"power_pellets"`
	Dots         int     `toml:"dots"` // Target, realized count may be lower
}

// Table is an immutable level list, entry i holds level i+1
type Table struct {
	entries []Settings
}

var defaultTable = &Table{entries: []Settings{
	{MazeSize: 9, GhostCount: 1, GhostSpeed: 0.8, PowerPellets: 1, Dots: 15},
	{MazeSize: 11, GhostCount: 2, GhostSpeed: 0.9, PowerPellets: 2, Dots: 25},
	{MazeSize: 13, GhostCount: 2, GhostSpeed: 1.0, PowerPellets: 2, Dots: 35},
	{MazeSize: 15, GhostCount: 3, GhostSpeed: 1.1, PowerPellets: 3, Dots: 50},
	{MazeSize: 17, GhostCount: 3, GhostSpeed: 1.2, PowerPellets: 3, Dots: 65},
	{MazeSize: 19, GhostCount: 4, GhostSpeed: 1.3, PowerPellets: 4, Dots: 80},
	{MazeSize: 21, GhostCount: 4, GhostSpeed: 1.4, PowerPellets: 4, Dots: 100},
	{MazeSize: 23, GhostCount: 5, GhostSpeed: 1.5, PowerPellets: 4, Dots: 120},
	{MazeSize: 25, GhostCount: 5, GhostSpeed: 1.6, PowerPellets: 5, Dots: 140},
	{MazeSize: 27, GhostCount: 6, GhostSpeed: 1.8, PowerPellets: 5, Dots: 160},
}}

// Default returns the built-in ten level table
func Default() *Table {
	return defaultTable
}

// Get looks up level in the built-in table
func Get(level int) Settings {
	return defaultTable.Settings(level)
}

// New validates entries and copies them into a table
func New(entries []Settings) (*Table, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyTable
	}
	for i, s := range entries {
		if err := s.validate(); err != nil {
			return nil, errors.Wrapf(err, "level %d", i+1)
		}
	}
	t := &Table{entries: make([]Settings, len(entries))}
	copy(t.entries, entries)
	return t, nil
}

// Max is the highest defined level
func (t *Table) Max() int {
	return len(t.entries)
}

// Resolve clamps level into [1, Max]
func (t *Table) Resolve(level int) int {
	if level < 1 {
		return 1
	}
	if level > len(t.entries) {
		return len(t.entries)
	}
	return level
}

// Settings returns the record for level, clamped to the table bounds
func (t *Table) Settings(level int) Settings {
	return t.entries[t.Resolve(level)-1]
}

func (s Settings) validate() error {
	switch {
	case s.MazeSize < parameter.MinMazeSize:
		return errors.Wrapf(ErrInvalidSettings, "size %d below %d", s.MazeSize, parameter.MinMazeSize)
	case s.GhostCount < 0:
		return errors.Wrapf(ErrInvalidSettings, "negative ghost count %d", s.GhostCount)
	case s.GhostSpeed <= 0:
		return errors.Wrapf(ErrInvalidSettings, "ghost speed %g must be positive", s.GhostSpeed)
	case s.PowerPellets < 0:
		return errors.Wrapf(ErrInvalidSettings, "negative power pellet count %d", s.PowerPellets)
	case s.Dots < 0:
		return errors.Wrapf(ErrInvalidSettings, "negative dot count %d", s.Dots)
	}
	return nil
}
