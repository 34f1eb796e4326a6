// Package maze builds the playfield for a level: walls, corridors, dots, power pellets and spawns.
package maze

import (
	"strings"

	"github.com/dsillydude/pacmon-game-sub000/level"
)

// Cell kinds, values match the grid encoding the renderer expects
type Cell uint8

const (
	Path        Cell = 0
	Wall        Cell = 1
	Dot         Cell = 2
	PowerPellet Cell = 3
)

func (c Cell) String() string {
	switch c {
	case Path:
		return "path"
	case Wall:
		return "wall"
	case Dot:
		return "dot"
	case PowerPellet:
		return "power_pellet"
	}
	return "unknown"
}

type Point struct {
	X, Y int
}

// Tier identifies the carving strategy used for a maze
type Tier uint8

const (
	TierSimple   Tier = iota // Row sweep, disconnected horizontal corridors
	TierFrontier             // Randomized frontier growth
)

func (t Tier) String() string {
	if t == TierSimple {
		return "simple"
	}
	return "frontier"
}

// Maze is a generated level. The generator never touches it after returning;
// game loops should Clone before mutating.
type Maze struct {
	Grid     [][]Cell // Grid[y][x]
	Size     int
	Level    int // Resolved level, after clamping
	Tier     Tier
	Settings level.Settings

	PlayerStart Point
	GhostStarts []Point
	Dots        int // Realized dot cells
}

func newMaze(size int) *Maze {
	grid := make([][]Cell, size)
	for y := range grid {
		grid[y] = make([]Cell, size)
		for x := range grid[y] {
			grid[y][x] = Wall
		}
	}
	return &Maze{Grid: grid, Size: size}
}

func (m *Maze) InBounds(p Point) bool {
	return p.X >= 0 && p.X < m.Size && p.Y >= 0 && p.Y < m.Size
}

// Interior excludes the outer wall ring
func (m *Maze) Interior(p Point) bool {
	return p.X >= 1 && p.X <= m.Size-2 && p.Y >= 1 && p.Y <= m.Size-2
}

// At returns Wall for out of bounds points
func (m *Maze) At(p Point) Cell {
	if !m.InBounds(p) {
		return Wall
	}
	return m.Grid[p.Y][p.X]
}

func (m *Maze) set(p Point, c Cell) {
	m.Grid[p.Y][p.X] = c
}

// Open reports whether an actor can stand on p
func (m *Maze) Open(p Point) bool {
	return m.At(p) != Wall
}

func (m *Maze) Count(kind Cell) int {
	n := 0
	for _, row := range m.Grid {
		for _, c := range row {
			if c == kind {
				n++
			}
		}
	}
	return n
}

// Clone deep-copies the maze for use as a mutable play session
func (m *Maze) Clone() *Maze {
	c := *m
	c.Grid = make([][]Cell, len(m.Grid))
	for y, row := range m.Grid {
		c.Grid[y] = append([]Cell(nil), row...)
	}
	if m.GhostStarts != nil {
		c.GhostStarts = make([]Point, len(m.GhostStarts))
		copy(c.GhostStarts, m.GhostStarts)
	}
	return &c
}

// String draws the grid with spawns overlaid, one line per row
func (m *Maze) String() string {
	ghosts := make(map[Point]bool, len(m.GhostStarts))
	for _, g := range m.GhostStarts {
		ghosts[g] = true
	}

	var sb strings.Builder
	sb.Grow(m.Size * (m.Size*3 + 1))
	for y, row := range m.Grid {
		for x, c := range row {
			p := Point{x, y}
			switch {
			case p == m.PlayerStart:
				sb.WriteRune('P')
			case ghosts[p]:
				sb.WriteRune('G')
			default:
				sb.WriteRune(Glyph(c))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Glyph is the terminal rune for a cell kind
func Glyph(c Cell) rune {
	switch c {
	case Wall:
		return '█'
	case Dot:
		return '·'
	case PowerPellet:
		return '●'
	}
	return ' '
}
