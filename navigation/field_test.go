package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsillydude/pacmon-game-sub000/maze"
	"github.com/dsillydude/pacmon-game-sub000/vmath"
)

// parseMaze builds a maze from rows using # wall, . dot, o pellet, space path
func parseMaze(rows ...string) *maze.Maze {
	m := &maze.Maze{Size: len(rows), Grid: make([][]maze.Cell, len(rows))}
	for y, row := range rows {
		m.Grid[y] = make([]maze.Cell, len(row))
		for x, r := range row {
			switch r {
			case '#':
				m.Grid[y][x] = maze.Wall
			case '.':
				m.Grid[y][x] = maze.Dot
			case 'o':
				m.Grid[y][x] = maze.PowerPellet
			default:
				m.Grid[y][x] = maze.Path
			}
		}
	}
	return m
}

func openCells(m *maze.Maze) int {
	return m.Count(maze.Path) + m.Count(maze.Dot) + m.Count(maze.PowerPellet)
}

func reachableOpen(f *DistanceField) int {
	return f.ReachableCount(maze.Path) + f.ReachableCount(maze.Dot) + f.ReachableCount(maze.PowerPellet)
}

func TestDistanceField_HandBuilt(t *testing.T) {
	m := parseMaze(
		"#######",
		"#  . ##",
		"### # #",
		"#o  # #",
		"#######",
		"#######",
		"#######",
	)
	f := NewDistanceField(m, maze.Point{X: 1, Y: 1})

	d, ok := f.Distance(maze.Point{X: 1, Y: 1})
	require.True(t, ok)
	assert.Equal(t, 0, d)

	d, ok = f.Distance(maze.Point{X: 4, Y: 1})
	require.True(t, ok)
	assert.Equal(t, 3, d)

	// Down through the gap at (3,2), then left to the pellet
	d, ok = f.Distance(maze.Point{X: 1, Y: 3})
	require.True(t, ok)
	assert.Equal(t, 6, d)

	assert.False(t, f.Reachable(maze.Point{X: 5, Y: 2}), "right pocket is sealed")
	assert.False(t, f.Reachable(maze.Point{X: 0, Y: 0}))
	assert.False(t, f.Reachable(maze.Point{X: -1, Y: 3}))

	assert.Equal(t, 1, f.ReachableCount(maze.Dot))
	assert.Equal(t, 1, f.ReachableCount(maze.PowerPellet))
}

func TestDistanceField_NextAndPath(t *testing.T) {
	m := parseMaze(
		"#####",
		"#   #",
		"### #",
		"#   #",
		"#####",
	)
	origin := maze.Point{X: 1, Y: 1}
	f := NewDistanceField(m, origin)

	_, ok := f.Next(origin)
	assert.False(t, ok, "origin has no next step")

	next, ok := f.Next(maze.Point{X: 3, Y: 2})
	require.True(t, ok)
	assert.Equal(t, maze.Point{X: 3, Y: 1}, next)

	path := f.Path(maze.Point{X: 1, Y: 3})
	require.Len(t, path, 7)
	assert.Equal(t, maze.Point{X: 1, Y: 3}, path[0])
	assert.Equal(t, origin, path[len(path)-1])
	for i := 1; i < len(path); i++ {
		dx := path[i].X - path[i-1].X
		dy := path[i].Y - path[i-1].Y
		assert.Equal(t, 1, dx*dx+dy*dy, "steps must be orthogonal neighbours")
	}

	assert.Nil(t, f.Path(maze.Point{X: 0, Y: 0}))
}

func TestDistanceField_WallOrigin(t *testing.T) {
	m := parseMaze("###", "# #", "###")
	f := NewDistanceField(m, maze.Point{X: 0, Y: 0})
	assert.False(t, f.Reachable(maze.Point{X: 1, Y: 1}))
	assert.Zero(t, reachableOpen(f))
}

func TestSimpleTier_RowsAreIsolated(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		m := maze.Generate(1, vmath.NewFastRand(seed))
		f := NewDistanceField(m, m.PlayerStart)

		// The player only ever reaches its own row
		assert.Equal(t, m.Size-2, reachableOpen(f), "seed %d", seed)
		assert.Less(t, reachableOpen(f), openCells(m), "seed %d", seed)
	}
}

func TestFrontierTier_FullyConnected(t *testing.T) {
	for lvl := 3; lvl <= 10; lvl++ {
		for seed := uint64(1); seed <= 10; seed++ {
			m := maze.Generate(lvl, vmath.NewFastRand(seed))
			f := NewDistanceField(m, maze.Point{X: 1, Y: 1})
			assert.Equal(t, openCells(m), reachableOpen(f), "level %d seed %d", lvl, seed)
			for _, g := range m.GhostStarts {
				assert.True(t, f.Reachable(g), "level %d seed %d ghost %v", lvl, seed, g)
			}
		}
	}
}
