// Package navigation computes grid distance fields over generated mazes.
package navigation

import (
	"github.com/dsillydude/pacmon-game-sub000/maze"
	"github.com/dsillydude/pacmon-game-sub000/parameter"
)

// Direction constants, index into DirVectors
const (
	DirNone   int8 = -1 // Blocked or unreachable
	DirOrigin int8 = -2 // At origin cell
	DirN      int8 = 0
	DirE      int8 = 1
	DirS      int8 = 2
	DirW      int8 = 3
	DirCount  int8 = 4
)

// DirVectors matching DirN..DirW, cardinal only since actors never move diagonally
var DirVectors = [4]maze.Point{
	{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0},
}

// DistanceField stores step counts from an origin across open cells
type DistanceField struct {
	Size       int
	Origin     maze.Point
	Distances  []int  // Flat y*Size+x, NavUnreachable if never visited
	Directions []int8 // Step toward origin, DirNone if unreachable

	m *maze.Maze
}

// NewDistanceField runs a BFS from origin through non-wall cells of m.
// A wall or out of bounds origin yields a field where nothing is reachable.
func NewDistanceField(m *maze.Maze, origin maze.Point) *DistanceField {
	n := m.Size * m.Size
	f := &DistanceField{
		Size:       m.Size,
		Origin:     origin,
		Distances:  make([]int, n),
		Directions: make([]int8, n),
		m:          m,
	}
	for i := range f.Distances {
		f.Distances[i] = parameter.NavUnreachable
		f.Directions[i] = DirNone
	}
	if !m.Open(origin) {
		return f
	}

	start := f.index(origin)
	f.Distances[start] = 0
	f.Directions[start] = DirOrigin

	queue := make([]maze.Point, 0, n/2)
	queue = append(queue, origin)
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		d := f.Distances[f.index(cur)]
		for dir := int8(0); dir < DirCount; dir++ {
			v := DirVectors[dir]
			next := maze.Point{X: cur.X + v.X, Y: cur.Y + v.Y}
			if !m.Open(next) {
				continue
			}
			idx := f.index(next)
			if f.Distances[idx] != parameter.NavUnreachable {
				continue
			}
			f.Distances[idx] = d + 1
			// Moving opposite to the discovery direction leads back toward origin
			f.Directions[idx] = (dir + 2) % DirCount
			queue = append(queue, next)
		}
	}
	return f
}

func (f *DistanceField) index(p maze.Point) int {
	return p.Y*f.Size + p.X
}

func (f *DistanceField) inBounds(p maze.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < f.Size && p.Y < f.Size
}

// Distance returns steps from origin, false if unreachable
func (f *DistanceField) Distance(p maze.Point) (int, bool) {
	if !f.inBounds(p) {
		return 0, false
	}
	d := f.Distances[f.index(p)]
	return d, d != parameter.NavUnreachable
}

func (f *DistanceField) Reachable(p maze.Point) bool {
	_, ok := f.Distance(p)
	return ok
}

// Next returns the neighbour one step closer to origin.
// False at the origin itself or when p is unreachable.
func (f *DistanceField) Next(p maze.Point) (maze.Point, bool) {
	if !f.inBounds(p) {
		return p, false
	}
	dir := f.Directions[f.index(p)]
	if dir < 0 {
		return p, false
	}
	v := DirVectors[dir]
	return maze.Point{X: p.X + v.X, Y: p.Y + v.Y}, true
}

// Path walks Next from p to origin inclusive, nil if unreachable
func (f *DistanceField) Path(p maze.Point) []maze.Point {
	d, ok := f.Distance(p)
	if !ok {
		return nil
	}
	path := make([]maze.Point, 0, d+1)
	path = append(path, p)
	for cur := p; ; {
		next, ok := f.Next(cur)
		if !ok {
			break
		}
		path = append(path, next)
		cur = next
	}
	return path
}

// ReachableCount counts cells of kind connected to origin
func (f *DistanceField) ReachableCount(kind maze.Cell) int {
	n := 0
	for y, row := range f.m.Grid {
		for x, c := range row {
			if c == kind && f.Distances[y*f.Size+x] != parameter.NavUnreachable {
				n++
			}
		}
	}
	return n
}
