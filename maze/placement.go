package maze

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/dsillydude/pacmon-game-sub000/parameter"
	"github.com/dsillydude/pacmon-game-sub000/vmath"
)

// Sample draws up to attempts uniform interior points of a size×size grid and
// returns the first one accept approves. Gives up quietly when attempts run out.
func Sample(rng vmath.Source, attempts, size int, accept func(Point) bool) (Point, bool) {
	span := size - 2
	if span < 1 {
		return Point{}, false
	}
	for i := 0; i < attempts; i++ {
		p := Point{
			X: 1 + vmath.Intn(rng, span),
			Y: 1 + vmath.Intn(rng, span),
		}
		if accept(p) {
			return p, true
		}
	}
	return Point{}, false
}

// FindOpenSpace picks a random Path cell not in exclude.
// Dots and pellets are not open space: spawns never sit on a collectible.
func FindOpenSpace(m *Maze, rng vmath.Source, exclude ...Point) (Point, bool) {
	excluded := mapset.New[Point]()
	for _, p := range exclude {
		excluded.Put(p)
	}
	return Sample(rng, parameter.PlacementAttempts, m.Size, func(p Point) bool {
		return m.At(p) == Path && !excluded.Has(p)
	})
}
