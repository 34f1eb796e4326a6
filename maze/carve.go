package maze

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/dsillydude/pacmon-game-sub000/parameter"
	"github.com/dsillydude/pacmon-game-sub000/vmath"
)

var (
	orthogonal = []Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	jumps      = []Point{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}
)

// carveRows opens every odd interior cell and its right neighbour.
// Rows never join vertically, so each odd row is its own corridor.
func carveRows(m *Maze, target int, rng vmath.Source) {
	dots := 0
	open := func(p Point) {
		if dots < target && vmath.Chance(rng, parameter.SimpleDotChance) {
			m.set(p, Dot)
			dots++
			return
		}
		m.set(p, Path)
	}

	for y := 1; y < m.Size-1; y += 2 {
		for x := 1; x < m.Size-1; x += 2 {
			open(Point{x, y})
			if x+1 < m.Size-1 {
				open(Point{x + 1, y})
			}
		}
	}
}

// carveFrontier grows corridors from (1,1) by popping random wall cells off a
// frontier and linking them to an open cell two steps away. Every cell is
// enqueued at most once, bounding the loop by the interior area.
func carveFrontier(m *Maze, target int, rng vmath.Source) {
	start := Point{1, 1}
	m.set(start, Path)

	seen := mapset.New[Point]()
	seen.Put(start)
	frontier := make([]Point, 0, m.Size*2)

	enqueue := func(p Point) {
		for _, d := range orthogonal {
			n := Point{p.X + d.X, p.Y + d.Y}
			if m.Interior(n) && m.At(n) == Wall && !seen.Has(n) {
				seen.Put(n)
				frontier = append(frontier, n)
			}
		}
	}
	enqueue(start)

	dots := 0
	limit := float64(target) * parameter.ComplexDotCapFactor
	candidates := make([]Point, 0, len(jumps))

	for len(frontier) > 0 {
		// Zero target has no cap to reach, carve until the frontier drains
		if target > 0 && float64(dots) >= limit {
			break
		}

		i := vmath.Intn(rng, len(frontier))
		c := frontier[i]
		frontier[i] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		candidates = candidates[:0]
		for _, d := range jumps {
			n := Point{c.X + d.X, c.Y + d.Y}
			if m.Interior(n) && m.Open(n) {
				candidates = append(candidates, n)
			}
		}

		if len(candidates) > 0 {
			n := candidates[vmath.Intn(rng, len(candidates))]
			mid := Point{(c.X + n.X) / 2, (c.Y + n.Y) / 2}
			m.set(c, Path)
			if m.At(mid) == Wall {
				m.set(mid, Path)
			}
			if dots < target && vmath.Chance(rng, parameter.ComplexDotChance) {
				m.set(c, Dot)
				dots++
			}
		}

		enqueue(c)
	}
}
