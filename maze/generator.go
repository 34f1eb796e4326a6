package maze

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/dsillydude/pacmon-game-sub000/level"
	"github.com/dsillydude/pacmon-game-sub000/parameter"
	"github.com/dsillydude/pacmon-game-sub000/vmath"
)

// Generator builds mazes from a level table. Safe for concurrent use as long
// as each caller brings its own Source.
type Generator struct {
	table  *level.Table
	logger *log.Logger
}

type Option func(*Generator)

// WithLogger routes clamp and placement diagnostics to l
func WithLogger(l *log.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// NewGenerator uses the built-in table when table is nil
func NewGenerator(table *level.Table, opts ...Option) *Generator {
	if table == nil {
		table = level.Default()
	}
	g := &Generator{
		table:  table,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var defaultGenerator = NewGenerator(nil)

// Generate builds a maze for lvl from the built-in table
func Generate(lvl int, rng vmath.Source) *Maze {
	return defaultGenerator.Generate(lvl, rng)
}

// TierFor reports which carving strategy a resolved level uses
func TierFor(lvl int) Tier {
	if lvl <= parameter.SimpleTierMaxLevel {
		return TierSimple
	}
	return TierFrontier
}

// Table exposes the generator's level table
func (g *Generator) Table() *level.Table {
	return g.table
}

// Generate builds a fresh maze for lvl. A nil rng draws from an entropy-seeded
// source, so repeated calls for the same level differ.
func (g *Generator) Generate(lvl int, rng vmath.Source) *Maze {
	if rng == nil {
		rng = vmath.NewEntropyRand()
	}

	resolved := g.table.Resolve(lvl)
	if resolved != lvl {
		g.logger.Debug("level clamped", "requested", lvl, "resolved", resolved)
	}
	s := g.table.Settings(resolved)

	m := newMaze(s.MazeSize)
	m.Level = resolved
	m.Settings = s
	m.Tier = TierFor(resolved)

	switch m.Tier {
	case TierSimple:
		carveRows(m, s.Dots, rng)
	default:
		carveFrontier(m, s.Dots, rng)
	}

	placed := g.placePellets(m, s.PowerPellets, rng)
	g.placeSpawns(m, s.GhostCount, rng)
	m.Dots = m.Count(Dot)

	g.logger.Debug("maze generated",
		"level", resolved,
		"tier", m.Tier,
		"size", m.Size,
		"dots", m.Dots,
		"pellets", placed,
		"ghosts", len(m.GhostStarts),
	)
	return m
}

func (g *Generator) placePellets(m *Maze, n int, rng vmath.Source) int {
	placed := 0
	for i := 0; i < n; i++ {
		p, ok := FindOpenSpace(m, rng)
		if !ok {
			g.logger.Debug("power pellet omitted", "index", i)
			continue
		}
		m.set(p, PowerPellet)
		placed++
	}
	return placed
}

func (g *Generator) placeSpawns(m *Maze, ghosts int, rng vmath.Source) {
	player, ok := FindOpenSpace(m, rng)
	if !ok {
		player = Point{parameter.FallbackSpawnX, parameter.FallbackSpawnY}
		g.logger.Debug("player spawn fell back", "x", player.X, "y", player.Y)
	}
	m.PlayerStart = player

	m.GhostStarts = make([]Point, 0, ghosts)
	for i := 0; i < ghosts; i++ {
		p, ok := FindOpenSpace(m, rng, player)
		if !ok {
			g.logger.Debug("ghost spawn omitted", "index", i)
			continue
		}
		m.GhostStarts = append(m.GhostStarts, p)
	}
}
