package main

import (
	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/dsillydude/pacmon-game-sub000/maze"
	"github.com/dsillydude/pacmon-game-sub000/vmath"
)

var (
	styleWall   = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleDot    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	stylePellet = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	stylePlayer = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleGhost  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

type viewer struct {
	screen tcell.Screen
	gen    *maze.Generator
	rng    vmath.Source
	logger *log.Logger

	level int
	m     *maze.Maze
}

func runViewer(gen *maze.Generator, startLevel int, seed uint64, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	v := &viewer{
		screen: screen,
		gen:    gen,
		rng:    newSource(seed),
		logger: logger,
		level:  gen.Table().Resolve(startLevel),
	}
	v.regenerate()

	for {
		v.draw()
		if !v.handle(screen.PollEvent()) {
			return nil
		}
	}
}

func (v *viewer) regenerate() {
	v.m = v.gen.Generate(v.level, v.rng)
	v.logger.Debug("preview regenerated", "level", v.level, "dots", v.m.Dots)
}

func (v *viewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case nil:
		return false
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case 'n':
			v.level = v.gen.Table().Resolve(v.level + 1)
			v.regenerate()
		case 'p':
			v.level = v.gen.Table().Resolve(v.level - 1)
			v.regenerate()
		case 'r':
			v.regenerate()
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *viewer) draw() {
	v.screen.Clear()

	ghosts := make(map[maze.Point]bool, len(v.m.GhostStarts))
	for _, g := range v.m.GhostStarts {
		ghosts[g] = true
	}

	for y, row := range v.m.Grid {
		for x, c := range row {
			p := maze.Point{X: x, Y: y}
			r, style := maze.Glyph(c), tcell.StyleDefault
			switch {
			case p == v.m.PlayerStart:
				r, style = 'C', stylePlayer
			case ghosts[p]:
				r, style = 'M', styleGhost
			case c == maze.Wall:
				style = styleWall
			case c == maze.Dot:
				style = styleDot
			case c == maze.PowerPellet:
				style = stylePellet
			}
			// Two columns per cell keeps the grid roughly square
			v.screen.SetContent(x*2, y, r, nil, style)
			if c == maze.Wall {
				v.screen.SetContent(x*2+1, y, r, nil, style)
			}
		}
	}

	drawText(v.screen, 0, v.m.Size+1, styleStatus, describe(v.m))
	drawText(v.screen, 0, v.m.Size+2, styleStatus, "n/p level  r regenerate  q quit")
	v.screen.Show()
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}
