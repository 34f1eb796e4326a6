package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/dsillydude/pacmon-game-sub000/level"
	"github.com/dsillydude/pacmon-game-sub000/maze"
	"github.com/dsillydude/pacmon-game-sub000/navigation"
	"github.com/dsillydude/pacmon-game-sub000/parameter"
	"github.com/dsillydude/pacmon-game-sub000/vmath"
)

const (
	seedEnv     = "PACMON_SEED"
	logLevelEnv = "PACMON_LOG_LEVEL"
)

type options struct {
	from, to   int
	seed       uint64
	levelsPath string
	view       bool
	logLevel   string
}

func main() {
	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	logger := newLogger(os.Stderr, opts.logLevel)

	table := level.Default()
	if opts.levelsPath != "" {
		table, err = level.Load(opts.levelsPath)
		if err != nil {
			logger.Fatal("level table", "err", err)
		}
		logger.Info("level table loaded", "path", opts.levelsPath, "levels", table.Max())
	}
	gen := maze.NewGenerator(table, maze.WithLogger(logger))

	if opts.view {
		if err := runViewer(gen, opts.from, opts.seed, logger); err != nil {
			logger.Fatal("viewer", "err", err)
		}
		return
	}

	rng := newSource(opts.seed)
	for lvl := opts.from; lvl <= opts.to; lvl++ {
		m := gen.Generate(lvl, rng)
		fmt.Println(describe(m))
		fmt.Print(m.String())
		fmt.Println()
	}
}

func parseOptions(args []string) (options, error) {
	var opts options
	var seed string

	fs := flag.NewFlagSet("maze-generator", flag.ContinueOnError)
	fs.IntVar(&opts.from, "level", 1, "Level to generate")
	fs.IntVar(&opts.to, "to", 0, "Generate every level up to this one (default: -level only)")
	fs.StringVar(&seed, "seed", getEnv(seedEnv, "0"), "Random seed, 0 for entropy")
	fs.StringVar(&opts.levelsPath, "levels", getEnv(parameter.LevelsFileEnv, ""), "TOML level table override")
	fs.BoolVar(&opts.view, "view", false, "Interactive terminal preview")
	fs.StringVar(&opts.logLevel, "log-level", getEnv(logLevelEnv, "info"), "Log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	s, err := strconv.ParseUint(seed, 10, 64)
	if err != nil {
		return opts, fmt.Errorf("invalid seed %q: %w", seed, err)
	}
	opts.seed = s

	if opts.to < opts.from {
		opts.to = opts.from
	}
	return opts, nil
}

// getEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func newLogger(w io.Writer, levelName string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "maze-generator",
	})
	lvl, err := log.ParseLevel(levelName)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", levelName)
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}

func newSource(seed uint64) vmath.Source {
	if seed == 0 {
		return vmath.NewEntropyRand()
	}
	return vmath.NewFastRand(seed)
}

// describe summarizes a maze on one line
func describe(m *maze.Maze) string {
	field := navigation.NewDistanceField(m, m.PlayerStart)
	return fmt.Sprintf("level %d [%s] %dx%d  dots %d/%d (reachable %d)  pellets %d/%d  ghosts %d/%d  speed %.1fx",
		m.Level, m.Tier, m.Size, m.Size,
		m.Dots, m.Settings.Dots, field.ReachableCount(maze.Dot),
		m.Count(maze.PowerPellet), m.Settings.PowerPellets,
		len(m.GhostStarts), m.Settings.GhostCount,
		m.Settings.GhostSpeed,
	)
}
