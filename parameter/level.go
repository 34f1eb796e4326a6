package parameter

// Level table defaults
const (
	// SimpleTierMaxLevel is the highest level generated with the row sweep
	SimpleTierMaxLevel = 2

	// MinMazeSize is the smallest grid a table entry may request (border plus one odd row)
	MinMazeSize = 5

	// LevelsFileEnv names the environment variable holding a TOML table override path
	LevelsFileEnv = "PACMON_LEVELS"
)
