package parameter

// Maze generation
const (
	// SimpleDotChance is the per-cell dot trial for the row sweep (0.3 skip chance)
	SimpleDotChance = 0.7

	// ComplexDotChance is the per-cell dot trial for frontier growth
	ComplexDotChance = 0.8

	// ComplexDotCapFactor bounds frontier growth by realized dots relative to the target
	ComplexDotCapFactor = 1.5

	// PlacementAttempts is the number of random samples before a spawn or pellet is dropped
	PlacementAttempts = 100

	// FallbackSpawnX, FallbackSpawnY is the player spawn when no open cell is found
	FallbackSpawnX = 1
	FallbackSpawnY = 1
)
