package parameter

// Navigation - Distance Field
const (
	// NavUnreachable marks cells the BFS never visited
	NavUnreachable = -1
)
