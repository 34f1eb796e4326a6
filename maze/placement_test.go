package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsillydude/pacmon-game-sub000/parameter"
	"github.com/dsillydude/pacmon-game-sub000/vmath"
)

func TestSample_StaysInterior(t *testing.T) {
	rng := vmath.NewFastRand(11)
	for i := 0; i < 500; i++ {
		p, ok := Sample(rng, 1, 9, func(Point) bool { return true })
		require.True(t, ok)
		assert.True(t, p.X >= 1 && p.X <= 7 && p.Y >= 1 && p.Y <= 7, "sampled %v", p)
	}
}

func TestSample_GivesUpAfterAttempts(t *testing.T) {
	calls := 0
	_, ok := Sample(vmath.NewFastRand(1), parameter.PlacementAttempts, 9, func(Point) bool {
		calls++
		return false
	})
	assert.False(t, ok)
	assert.Equal(t, parameter.PlacementAttempts, calls)
}

func TestSample_TooSmall(t *testing.T) {
	_, ok := Sample(vmath.NewFastRand(1), 10, 2, func(Point) bool { return true })
	assert.False(t, ok)
}

func TestFindOpenSpace(t *testing.T) {
	m := newMaze(5)
	_, ok := FindOpenSpace(m, vmath.NewFastRand(2))
	assert.False(t, ok, "solid maze has no open space")

	only := Point{2, 3}
	m.set(only, Path)
	p, ok := FindOpenSpace(m, vmath.NewFastRand(2))
	require.True(t, ok)
	assert.Equal(t, only, p)

	_, ok = FindOpenSpace(m, vmath.NewFastRand(2), only)
	assert.False(t, ok, "the only path cell is excluded")

	m.set(only, Dot)
	_, ok = FindOpenSpace(m, vmath.NewFastRand(2))
	assert.False(t, ok, "dots are not open space")
}
