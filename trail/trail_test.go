package trail_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PanoramicPanda/gridkit/grid"
	"github.com/PanoramicPanda/gridkit/trail"
)

var heightSample = []string{
	"89010123",
	"78121874",
	"87430965",
	"96549874",
	"45678903",
	"32019012",
	"01329801",
	"10456732",
}

func at(r, c int) grid.Coordinate { return grid.Coordinate{Row: r, Col: c} }

func parse(t *testing.T, lines ...string) *grid.Grid[int] {
	t.Helper()
	g, err := grid.ParseDigits(lines)
	require.NoError(t, err)
	return g
}

// TestTrailheads lists height-0 cells in row-major order.
func TestTrailheads(t *testing.T) {
	g := parse(t, heightSample...)
	assert.Equal(t, []grid.Coordinate{
		at(0, 2), at(0, 4), at(2, 4), at(4, 6), at(5, 2),
		at(5, 5), at(6, 0), at(6, 6), at(7, 1),
	}, trail.Trailheads(g))
}

// TestFindTrails_Single follows the only trail from [5,2].
func TestFindTrails_Single(t *testing.T) {
	g := parse(t, heightSample...)
	assert.Equal(t, [][]grid.Coordinate{{
		at(5, 2), at(5, 3), at(6, 3), at(6, 2), at(7, 2),
		at(7, 3), at(7, 4), at(7, 5), at(6, 5), at(6, 4),
	}}, trail.FindTrails(g, at(5, 2), 9))
}

// TestFindTrails_Branching checks independent branches and score vs rating.
func TestFindTrails_Branching(t *testing.T) {
	g := parse(t, heightSample...)
	trails := trail.FindTrails(g, at(5, 5), 9)
	require.Len(t, trails, 4)
	for _, tr := range trails {
		require.Len(t, tr, 10)
		assert.Equal(t, at(5, 5), tr[0])
	}
	assert.Equal(t, 3, trail.Score(g, at(5, 5)))
	assert.Equal(t, 4, trail.Rating(g, at(5, 5)))
}

// TestMapTotals checks the sample score and rating.
func TestMapTotals(t *testing.T) {
	g := parse(t, heightSample...)
	assert.Equal(t, 36, trail.ScoreMap(g))
	assert.Equal(t, 81, trail.RateMap(g))
}

// TestImpassable keeps trails off '.' cells.
func TestImpassable(t *testing.T) {
	scored := parse(t,
		"...0...",
		"...1...",
		"...2...",
		"6543456",
		"7.....7",
		"8.....8",
		"9.....9",
	)
	assert.Equal(t, 2, trail.ScoreMap(scored))

	rated := parse(t,
		".....0.",
		"..4321.",
		"..5..2.",
		"..6543.",
		"..7..4.",
		"..8765.",
		"..9....",
	)
	assert.Equal(t, 3, trail.RateMap(rated))
	assert.Nil(t, trail.FindTrails(rated, at(0, 0), 9))
}

// TestFindTrails_OffGrid yields nothing for an off-grid start.
func TestFindTrails_OffGrid(t *testing.T) {
	g := parse(t, heightSample...)
	assert.Nil(t, trail.FindTrails(g, at(-1, 3), 9))
	assert.Nil(t, trail.FindTrails(g, at(3, 8), 9))
}
