package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PanoramicPanda/gridkit/grid"
)

var garden = []string{
	"RRRRIICCFF",
	"RRRRIICCCF",
	"VVRRRCCFFF",
	"VVRCCCJFFF",
	"VVVVCJJCFE",
	"VVIVCCJJEE",
	"VVIIICJJEE",
	"MIIIIIJJEE",
	"MIIISIJEEE",
	"MMMISSJEEE",
}

// TestClassify_Equality matches the like/unlike counts of the garden sample.
func TestClassify_Equality(t *testing.T) {
	g, err := grid.Parse(garden)
	require.NoError(t, err)

	nb := grid.Classify(g, grid.Coordinate{Row: 0, Col: 0}, grid.Equal[rune]())
	assert.Len(t, nb.Same, 2)
	assert.Len(t, nb.Different, 2)
	// off-grid neighbors are reported in Different
	assert.Contains(t, nb.Different, grid.Coordinate{Row: -1, Col: 0})
	assert.Contains(t, nb.Different, grid.Coordinate{Row: 0, Col: -1})

	nb = grid.Classify(g, grid.Coordinate{Row: 2, Col: 5}, grid.Equal[rune]())
	assert.Len(t, nb.Same, 2)
	assert.Len(t, nb.Different, 2)
}

// TestClassify_Order checks neighbors are examined up, down, left, right.
func TestClassify_Order(t *testing.T) {
	g, _ := grid.Filled(3, 3, 'a')
	nb := grid.Classify(g, grid.Coordinate{Row: 1, Col: 1}, grid.Equal[rune]())
	assert.Equal(t, []grid.Coordinate{{0, 1}, {2, 1}, {1, 0}, {1, 2}}, nb.Same)
	assert.Empty(t, nb.Different)
}

// TestClassify_OneGreater checks the trail predicate.
func TestClassify_OneGreater(t *testing.T) {
	g, err := grid.ParseDigits([]string{
		"010",
		"121",
		"010",
	})
	require.NoError(t, err)
	nb := grid.Classify(g, grid.Coordinate{Row: 0, Col: 0}, grid.OneGreater)
	assert.ElementsMatch(t, []grid.Coordinate{{1, 0}, {0, 1}}, nb.Same)
	assert.Len(t, nb.Different, 2)

	nb = grid.Classify(g, grid.Coordinate{Row: 1, Col: 1}, grid.OneGreater)
	assert.Empty(t, nb.Same)
	assert.Len(t, nb.Different, 4)
}
