package region_test

import (
	"math/rand"
	"testing"

	"github.com/PanoramicPanda/gridkit/grid"
	"github.com/PanoramicPanda/gridkit/region"
)

// BenchmarkDiscoverAll measures DiscoverAll plus pricing on a randomly
// generated 500×500 grid with values in [0,4].
// Complexity: O(W×H)
func BenchmarkDiscoverAll(b *testing.B) {
	const n = 500
	rng := rand.New(rand.NewSource(42))
	rows := make([][]int, n)
	for y := 0; y < n; y++ {
		row := make([]int, n)
		for x := 0; x < n; x++ {
			row[x] = rng.Intn(5)
		}
		rows[y] = row
	}
	g, err := grid.New(rows)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		regions := region.DiscoverAll(g)
		_ = region.TotalBulkPrice(regions)
	}
}
