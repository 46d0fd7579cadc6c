// File: ray/example_test.go
package ray_test

import (
	"fmt"
	"slices"

	"github.com/PanoramicPanda/gridkit/grid"
	"github.com/PanoramicPanda/gridkit/ray"
)

// ExampleCast projects a line from one antenna away from its partner
// until the grid edge.
func ExampleCast() {
	g, _ := grid.Filled(6, 6, '.')
	a := grid.Coordinate{Row: 2, Col: 2}
	b := grid.Coordinate{Row: 3, Col: 3}

	step := ray.StepVector(a, b)
	fmt.Println("step:", step.DRow, step.DCol)
	fmt.Println("beyond b:", slices.Collect(ray.Cast(g, b, step.Neg())))

	// Output:
	// step: -1 -1
	// beyond b: [[4,4] [5,5]]
}

// ExampleResonantAntinodes counts antinodes of the antenna sample.
func ExampleResonantAntinodes() {
	g, _ := grid.Parse(antennaSample)
	fmt.Println("antinodes:", len(ray.Antinodes(g, '.')))
	fmt.Println("resonant:", len(ray.ResonantAntinodes(g, '.')))

	// Output:
	// antinodes: 14
	// resonant: 34
}
