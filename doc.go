// Package gridkit solves puzzles played out on rectangular character
// grids: flood-filled regions, a turning walker, straight-line rays,
// climbing trails and wrapping drones.
//
// 🚀 What is gridkit?
//
//	A small, generic toolkit built around one value type, grid.Grid[T]:
//		• Lattice primitives: coordinates, vectors, eight named directions
//		• Neighbor classification with pluggable predicates
//		• Region discovery with area, perimeter, corners and prices
//		• A directed walker with loop detection and a parallel obstacle sweep
//		• Ray projection and antinode placement for antenna pairs
//		• Trail search on digit height maps and an 8-way word search
//		• Drones drifting over a wrapping floor, scored by quadrant
//
// Under the hood, everything is organized into subpackages:
//
//	grid/       - Grid[T], Coordinate, Vector, Direction, Classify, parsers
//	region/     - connected components of equal cells and their fence metrics
//	walker/     - patrol simulation, Loop/Terminates outcome, LoopObstacles
//	ray/        - StepVector, ProjectLine, Cast, Antinodes, ResonantAntinodes
//	trail/      - Trailheads, FindTrails, Score, Rating
//	wordsearch/ - CountWord, CountCross
//	drone/      - wrapping drone floor, QuadrantCounts, SafetyScore
//	input/      - line loading for puzzle files
//	config/     - .env and environment settings
//	cmd/        - the gridkit command line
//
// Quick ASCII example:
//
//	AAAA
//	BBCD    five regions; A has area 4, perimeter 10, 4 sides
//	BBCC
//	EEEC
//
//	go install github.com/PanoramicPanda/gridkit/cmd/gridkit@latest
package gridkit
