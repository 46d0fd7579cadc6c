// Package ray projects straight lines across a grid lattice.
//
// What:
//
//   - StepVector(a, b): signed displacement from b to a, per axis
//     sign(a−b)·|a−b|.
//   - ProjectLine(origin, step): lazy iter.Seq of origin+k·step, k = 1, 2, ...
//   - Within/Cast: clip a projection at the first off-grid coordinate.
//   - Antinodes / ResonantAntinodes: mark points colinear with each pair of
//     same-valued sources, once per side or repeated to the grid edge.
//
// Complexity:
//
//   - StepVector: O(1).
//   - Cast:       O(max(H, W)) coordinates.
//   - Antinodes:  O(Σ k²) pairs for k sources per value, times O(max(H, W))
//     for the resonant variant.
package ray
