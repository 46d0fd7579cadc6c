// Package region partitions a grid into maximal same-value regions and
// measures them.
//
// What:
//
//   - DiscoverAll walks every cell in row-major order and grows one BFS
//     region per unassigned seed, recording each member's Same/Different
//     neighbor classification.
//   - Area, Perimeter, Price (area×perimeter).
//   - Corners (= Sides) via a three-case diagonal rule, BulkPrice (area×corners).
//
// Why:
//
//   - Fence pricing over garden plots: perimeter counts fence segments,
//     corners count straight fence sides.
//
// Guarantees:
//
//   - The union of all regions is the whole grid; regions are disjoint.
//   - Regions are maximal: no Same neighbor of a member is left out.
//   - Repeated discovery on an unmodified grid yields the same partition.
//
// Complexity:
//
//   - DiscoverAll: O(H×W), Memory: O(H×W).
//   - Corners:     O(Area).
package region
