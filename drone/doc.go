// Package drone simulates drones drifting across a floor whose edges wrap
// around, and scores how they spread over the four quadrants.
//
// What:
//
//   - Parse / ParseAll: read "p=X,Y v=DX,DY" lines; X is the column, Y the row.
//   - NewFloor(width, height, drones): a W×H floor holding the drones.
//   - Move(times): advance every drone times steps; positions wrap modulo the
//     floor size on both axes, so one call equals times single steps.
//   - QuadrantOf / QuadrantCounts / SafetyScore: count drones per quadrant,
//     skipping the middle row and column, and multiply the four counts.
//
// Complexity:
//
//   - Move:           O(D) regardless of times.
//   - QuadrantCounts: O(D).
//
// Errors:
//
//   - ErrMalformedDrone (wraps grid.ErrMalformedInput) for unparsable lines.
//   - ErrInvalidSize when width or height is below 1.
//   - grid.ErrOutOfBounds when a drone starts off the floor.
package drone
