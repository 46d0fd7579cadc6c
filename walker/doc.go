// Package walker simulates a patrolling agent with loop detection and
// searches for single obstacles that would trap it.
//
// What
//
//   - New scans the grid once for the agent marker (^ > v <); after that the
//     agent's position and heading are first-class state, never rescanned.
//   - Each transition computes target = position + heading vector:
//   - target off-grid  → Escaped (terminal)
//   - target obstacle  → Turning: rotate 90° clockwise in place
//   - otherwise        → Moving: advance to target
//   - Every run records (position, heading) states; revisiting one means the
//     walk is a Loop.
//   - LoopObstacles tries one extra obstacle per visited cell (start excluded)
//     and reports those that cause a Loop.
//
// Isolation
//
//	The map is cloned by New and never written again. A hypothesis obstacle
//	lives in a sparse overlay consulted on lookup, and every run allocates its
//	own visited-state set, so runs can be spread over goroutines without any
//	shared mutable state. Results are merged into a set and sorted row-major.
//
// Termination
//
//	There are at most 4×cells distinct agent states, so every run returns
//	within that many steps, whether the map is obstructed or not.
//
// Complexity (N = cells)
//
//   - Walk, Simulate: O(N) time, O(N) memory.
//   - LoopObstacles:  O(N²) time in the worst case, O(N·Workers) memory.
//
// Options
//
//   - WithObstacle(r): blocking cell value (default '#').
//   - WithWorkers(n):  sweep parallelism, n >= 1 (default 1).
//   - WithOnStep(fn):  hook after each transition of Walk.
//
// Errors
//
//   - ErrNoAgent          no marker found (wraps grid.ErrMalformedInput).
//   - ErrOptionViolation  invalid Option.
//   - ctx.Err()           LoopObstacles cancelled.
package walker
