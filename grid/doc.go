// Package grid treats a rectangular 2D lattice of cells as the common ground
// for every gridkit traversal.
//
// What:
//
//   - Grid[T] wraps a row-major lattice of comparable values (runes or ints).
//   - Coordinate/Vector are value types; sets and maps key on them directly.
//   - Direction is a closed enum of 4 cardinal and 4 diagonal unit vectors,
//     looked up by name ("up-left") or agent marker ('^').
//   - Classify partitions a cell's 4-neighborhood into Same and Different.
//
// Why:
//
//   - Garden regions, guard patrols, antenna lines, trails and word search
//     all reduce to "look at a neighbor, check the bounds, compare values".
//
// Complexity:
//
//   - New/Parse:  O(H×W) time and memory.
//   - At/Get/Set: O(1).
//   - Classify:   O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths (wraps ErrMalformedInput).
//   - ErrMalformedInput: a cell cannot be decoded.
//   - ErrOutOfBounds: At/Set outside the extents.
//   - ErrUnknownDirection: ParseDirection with an unknown name.
package grid
