package grid

import "fmt"

// Add returns c displaced by v.
func (c Coordinate) Add(v Vector) Coordinate {
	return Coordinate{Row: c.Row + v.DRow, Col: c.Col + v.DCol}
}

// Sub returns the vector that carries o onto c.
func (c Coordinate) Sub(o Coordinate) Vector {
	return Vector{DRow: c.Row - o.Row, DCol: c.Col - o.Col}
}

// Step returns the coordinate one unit away in direction d.
func (c Coordinate) Step(d Direction) Coordinate {
	return c.Add(d.Vector())
}

// String renders c as "[row,col]".
func (c Coordinate) String() string {
	return fmt.Sprintf("[%d,%d]", c.Row, c.Col)
}

// Less orders coordinates row-major.
func Less(a, b Coordinate) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}

// Compare is the three-way form of Less, suitable for slices.SortFunc.
func Compare(a, b Coordinate) int {
	switch {
	case Less(a, b):
		return -1
	case Less(b, a):
		return 1
	default:
		return 0
	}
}

// Neg returns -v.
func (v Vector) Neg() Vector {
	return Vector{DRow: -v.DRow, DCol: -v.DCol}
}

// Scale returns v multiplied by k.
func (v Vector) Scale(k int) Vector {
	return Vector{DRow: v.DRow * k, DCol: v.DCol * k}
}

// IsZero reports whether v is the zero displacement.
func (v Vector) IsZero() bool {
	return v.DRow == 0 && v.DCol == 0
}
