package grid

import "fmt"

// Direction is one of the four cardinal or four diagonal unit directions.
// Each set is declared in clockwise order so that turning right is a step
// to the next constant of the same set.
type Direction int

const (
	// Up is (-1, 0).
	Up Direction = iota
	// Right is (0, +1).
	Right
	// Down is (+1, 0).
	Down
	// Left is (0, -1).
	Left
	// UpRight is (-1, +1).
	UpRight
	// DownRight is (+1, +1).
	DownRight
	// DownLeft is (+1, -1).
	DownLeft
	// UpLeft is (-1, -1).
	UpLeft
)

const cardinalCount = 4

var vectors = [...]Vector{
	Up:        {DRow: -1, DCol: 0},
	Right:     {DRow: 0, DCol: 1},
	Down:      {DRow: 1, DCol: 0},
	Left:      {DRow: 0, DCol: -1},
	UpRight:   {DRow: -1, DCol: 1},
	DownRight: {DRow: 1, DCol: 1},
	DownLeft:  {DRow: 1, DCol: -1},
	UpLeft:    {DRow: -1, DCol: -1},
}

var names = [...]string{
	Up:        "up",
	Right:     "right",
	Down:      "down",
	Left:      "left",
	UpRight:   "up-right",
	DownRight: "down-right",
	DownLeft:  "down-left",
	UpLeft:    "up-left",
}

var markers = map[rune]Direction{
	'^': Up,
	'>': Right,
	'v': Down,
	'<': Left,
}

// Cardinals returns Up, Right, Down, Left.
func Cardinals() []Direction {
	return []Direction{Up, Right, Down, Left}
}

// Diagonals returns UpRight, DownRight, DownLeft, UpLeft.
func Diagonals() []Direction {
	return []Direction{UpRight, DownRight, DownLeft, UpLeft}
}

// AllDirections returns the cardinals followed by the diagonals.
func AllDirections() []Direction {
	return append(Cardinals(), Diagonals()...)
}

// Valid reports whether d is one of the eight declared directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= UpLeft
}

// IsCardinal reports whether d is axis-aligned.
func (d Direction) IsCardinal() bool {
	return d >= Up && d <= Left
}

// Vector returns the fixed (Δrow, Δcol) for d. Invalid directions map to
// the zero vector.
func (d Direction) Vector() Vector {
	if !d.Valid() {
		return Vector{}
	}
	return vectors[d]
}

// TurnRight rotates d 90° clockwise within its own set:
// up→right→down→left→up, and likewise for the diagonals.
func (d Direction) TurnRight() Direction {
	if !d.Valid() {
		return d
	}
	base := Up
	if !d.IsCardinal() {
		base = UpRight
	}
	return base + (d-base+1)%cardinalCount
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return d.TurnRight().TurnRight()
}

// Marker returns the agent glyph for cardinal directions, or 0.
func (d Direction) Marker() rune {
	for r, m := range markers {
		if m == d {
			return r
		}
	}
	return 0
}

// String returns the symbolic name of d.
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return names[d]
}

// ParseDirection looks a direction up by its symbolic name.
func ParseDirection(name string) (Direction, error) {
	for d, n := range names {
		if n == name {
			return Direction(d), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, name)
}

// DirectionFromMarker maps an agent glyph (^ > v <) to its heading.
func DirectionFromMarker(r rune) (Direction, bool) {
	d, ok := markers[r]
	return d, ok
}
