// Package drone defines the Drone, Floor and Quadrant types and sentinel
// errors for the drone subpackage of github.com/PanoramicPanda/gridkit.
package drone

import (
	"errors"
	"fmt"

	"github.com/PanoramicPanda/gridkit/grid"
)

// Sentinel errors for drone parsing and floor construction.
var (
	// ErrMalformedDrone indicates a line that is not "p=X,Y v=DX,DY".
	ErrMalformedDrone = fmt.Errorf("%w: drone must read p=X,Y v=DX,DY", grid.ErrMalformedInput)
	// ErrInvalidSize indicates a floor with no rows or no columns.
	ErrInvalidSize = errors.New("drone: floor width and height must be positive")
)

// Drone is one moving point. Position is a grid coordinate (Row = Y,
// Col = X); Velocity is added once per step.
type Drone struct {
	Position grid.Coordinate
	Velocity grid.Vector
}

// Floor is a wrapping W×H area holding drones.
type Floor struct {
	width, height int
	drones        []Drone
}

// Quadrant names one quarter of the floor.
type Quadrant int

// Quadrants in reading order. The values index QuadrantCounts.
const (
	TopLeft Quadrant = iota
	TopRight
	BottomLeft
	BottomRight
)

var quadrantNames = [...]string{"top-left", "top-right", "bottom-left", "bottom-right"}

// Quadrants returns all four quadrants in reading order.
func Quadrants() []Quadrant {
	return []Quadrant{TopLeft, TopRight, BottomLeft, BottomRight}
}

// String returns the quadrant name.
func (q Quadrant) String() string {
	if q < TopLeft || q > BottomRight {
		return fmt.Sprintf("Quadrant(%d)", int(q))
	}
	return quadrantNames[q]
}
