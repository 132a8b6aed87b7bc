// Package puzzle provides the core logic for the pipe-rotation puzzle:
// the tile and grid data model, the solve check, and the command-driven
// game reducer. This package is UI-agnostic and deterministic.
package puzzle

import "math/rand"

// Direction represents one of the four compass-like facings used for tile
// edges, tile orientation, and cursor movement.
type Direction uint8

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Clockwise returns the next direction in clockwise order.
// Up -> Right -> Down -> Left -> Up.
func (d Direction) Clockwise() Direction {
	switch d {
	case DirUp:
		return DirRight
	case DirRight:
		return DirDown
	case DirDown:
		return DirLeft
	case DirLeft:
		return DirUp
	default:
		return d
	}
}

// Opposite returns the opposite direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return d
	}
}

// Horizontal reports whether the direction lies on the left/right axis.
func (d Direction) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

// Vertical reports whether the direction lies on the up/down axis.
func (d Direction) Vertical() bool {
	return d == DirUp || d == DirDown
}

// Delta returns the (dr, dc) offset for moving one cell in this direction.
// Up decreases the row, Down increases it (screen coordinates).
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirRight:
		return 0, 1
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	default:
		return 0, 0
	}
}

// RandomDirection returns a uniformly random direction.
func RandomDirection(rng *rand.Rand) Direction {
	return Direction(rng.Intn(4))
}
