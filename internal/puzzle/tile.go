package puzzle

import (
	"fmt"
	"math/rand"
)

// TileKind identifies the shape of a tile's pipe segment.
type TileKind uint8

const (
	// TileEmpty has no pipe and no open edges.
	TileEmpty TileKind = iota
	// TileEndpoint starts or ends a pipe; open only toward its facing
	// direction.
	TileEndpoint
	// TileStraight connects two opposite edges. Its direction names the
	// axis: an up or down direction means vertical, left or right means
	// horizontal.
	TileStraight
	// TileElbow connects two adjacent edges: its direction and the next
	// one clockwise.
	TileElbow
	// TileTee connects three edges; its direction is the one blocked edge.
	TileTee
	// TileCross connects all four edges.
	TileCross
)

// String returns a human-readable kind name.
func (k TileKind) String() string {
	switch k {
	case TileEmpty:
		return "Empty"
	case TileEndpoint:
		return "Endpoint"
	case TileStraight:
		return "Straight"
	case TileElbow:
		return "Elbow"
	case TileTee:
		return "Tee"
	case TileCross:
		return "Cross"
	default:
		return "Unknown"
	}
}

// Oriented reports whether tiles of this kind carry a direction payload.
// Empty and Cross are rotation-invariant and never do.
func (k TileKind) Oriented() bool {
	switch k {
	case TileEndpoint, TileStraight, TileElbow, TileTee:
		return true
	default:
		return false
	}
}

// Tile is one cell's puzzle piece: a kind plus, for oriented kinds, a facing
// direction. The zero value is an Empty tile.
//
// Invariant: Dir is DirUp (the zero Direction) whenever the kind is not
// oriented, so tiles compare correctly with ==.
type Tile struct {
	Kind TileKind
	Dir  Direction
}

// NewTile builds a tile, zeroing the direction for unoriented kinds.
// Straight tiles store the axis representative (up for vertical, left for
// horizontal) so that tiles with the same open edges compare equal with ==
// and the text codec round-trips exactly.
func NewTile(kind TileKind, dir Direction) Tile {
	if !kind.Oriented() {
		return Tile{Kind: kind}
	}
	if kind == TileStraight {
		if dir.Vertical() {
			dir = DirUp
		} else {
			dir = DirLeft
		}
	}
	return Tile{Kind: kind, Dir: dir}
}

// Rotate returns the tile turned one step clockwise. Empty and Cross are
// fixed points.
func (t Tile) Rotate() Tile {
	if !t.Kind.Oriented() {
		return t
	}
	return NewTile(t.Kind, t.Dir.Clockwise())
}

// RotateInPlace turns the tile one step clockwise, mutating it.
func (t *Tile) RotateInPlace() {
	*t = t.Rotate()
}

// Open reports whether the tile's edge toward d is open, i.e. a pipe
// connection passes through that side.
func (t Tile) Open(d Direction) bool {
	switch t.Kind {
	case TileEmpty:
		return false
	case TileEndpoint:
		return t.Dir == d
	case TileStraight:
		return t.Dir.Horizontal() == d.Horizontal()
	case TileElbow:
		return t.Dir == d || t.Dir.Clockwise() == d
	case TileTee:
		return t.Dir != d
	case TileCross:
		return true
	default:
		return false
	}
}

// Fits reports whether this tile and other agree on the edge they share,
// with other sitting toward side from this tile. The contract is symmetric:
// a.Fits(DirRight, b) == b.Fits(DirLeft, a).
func (t Tile) Fits(side Direction, other Tile) bool {
	return t.Open(side) == other.Open(side.Opposite())
}

// Shuffle randomizes the tile's orientation, keeping its kind.
func (t *Tile) Shuffle(rng *rand.Rand) {
	if t.Kind.Oriented() {
		*t = NewTile(t.Kind, RandomDirection(rng))
	}
}

// ParseTile maps a single character code to a tile:
//
//	' '              Empty
//	'^' '>' 'v' '<'  Endpoint facing up/right/down/left
//	'/' '-'          Straight on the vertical/horizontal axis
//	'1' '7' '9' '3'  Elbow with entry up/right/down/left
//	'8' '6' '2' '4'  Tee blocked up/right/down/left
//	'5'              Cross
//
// The elbow and tee digits follow numpad layout: the digit sits where the
// piece's corner or stem points on a 3x3 keypad.
func ParseTile(code byte) (Tile, error) {
	switch code {
	case ' ':
		return Tile{Kind: TileEmpty}, nil
	case '^':
		return Tile{Kind: TileEndpoint, Dir: DirUp}, nil
	case '>':
		return Tile{Kind: TileEndpoint, Dir: DirRight}, nil
	case 'v':
		return Tile{Kind: TileEndpoint, Dir: DirDown}, nil
	case '<':
		return Tile{Kind: TileEndpoint, Dir: DirLeft}, nil
	case '/':
		return Tile{Kind: TileStraight, Dir: DirUp}, nil
	case '-':
		return Tile{Kind: TileStraight, Dir: DirLeft}, nil
	case '1':
		return Tile{Kind: TileElbow, Dir: DirUp}, nil
	case '7':
		return Tile{Kind: TileElbow, Dir: DirRight}, nil
	case '9':
		return Tile{Kind: TileElbow, Dir: DirDown}, nil
	case '3':
		return Tile{Kind: TileElbow, Dir: DirLeft}, nil
	case '8':
		return Tile{Kind: TileTee, Dir: DirUp}, nil
	case '6':
		return Tile{Kind: TileTee, Dir: DirRight}, nil
	case '2':
		return Tile{Kind: TileTee, Dir: DirDown}, nil
	case '4':
		return Tile{Kind: TileTee, Dir: DirLeft}, nil
	case '5':
		return Tile{Kind: TileCross}, nil
	default:
		return Tile{}, ParseError{
			Code:    ErrInvalidTileCode,
			Message: fmt.Sprintf("invalid tile code %q", code),
		}
	}
}

// Code returns the character code for the tile, the exact inverse of
// ParseTile.
func (t Tile) Code() byte {
	switch t.Kind {
	case TileEmpty:
		return ' '
	case TileEndpoint:
		switch t.Dir {
		case DirUp:
			return '^'
		case DirRight:
			return '>'
		case DirDown:
			return 'v'
		default:
			return '<'
		}
	case TileStraight:
		if t.Dir.Vertical() {
			return '/'
		}
		return '-'
	case TileElbow:
		switch t.Dir {
		case DirUp:
			return '1'
		case DirRight:
			return '7'
		case DirDown:
			return '9'
		default:
			return '3'
		}
	case TileTee:
		switch t.Dir {
		case DirUp:
			return '8'
		case DirRight:
			return '6'
		case DirDown:
			return '2'
		default:
			return '4'
		}
	case TileCross:
		return '5'
	default:
		return ' '
	}
}

// String returns the tile's character code as a string.
func (t Tile) String() string {
	return string(rune(t.Code()))
}
