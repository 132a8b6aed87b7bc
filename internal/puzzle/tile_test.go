package puzzle

import (
	"errors"
	"math/rand"
	"testing"
)

const allTileCodes = " ^>v</-179386245"

func allTiles(t *testing.T) []Tile {
	t.Helper()
	tiles := make([]Tile, 0, len(allTileCodes))
	for i := 0; i < len(allTileCodes); i++ {
		tile, err := ParseTile(allTileCodes[i])
		if err != nil {
			t.Fatalf("ParseTile(%q): %v", allTileCodes[i], err)
		}
		tiles = append(tiles, tile)
	}
	return tiles
}

func TestParseTileBijection(t *testing.T) {
	seen := make(map[Tile]byte)
	for i := 0; i < len(allTileCodes); i++ {
		code := allTileCodes[i]
		tile, err := ParseTile(code)
		if err != nil {
			t.Fatalf("ParseTile(%q): %v", code, err)
		}
		if prev, dup := seen[tile]; dup {
			t.Errorf("codes %q and %q parse to the same tile %v", prev, code, tile)
		}
		seen[tile] = code
		if got := tile.Code(); got != code {
			t.Errorf("ParseTile(%q).Code() = %q", code, got)
		}
	}
}

func TestParseTileInvalid(t *testing.T) {
	for _, code := range []byte{'x', '0', '|', '\\', '@'} {
		_, err := ParseTile(code)
		if err == nil {
			t.Fatalf("ParseTile(%q): want error", code)
		}
		var pe ParseError
		if !errors.As(err, &pe) || pe.Code != ErrInvalidTileCode {
			t.Errorf("ParseTile(%q) = %v, want InvalidTileCode", code, err)
		}
	}
}

func TestRotateFourCycle(t *testing.T) {
	for _, tile := range allTiles(t) {
		got := tile.Rotate().Rotate().Rotate().Rotate()
		if got != tile {
			t.Errorf("four rotations of %v = %v, want identity", tile, got)
		}
	}
}

func TestRotateFixedPoints(t *testing.T) {
	for _, tile := range []Tile{{Kind: TileEmpty}, {Kind: TileCross}} {
		if got := tile.Rotate(); got != tile {
			t.Errorf("%v.Rotate() = %v, want fixed point", tile, got)
		}
	}
}

func TestRotatePreservesOpenCount(t *testing.T) {
	dirs := []Direction{DirUp, DirRight, DirDown, DirLeft}
	count := func(tile Tile) int {
		n := 0
		for _, d := range dirs {
			if tile.Open(d) {
				n++
			}
		}
		return n
	}
	for _, tile := range allTiles(t) {
		if count(tile) != count(tile.Rotate()) {
			t.Errorf("rotation of %v changed its open edge count", tile)
		}
	}
}

func TestOpenEdges(t *testing.T) {
	tests := []struct {
		code byte
		open []Direction
	}{
		{' ', nil},
		{'^', []Direction{DirUp}},
		{'>', []Direction{DirRight}},
		{'/', []Direction{DirUp, DirDown}},
		{'-', []Direction{DirLeft, DirRight}},
		{'1', []Direction{DirUp, DirRight}},
		{'7', []Direction{DirRight, DirDown}},
		{'9', []Direction{DirDown, DirLeft}},
		{'3', []Direction{DirLeft, DirUp}},
		{'8', []Direction{DirRight, DirDown, DirLeft}},
		{'6', []Direction{DirUp, DirDown, DirLeft}},
		{'2', []Direction{DirUp, DirRight, DirLeft}},
		{'4', []Direction{DirUp, DirRight, DirDown}},
		{'5', []Direction{DirUp, DirRight, DirDown, DirLeft}},
	}
	for _, tt := range tests {
		tile, err := ParseTile(tt.code)
		if err != nil {
			t.Fatalf("ParseTile(%q): %v", tt.code, err)
		}
		want := make(map[Direction]bool)
		for _, d := range tt.open {
			want[d] = true
		}
		for _, d := range []Direction{DirUp, DirRight, DirDown, DirLeft} {
			if got := tile.Open(d); got != want[d] {
				t.Errorf("tile %q Open(%v) = %v, want %v", tt.code, d, got, want[d])
			}
		}
	}
}

func TestFitsSymmetric(t *testing.T) {
	tiles := allTiles(t)
	for _, a := range tiles {
		for _, b := range tiles {
			if a.Fits(DirRight, b) != b.Fits(DirLeft, a) {
				t.Errorf("fit asymmetric for %v | %v", a, b)
			}
			if a.Fits(DirDown, b) != b.Fits(DirUp, a) {
				t.Errorf("fit asymmetric for %v over %v", a, b)
			}
		}
	}
}

func TestShuffleKeepsKind(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, tile := range allTiles(t) {
		for i := 0; i < 16; i++ {
			shuffled := tile
			shuffled.Shuffle(rng)
			if shuffled.Kind != tile.Kind {
				t.Fatalf("shuffle changed kind of %v to %v", tile, shuffled)
			}
			if !tile.Kind.Oriented() && shuffled != tile {
				t.Fatalf("shuffle moved unoriented tile %v to %v", tile, shuffled)
			}
		}
	}
}

func TestStraightAxisNormalized(t *testing.T) {
	// A vertical straight rotated twice is vertical again and must compare
	// equal to the original.
	vertical, _ := ParseTile('/')
	if got := vertical.Rotate().Rotate(); got != vertical {
		t.Errorf("two rotations of %v = %v, want equal", vertical, got)
	}
	if NewTile(TileStraight, DirDown) != vertical {
		t.Errorf("NewTile(Straight, Down) = %v, want normalized to %v", NewTile(TileStraight, DirDown), vertical)
	}
}
