package puzzle

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
)

// World is a rectangular grid of tiles. Tiles are stored in row-major order:
// index = row*width + col. len(tiles) == height*width at all times; every
// structural edit updates the dimension and the slice together.
//
// A world has a text representation:
//
//	<height>,<width>
//	<tile codes of row 0>
//	<tile codes of row 1>
//	...
//
// See ParseTile for the per-tile codes.
type World struct {
	height int
	width  int
	tiles  []Tile
}

// Empty creates an all-empty world of the given size.
func Empty(height, width int) (World, error) {
	return Generate(height, width, func(_, _ int) Tile {
		return Tile{Kind: TileEmpty}
	})
}

// Generate creates a world of the given size, filling each cell from f,
// which is called with the cell's row and column.
func Generate(height, width int, f func(row, col int) Tile) (World, error) {
	size, err := gridSize(height, width)
	if err != nil {
		return World{}, err
	}

	tiles := make([]Tile, 0, size)
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			tiles = append(tiles, f(r, c))
		}
	}

	return World{height: height, width: width, tiles: tiles}, nil
}

// gridSize validates the dimensions and returns height*width.
func gridSize(height, width int) (int, error) {
	if height < 1 || width < 1 {
		return 0, ParseError{
			Code:    ErrSizeInvalid,
			Message: fmt.Sprintf("grid size %dx%d: both dimensions must be at least 1", height, width),
		}
	}
	if height > math.MaxInt/width {
		return 0, ParseError{
			Code:    ErrCapacityOverflow,
			Message: fmt.Sprintf("grid size %dx%d overflows", height, width),
		}
	}
	return height * width, nil
}

// Parse builds a world from its text representation. The first line holds
// "<height>,<width>"; the following lines hold one tile code per cell. The
// total tile count must match the declared size exactly.
func Parse(text string) (World, error) {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")

	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return World{}, ParseError{Code: ErrSizeMissing, Message: "missing size line"}
	}

	sizeParts := strings.Split(lines[0], ",")
	if len(sizeParts) != 2 {
		return World{}, ParseError{
			Code:    ErrSizeInvalid,
			Message: fmt.Sprintf("size line %q: want \"<height>,<width>\"", lines[0]),
		}
	}

	height, err := parseDimension(sizeParts[0])
	if err != nil {
		return World{}, err
	}
	width, err := parseDimension(sizeParts[1])
	if err != nil {
		return World{}, err
	}

	size, err := gridSize(height, width)
	if err != nil {
		return World{}, err
	}

	// The body can never hold more tiles than the input has bytes, so the
	// declared size must not drive the allocation: a hostile header whose
	// product fits an int can still be far beyond allocatable memory.
	capacity := size
	if capacity > len(text) {
		capacity = len(text)
	}
	tiles := make([]Tile, 0, capacity)
	for _, line := range lines[1:] {
		for i := 0; i < len(line); i++ {
			tile, err := ParseTile(line[i])
			if err != nil {
				return World{}, err
			}
			tiles = append(tiles, tile)
		}
	}

	if len(tiles) != size {
		return World{}, ParseError{
			Code:    ErrTileCountMismatch,
			Message: fmt.Sprintf("got %d tiles, grid %dx%d needs %d", len(tiles), height, width, size),
		}
	}

	return World{height: height, width: width, tiles: tiles}, nil
}

func parseDimension(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, ParseError{
			Code:    ErrSizeInvalid,
			Message: fmt.Sprintf("dimension %q: want a positive decimal integer", s),
		}
	}
	return n, nil
}

// String serializes the world in the format Parse accepts, with a trailing
// newline. Parse(w.String()) reproduces w exactly.
func (w World) String() string {
	var sb strings.Builder
	sb.Grow(len(w.tiles) + w.height + 16)

	sb.WriteString(strconv.Itoa(w.height))
	sb.WriteByte(',')
	sb.WriteString(strconv.Itoa(w.width))
	sb.WriteByte('\n')

	for r := 0; r < w.height; r++ {
		for c := 0; c < w.width; c++ {
			sb.WriteByte(w.tiles[r*w.width+c].Code())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Height returns the number of rows.
func (w World) Height() int { return w.height }

// Width returns the number of columns.
func (w World) Width() int { return w.width }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (w World) InBounds(row, col int) bool {
	return row >= 0 && row < w.height && col >= 0 && col < w.width
}

// At returns the tile at (row, col). Addressing out of bounds is a
// precondition fault and panics; check InBounds first.
func (w World) At(row, col int) Tile {
	w.mustContain(row, col)
	return w.tiles[row*w.width+col]
}

// SetAt replaces the tile at (row, col). Panics when out of bounds.
func (w *World) SetAt(row, col int, t Tile) {
	w.mustContain(row, col)
	w.tiles[row*w.width+col] = t
}

// RotateAt turns the tile at (row, col) one step clockwise. Panics when out
// of bounds.
func (w *World) RotateAt(row, col int) {
	w.mustContain(row, col)
	w.tiles[row*w.width+col].RotateInPlace()
}

func (w World) mustContain(row, col int) {
	if !w.InBounds(row, col) {
		panic(fmt.Sprintf("puzzle: cell (%d,%d) out of range of %dx%d world", row, col, w.height, w.width))
	}
}

// InsertRow inserts a row of empty tiles at index, shifting rows at and
// below it down by one. Valid indices are 0..Height() inclusive.
func (w *World) InsertRow(index int) {
	if index < 0 || index > w.height {
		panic(fmt.Sprintf("puzzle: row index %d out of range for insert into %d rows", index, w.height))
	}
	row := make([]Tile, w.width)
	at := index * w.width
	w.tiles = append(w.tiles[:at], append(row, w.tiles[at:]...)...)
	w.height++
}

// RemoveRow removes the row at index, shifting rows below it up by one.
// Removing the last remaining row is a no-op: a world never shrinks below
// 1x1. Valid indices are 0..Height() exclusive.
func (w *World) RemoveRow(index int) {
	if index < 0 || index >= w.height {
		panic(fmt.Sprintf("puzzle: row index %d out of range of %d rows", index, w.height))
	}
	if w.height == 1 {
		return
	}
	at := index * w.width
	w.tiles = append(w.tiles[:at], w.tiles[at+w.width:]...)
	w.height--
}

// InsertColumn inserts a column of empty tiles at index, shifting columns at
// and to the right of it by one. Valid indices are 0..Width() inclusive.
func (w *World) InsertColumn(index int) {
	if index < 0 || index > w.width {
		panic(fmt.Sprintf("puzzle: column index %d out of range for insert into %d columns", index, w.width))
	}
	width := w.width + 1
	tiles := make([]Tile, 0, w.height*width)
	for r := 0; r < w.height; r++ {
		row := w.tiles[r*w.width : (r+1)*w.width]
		tiles = append(tiles, row[:index]...)
		tiles = append(tiles, Tile{Kind: TileEmpty})
		tiles = append(tiles, row[index:]...)
	}
	w.tiles = tiles
	w.width = width
}

// RemoveColumn removes the column at index. Removing the last remaining
// column is a no-op. Valid indices are 0..Width() exclusive.
func (w *World) RemoveColumn(index int) {
	if index < 0 || index >= w.width {
		panic(fmt.Sprintf("puzzle: column index %d out of range of %d columns", index, w.width))
	}
	if w.width == 1 {
		return
	}
	width := w.width - 1
	tiles := make([]Tile, 0, w.height*width)
	for r := 0; r < w.height; r++ {
		row := w.tiles[r*w.width : (r+1)*w.width]
		tiles = append(tiles, row[:index]...)
		tiles = append(tiles, row[index+1:]...)
	}
	w.tiles = tiles
	w.width = width
}

// Shuffle randomizes every tile's orientation in place, keeping each tile's
// kind and position. Used to scramble a freshly loaded level before play.
func (w *World) Shuffle(rng *rand.Rand) {
	for i := range w.tiles {
		w.tiles[i].Shuffle(rng)
	}
}

// AllEmpty reports whether every tile is empty.
func (w World) AllEmpty() bool {
	for _, t := range w.tiles {
		if t.Kind != TileEmpty {
			return false
		}
	}
	return true
}

// checkCell verifies the boundary rule for (row, col) and the pairwise fit
// against its right and down neighbors. Testing only right and down per cell
// covers every internal edge exactly once.
func (w World) checkCell(row, col int) bool {
	cell := w.tiles[row*w.width+col]

	if row == 0 && cell.Open(DirUp) ||
		row == w.height-1 && cell.Open(DirDown) ||
		col == 0 && cell.Open(DirLeft) ||
		col == w.width-1 && cell.Open(DirRight) {
		return false
	}

	if col+1 < w.width && !cell.Fits(DirRight, w.tiles[row*w.width+col+1]) {
		return false
	}
	if row+1 < w.height && !cell.Fits(DirDown, w.tiles[(row+1)*w.width+col]) {
		return false
	}

	return true
}

// Check reports whether every tile agrees with its neighbors and no edge
// opens past the grid boundary. Single O(height*width) pass over local
// constraints; it does not prove the pipe network is one connected
// component (see Connected).
func (w World) Check() bool {
	for r := 0; r < w.height; r++ {
		for c := 0; c < w.width; c++ {
			if !w.checkCell(r, c) {
				return false
			}
		}
	}
	return true
}

// Solved reports whether the world passes Check and holds at least one
// non-empty tile. An all-empty grid never counts as solved here; Game
// exposes that guard as a policy.
func (w World) Solved() bool {
	return w.Check() && !w.AllEmpty()
}

// Connected reports whether all non-empty tiles form a single
// orthogonally-linked component through open edges. A world that passes
// Check may still consist of several disjoint closed networks; Connected
// distinguishes those.
func (w World) Connected() bool {
	start := -1
	for i, t := range w.tiles {
		if t.Kind != TileEmpty {
			start = i
			break
		}
	}
	if start < 0 {
		return true
	}

	seen := make([]bool, len(w.tiles))
	stack := []int{start}
	seen[start] = true

	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		row, col := i/w.width, i%w.width

		for _, d := range []Direction{DirUp, DirRight, DirDown, DirLeft} {
			dr, dc := d.Delta()
			nr, nc := row+dr, col+dc
			if !w.InBounds(nr, nc) || !w.tiles[i].Open(d) {
				continue
			}
			n := nr*w.width + nc
			if !seen[n] && w.tiles[n].Open(d.Opposite()) {
				seen[n] = true
				stack = append(stack, n)
			}
		}
	}

	for i, t := range w.tiles {
		if t.Kind != TileEmpty && !seen[i] {
			return false
		}
	}
	return true
}

// Equal reports whether two worlds have the same dimensions and tiles.
func (w World) Equal(other World) bool {
	if w.height != other.height || w.width != other.width {
		return false
	}
	for i, t := range w.tiles {
		if t != other.tiles[i] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the world.
func (w World) Clone() World {
	tiles := make([]Tile, len(w.tiles))
	copy(tiles, w.tiles)
	return World{height: w.height, width: w.width, tiles: tiles}
}
