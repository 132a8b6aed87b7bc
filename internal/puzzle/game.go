package puzzle

import (
	"fmt"
	"math/rand"
	"time"
)

// Command is a game control command. Commands are plain data; Game.Apply
// executes them.
type Command interface {
	isCommand()
}

type (
	// Noop does nothing.
	Noop struct{}
	// Reset replaces the game world wholesale and homes the cursor. Used
	// to switch or restart a level.
	Reset struct{ World World }
	// MoveCursor moves the cursor one cell in the given direction,
	// clamping at the grid edge.
	MoveCursor struct{ Dir Direction }
	// RotateCursorTile turns the tile under the cursor clockwise.
	RotateCursorTile struct{}
	// RotateTileAt turns the tile at the given cell clockwise.
	RotateTileAt struct{ Row, Col int }
	// ReplaceCursorTile replaces the tile under the cursor.
	ReplaceCursorTile struct{ Tile Tile }
	// ReplaceTileAt replaces the tile at the given cell.
	ReplaceTileAt struct {
		Row, Col int
		Tile     Tile
	}
	// InsertRow inserts an empty row at the given index.
	InsertRow struct{ Index int }
	// RemoveRow removes the row at the given index. Removing the last
	// remaining row is a no-op.
	RemoveRow struct{ Index int }
	// InsertColumn inserts an empty column at the given index.
	InsertColumn struct{ Index int }
	// RemoveColumn removes the column at the given index. Removing the
	// last remaining column is a no-op.
	RemoveColumn struct{ Index int }
	// Shuffle randomizes every tile's orientation using the game's RNG.
	Shuffle struct{}
)

func (Noop) isCommand()              {}
func (Reset) isCommand()             {}
func (MoveCursor) isCommand()        {}
func (RotateCursorTile) isCommand()  {}
func (RotateTileAt) isCommand()      {}
func (ReplaceCursorTile) isCommand() {}
func (ReplaceTileAt) isCommand()     {}
func (InsertRow) isCommand()         {}
func (RemoveRow) isCommand()         {}
func (InsertColumn) isCommand()      {}
func (RemoveColumn) isCommand()      {}
func (Shuffle) isCommand()           {}

// SolvePolicy configures what counts as solved.
type SolvePolicy struct {
	// AllowEmpty accepts an all-empty grid as solved. Off by default: an
	// untouched empty grid is not a solution.
	AllowEmpty bool
	// RequireConnected additionally demands that all non-empty tiles form
	// a single connected network. Off by default: disjoint closed
	// sub-networks count as solved, matching the local solve check.
	RequireConnected bool
}

// Game makes a world playable: it owns the world exclusively, tracks a
// cursor that always stays within bounds, and keeps a solved flag that is
// recomputed synchronously after every mutating command, so it is never
// stale between commands.
type Game struct {
	world  World
	row    int
	col    int
	solved bool
	policy SolvePolicy
	rng    *rand.Rand
}

// Option configures a Game.
type Option func(*Game)

// WithSeed fixes the RNG seed for shuffles, for deterministic sessions.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithPolicy sets the solve policy.
func WithPolicy(p SolvePolicy) Option {
	return func(g *Game) {
		g.policy = p
	}
}

// New creates a game over the given world with the cursor at (0, 0). A
// zero-value World is replaced by a 1x1 empty grid so the cursor always
// rests on a real cell.
func New(world World, opts ...Option) *Game {
	g := &Game{world: nonDegenerate(world)}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g.solved = g.solvedNow()
	return g
}

// World returns the inner world for reading. The game owns it exclusively;
// mutate it only through commands.
func (g *Game) World() *World { return &g.world }

// Cursor returns the cursor position.
func (g *Game) Cursor() (row, col int) { return g.row, g.col }

// Row returns the cursor row.
func (g *Game) Row() int { return g.row }

// Col returns the cursor column.
func (g *Game) Col() int { return g.col }

// Solved returns the cached solved flag for the current world state.
func (g *Game) Solved() bool { return g.solved }

// Policy returns the solve policy in effect.
func (g *Game) Policy() SolvePolicy { return g.policy }

func (g *Game) solvedNow() bool {
	if !g.world.Check() {
		return false
	}
	if !g.policy.AllowEmpty && g.world.AllEmpty() {
		return false
	}
	if g.policy.RequireConnected && !g.world.Connected() {
		return false
	}
	return true
}

// mutate runs f against the world and refreshes the solved flag.
func (g *Game) mutate(f func(w *World)) {
	f(&g.world)
	g.solved = g.solvedNow()
}

// Apply executes a command. Mutating commands recompute the solved flag
// before returning. Commands addressing explicit out-of-range cells fail
// with ErrIndexOutOfRange; callers should validate against the world's
// bounds first.
func (g *Game) Apply(cmd Command) error {
	switch c := cmd.(type) {
	case Noop:
		return nil
	case Reset:
		g.reset(c.World)
	case MoveCursor:
		g.moveCursor(c.Dir)
	case RotateCursorTile:
		g.mutate(func(w *World) { w.RotateAt(g.row, g.col) })
	case RotateTileAt:
		if !g.world.InBounds(c.Row, c.Col) {
			return fmt.Errorf("rotate tile at (%d,%d): %w", c.Row, c.Col, ErrIndexOutOfRange)
		}
		g.mutate(func(w *World) { w.RotateAt(c.Row, c.Col) })
	case ReplaceCursorTile:
		g.mutate(func(w *World) { w.SetAt(g.row, g.col, c.Tile) })
	case ReplaceTileAt:
		if !g.world.InBounds(c.Row, c.Col) {
			return fmt.Errorf("replace tile at (%d,%d): %w", c.Row, c.Col, ErrIndexOutOfRange)
		}
		g.mutate(func(w *World) { w.SetAt(c.Row, c.Col, c.Tile) })
	case InsertRow:
		if c.Index < 0 || c.Index > g.world.Height() {
			return fmt.Errorf("insert row %d: %w", c.Index, ErrIndexOutOfRange)
		}
		g.mutate(func(w *World) { w.InsertRow(c.Index) })
		if g.row >= c.Index {
			g.row++
		}
	case RemoveRow:
		if c.Index < 0 || c.Index >= g.world.Height() {
			return fmt.Errorf("remove row %d: %w", c.Index, ErrIndexOutOfRange)
		}
		if g.world.Height() == 1 {
			return nil
		}
		g.mutate(func(w *World) { w.RemoveRow(c.Index) })
		if g.row == g.world.Height() {
			g.row--
		}
	case InsertColumn:
		if c.Index < 0 || c.Index > g.world.Width() {
			return fmt.Errorf("insert column %d: %w", c.Index, ErrIndexOutOfRange)
		}
		g.mutate(func(w *World) { w.InsertColumn(c.Index) })
		if g.col >= c.Index {
			g.col++
		}
	case RemoveColumn:
		if c.Index < 0 || c.Index >= g.world.Width() {
			return fmt.Errorf("remove column %d: %w", c.Index, ErrIndexOutOfRange)
		}
		if g.world.Width() == 1 {
			return nil
		}
		g.mutate(func(w *World) { w.RemoveColumn(c.Index) })
		if g.col == g.world.Width() {
			g.col--
		}
	case Shuffle:
		g.mutate(func(w *World) { w.Shuffle(g.rng) })
	default:
		return fmt.Errorf("unknown command %T", cmd)
	}
	return nil
}

func (g *Game) reset(world World) {
	g.row = 0
	g.col = 0
	g.mutate(func(w *World) { *w = nonDegenerate(world) })
}

// nonDegenerate substitutes a 1x1 empty grid for a zero-value world, which
// is constructible even though Empty, Generate and Parse never emit one.
func nonDegenerate(world World) World {
	if world.height < 1 || world.width < 1 {
		w, _ := Empty(1, 1)
		return w
	}
	return world
}

// moveCursor moves one cell, clamping at the grid edge: moving further at a
// boundary is a no-op, never a wraparound.
func (g *Game) moveCursor(dir Direction) {
	switch dir {
	case DirUp:
		if g.row > 0 {
			g.row--
		}
	case DirRight:
		if g.col < g.world.Width()-1 {
			g.col++
		}
	case DirDown:
		if g.row < g.world.Height()-1 {
			g.row++
		}
	case DirLeft:
		if g.col > 0 {
			g.col--
		}
	}
}
