package puzzle

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func mustParse(t *testing.T, text string) World {
	t.Helper()
	w, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}
	return w
}

func TestParseRoundTrip(t *testing.T) {
	texts := []string{
		"1,1\n \n",
		"1,2\n><\n",
		"2,2\n79\n13\n",
		"3,3\n789\n456\n123\n",
		"3,4\n7-9 \n/ /v\n1-3^\n",
	}
	for _, text := range texts {
		w := mustParse(t, text)
		if got := w.String(); got != text {
			t.Errorf("serialize mismatch:\ngot  %q\nwant %q", got, text)
		}
		again := mustParse(t, w.String())
		if !w.Equal(again) {
			t.Errorf("round trip changed world %q", text)
		}
	}
}

func TestParseAcceptsMissingTrailingNewline(t *testing.T) {
	a := mustParse(t, "1,2\n><\n")
	b := mustParse(t, "1,2\n><")
	if !a.Equal(b) {
		t.Error("trailing newline must not affect parsing")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		code ParseErrorCode
	}{
		{"empty input", "", ErrSizeMissing},
		{"no comma", "3\n", ErrSizeInvalid},
		{"extra field", "1,2,3\n><\n", ErrSizeInvalid},
		{"non-numeric height", "x,2\n><\n", ErrSizeInvalid},
		{"zero height", "0,2\n", ErrSizeInvalid},
		{"zero width", "2,0\n", ErrSizeInvalid},
		{"negative width", "1,-2\n", ErrSizeInvalid},
		{"too few tiles", "2,2\n79\n", ErrTileCountMismatch},
		{"too many tiles", "1,2\n><>\n", ErrTileCountMismatch},
		{"huge declared size", "1000000000,1000000000\n><\n", ErrTileCountMismatch},
		{"bad tile", "1,2\n>x\n", ErrInvalidTileCode},
		{"overflow", "4611686018427387904,4611686018427387904\n", ErrCapacityOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			if err == nil {
				t.Fatalf("Parse(%q): want error", tt.text)
			}
			var pe ParseError
			if !errors.As(err, &pe) || pe.Code != tt.code {
				t.Errorf("Parse(%q) = %v, want code %s", tt.text, err, tt.code)
			}
		})
	}
}

func TestEmptyWorld(t *testing.T) {
	w, err := Empty(2, 3)
	if err != nil {
		t.Fatalf("Empty(2,3): %v", err)
	}
	if w.Height() != 2 || w.Width() != 3 {
		t.Fatalf("Empty(2,3) = %dx%d", w.Height(), w.Width())
	}
	if !w.AllEmpty() {
		t.Error("Empty world must contain only empty tiles")
	}

	if _, err := Empty(0, 3); err == nil {
		t.Error("Empty(0,3): want error")
	}
	if _, err := Empty(3, 0); err == nil {
		t.Error("Empty(3,0): want error")
	}
}

func TestGenerate(t *testing.T) {
	w, err := Generate(2, 2, func(r, c int) Tile {
		if r == c {
			return NewTile(TileCross, DirUp)
		}
		return Tile{}
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if w.At(0, 0).Kind != TileCross || w.At(1, 1).Kind != TileCross {
		t.Error("generator tiles not placed on diagonal")
	}
	if w.At(0, 1).Kind != TileEmpty || w.At(1, 0).Kind != TileEmpty {
		t.Error("generator tiles leaked off the diagonal")
	}
}

func TestAtPanicsOutOfRange(t *testing.T) {
	w := mustParse(t, "1,2\n><\n")
	defer func() {
		if recover() == nil {
			t.Error("At out of range must panic")
		}
	}()
	w.At(0, 2)
}

func TestSolved(t *testing.T) {
	tests := []struct {
		text   string
		solved bool
	}{
		{"1,1\n \n", false},    // all-empty never solved
		{"3,3\n   \n   \n   \n", false},
		{"1,1\n^\n", false},    // endpoint opens toward the boundary
		{"1,2\n><\n", true},    // matched endpoint pair
		{"1,2\n<>\n", false},   // both open outward
		{"2,2\n79\n13\n", true},
		{"3,3\n789\n456\n123\n", true},
		{"2,2\n79\n31\n", false}, // rotated corners no longer fit
		{"3,4\n7-9 \n/ /v\n1-3^\n", true}, // two disjoint closed networks
		{"1,3\n>-<\n", true},
		{"1,3\n><<\n", false},
	}
	for _, tt := range tests {
		w := mustParse(t, tt.text)
		if got := w.Solved(); got != tt.solved {
			t.Errorf("Solved(%q) = %v, want %v", tt.text, got, tt.solved)
		}
	}
}

func TestConnected(t *testing.T) {
	// One ring: connected. Ring plus separate endpoint pair: not.
	one := mustParse(t, "2,2\n79\n13\n")
	if !one.Connected() {
		t.Error("single ring must be connected")
	}
	two := mustParse(t, "3,4\n7-9 \n/ /v\n1-3^\n")
	if !two.Solved() {
		t.Fatal("fixture must pass the local solve check")
	}
	if two.Connected() {
		t.Error("disjoint networks must not count as connected")
	}
	empty, _ := Empty(2, 2)
	if !empty.Connected() {
		t.Error("all-empty world is trivially connected")
	}
}

func TestInsertRow(t *testing.T) {
	w := mustParse(t, "2,2\n79\n13\n")
	top := w.At(0, 0)

	w.InsertRow(0)
	if w.Height() != 3 {
		t.Fatalf("height = %d, want 3", w.Height())
	}
	for c := 0; c < w.Width(); c++ {
		if w.At(0, c).Kind != TileEmpty {
			t.Errorf("new row 0 cell %d not empty", c)
		}
	}
	if w.At(1, 0) != top {
		t.Error("previous top row must shift to index 1")
	}

	w.InsertRow(w.Height())
	if w.Height() != 4 || w.At(3, 0).Kind != TileEmpty {
		t.Error("insert at height must append an empty row")
	}
}

func TestRemoveRowFloor(t *testing.T) {
	w := mustParse(t, "1,2\n><\n")
	before := w.String()
	w.RemoveRow(0)
	if w.String() != before {
		t.Error("removing the only row must be a no-op")
	}
}

func TestInsertRemoveColumn(t *testing.T) {
	w := mustParse(t, "2,2\n79\n13\n")
	w.InsertColumn(1)
	if w.Width() != 3 {
		t.Fatalf("width = %d, want 3", w.Width())
	}
	if got := w.String(); got != "2,3\n7 9\n1 3\n" {
		t.Errorf("after insert: %q", got)
	}

	w.RemoveColumn(1)
	if got := w.String(); got != "2,2\n79\n13\n" {
		t.Errorf("after remove: %q", got)
	}

	one := mustParse(t, "2,1\n/\n/\n")
	one.RemoveColumn(0)
	if one.Width() != 1 {
		t.Error("removing the only column must be a no-op")
	}
}

func TestShuffleDeterministicBySeed(t *testing.T) {
	text := "3,3\n789\n456\n123\n"
	a := mustParse(t, text)
	b := mustParse(t, text)

	a.Shuffle(rand.New(rand.NewSource(42)))
	b.Shuffle(rand.New(rand.NewSource(42)))
	if !a.Equal(b) {
		t.Error("same seed must shuffle identically")
	}

	// Kinds and positions survive.
	orig := mustParse(t, text)
	for r := 0; r < a.Height(); r++ {
		for c := 0; c < a.Width(); c++ {
			if a.At(r, c).Kind != orig.At(r, c).Kind {
				t.Errorf("shuffle changed kind at (%d,%d)", r, c)
			}
		}
	}
}

func TestCloneIsolated(t *testing.T) {
	w := mustParse(t, "1,2\n><\n")
	clone := w.Clone()
	w.RotateAt(0, 0)
	if clone.Equal(w) {
		t.Error("mutating the original must not touch the clone")
	}
	if !strings.HasPrefix(clone.String(), "1,2\n><") {
		t.Errorf("clone changed: %q", clone.String())
	}
}
